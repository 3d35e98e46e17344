package framework

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/golang/glog"
)

// DefaultInterval is the default system tick period.
const DefaultInterval = time.Millisecond

// Loop drives registered tickers one synchronous step per system
// tick, in registration order. The order is fixed and significant:
// components observe the outputs their upstream neighbours computed
// earlier in the same iteration.
type Loop struct {
	Interval time.Duration

	tickers []Ticker
	runners []Runnable

	ticks    uint64
	resetReq bool
	lock     sync.Mutex

	wakeUpCh chan struct{}
}

type tickIteration struct {
	loop *Loop
	ctx  context.Context
	tick uint64
	time time.Time
}

// NewLoop creates a Loop.
func NewLoop() *Loop {
	return &Loop{Interval: DefaultInterval}
}

// Add adds LoopAdders.
func (l *Loop) Add(adders ...LoopAdder) *Loop {
	for _, adder := range adders {
		adder.AddToLoop(l)
	}
	return l
}

// AddTicker registers tickers at the end of the tick order.
func (l *Loop) AddTicker(tickers ...Ticker) *Loop {
	l.tickers = append(l.tickers, tickers...)
	for _, t := range tickers {
		if runner, ok := t.(Runnable); ok {
			l.runners = append(l.runners, runner)
		}
	}
	return l
}

// AddRunnable adds Runnable implementations.
func (l *Loop) AddRunnable(runnables ...Runnable) *Loop {
	l.runners = append(l.runners, runnables...)
	return l
}

// Run implements Runnable.
func (l *Loop) Run(ctx context.Context) error {
	if l.wakeUpCh == nil {
		l.wakeUpCh = make(chan struct{}, 1)
	}

	runner := NewRunnerWith(ctx)
	runner.Go(l.runners...)
	defer runner.Wait()

	interval := l.Interval
	if interval == 0 {
		interval = DefaultInterval
	}
	timer := time.Tick(interval)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer:
			l.Step(ctx)
		case <-l.wakeUpCh:
			l.Step(ctx)
		}
	}
}

// RunOrFail is intended to be used in main to simply run the loop.
func (l *Loop) RunOrFail() {
	if err := l.Run(context.TODO()); err != nil && err != context.Canceled {
		log.Fatalln(err)
	}
}

// RequestReset implements LoopControl. The reset is synchronous and
// total: it applies at the top of the next iteration, before any
// ticker runs, and no ticker advances during that iteration.
func (l *Loop) RequestReset() {
	l.lock.Lock()
	l.resetReq = true
	l.lock.Unlock()
	l.TriggerNext()
}

// TriggerNext implements LoopControl.
func (l *Loop) TriggerNext() {
	if l.wakeUpCh == nil {
		return
	}
	select {
	case l.wakeUpCh <- struct{}{}:
	default:
	}
}

// Ticks returns the number of completed iterations since start or
// the last reset.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Step executes one tick iteration. It is the unit the Run loop
// repeats and is exported so tests and bench tools can drive the
// loop deterministically.
func (l *Loop) Step(ctx context.Context) {
	l.lock.Lock()
	reset := l.resetReq
	l.resetReq = false
	l.lock.Unlock()

	if reset {
		for _, t := range l.tickers {
			if r, ok := t.(Resettable); ok {
				r.Reset()
			}
		}
		l.ticks = 0
		return
	}

	iter := &tickIteration{loop: l, ctx: ctx, tick: l.ticks, time: time.Now()}
	for _, t := range l.tickers {
		if err := t.Tick(iter); err != nil {
			glog.Errorf("ticker error: %v", err)
		}
	}
	l.ticks++
}

func (t *tickIteration) Context() context.Context {
	return t.ctx
}

func (t *tickIteration) Tick() uint64 {
	return t.tick
}

func (t *tickIteration) Time() time.Time {
	return t.time
}

func (t *tickIteration) RequestReset() {
	t.loop.RequestReset()
}

func (t *tickIteration) TriggerNext() {
	t.loop.TriggerNext()
}
