package framework

import (
	"context"
	"time"
)

// Named is an abstraction for things with a name.
type Named interface {
	Name() string
}

// Runnable defines a generic interface for background runners.
type Runnable interface {
	Run(context.Context) error
}

// Ticker is a component advancing exactly one synchronous step per
// system tick. Tick must not block.
type Ticker interface {
	Tick(TickContext) error
}

// TickFunc is the func form of Ticker.
type TickFunc func(TickContext) error

// Tick implements Ticker.
func (f TickFunc) Tick(tc TickContext) error {
	return f(tc)
}

// Resettable is implemented by tickers holding state that a
// synchronous reset must clear.
type Resettable interface {
	Reset()
}

// TickContext provides the context of the current tick iteration.
type TickContext interface {
	// Context retrieves context.Context.
	Context() context.Context
	// Tick is the number of completed iterations since start or the
	// last reset.
	Tick() uint64
	// Time is the wall time the iteration started.
	Time() time.Time

	LoopControl
}

// LoopControl exposes access to the ticking loop.
type LoopControl interface {
	// RequestReset forces every Resettable ticker back to its initial
	// state at the top of the next iteration, overriding any
	// transition that iteration would have made.
	RequestReset()
	// TriggerNext schedules the next iteration to be executed
	// immediately instead of waiting for the interval timer.
	TriggerNext()
}

// LoopAdder provides specific logic to add components to a loop.
type LoopAdder interface {
	AddToLoop(*Loop)
}
