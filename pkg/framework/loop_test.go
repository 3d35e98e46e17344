package framework

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordTicker struct {
	id    string
	log   *[]string
	ticks int
}

func (r *recordTicker) Tick(TickContext) error {
	*r.log = append(*r.log, r.id)
	r.ticks++
	return nil
}

func (r *recordTicker) Reset() {
	*r.log = append(*r.log, r.id+"!")
	r.ticks = 0
}

func TestLoopTickOrder(t *testing.T) {
	var log []string
	l := NewLoop().
		AddTicker(&recordTicker{id: "a", log: &log}).
		AddTicker(&recordTicker{id: "b", log: &log}, &recordTicker{id: "c", log: &log})

	ctx := context.Background()
	l.Step(ctx)
	l.Step(ctx)
	require.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, log)
	require.Equal(t, uint64(2), l.Ticks())
}

func TestLoopReset(t *testing.T) {
	var log []string
	a := &recordTicker{id: "a", log: &log}
	b := &recordTicker{id: "b", log: &log}
	l := NewLoop().AddTicker(a, b)

	ctx := context.Background()
	l.Step(ctx)
	l.RequestReset()
	l.Step(ctx)
	// The reset iteration clears state and runs no ticker.
	require.Equal(t, []string{"a", "b", "a!", "b!"}, log)
	require.Equal(t, uint64(0), l.Ticks())
	require.Equal(t, 0, a.ticks)

	l.Step(ctx)
	require.Equal(t, uint64(1), l.Ticks())
	require.Equal(t, 1, a.ticks)
}

func TestLoopTickContext(t *testing.T) {
	l := NewLoop()
	var seen []uint64
	l.AddTicker(TickFunc(func(tc TickContext) error {
		seen = append(seen, tc.Tick())
		return nil
	}))
	ctx := context.Background()
	l.Step(ctx)
	l.Step(ctx)
	l.Step(ctx)
	require.Equal(t, []uint64{0, 1, 2}, seen)
}
