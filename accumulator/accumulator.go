// Package accumulator implements a counter that advances by a mutable step.
//
// A Counter starts at count 0 with a step of 1. Increment adds the step held
// at the time of the call; changing the step later never touches what was
// already accumulated. Arithmetic is Go's own for the chosen number type, so
// integer counters wrap on overflow and float counters propagate NaN and
// infinities.
package accumulator

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

const (
	initialCount = 0
	initialVal   = 1
)

// Counter is not safe for concurrent use. Wrap shared instances in a
// Synchronized.
type Counter[N Number] struct {
	count N
	val   N
}

func New[N Number]() *Counter[N] {
	return &Counter[N]{count: initialCount, val: initialVal}
}

// Restore rebuilds a counter from a previously taken snapshot.
func Restore[N Number](state State[N]) *Counter[N] {
	return &Counter[N]{count: state.Count, val: state.Val}
}

func (c *Counter[N]) Count() N {
	return c.count
}

func (c *Counter[N]) Val() N {
	return c.val
}

// SetVal replaces the step used by subsequent increments. Any value of N is
// accepted.
func (c *Counter[N]) SetVal(val N) {
	c.val = val
}

func (c *Counter[N]) Increment() {
	c.count = c.count + c.val
}

func (c *Counter[N]) Snapshot() State[N] {
	return State[N]{Count: c.count, Val: c.val}
}

type State[N Number] struct {
	Count N
	Val   N
}
