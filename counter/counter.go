// Package counter hosts the accumulator as an event sourced entity: every
// increment and step change is recorded as an event and the state is rebuilt
// by replaying them through an accumulator.
package counter

import (
	"github.com/weegigs/wee-counter-go/accumulator"
	"github.com/weegigs/wee-counter-go/we"
)

const AggregateType = "counter"

func Id(key string) we.AggregateId {
	return we.AggregateId{Type: AggregateType, Key: key}
}

type Counter struct {
	Count Number `json:"count"`
	Val   Number `json:"val"`
}

func NewCounter() Counter {
	return fromState(accumulator.New[float64]().Snapshot())
}

func fromState(state accumulator.State[float64]) Counter {
	return Counter{Count: Number(state.Count), Val: Number(state.Val)}
}

func (Counter) EntityType() we.EntityType {
	return AggregateType
}

func (state *Counter) Value() Number {
	return state.Count
}

func (state *Counter) accumulator() *accumulator.Counter[float64] {
	return accumulator.Restore(accumulator.State[float64]{Count: float64(state.Count), Val: float64(state.Val)})
}
