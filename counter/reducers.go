package counter

import (
	"github.com/weegigs/wee-counter-go/accumulator"
	"github.com/weegigs/wee-counter-go/we"
)

func Reducers() we.Reducers[Counter] {
	return we.Reducers[Counter]{
		IncrementedEvent: incremented(),
		ValSetEvent:      valSet(),
	}
}

// incremented replays with the recorded step rather than the current one.
func incremented() we.Reducer[Counter] {
	var reducer we.ReducerFunction[Counter, Incremented] = func(counter *Counter, evt *Incremented) error {
		acc := accumulator.Restore(accumulator.State[float64]{Count: float64(counter.Count), Val: float64(evt.Step)})
		acc.Increment()

		counter.Count = Number(acc.Count())
		return nil
	}

	return reducer
}

func valSet() we.Reducer[Counter] {
	var reducer we.ReducerFunction[Counter, ValSet] = func(counter *Counter, evt *ValSet) error {
		acc := counter.accumulator()
		acc.SetVal(float64(evt.Val))

		*counter = fromState(acc.Snapshot())
		return nil
	}

	return reducer
}
