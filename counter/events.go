package counter

import "github.com/weegigs/wee-counter-go/we"

var IncrementedEvent = we.EventType("counter:incremented")

// Incremented records the step that was current when the increment ran.
type Incremented struct {
	Step Number `json:"step"`
}

func (Incremented) EventType() we.EventType {
	return IncrementedEvent
}

var ValSetEvent = we.EventType("counter:val-set")

type ValSet struct {
	Val Number `json:"val"`
}

func (ValSet) EventType() we.EventType {
	return ValSetEvent
}
