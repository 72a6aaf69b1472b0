package counter

import (
	"context"

	"github.com/weegigs/wee-counter-go/we"
)

func CommandHandlers() we.CommandHandlers[Counter] {
	return we.CommandHandlers[Counter]{
		IncrementCommand: increment(),
		SetValCommand:    setVal(),
	}
}

func increment() we.CommandHandler[Counter] {
	var handler we.CommandHandlerFunction[Counter, Increment] = func(ctx context.Context, cmd Increment, state we.Entity[Counter], publish we.EventPublisher) error {
		return publish(ctx, state.Aggregate, we.Options(we.WithExpectedRevision(state.Revision)), Incremented{Step: state.State.Val})
	}

	return handler
}

func setVal() we.CommandHandler[Counter] {
	var handler we.CommandHandlerFunction[Counter, SetVal] = func(ctx context.Context, cmd SetVal, state we.Entity[Counter], publish we.EventPublisher) error {
		return publish(ctx, state.Aggregate, we.Options(we.WithExpectedRevision(state.Revision)), ValSet{Val: cmd.Val})
	}

	return handler
}
