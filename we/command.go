package we

import (
	"context"
)

type CommandName string
type Command any

// RemoteCommand carries a command by name with an encoded payload, as it
// arrives over a transport.
type RemoteCommand struct {
	CommandName CommandName `json:"command"`
	Payload     Data        `json:"payload"`
}

func CommandNameOf(command Command) CommandName {
	if remote, ok := command.(RemoteCommand); ok {
		return remote.CommandName
	}

	return CommandName(NameOf(command))
}

type CommandHandler[T any] interface {
	Handle(ctx context.Context, cmd Command, state Entity[T], publish EventPublisher) error
}

// CommandHandlerFunction adapts a function over a concrete command type C.
// Remote commands are decoded into C before the call.
type CommandHandlerFunction[T any, C any] func(ctx context.Context, cmd C, state Entity[T], publish EventPublisher) error

func (f CommandHandlerFunction[T, C]) Handle(ctx context.Context, cmd Command, state Entity[T], publish EventPublisher) error {
	var command C

	switch c := cmd.(type) {
	case RemoteCommand:
		if err := UnmarshalFromData(c.Payload, &command); err != nil {
			return InvalidCommand(c.CommandName, err)
		}
	case C:
		command = c
	default:
		return UnexpectedCommand(cmd)
	}

	return f(ctx, command, state, publish)
}
