package we

import (
	"fmt"
)

type UnexpectedCommandError struct {
	Command CommandName
}

func (e UnexpectedCommandError) Error() string {
	return fmt.Sprintf("unexpected command %s", e.Command)
}

func UnexpectedCommand(command Command) error {
	return UnexpectedCommandError{Command: CommandNameOf(command)}
}

// InvalidCommandError reports a remote command whose payload could not be
// decoded into the handler's command type.
type InvalidCommandError struct {
	Command CommandName
	Cause   error
}

func (e InvalidCommandError) Error() string {
	return fmt.Sprintf("invalid command %s: %v", e.Command, e.Cause)
}

func (e InvalidCommandError) Unwrap() error {
	return e.Cause
}

func InvalidCommand(command CommandName, cause error) error {
	return InvalidCommandError{Command: command, Cause: cause}
}

type CommandNotFoundError struct {
	Command CommandName
}

func (e CommandNotFoundError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Command)
}

func CommandNotFound(command CommandName) CommandNotFoundError {
	return CommandNotFoundError{Command: command}
}

type InvalidEncodingError struct {
	Expected string
	Actual   string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("expected encoding %s, got %s", e.Expected, e.Actual)
}

func InvalidEncoding(expected string, actual string) error {
	return &InvalidEncodingError{Expected: expected, Actual: actual}
}
