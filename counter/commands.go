package counter

import (
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const IncrementCommand = "counter:increment"

// Increment adds the step current at execution time to the count.
type Increment struct{}

func (Increment) TypeName() string {
	return IncrementCommand
}

const SetValCommand = "counter:set-val"

type SetVal struct {
	Val Number `json:"val"`
}

func (SetVal) TypeName() string {
	return SetValCommand
}

// UnmarshalJSON requires a non-null val.
func (cmd *SetVal) UnmarshalJSON(data []byte) error {
	var fields struct {
		Val *Number `json:"val"`
	}

	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if fields.Val == nil {
		return errors.New("val is required")
	}

	cmd.Val = *fields.Val
	return nil
}
