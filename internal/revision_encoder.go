package internal

import (
	"encoding/binary"

	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"

	"github.com/weegigs/wee-counter-go/we"
)

// Position places an event in a store's history. Revisions encode it as a
// ULID: the millisecond timestamp followed by the change set sequence and
// the event's index within that change set, so revisions sort in
// publication order.
type Position struct {
	Timestamp uint64
	Sequence  uint64
	Index     uint16
}

func (p Position) Revision() (we.Revision, error) {
	var id ulid.ULID
	if err := id.SetTime(p.Timestamp); err != nil {
		return "", errors.Wrap(err, "revision timestamp out of range")
	}

	entropy := make([]byte, 10)
	binary.BigEndian.PutUint64(entropy[:8], p.Sequence)
	binary.BigEndian.PutUint16(entropy[8:], p.Index)

	if err := id.SetEntropy(entropy); err != nil {
		return "", err
	}

	return we.Revision(id.String()), nil
}

func ParsePosition(revision we.Revision) (Position, error) {
	id, err := ulid.ParseStrict(revision.String())
	if err != nil {
		return Position{}, errors.Wrapf(err, "malformed revision %q", revision)
	}

	entropy := id.Entropy()

	return Position{
		Timestamp: id.Time(),
		Sequence:  binary.BigEndian.Uint64(entropy[:8]),
		Index:     binary.BigEndian.Uint16(entropy[8:]),
	}, nil
}
