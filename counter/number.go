package counter

import (
	"math"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Number is a float64 whose JSON form also carries the values JSON numbers
// cannot: NaN, +Inf and -Inf are written as those strings. Any other string
// is rejected.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}

	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		switch s {
		case "NaN":
			*n = Number(math.NaN())
		case "+Inf", "Inf":
			*n = Number(math.Inf(1))
		case "-Inf":
			*n = Number(math.Inf(-1))
		default:
			return errors.Errorf("%q is not a number", s)
		}

		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return errors.Errorf("%s is not a number", data)
	}

	*n = Number(f)
	return nil
}

func (n Number) IsNaN() bool {
	return math.IsNaN(float64(n))
}
