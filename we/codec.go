package we

import (
	"github.com/goccy/go-json"
)

const JSONEncoding = "application/json"

func MarshalToData(value any) (Data, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return Data{}, err
	}

	return Data{Encoding: JSONEncoding, Data: encoded}, nil
}

// UnmarshalFromData decodes JSON data into value. Empty data decodes as an
// empty object, so required fields are still enforced by the target type.
func UnmarshalFromData(data Data, value any) error {
	if data.Encoding != JSONEncoding {
		return InvalidEncoding(JSONEncoding, data.Encoding)
	}

	encoded := data.Data
	if len(encoded) == 0 {
		encoded = []byte("{}")
	}

	return json.Unmarshal(encoded, value)
}
