package domain

import (
	"bytes"
	"encoding/json"
)

// FlexString accepts a JSON string or number. A number keeps its literal
// text, so 161 decodes to "161". Any other value, including null, decodes
// to the empty string.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*s = ""
		return nil
	}
	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*s = FlexString(data)
	default:
		*s = ""
	}
	return nil
}

// FirstNonBlank returns the first value that is not blank after trimming,
// untrimmed, or "" when all are blank.
func FirstNonBlank(vals ...FlexString) string {
	for _, v := range vals {
		if len(bytes.TrimSpace([]byte(v))) > 0 {
			return string(v)
		}
	}
	return ""
}
