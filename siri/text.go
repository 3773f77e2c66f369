package siri

import (
	"encoding/json"
	"strings"
)

// Text is a natural-language SIRI value. Bus Time encodes these either as a
// plain string or as an array of strings, depending on API version.
type Text string

// UnmarshalJSON accepts "x", ["x", "y"] and null
func (t *Text) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*t = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = Text(s)
		return nil
	}
	var parts []string
	if err := json.Unmarshal(b, &parts); err != nil {
		return err
	}
	*t = Text(strings.Join(parts, " "))
	return nil
}

func (t Text) String() string { return string(t) }
