package rnd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Flag is a boolean the game server may send as true/false, as a number
// (nonzero is true) or as null.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch string(trimmed) {
	case "null", "false", "":
		*f = false
		return nil
	case "true":
		*f = true
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		trimmed = []byte(s)
		if len(trimmed) == 0 {
			*f = false
			return nil
		}
	}
	n, err := strconv.ParseFloat(string(trimmed), 64)
	if err != nil {
		return fmt.Errorf("flag value %s: %w", string(data), err)
	}
	*f = n != 0
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}
