// internal/models/common.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SpecEntry is a single product specification (e.g. "Battery Life": "30 hours").
type SpecEntry struct {
	Key   string
	Value string
}

// Specifications is a free-form key/value mapping with no fixed schema.
// Entries keep the order they were authored in, both in memory and on the
// wire, which plain map[string]string cannot guarantee.
type Specifications []SpecEntry

func (s Specifications) Get(key string) (string, bool) {
	for _, e := range s {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// MarshalJSON renders the specifications as a JSON object in entry order.
func (s Specifications) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object preserving document order of its keys.
func (s *Specifications) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("specifications: expected JSON object")
	}

	entries := Specifications{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("specifications: expected string key")
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("specifications: value for %q must be a string: %w", key, err)
		}
		entries = append(entries, SpecEntry{Key: key, Value: value})
	}

	*s = entries
	return nil
}
