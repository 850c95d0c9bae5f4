package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
)

const maxBodyBytes = 1 << 20

// decodeStrict decodes exactly one JSON value into dest. Trailing data after the
// value and top-level keys outside fields (compared case-sensitively) are errors.
func decodeStrict(body []byte, dest any, fields []string) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(dest); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON value")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return err
	}
	for key := range raw {
		if !slices.Contains(fields, key) {
			return fmt.Errorf("unexpected field %q", key)
		}
	}
	return nil
}
