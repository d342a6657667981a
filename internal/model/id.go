package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a server-assigned identifier. The CRM API may send it as a JSON number or a string,
// it is kept as a string on the client side.
type ID string

// String returns string representation of identifier
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether identifier is not assigned yet
func (id ID) IsZero() bool {
	return id == ""
}

// MarshalJSON writes numeric identifiers as JSON numbers, so they travel back in the same shape
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte(`""`), nil
	}

	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// UnmarshalJSON accepts both JSON numbers and strings
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier must be a string or a number - %w", err)
	}
	*id = ID(n.String())
	return nil
}
