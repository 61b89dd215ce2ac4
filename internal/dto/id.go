package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexibleID is an identifier that clients may send either as a JSON string
// or as a JSON number. Numbers are kept in their decimal form.
type FlexibleID string

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
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
		*id = FlexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*id = FlexibleID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = FlexibleID(n.String())
	return nil
}

// IsAny reports whether the id selects no particular record ("", "0").
func (id FlexibleID) IsAny() bool {
	return id == "" || id == "0"
}

func (id FlexibleID) String() string {
	return string(id)
}
