// Package models defines the persisted entities.
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a list of strings stored as a JSON text column.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface. Legacy rows may hold a bare
// string instead of a JSON array; those scan as a single-element list.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("failed to scan StringList value: %v", value)
	}

	var list []string
	if err := json.Unmarshal(bytes, &list); err == nil {
		*l = list
		return nil
	}

	var single string
	if err := json.Unmarshal(bytes, &single); err == nil {
		*l = StringList{single}
		return nil
	}

	*l = StringList{string(bytes)}
	return nil
}
