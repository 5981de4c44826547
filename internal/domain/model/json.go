package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a JSON-encoded string array column. Stored as jsonb on
// PostgreSQL and plain text elsewhere.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}

	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported string list source: %T", src)
	}
}
