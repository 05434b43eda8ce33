package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StringList is a []string persisted as a JSON-encoded text column. The
// managed backend stores these columns as native arrays; the local backend
// keeps the same JSON wire shape in a sqlite text column.
type StringList []string

// Value implements driver.Valuer. A nil list is stored as SQL NULL.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for text and blob column values.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("stringlist: unsupported source type %T", src)
	}
	if len(data) == 0 {
		*l = nil
		return nil
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return errors.Join(errors.New("stringlist: malformed column value"), err)
	}
	*l = out
	return nil
}
