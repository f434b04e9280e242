package enum

import (
	"database/sql/driver"
	"fmt"
)

// scanString reads a text column into a string, accepting both the string
// and []byte forms drivers hand back.
func scanString(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("enum: cannot scan %T", value)
	}
}

func stringValue(s string) (driver.Value, error) {
	return s, nil
}
