package constants

import "fmt"

// scanText turns whatever the driver hands back for an enum column into text.
// sqlite is loosely typed, so a number in a status column is possible; it is
// just another unrecognised value.
func scanText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}
