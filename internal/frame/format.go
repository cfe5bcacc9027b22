package frame

import (
	"fmt"
	"strconv"
	"time"
)

// DefaultDateFormat is the date layout used when none is configured.
const DefaultDateFormat = "2006-01-02"

// FormatValue renders a typed column value as text. Missing values (nil)
// render as the given token.
func FormatValue(v interface{}, dateFormat, missingToken string) string {
	if v == nil {
		return missingToken
	}
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}
	switch val := v.(type) {
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(dateFormat)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
