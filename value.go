package tracefmt

import (
	"fmt"
	"strconv"
	"time"
)

// DisplayText converts an arbitrary tag or baggage value to display
// text using invariant formatting. The boolean result is false for nil
// values, which render as "no value" (a bare key in the flat style,
// null in the JSON-like style).
//
// This is the single conversion boundary for untyped span data: a
// known scalar kind converts directly, anything else goes through its
// own textual-conversion capability (error, fmt.Stringer, or %v as the
// last resort). A panicking conversion is contained here and yields
// the empty string, never a failed render.
func DisplayText(value interface{}) (s string, ok bool) {
	if value == nil {
		return "", false
	}
	defer func() {
		if recover() != nil {
			s, ok = "", true
		}
	}()
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case time.Duration:
		return v.String(), true
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano), true
	case []byte:
		return string(v), true
	case error:
		return v.Error(), true
	case fmt.Stringer:
		return v.String(), true
	}
	return fmt.Sprintf("%v", value), true
}
