package reconcile

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// isFalsy reports whether a field value should defer to its default:
// missing, null, empty string, zero, or false.
func isFalsy(r gjson.Result) bool {
	switch r.Type {
	case gjson.Null:
		return true
	case gjson.False:
		return true
	case gjson.String:
		return r.Str == ""
	case gjson.Number:
		return r.Num == 0
	default:
		return !r.Exists()
	}
}

// stringOr returns the field rendered as a string, or def when falsy.
func stringOr(r gjson.Result, def string) string {
	if isFalsy(r) {
		return def
	}
	return r.String()
}

// coerceNumber converts a field to float64, defaulting to 0 when the value
// is absent or not numeric.
func coerceNumber(r gjson.Result) float64 {
	switch r.Type {
	case gjson.Number:
		return r.Num
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil {
			return 0
		}
		return f
	case gjson.True:
		return 1
	default:
		return 0
	}
}

// coerceTax parses a tax percentage, stripping a trailing "%" whether the
// value arrived as a string or a number. Absent or unparseable values
// default to 0.
func coerceTax(r gjson.Result) float64 {
	if isFalsy(r) {
		return 0
	}
	s := strings.TrimSpace(r.String())
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
