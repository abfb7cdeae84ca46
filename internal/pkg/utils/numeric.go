package utils

import "strconv"

// ToFloat64 coerces a decoded JSON value of unknown type to float64.
// Upstream providers are inconsistent about numeric fields (number, string,
// null, occasionally bool), so every conversion failure degrades to the ok
// flag instead of an error.
func ToFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint64:
		return float64(val), true
	case string:
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	case nil:
		return 0, false
	default:
		return 0, false
	}
}

// ToFloat64OrZero is ToFloat64 with the zero default applied.
func ToFloat64OrZero(v interface{}) float64 {
	f, _ := ToFloat64(v)
	return f
}

// SafeDerefFloat64 dereferences p, returning fallback when p is nil.
func SafeDerefFloat64(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}

// Float64Ptr returns a pointer to v. Handy for the optional valuation
// fields on snapshots and holdings.
func Float64Ptr(v float64) *float64 {
	return &v
}
