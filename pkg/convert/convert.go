package convert

import (
	"fmt"
	"strconv"
)

// Coerce turns a raw string into the best matching scalar. The integer
// parse runs before the float parse so "42" becomes int64(42), not a
// string and not 42.0, and only non-numeric text stays a string.
func Coerce(raw string) interface{} {
	if num, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return num
	}
	if num, err := strconv.ParseFloat(raw, 64); err == nil {
		return num
	}

	return raw
}

// Float64 converts anything into a float64
// errors will fall back to 0
func Float64(raw interface{}) float64 {
	val, _ := Float64E(raw)

	return val
}

// Float64E converts anything into a float64
// errors will be returned
func Float64E(raw interface{}) (float64, error) {
	switch val := raw.(type) {
	case float64:
		return val, nil
	case int64:
		return float64(val), nil
	default:
		num, err := strconv.ParseFloat(fmt.Sprintf("%v", val), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse float64 value from %v (%T)", raw, raw)
		}

		return num, nil
	}
}

// Int64 converts anything into a int64
// errors will fall back to 0
func Int64(raw interface{}) int64 {
	val, _ := Int64E(raw)

	return val
}

// Int64E converts anything into a int64
// errors will be returned
func Int64E(raw interface{}) (int64, error) {
	switch val := raw.(type) {
	case int64:
		return val, nil
	case int:
		return int64(val), nil
	default:
		num, err := strconv.ParseInt(fmt.Sprintf("%v", val), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse int64 value from %v (%T)", raw, raw)
		}

		return num, nil
	}
}

// Num2String converts any number into a string
// errors will fall back to empty string
func Num2String(raw interface{}) string {
	s, _ := Num2StringE(raw)

	return s
}

// Num2StringE converts any number into a string
// errors will be returned
func Num2StringE(raw interface{}) (string, error) {
	switch num := raw.(type) {
	case float64:
		if strconv.FormatFloat(num, 'f', -1, 64) != fmt.Sprintf("%d", int64(num)) {
			return strconv.FormatFloat(num, 'f', -1, 64), nil
		}

		return fmt.Sprintf("%d", int64(num)), nil
	case int64:
		return fmt.Sprintf("%d", num), nil
	default:
		fNum, err := strconv.ParseFloat(fmt.Sprintf("%v", raw), 64)
		if err != nil {
			return "", fmt.Errorf("cannot convert %v (%T) into string", raw, raw)
		}

		return Num2StringE(fNum)
	}
}
