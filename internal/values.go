package internal

import (
	"fmt"
	"math"
	"strconv"
)

// truthy: everything but false and nil, so 0 and "" are true
func truthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if valueBool, isBool := value.(bool); isBool {
		return valueBool
	}
	return true
}

// isEqual compares numbers by value bits: NaN equals NaN, 0 differs from -0
func isEqual(left, right interface{}) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	if l, ok := left.(float64); ok {
		r, ok := right.(float64)
		if !ok {
			return false
		}
		if math.IsNaN(l) && math.IsNaN(r) {
			return true
		}
		return math.Float64bits(l) == math.Float64bits(r)
	}
	return left == right
}

// stringify returns the display form used by print
func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case float64:
		return formatNumber(v)
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprintf("%v", value)
}

func formatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case math.IsNaN(n):
		return "NaN"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
