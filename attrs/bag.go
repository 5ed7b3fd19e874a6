// Package attrs defines attribute bags - caller supplied attributes of a
// single drawable node - and the style merging rules applied to them.
package attrs

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// StyleKey is the attribute holding style value of the node.
const StyleKey = "style"

// Bag maps attribute name to its value. Values are heterogeneous: strings,
// numbers, []float64, []any, nested Bag, StyleValue or callbacks. Bag is
// never modified while attributes are being extracted from it.
type Bag map[string]any

// Has reports whether attribute was specified, even if its value is nil.
func (b Bag) Has(name string) bool {
	_, ok := b[name]
	return ok
}

// Get returns attribute value or nil.
func (b Bag) Get(name string) any {
	return b[name]
}

// Fallback returns value of attribute name unless it is absent or nil in
// which case value of fallback attribute is returned.
func (b Bag) Fallback(name, fallback string) any {
	if v, ok := b[name]; ok && v != nil {
		return v
	}
	return b[fallback]
}

// Truthy follows scripting runtime notion of truth which attribute APIs were
// modeled on: nil, false, zero, NaN and empty string are false, everything
// else is true.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case func():
		return x != nil
	case Bag:
		return x != nil
	}
	return true
}

// Float converts attribute value to number. Strings are trimmed and parsed,
// "" yields 0. Second value is false when conversion is not possible (NaN
// semantics).
func Float(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case bool:
		if x {
			f = 1
		}
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, true
		}
		var err error
		if f, err = strconv.ParseFloat(s, 64); err != nil {
			return math.NaN(), false
		}
	case fmt.Stringer:
		return Float(x.String())
	default:
		return math.NaN(), false
	}
	if math.IsNaN(f) {
		return f, false
	}
	return f, true
}

// String converts attribute value to its textual form, never failing.
// Numbers are formatted without exponent and trailing zeros: 42 -> "42",
// 1.5 -> "1.5".
func String(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return formatFloat(x)
	case float32:
		return formatFloat(float64(x))
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Floats converts list-like value into numbers. Accepts []float64, []any and
// []int, single numbers produce one element list. Elements which cannot be
// converted make the whole conversion fail.
func Floats(v any) ([]float64, bool) {
	switch x := v.(type) {
	case []float64:
		return x, true
	case []int:
		out := make([]float64, len(x))
		for i, n := range x {
			out[i] = float64(n)
		}
		return out, true
	case []any:
		out := make([]float64, 0, len(x))
		for _, e := range x {
			f, ok := Float(e)
			if !ok {
				return nil, false
			}
			out = append(out, f)
		}
		return out, true
	}
	if f, ok := Float(v); ok && v != nil {
		if _, isString := v.(string); !isString {
			return []float64{f}, true
		}
	}
	return nil, false
}
