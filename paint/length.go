package paint

import (
	"strconv"
	"strings"

	"svgprops/attrs"
	"svgprops/css"
)

// Length is a number with optional unit ("", "px", "%", "em"...).
type Length struct {
	Value float64 `json:"value" yaml:"value" ion:"value"`
	Unit  string  `json:"unit,omitempty" yaml:"unit,omitempty" ion:"unit,omitempty"`
}

func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + l.Unit
}

// ParseLength converts number or dimension string to Length.
func ParseLength(raw any) (Length, bool) {
	if s, ok := raw.(string); ok {
		v, unit := css.ParseDimension(s)
		if v == 0 && unit == "" && !isZero(s) {
			return Length{}, false
		}
		return Length{Value: v, Unit: unit}, true
	}
	v, ok := attrs.Float(raw)
	if !ok || raw == nil {
		return Length{}, false
	}
	return Length{Value: v}, true
}

func isZero(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && strings.Trim(s, "+-0.") == ""
}

// ParseLengthList accepts list of lengths as array, single number, or string
// separated by commas and/or white space. Entries which are not lengths are
// dropped.
func ParseLengthList(raw any) []Length {
	var items []any
	switch x := raw.(type) {
	case string:
		for f := range strings.FieldsSeq(strings.ReplaceAll(x, ",", " ")) {
			items = append(items, f)
		}
	case []any:
		items = x
	case []float64:
		for _, f := range x {
			items = append(items, f)
		}
	case []string:
		for _, s := range x {
			items = append(items, s)
		}
	default:
		items = []any{raw}
	}

	out := make([]Length, 0, len(items))
	for _, it := range items {
		if l, ok := ParseLength(it); ok {
			out = append(out, l)
		}
	}
	return out
}
