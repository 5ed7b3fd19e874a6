package paint

import (
	"slices"

	"go.uber.org/zap"

	"svgprops/attrs"
	"svgprops/css"
)

// StrokeNames lists attributes recorded in property list when set explicitly.
var StrokeNames = []string{
	"stroke",
	"strokeWidth",
	"strokeOpacity",
	"strokeDasharray",
	"strokeDashoffset",
	"strokeLinecap",
	"strokeLinejoin",
	"strokeMiterlimit",
}

var (
	lineCaps = map[string]int{
		"butt":   0,
		"round":  1,
		"square": 2,
	}
	lineJoins = map[string]int{
		"miter": 0,
		"round": 1,
		"bevel": 2,
	}
	vectorEffects = map[string]int{
		"none":               0,
		"default":            0,
		"nonScalingStroke":   1,
		"non-scaling-stroke": 1,
		"inherit":            2,
		"uri":                3,
	}
)

const defaultMiterLimit = 4

// Stroke is resolved stroke part of the node properties.
type Stroke struct {
	Stroke           *Brush
	StrokeOpacity    float64
	StrokeWidth      Length
	StrokeLinecap    int
	StrokeLinejoin   int
	StrokeDasharray  []Length
	StrokeDashoffset *float64
	StrokeMiterlimit float64
	VectorEffect     int
}

// ResolveStroke resolves stroke attributes and returns names of stroke
// attributes present in the bag.
func ResolveStroke(b attrs.Bag, log *zap.Logger) (Stroke, []string) {
	var touched []string
	for _, name := range StrokeNames {
		if b.Has(name) {
			touched = append(touched, name)
		}
	}

	s := Stroke{
		Stroke:           ResolveBrush(b.Get("stroke"), log),
		StrokeOpacity:    Opacity(b.Get("strokeOpacity")),
		StrokeWidth:      Length{Value: 1},
		StrokeLinecap:    lineCaps[attrs.String(b.Get("strokeLinecap"))],
		StrokeLinejoin:   lineJoins[attrs.String(b.Get("strokeLinejoin"))],
		StrokeMiterlimit: miterLimit(b.Get("strokeMiterlimit")),
		VectorEffect:     vectorEffects[attrs.String(b.Get("vectorEffect"))],
	}

	if raw := b.Get("strokeWidth"); raw != nil {
		if w, ok := ParseLength(raw); ok {
			s.StrokeWidth = w
		}
	}

	dash := b.Get("strokeDasharray")
	if attrs.Truthy(dash) && attrs.String(dash) != "none" {
		list := ParseLengthList(dash)
		if len(list)%2 == 1 {
			list = append(list, slices.Clone(list)...)
		}
		if len(list) > 0 {
			s.StrokeDasharray = list
		}
	}
	if attrs.Truthy(dash) {
		offset := 0.0
		if raw := b.Get("strokeDashoffset"); attrs.Truthy(raw) {
			if v, ok := attrs.Float(raw); ok {
				offset = v
			}
		}
		s.StrokeDashoffset = &offset
	}
	return s, touched
}

func miterLimit(raw any) float64 {
	if !attrs.Truthy(raw) {
		return defaultMiterLimit
	}
	var v float64
	if s, ok := raw.(string); ok {
		v, _ = css.ParseDimension(s)
	} else {
		v, _ = attrs.Float(raw)
	}
	if v == 0 {
		return defaultMiterLimit
	}
	return v
}
