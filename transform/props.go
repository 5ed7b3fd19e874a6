// Package transform turns discrete transform attributes (translate, scale,
// rotation, skew, origin) and explicit transforms (lists, matrices, strings)
// into a single affine matrix.
package transform

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"svgprops/attrs"
)

// Names lists attributes which make node transform.
var Names = []string{
	"rotation",
	"translate", "translateX", "translateY",
	"origin", "originX", "originY",
	"scale", "scaleX", "scaleY",
	"skew", "skewX", "skewY",
	"x", "y",
}

// Props is normalized transform attributes subset. Angles are in degrees.
type Props struct {
	Rotation float64 `json:"rotation" yaml:"rotation" ion:"rotation"`
	OriginX  float64 `json:"originX" yaml:"originX" ion:"originX"`
	OriginY  float64 `json:"originY" yaml:"originY" ion:"originY"`
	ScaleX   float64 `json:"scaleX" yaml:"scaleX" ion:"scaleX"`
	ScaleY   float64 `json:"scaleY" yaml:"scaleY" ion:"scaleY"`
	SkewX    float64 `json:"skewX" yaml:"skewX" ion:"skewX"`
	SkewY    float64 `json:"skewY" yaml:"skewY" ion:"skewY"`
	X        float64 `json:"x" yaml:"x" ion:"x"`
	Y        float64 `json:"y" yaml:"y" ion:"y"`
}

// FromBag normalizes transform attributes of the bag. Returns nil when bag
// has none of them.
//
// Universal attributes (translate, origin, scale, skew) take a number, "x, y"
// or "x" string, or one or two element list; per axis attributes override
// them. Zero or unparsable scale falls back to 1, everything else to 0.
func FromBag(b attrs.Bag, log *zap.Logger) *Props {
	if log == nil {
		log = zap.NewNop()
	}

	present := false
	for _, name := range Names {
		if b.Get(name) != nil {
			present = true
			break
		}
	}
	if !present {
		return nil
	}

	p := &Props{}
	if r, ok := attrs.Float(b.Get("rotation")); ok {
		p.Rotation = r
	}

	p.X, p.Y = universal2axis(b.Get("translate"),
		orFirst(b.Get("translateX"), b.Get("x"), "x", log),
		orFirst(b.Get("translateY"), b.Get("y"), "y", log), 0)
	p.OriginX, p.OriginY = universal2axis(b.Get("origin"), b.Get("originX"), b.Get("originY"), 0)
	p.ScaleX, p.ScaleY = universal2axis(b.Get("scale"), b.Get("scaleX"), b.Get("scaleY"), 1)
	p.SkewX, p.SkewY = universal2axis(b.Get("skew"), b.Get("skewX"), b.Get("skewY"), 0)
	return p
}

// orFirst returns axis value when it is truthy, otherwise fallback, taking
// first element of length lists.
func orFirst(axis, fallback any, name string, log *zap.Logger) any {
	if attrs.Truthy(axis) {
		return axis
	}
	var first any
	switch x := fallback.(type) {
	case []float64:
		if len(x) > 0 {
			first = x[0]
		}
	case []any:
		if len(x) > 0 {
			first = x[0]
		}
	default:
		return fallback
	}
	log.Warn("Length list given where single length expected, using first element",
		zap.String("attribute", name), zap.Any("value", fallback))
	return first
}

func universal2axis(universal, axisX, axisY any, def float64) (float64, float64) {
	x, y := math.NaN(), math.NaN()

	var coords []any
	switch u := universal.(type) {
	case nil:
	case string:
		for c := range strings.FieldsSeq(strings.ReplaceAll(u, ",", " ")) {
			coords = append(coords, c)
		}
	case []float64:
		for _, c := range u {
			coords = append(coords, c)
		}
	case []any:
		coords = u
	default:
		if f, ok := attrs.Float(u); ok {
			x, y = f, f
		}
	}
	switch len(coords) {
	case 1:
		x, _ = attrs.Float(coords[0])
		y = x
	case 2:
		x, _ = attrs.Float(coords[0])
		y, _ = attrs.Float(coords[1])
	}

	if f, ok := attrs.Float(axisX); ok && axisX != nil {
		x = f
	}
	if f, ok := attrs.Float(axisY); ok && axisY != nil {
		y = f
	}
	return orDefault(x, def), orDefault(y, def)
}

func orDefault(v, def float64) float64 {
	if v == 0 || math.IsNaN(v) {
		return def
	}
	return v
}
