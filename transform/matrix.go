package transform

import (
	"math"

	"github.com/srwiley/rasterx"
	"go.uber.org/zap"

	"svgprops/attrs"
)

// Matrix is affine transform [a b c d e f], mapping (x, y) to
// (a*x + c*y + e, b*x + d*y + f).
type Matrix [6]float64

// Identity matrix.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// FromMatrix2D converts rasterx matrix.
func FromMatrix2D(m rasterx.Matrix2D) Matrix {
	return Matrix{m.A, m.B, m.C, m.D, m.E, m.F}
}

// Matrix2D converts matrix to rasterx representation.
func (m Matrix) Matrix2D() rasterx.Matrix2D {
	return rasterx.Matrix2D{A: m[0], B: m[1], C: m[2], D: m[3], E: m[4], F: m[5]}
}

// Apply transforms point.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Resolve composes matrix from transform attributes and explicit transform.
// Attributes are applied first, explicit transform after them. Explicit
// transform may be:
//
//   - SVG transform list string
//   - list of 6 numbers [a b c d e f] or 9 numbers of row major 3x3 matrix
//   - list of single key objects ([{"rotate": 45}, {"scale": 2}])
//   - object with transform attributes
//   - Matrix or rasterx.Matrix2D
//
// Malformed explicit transform is reported and ignored.
func Resolve(p *Props, override any, log *zap.Logger) Matrix {
	if log == nil {
		log = zap.NewNop()
	}

	m := rasterx.Identity
	if p != nil {
		m = appendProps(m, p)
	}

	switch t := override.(type) {
	case nil:
	case string:
		if t == "" {
			break
		}
		tm, err := ParseList(t)
		if err != nil {
			log.Error("Unable to parse transform", zap.String("transform", t), zap.Error(err))
			break
		}
		m = m.Mult(tm)
	case Matrix:
		m = m.Mult(t.Matrix2D())
	case rasterx.Matrix2D:
		m = m.Mult(t)
	case []float64:
		m = appendNumbers(m, t, log)
	case attrs.Bag:
		m = appendBag(m, t, log)
	case map[string]any:
		m = appendBag(m, attrs.Bag(t), log)
	case []any:
		if len(t) == 0 {
			break
		}
		if nums, ok := attrs.Floats(t); ok {
			m = appendNumbers(m, nums, log)
			break
		}
		bags, skipped := attrs.List(t)
		if len(skipped) > 0 {
			log.Error("Transform list entries must be objects", zap.Ints("entries", skipped))
		}
		m = appendBag(m, mergeEntries(bags, log), log)
	case []attrs.Bag:
		m = appendBag(m, mergeEntries(t, log), log)
	default:
		log.Error("Unsupported transform value", zap.String("transform", attrs.String(t)))
	}
	return FromMatrix2D(m)
}

// mergeEntries folds list of single key objects into one bag, later entries
// win.
func mergeEntries(bags []attrs.Bag, log *zap.Logger) attrs.Bag {
	merged := attrs.Bag{}
	for i, b := range bags {
		if len(b) != 1 {
			log.Error("Transform list entry must have exactly one key", zap.Int("entry", i), zap.Int("keys", len(b)))
		}
		for k, v := range b {
			merged[k] = v
		}
	}
	return merged
}

func appendBag(m rasterx.Matrix2D, b attrs.Bag, log *zap.Logger) rasterx.Matrix2D {
	if p := FromBag(b, log); p != nil {
		return appendProps(m, p)
	}
	return m
}

func appendNumbers(m rasterx.Matrix2D, n []float64, log *zap.Logger) rasterx.Matrix2D {
	switch len(n) {
	case 6:
		return m.Mult(rasterx.Matrix2D{A: n[0], B: n[1], C: n[2], D: n[3], E: n[4], F: n[5]})
	case 9:
		// row major: a c e / b d f / 0 0 1
		return m.Mult(rasterx.Matrix2D{A: n[0], B: n[3], C: n[1], D: n[4], E: n[2], F: n[5]})
	}
	log.Error("Transform matrix must have 6 or 9 elements", zap.Int("elements", len(n)))
	return m
}

// appendProps computes
// m * T(x+originX, y+originY) * [rotation * scale * skew] * T(-originX, -originY).
func appendProps(m rasterx.Matrix2D, p *Props) rasterx.Matrix2D {
	cos, sin := 1.0, 0.0
	if math.Mod(p.Rotation, 360) != 0 {
		rad := radians(p.Rotation)
		cos, sin = math.Cos(rad), math.Sin(rad)
	}

	a, b := cos*p.ScaleX, sin*p.ScaleX
	c, d := -sin*p.ScaleY, cos*p.ScaleY
	if p.SkewX != 0 || p.SkewY != 0 {
		b1 := math.Tan(radians(p.SkewY))
		c1 := math.Tan(radians(p.SkewX))
		a, b, c, d = a+c1*b, b1*a+b, c+c1*d, b1*c+d
	}

	m = m.Mult(rasterx.Matrix2D{A: a, B: b, C: c, D: d, E: p.X + p.OriginX, F: p.Y + p.OriginY})
	if p.OriginX != 0 || p.OriginY != 0 {
		m = m.Translate(-p.OriginX, -p.OriginY)
	}
	return m
}
