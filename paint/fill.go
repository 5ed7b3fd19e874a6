package paint

import (
	"go.uber.org/zap"

	"svgprops/attrs"
)

// Fill rule codes.
const (
	RuleEvenOdd = 0
	RuleNonZero = 1
)

// FillNames lists attributes recorded in property list when set explicitly.
var FillNames = []string{"fill", "fillOpacity", "fillRule"}

// Fill is resolved fill part of the node properties.
type Fill struct {
	Fill        *Brush
	FillRule    int
	FillOpacity float64
}

// RuleCode maps fill or clip rule name to its code: only "evenodd" is
// recognized, everything else means nonzero.
func RuleCode(rule any) int {
	if s, ok := rule.(string); ok && s == "evenodd" {
		return RuleEvenOdd
	}
	return RuleNonZero
}

// ResolveFill resolves fill attributes and returns names of fill attributes
// present in the bag.
func ResolveFill(b attrs.Bag, log *zap.Logger) (Fill, []string) {
	var touched []string
	for _, name := range FillNames {
		if b.Has(name) {
			touched = append(touched, name)
		}
	}

	f := Fill{
		FillRule:    RuleCode(b.Get("fillRule")),
		FillOpacity: Opacity(b.Get("fillOpacity")),
	}

	raw := b.Get("fill")
	if _, isString := raw.(string); !attrs.Truthy(raw) && !isString {
		black := Black
		f.Fill = &black
	} else {
		f.Fill = ResolveBrush(raw, log)
	}
	return f, touched
}
