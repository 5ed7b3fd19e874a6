// Package extract turns attribute bag of a drawable node into a render ready
// property record.
package extract

import (
	"go.uber.org/zap"

	"svgprops/attrs"
	"svgprops/paint"
	"svgprops/ref"
	"svgprops/responder"
	"svgprops/transform"
)

// Extractor keeps nothing but the diagnostics sink and may be shared.
type Extractor struct {
	log *zap.Logger
}

// New returns extractor reporting malformed attributes to log.
func New(log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{log: log.Named("extract")}
}

// ExtractStyled merges style of the bag and extracts properties from the
// result.
func (e *Extractor) ExtractStyled(b attrs.Bag, target responder.Target) *Props {
	return e.Extract(attrs.Merge(b), target)
}

// Extract builds fresh property record. It never fails: malformed values
// are either replaced with defaults or dropped, clip path and mask
// references which cannot be parsed are reported.
func (e *Extractor) Extract(b attrs.Bag, target responder.Target) *Props {
	tp := transform.FromBag(b, e.log)
	p := &Props{
		Matrix:    transform.Resolve(tp, b.Get("transform"), e.log),
		Transform: tp,
		Opacity:   paint.Opacity(b.Get("opacity")),
		PropList:  []string{},
	}

	r := responder.Resolve(b, target, e.log)
	p.Responsible, p.PointerEvents, p.Handlers = r.Responsible, r.PointerEvents, r.Handlers

	fill, touched := paint.ResolveFill(b, e.log)
	p.setFill(fill)
	p.PropList = append(p.PropList, touched...)

	stroke, touched := paint.ResolveStroke(b, e.log)
	p.setStroke(stroke)
	p.PropList = append(p.PropList, touched...)

	if cb := b.Get("onLayout"); attrs.Truthy(cb) {
		p.OnLayout = cb
	}

	p.MarkerStart = marker(b, "markerStart")
	p.MarkerMid = marker(b, "markerMid")
	p.MarkerEnd = marker(b, "markerEnd")

	if id := b.Get("id"); attrs.Truthy(id) {
		p.Name = attrs.String(id)
	}

	if clip := b.Get("clipPath"); attrs.Truthy(clip) {
		if id, ok := e.reference("clipPath", clip); ok {
			p.ClipPath = id
			if rule := b.Get("clipRule"); attrs.Truthy(rule) {
				code := paint.RuleCode(rule)
				p.ClipRule = &code
			}
		}
	}

	if mask := b.Get("mask"); attrs.Truthy(mask) {
		if id, ok := e.reference("mask", mask); ok {
			p.Mask = id
		}
	}
	return p
}

// marker resolves marker reference falling back to generic "marker"
// attribute when the specific one is not set. Malformed references are
// dropped silently, absent marker is a normal state.
func marker(b attrs.Bag, name string) string {
	raw := b.Fallback(name, "marker")
	if !attrs.Truthy(raw) {
		return ""
	}
	id, _ := ref.Parse(raw)
	return id
}

func (e *Extractor) reference(field string, raw any) (string, bool) {
	id, ok := ref.Parse(raw)
	if !ok {
		e.log.Warn("Invalid `"+field+"` prop, expected a "+field+" like \"#id\"",
			zap.String("field", field), zap.String("value", attrs.String(raw)))
	}
	return id, ok
}
