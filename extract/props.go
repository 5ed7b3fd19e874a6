package extract

import (
	"svgprops/paint"
	"svgprops/transform"
)

// Props is render ready record of a single drawable node. Optional fields
// are omitted from encoded output when unset. Callbacks are kept for the
// caller but never encoded.
type Props struct {
	Name      string           `json:"name,omitempty" yaml:"name,omitempty" ion:"name,omitempty"`
	Matrix    transform.Matrix `json:"matrix" yaml:"matrix,flow" ion:"matrix"`
	Transform *transform.Props `json:"transform,omitempty" yaml:"transform,omitempty" ion:"transform,omitempty"`
	Opacity   float64          `json:"opacity" yaml:"opacity" ion:"opacity"`
	PropList  []string         `json:"propList" yaml:"propList,flow" ion:"propList"`

	Fill        *paint.Brush `json:"fill,omitempty" yaml:"fill,omitempty" ion:"fill,omitempty"`
	FillRule    int          `json:"fillRule" yaml:"fillRule" ion:"fillRule"`
	FillOpacity float64      `json:"fillOpacity" yaml:"fillOpacity" ion:"fillOpacity"`

	Stroke           *paint.Brush   `json:"stroke,omitempty" yaml:"stroke,omitempty" ion:"stroke,omitempty"`
	StrokeOpacity    float64        `json:"strokeOpacity" yaml:"strokeOpacity" ion:"strokeOpacity"`
	StrokeWidth      paint.Length   `json:"strokeWidth" yaml:"strokeWidth" ion:"strokeWidth"`
	StrokeLinecap    int            `json:"strokeLinecap" yaml:"strokeLinecap" ion:"strokeLinecap"`
	StrokeLinejoin   int            `json:"strokeLinejoin" yaml:"strokeLinejoin" ion:"strokeLinejoin"`
	StrokeDasharray  []paint.Length `json:"strokeDasharray,omitempty" yaml:"strokeDasharray,omitempty" ion:"strokeDasharray,omitempty"`
	StrokeDashoffset *float64       `json:"strokeDashoffset,omitempty" yaml:"strokeDashoffset,omitempty" ion:"strokeDashoffset,omitempty"`
	StrokeMiterlimit float64        `json:"strokeMiterlimit" yaml:"strokeMiterlimit" ion:"strokeMiterlimit"`
	VectorEffect     int            `json:"vectorEffect" yaml:"vectorEffect" ion:"vectorEffect"`

	Responsible   bool           `json:"responsible,omitempty" yaml:"responsible,omitempty" ion:"responsible,omitempty"`
	PointerEvents string         `json:"pointerEvents,omitempty" yaml:"pointerEvents,omitempty" ion:"pointerEvents,omitempty"`
	Handlers      map[string]any `json:"-" yaml:"-" ion:"-"`
	OnLayout      any            `json:"-" yaml:"-" ion:"-"`

	Mask        string `json:"mask,omitempty" yaml:"mask,omitempty" ion:"mask,omitempty"`
	ClipPath    string `json:"clipPath,omitempty" yaml:"clipPath,omitempty" ion:"clipPath,omitempty"`
	ClipRule    *int   `json:"clipRule,omitempty" yaml:"clipRule,omitempty" ion:"clipRule,omitempty"`
	MarkerStart string `json:"markerStart,omitempty" yaml:"markerStart,omitempty" ion:"markerStart,omitempty"`
	MarkerMid   string `json:"markerMid,omitempty" yaml:"markerMid,omitempty" ion:"markerMid,omitempty"`
	MarkerEnd   string `json:"markerEnd,omitempty" yaml:"markerEnd,omitempty" ion:"markerEnd,omitempty"`
}

func (p *Props) setFill(f paint.Fill) {
	p.Fill = f.Fill
	p.FillRule = f.FillRule
	p.FillOpacity = f.FillOpacity
}

func (p *Props) setStroke(s paint.Stroke) {
	p.Stroke = s.Stroke
	p.StrokeOpacity = s.StrokeOpacity
	p.StrokeWidth = s.StrokeWidth
	p.StrokeLinecap = s.StrokeLinecap
	p.StrokeLinejoin = s.StrokeLinejoin
	p.StrokeDasharray = s.StrokeDasharray
	p.StrokeDashoffset = s.StrokeDashoffset
	p.StrokeMiterlimit = s.StrokeMiterlimit
	p.VectorEffect = s.VectorEffect
}
