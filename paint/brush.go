package paint

import (
	"errors"
	"fmt"
	"image/color"
	"regexp"
	"strings"

	"github.com/srwiley/oksvg"
	"go.uber.org/zap"

	"svgprops/attrs"
)

// BrushKind tells renderer how to paint.
type BrushKind int

const (
	BrushColor         BrushKind = iota // solid color
	BrushRef                            // paint server (gradient, pattern) referenced by id
	BrushCurrentColor                   // inherited "color"
	BrushContextFill                    // marker/use context fill
	BrushContextStroke                  // marker/use context stroke
)

func (k BrushKind) String() string {
	switch k {
	case BrushColor:
		return "color"
	case BrushRef:
		return "ref"
	case BrushCurrentColor:
		return "currentColor"
	case BrushContextFill:
		return "context-fill"
	case BrushContextStroke:
		return "context-stroke"
	}
	return fmt.Sprintf("BrushKind(%d)", int(k))
}

// Brush is resolved paint. Color is packed as 0xAARRGGBB.
type Brush struct {
	Kind  BrushKind `json:"type" yaml:"type" ion:"type"`
	Color uint32    `json:"color,omitempty" yaml:"color,omitempty" ion:"color,omitempty"`
	Ref   string    `json:"brushRef,omitempty" yaml:"brushRef,omitempty" ion:"brushRef,omitempty"`
}

// Black is default fill.
var Black = Brush{Kind: BrushColor, Color: 0xff000000}

var urlIDPattern = regexp.MustCompile(`^url\(\s*['"]?#([^'")]+)['"]?\s*\)$`)

// ResolveBrush converts paint attribute value. Returns nil for absent paint,
// "none" and values which are neither color nor reference, the latter are
// reported.
func ResolveBrush(raw any, log *zap.Logger) *Brush {
	if !attrs.Truthy(raw) {
		return nil
	}

	switch x := raw.(type) {
	case string:
		s := strings.TrimSpace(x)
		switch s {
		case "", "none":
			return nil
		case "currentColor":
			return &Brush{Kind: BrushCurrentColor}
		case "context-fill":
			return &Brush{Kind: BrushContextFill}
		case "context-stroke":
			return &Brush{Kind: BrushContextStroke}
		}
		if m := urlIDPattern.FindStringSubmatch(s); m != nil {
			return &Brush{Kind: BrushRef, Ref: m[1]}
		}
		if c, err := parseColor(s); err == nil && c != nil {
			return &Brush{Kind: BrushColor, Color: packColor(c)}
		}
	case color.Color:
		return &Brush{Kind: BrushColor, Color: packColor(x)}
	default:
		// already packed color
		if f, ok := attrs.Float(raw); ok && f >= 0 && f <= 0xffffffff {
			return &Brush{Kind: BrushColor, Color: uint32(f)}
		}
	}

	log.Warn("Invalid paint, expected a color or a brush reference like \"url(#id)\"", zap.String("value", attrs.String(raw)))
	return nil
}

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// parseColor wraps oksvg color parser which maps any "url..." to black and
// indexes malformed hex and rgb() values without checking.
func parseColor(s string) (c color.Color, err error) {
	switch {
	case strings.HasPrefix(strings.ToLower(s), "url"):
		return nil, errors.New("malformed paint reference")
	case strings.HasPrefix(s, "#") && !hexColorPattern.MatchString(s):
		return nil, errors.New("malformed hex color")
	}
	defer func() {
		if r := recover(); r != nil {
			c, err = nil, fmt.Errorf("malformed color: %v", r)
		}
	}()
	return oksvg.ParseSVGColor(s)
}

func packColor(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}
