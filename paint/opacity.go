// Package paint resolves opacity, fill and stroke attributes of a node.
package paint

import (
	"math"
	"strings"

	"svgprops/attrs"
)

// Opacity maps opacity attribute to [0,1]. Absent or non-numeric input is
// full opacity, out of range input is clamped. Percentages are accepted.
func Opacity(raw any) float64 {
	if s, ok := raw.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return 1
		}
		if pct, found := strings.CutSuffix(s, "%"); found {
			v, ok := attrs.Float(pct)
			if !ok {
				return 1
			}
			return clamp01(v / 100)
		}
	}
	if raw == nil {
		return 1
	}
	v, ok := attrs.Float(raw)
	if !ok {
		return 1
	}
	return clamp01(v)
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
