package attrs

import (
	"maps"

	"go.uber.org/zap"

	"svgprops/css"
)

// StyleKind discriminates StyleValue forms.
type StyleKind uint8

const (
	StyleSingle   StyleKind = iota + 1 // one style mapping
	StyleSequence                      // ordered list of mappings, later entries win
)

// StyleValue is either a single style mapping or an ordered sequence of them.
// The form is decided once, where attributes enter the program (see FromMap),
// merging never has to guess.
type StyleValue struct {
	Kind     StyleKind
	Single   Bag
	Sequence []Bag
}

// Single makes style value from one mapping.
func Single(b Bag) StyleValue {
	return StyleValue{Kind: StyleSingle, Single: b}
}

// Sequence makes style value from ordered mappings.
func Sequence(bags ...Bag) StyleValue {
	return StyleValue{Kind: StyleSequence, Sequence: bags}
}

// IsZero reports whether style value carries nothing to merge.
func (s StyleValue) IsZero() bool {
	switch s.Kind {
	case StyleSingle:
		return s.Single == nil
	case StyleSequence:
		return len(s.Sequence) == 0
	}
	return true
}

// Flatten collapses style value into a single fresh mapping, applying
// sequence entries left to right.
func (s StyleValue) Flatten() Bag {
	out := make(Bag)
	switch s.Kind {
	case StyleSingle:
		maps.Copy(out, s.Single)
	case StyleSequence:
		for _, b := range s.Sequence {
			maps.Copy(out, b)
		}
	}
	return out
}

// Merge flattens style of the bag and lays explicit attributes over it:
// explicit attributes always win, style only supplies defaults. When bag has
// no style the very same bag is returned. The style attribute itself is not
// carried into the result.
func Merge(b Bag) Bag {
	raw, ok := b[StyleKey]
	if !ok || !Truthy(raw) {
		return b
	}

	var style StyleValue
	switch x := raw.(type) {
	case StyleValue:
		style = x
	case *StyleValue:
		if x == nil {
			return b
		}
		style = *x
	default:
		// not a style value - nothing to merge, keep as is
		return b
	}
	if style.IsZero() {
		return b
	}

	out := style.Flatten()
	for k, v := range b {
		if k == StyleKey {
			continue
		}
		out[k] = v
	}
	return out
}

var inlineParser = css.NewParser(zap.NewNop())

// ParseInlineStyle turns style attribute text ("fill: red; stroke-width: 2")
// into a mapping keyed by attribute names (fill, strokeWidth). Values are kept
// as raw text, resolvers convert them.
func ParseInlineStyle(style string) Bag {
	props := inlineParser.ParseInline(style)
	out := make(Bag, len(props))
	for name, val := range props {
		out[css.CamelCase(name)] = val.Raw
	}
	return out
}

// FromDeclarations converts parsed CSS properties into attribute mapping.
func FromDeclarations(props map[string]css.Value) Bag {
	out := make(Bag, len(props))
	for name, val := range props {
		out[css.CamelCase(name)] = val.Raw
	}
	return out
}
