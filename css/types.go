package css

import (
	"slices"
	"strings"
	"unicode"
)

// Value represents a parsed CSS property value.
type Value struct {
	Raw     string  // Original CSS value string (e.g., "1.5px", "red", "url(#clip)")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "px", "%", "em", etc.
	Keyword string  // Keyword if applicable: "evenodd", "round", "none", etc.
}

// IsNumeric returns true if the value has a numeric component.
// This includes explicit zero values like "0" or "0px".
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Value != 0 && v.Keyword == "" {
		return true
	}
	// "0" has neither unit nor non-zero value
	if v.Raw != "" && v.Keyword == "" {
		firstChar := rune(v.Raw[0])
		if unicode.IsDigit(firstChar) || firstChar == '.' || firstChar == '-' || firstChar == '+' {
			return true
		}
	}
	return false
}

// IsKeyword returns true if the value is a keyword (no numeric component).
func (v Value) IsKeyword() bool {
	return v.Keyword != "" && v.Unit == ""
}

// Selector represents a parsed simple CSS selector. Only selectors which can
// be matched against a single element without looking at its ancestors are
// supported: "*", "path", ".cls", "#id", "path.cls" and "path#id".
type Selector struct {
	Raw       string // Original selector string
	Universal bool   // "*"
	Element   string // Element name (e.g., "path", "rect") or empty
	Class     string // Class name without dot or empty
	ID        string // Identifier without hash or empty
}

// IsSimple returns true if this selector can be matched against an element.
func (s Selector) IsSimple() bool {
	return s.Universal || s.Element != "" || s.Class != "" || s.ID != ""
}

// Matches reports whether selector applies to element with given tag, id and
// class list.
func (s Selector) Matches(tag, id string, classes []string) bool {
	if !s.IsSimple() {
		return false
	}
	if s.Element != "" && s.Element != tag {
		return false
	}
	if s.ID != "" && s.ID != id {
		return false
	}
	if s.Class != "" && !slices.Contains(classes, s.Class) {
		return false
	}
	return true
}

// Rule represents a single CSS rule (selector + properties).
type Rule struct {
	Selector   Selector         // Parsed selector
	Properties map[string]Value // Property name -> value
}

// GetProperty returns the value for a property, or empty Value if not found.
func (r Rule) GetProperty(name string) (Value, bool) {
	v, ok := r.Properties[name]
	return v, ok
}

// Stylesheet represents a parsed CSS stylesheet.
type Stylesheet struct {
	Rules    []Rule   // Supported rules in source order
	Warnings []string // Warnings for unsupported features
}

// Append adds rules from other stylesheet after rules already present,
// documents may carry several <style> elements.
func (s *Stylesheet) Append(other *Stylesheet) {
	if other == nil {
		return
	}
	s.Rules = append(s.Rules, other.Rules...)
	s.Warnings = append(s.Warnings, other.Warnings...)
}

// Match returns all rules applicable to the element in source order. Later
// rules are expected to override earlier ones when merged.
func (s *Stylesheet) Match(tag, id string, classes []string) []Rule {
	if s == nil {
		return nil
	}
	var matches []Rule
	for _, rule := range s.Rules {
		if rule.Selector.Matches(tag, id, classes) {
			matches = append(matches, rule)
		}
	}
	return matches
}

// RulesBySelector returns all rules matching the given selector string.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, rule := range s.Rules {
		if rule.Selector.Raw == selector {
			matches = append(matches, rule)
		}
	}
	return matches
}

// CamelCase converts CSS property name into attribute name form used by
// attribute bags: "stroke-width" -> "strokeWidth". Custom properties are
// returned unchanged.
func CamelCase(name string) string {
	if strings.HasPrefix(name, "--") || !strings.Contains(name, "-") {
		return name
	}
	var sb strings.Builder
	sb.Grow(len(name))
	upper := false
	for _, r := range name {
		if r == '-' {
			upper = sb.Len() > 0
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
