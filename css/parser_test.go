package css_test

import (
	"testing"

	"go.uber.org/zap"

	"svgprops/css"
)

func TestParser_ElementSelector(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`path { stroke-width: 1.5px; }`))
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
	}

	rule := sheet.Rules[0]
	if rule.Selector.Element != "path" {
		t.Errorf("expected element 'path', got '%s'", rule.Selector.Element)
	}
	if rule.Selector.Class != "" || rule.Selector.ID != "" {
		t.Errorf("expected no class or id, got '%s' '%s'", rule.Selector.Class, rule.Selector.ID)
	}

	val, ok := rule.GetProperty("stroke-width")
	if !ok {
		t.Fatal("expected stroke-width property")
	}
	if val.Value != 1.5 || val.Unit != "px" {
		t.Errorf("expected 1.5px, got %v%s", val.Value, val.Unit)
	}
	if val.Raw != "1.5px" {
		t.Errorf("expected raw '1.5px', got '%s'", val.Raw)
	}
}

func TestParser_ClassSelector(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`.outline { fill-rule: evenodd; }`))
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
	}

	rule := sheet.Rules[0]
	if rule.Selector.Element != "" {
		t.Errorf("expected no element, got '%s'", rule.Selector.Element)
	}
	if rule.Selector.Class != "outline" {
		t.Errorf("expected class 'outline', got '%s'", rule.Selector.Class)
	}

	val, _ := rule.GetProperty("fill-rule")
	if val.Keyword != "evenodd" {
		t.Errorf("expected keyword 'evenodd', got '%s'", val.Keyword)
	}
}

func TestParser_CombinedSelector(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`rect.bg { fill: #eee; }`))
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
	}

	rule := sheet.Rules[0]
	if rule.Selector.Element != "rect" {
		t.Errorf("expected element 'rect', got '%s'", rule.Selector.Element)
	}
	if rule.Selector.Class != "bg" {
		t.Errorf("expected class 'bg', got '%s'", rule.Selector.Class)
	}
	if val, _ := rule.GetProperty("fill"); val.Raw != "#eee" {
		t.Errorf("expected fill '#eee', got '%s'", val.Raw)
	}
}

func TestParser_IDSelector(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`#logo { opacity: 0.5; }`))
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
	}
	if sheet.Rules[0].Selector.ID != "logo" {
		t.Errorf("expected id 'logo', got '%s'", sheet.Rules[0].Selector.ID)
	}
}

func TestParser_GroupedSelectors(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`circle, ellipse, .round { stroke-linecap: round; }`))
	if len(sheet.Rules) != 3 {
		t.Fatalf("expected 3 rules for grouped selector, got %d", len(sheet.Rules))
	}

	expected := []string{"circle", "ellipse", ".round"}
	for i, rule := range sheet.Rules {
		if rule.Selector.Raw != expected[i] {
			t.Errorf("rule %d: expected selector '%s', got '%s'", i, expected[i], rule.Selector.Raw)
		}
	}
}

func TestParser_UnsupportedSelectors(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	tests := []string{
		`g > path { fill: red; }`,
		`path:hover { fill: red; }`,
		`path[fill] { fill: red; }`,
		`path.a.b { fill: red; }`,
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			sheet := p.Parse([]byte(input))
			if len(sheet.Rules) != 0 {
				t.Errorf("expected no rules, got %d", len(sheet.Rules))
			}
			if len(sheet.Warnings) == 0 {
				t.Error("expected a warning for unsupported selector")
			}
		})
	}
}

func TestParser_AtRulesSkipped(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	input := []byte(`
@media (max-width: 100px) {
	path { fill: blue; }
}
@font-face { font-family: "x"; src: url(x.woff); }
rect { fill: green; }
`)
	sheet := p.Parse(input, "test")

	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
	}
	if sheet.Rules[0].Selector.Element != "rect" {
		t.Errorf("expected rule for 'rect', got '%s'", sheet.Rules[0].Selector.Raw)
	}
	if len(sheet.Warnings) != 2 {
		t.Errorf("expected 2 warnings, got %d: %v", len(sheet.Warnings), sheet.Warnings)
	}
}

func TestParser_NumericValues(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	tests := []struct {
		css     string
		prop    string
		value   float64
		unit    string
		keyword string
	}{
		{`path { stroke-width: 1.2em; }`, "stroke-width", 1.2, "em", ""},
		{`path { stroke-width: 50%; }`, "stroke-width", 50, "%", ""},
		{`path { stroke-width: 12px; }`, "stroke-width", 12, "px", ""},
		{`path { opacity: 0.5; }`, "opacity", 0.5, "", ""},
		{`path { stroke-dashoffset: -3; }`, "stroke-dashoffset", -3, "", ""},
		{`path { stroke-linejoin: bevel; }`, "stroke-linejoin", 0, "", "bevel"},
		{`path { fill: none !important; }`, "fill", 0, "", "none"},
	}

	for _, tt := range tests {
		t.Run(tt.css, func(t *testing.T) {
			sheet := p.Parse([]byte(tt.css))
			if len(sheet.Rules) != 1 {
				t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
			}

			val, ok := sheet.Rules[0].GetProperty(tt.prop)
			if !ok {
				t.Fatalf("expected property %s", tt.prop)
			}

			if tt.unit != "" || tt.value != 0 {
				if val.Value != tt.value {
					t.Errorf("expected value %v, got %v", tt.value, val.Value)
				}
				if val.Unit != tt.unit {
					t.Errorf("expected unit '%s', got '%s'", tt.unit, val.Unit)
				}
			}
			if tt.keyword != "" && val.Keyword != tt.keyword {
				t.Errorf("expected keyword '%s', got '%s'", tt.keyword, val.Keyword)
			}
		})
	}
}

func TestParser_ParseInline(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	props := p.ParseInline(`fill: red; Stroke-Width: 2px; fill: blue`)
	if len(props) != 2 {
		t.Fatalf("expected 2 properties, got %d: %v", len(props), props)
	}
	if props["fill"].Raw != "blue" {
		t.Errorf("expected later fill to win, got '%s'", props["fill"].Raw)
	}
	if v := props["stroke-width"]; v.Value != 2 || v.Unit != "px" {
		t.Errorf("expected 2px, got %v%s", v.Value, v.Unit)
	}

	if empty := p.ParseInline("   "); len(empty) != 0 {
		t.Errorf("expected no properties, got %v", empty)
	}
}

func TestParser_SourceOrderPreserved(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`
path { fill: red; }
.a { fill: green; }
path.a { fill: blue; }
#x { fill: black; }
`))

	matches := sheet.Match("path", "x", []string{"a", "b"})
	want := []string{"path", ".a", "path.a", "#x"}
	if len(matches) != len(want) {
		t.Fatalf("expected %d matches, got %d", len(want), len(matches))
	}
	for i, r := range matches {
		if r.Selector.Raw != want[i] {
			t.Errorf("match %d: expected '%s', got '%s'", i, want[i], r.Selector.Raw)
		}
	}

	if got := sheet.Match("rect", "", nil); len(got) != 0 {
		t.Errorf("expected no matches for rect, got %d", len(got))
	}
}

func TestStylesheet_Append(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`path { fill: red; }`))
	sheet.Append(p.Parse([]byte(`path { fill: blue; }`)))
	sheet.Append(nil)

	rules := sheet.RulesBySelector("path")
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if v, _ := rules[1].GetProperty("fill"); v.Keyword != "blue" {
		t.Errorf("expected appended rule last, got '%s'", v.Keyword)
	}
}

func TestValue_IsNumeric(t *testing.T) {
	tests := []struct {
		val  css.Value
		want bool
	}{
		{css.Value{Raw: "0"}, true},
		{css.Value{Raw: "2px", Value: 2, Unit: "px"}, true},
		{css.Value{Raw: "1.5", Value: 1.5}, true},
		{css.Value{Raw: "round", Keyword: "round"}, false},
	}
	for _, tt := range tests {
		if got := tt.val.IsNumeric(); got != tt.want {
			t.Errorf("IsNumeric(%q) = %v, want %v", tt.val.Raw, got, tt.want)
		}
	}
}

func TestValue_IsKeyword(t *testing.T) {
	if !(css.Value{Keyword: "none"}).IsKeyword() {
		t.Error("expected 'none' to be keyword")
	}
	if (css.Value{Value: 1, Unit: "px"}).IsKeyword() {
		t.Error("expected 1px not to be keyword")
	}
}

func TestCamelCase(t *testing.T) {
	tests := map[string]string{
		"fill":              "fill",
		"stroke-width":      "strokeWidth",
		"stroke-dash-array": "strokeDashArray",
		"-webkit-mask":      "webkitMask",
		"--custom-prop":     "--custom-prop",
	}
	for in, want := range tests {
		if got := css.CamelCase(in); got != want {
			t.Errorf("CamelCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		in   string
		val  float64
		unit string
	}{
		{"10", 10, ""},
		{"1.5PX", 1.5, "px"},
		{"-2em", -2, "em"},
		{"1e2px", 100, "px"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		v, u := css.ParseDimension(tt.in)
		if v != tt.val || u != tt.unit {
			t.Errorf("ParseDimension(%q) = %v %q, want %v %q", tt.in, v, u, tt.val, tt.unit)
		}
	}
}
