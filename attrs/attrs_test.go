package attrs

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMerge_NoStyle(t *testing.T) {
	b := Bag{"fill": "red", "x": 1.0}
	got := Merge(b)

	if diff := cmp.Diff(Bag{"fill": "red", "x": 1.0}, got); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
	got["y"] = 2.0
	if _, ok := b["y"]; !ok {
		t.Error("bag without style must be returned as is")
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		bag  Bag
		want Bag
	}{
		{
			name: "single",
			bag:  Bag{"fill": "blue", StyleKey: Single(Bag{"fill": "red", "stroke": "green"})},
			want: Bag{"fill": "blue", "stroke": "green"},
		},
		{
			name: "sequence later wins",
			bag: Bag{"opacity": 0.5, StyleKey: Sequence(
				Bag{"fill": "red", "stroke": "red"},
				Bag{"fill": "green"},
				Bag{"opacity": 1.0, "strokeWidth": 3.0},
			)},
			want: Bag{"fill": "green", "stroke": "red", "strokeWidth": 3.0, "opacity": 0.5},
		},
		{
			name: "pointer",
			bag:  Bag{StyleKey: &StyleValue{Kind: StyleSingle, Single: Bag{"fill": "red"}}},
			want: Bag{"fill": "red"},
		},
		{
			name: "nil pointer",
			bag:  Bag{"fill": "red", StyleKey: (*StyleValue)(nil)},
			want: Bag{"fill": "red", StyleKey: (*StyleValue)(nil)},
		},
		{
			name: "empty sequence",
			bag:  Bag{"fill": "red", StyleKey: Sequence()},
			want: Bag{"fill": "red", StyleKey: Sequence()},
		},
		{
			name: "falsy style",
			bag:  Bag{"fill": "red", StyleKey: nil},
			want: Bag{"fill": "red", StyleKey: nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Merge(tt.bag)); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMerge_DoesNotTouchInput(t *testing.T) {
	first := Bag{"fill": "red"}
	b := Bag{"stroke": "blue", StyleKey: Sequence(first)}

	out := Merge(b)
	out["fill"] = "black"

	if first["fill"] != "red" {
		t.Error("style entry was modified through merged bag")
	}
	if _, ok := b["fill"]; ok {
		t.Error("input bag was modified")
	}
}

func TestFromMap(t *testing.T) {
	b := FromMap(map[string]any{
		"fill":      "red",
		"transform": []any{1.0, 0.0, 0.0, 1.0, 5.0, 5.0},
		"origin":    map[string]any{"x": 1.0},
		"style":     "stroke-width: 2; fill-opacity: .5",
	})

	if _, ok := b["transform"].([]float64); !ok {
		t.Errorf("numeric list decoded as %T, want []float64", b["transform"])
	}
	if _, ok := b["origin"].(Bag); !ok {
		t.Errorf("mapping decoded as %T, want Bag", b["origin"])
	}

	style, ok := b[StyleKey].(StyleValue)
	if !ok || style.Kind != StyleSingle {
		t.Fatalf("style decoded as %#v, want single style", b[StyleKey])
	}
	if diff := cmp.Diff(Bag{"strokeWidth": "2", "fillOpacity": ".5"}, style.Single); diff != "" {
		t.Errorf("inline style mismatch (-want +got):\n%s", diff)
	}
}

func TestFromMap_StyleSequence(t *testing.T) {
	b := FromMap(map[string]any{
		"style": []any{
			map[string]any{"fill": "red"},
			"fill: green",
			42.0,
		},
	})

	style, ok := b[StyleKey].(StyleValue)
	if !ok || style.Kind != StyleSequence {
		t.Fatalf("style decoded as %#v, want sequence", b[StyleKey])
	}
	if len(style.Sequence) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(style.Sequence))
	}
	if got := Merge(b)["fill"]; got != "green" {
		t.Errorf("merged fill = %v, want green", got)
	}
}

func TestList(t *testing.T) {
	bags, skipped := List([]any{
		map[string]any{"id": "a"},
		"junk",
		map[any]any{"id": "b"},
	})
	if len(bags) != 2 {
		t.Fatalf("expected 2 bags, got %d", len(bags))
	}
	if diff := cmp.Diff([]int{1}, skipped); diff != "" {
		t.Errorf("skipped mismatch (-want +got):\n%s", diff)
	}
	if bags[1]["id"] != "b" {
		t.Errorf("second bag id = %v, want b", bags[1]["id"])
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		v    any
		want bool
	}{
		{nil, false},
		{"", false},
		{"0", true},
		{0, false},
		{0.0, false},
		{math.NaN(), false},
		{1, true},
		{false, false},
		{true, true},
		{func() {}, true},
		{Bag{}, true},
		{[]float64{}, true},
	}
	for _, tt := range tests {
		if got := Truthy(tt.v); got != tt.want {
			t.Errorf("Truthy(%#v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		v    any
		want float64
		ok   bool
	}{
		{" 1.5 ", 1.5, true},
		{"", 0, true},
		{"abc", 0, false},
		{int64(3), 3, true},
		{true, 1, true},
		{nil, 0, false},
		{[]float64{1}, 0, false},
	}
	for _, tt := range tests {
		got, ok := Float(tt.v)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Float(%#v) = %v, %v, want %v, %v", tt.v, got, ok, tt.want, tt.ok)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		v    any
		want string
	}{
		{42, "42"},
		{42.0, "42"},
		{1.5, "1.5"},
		{1e21, "1000000000000000000000"},
		{math.Inf(1), "Infinity"},
		{"id", "id"},
		{false, "false"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := String(tt.v); got != tt.want {
			t.Errorf("String(%#v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestFallback(t *testing.T) {
	b := Bag{"marker": "#m", "markerEnd": nil, "markerStart": ""}

	if got := b.Fallback("markerEnd", "marker"); got != "#m" {
		t.Errorf("nil value must fall back, got %v", got)
	}
	if got := b.Fallback("markerMid", "marker"); got != "#m" {
		t.Errorf("absent value must fall back, got %v", got)
	}
	if got := b.Fallback("markerStart", "marker"); got != "" {
		t.Errorf("empty string is set value, got %v", got)
	}
}
