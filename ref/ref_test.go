package ref

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		raw    any
		want   string
		wantOK bool
	}{
		{"#abc", "abc", true},
		{"url(#abc)", "abc", true},
		{"url('#abc')", "abc", true},
		{`url("#a-b_c.1")`, "a-b_c.1", true},
		{"url( #abc )", "abc", true},
		{"not-a-ref", "", false},
		{"#bad mask", "", false},
		{"#", "", false},
		{"", "", false},
		{42, "", false},
		{nil, "", false},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.raw)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Parse(%#v) = %q, %v, want %q, %v", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}
