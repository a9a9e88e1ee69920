package calc

import "testing"

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"passthrough", "2+3*5", "2+3*5"},
		{"inner spaces", "2 + 3 * 5", "2+3*5"},
		{"tabs and newlines", "\tsin( pi / 2 )\n", "sin(pi/2)"},
		{"fullwidth brackets", "sin（pi/2）", "sin(pi/2)"},
		{"case preserved", "Abs(X)", "Abs(X)"},
		{"empty", "", ""},
		{"only whitespace", "   \t\n", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Sanitize(tc.in)
			if got != tc.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestIsSafe(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"arithmetic", "2+3*5", true},
		{"call", "sin(pi/2)", true},
		{"comparison", "x==5", true},
		{"assignment", "a=5", true},
		{"shorthand symbols", "2^3&1|0~!", true},
		{"empty", "", false},
		{"semicolon", "2+3;5", false},
		{"quote", "__import__('os')", false},
		{"space", "2 + 3", false},
		{"brace", "{2}", false},
		{"unicode letter", "π", false},
		{"backtick", "`id`", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IsSafe(tc.in)
			if got != tc.want {
				t.Errorf("IsSafe(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
