package calc

import (
	"errors"
	"testing"
)

func TestIsValidIdentifier(t *testing.T) {
	valid := []string{"a", "x1", "_tmp", "Total", "a_b_c", "sin"}
	for _, name := range valid {
		if !IsValidIdentifier(name) {
			t.Errorf("IsValidIdentifier(%q) = false, want true", name)
		}
	}
	invalid := []string{"", "1a", "a-b", "a b", "π", "a.b", "2"}
	for _, name := range invalid {
		if IsValidIdentifier(name) {
			t.Errorf("IsValidIdentifier(%q) = true, want false", name)
		}
	}
}

func TestSplitAssign(t *testing.T) {
	cases := []struct {
		in          string
		name, value string
		ok          bool
	}{
		{"a=5", "a", "5", true},
		{"a = 5", "a", "5", true},
		{"x=2+3*5", "x", "2+3*5", true},
		{"x=y=3", "x", "y=3", true}, // split on the first "="
		{"2+3", "", "", false},
		{"x==5", "", "", false},
		{"x!=5", "", "", false},
		{"x<=5", "", "", false},
		{"x>=5", "", "", false},
		{"x<5", "", "", false},
		{"", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			name, value, ok := SplitAssign(tc.in)
			if name != tc.name || value != tc.value || ok != tc.ok {
				t.Errorf("SplitAssign(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tc.in, name, value, ok, tc.name, tc.value, tc.ok)
			}
		})
	}
}

func TestAssign(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		name, val, ok, err := Assign("a=5", nil)
		if err != nil || !ok {
			t.Fatalf("Assign(a=5) = %v, ok=%v", err, ok)
		}
		if name != "a" || val != 5 {
			t.Errorf("Assign(a=5) = (%q, %g), want (a, 5)", name, val)
		}
	})

	t.Run("value expression uses variables", func(t *testing.T) {
		vars := map[string]float64{"b": 3}
		name, val, ok, err := Assign("a=b*2+sqrt(4)", vars)
		if err != nil || !ok {
			t.Fatalf("Assign = %v, ok=%v", err, ok)
		}
		if name != "a" || val != 8 {
			t.Errorf("Assign = (%q, %g), want (a, 8)", name, val)
		}
		if len(vars) != 1 || vars["b"] != 3 {
			t.Errorf("Assign mutated vars: %v", vars)
		}
	})

	t.Run("not an assignment", func(t *testing.T) {
		_, _, ok, err := Assign("2+3", nil)
		if ok || err != nil {
			t.Errorf("Assign(2+3) = ok=%v, err=%v, want plain expression", ok, err)
		}
	})

	t.Run("comparison is not assignment", func(t *testing.T) {
		_, _, ok, err := Assign("x==5", map[string]float64{"x": 5})
		if ok || err != nil {
			t.Errorf("Assign(x==5) = ok=%v, err=%v, want plain expression", ok, err)
		}
	})

	t.Run("invalid target", func(t *testing.T) {
		var ie *IdentError
		for _, in := range []string{"1a=5", "=5", "a+b=5", "a.b=5"} {
			_, _, ok, err := Assign(in, nil)
			if !ok || !errors.As(err, &ie) {
				t.Errorf("Assign(%q) = ok=%v, err=%v, want IdentError", in, ok, err)
			}
		}
	})

	t.Run("bad value expression", func(t *testing.T) {
		name, _, ok, err := Assign("a=1/0", nil)
		if !ok || name != "a" {
			t.Fatalf("Assign(a=1/0) = ok=%v, name=%q", ok, name)
		}
		var de *DomainError
		if !errors.As(err, &de) {
			t.Errorf("err = %v, want DomainError", err)
		}
	})

	t.Run("shadowing builtin allowed", func(t *testing.T) {
		name, val, ok, err := Assign("e=10", nil)
		if err != nil || !ok || name != "e" || val != 10 {
			t.Errorf("Assign(e=10) = (%q, %g, %v, %v), want shadow binding", name, val, ok, err)
		}
	})
}
