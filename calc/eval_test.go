package calc

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-12

func almost(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		in   string
		vars map[string]float64
		want float64
	}{
		{"2+3*5", nil, 17},
		{"(2+3)*5", nil, 25},
		{"2**10", nil, 1024},
		{"2^10", nil, 1024},
		{"2**3**2", nil, 512},
		{"-2**2", nil, -4},
		{"2**-1", nil, 0.5},
		{"7/2", nil, 3.5},
		{"7//2", nil, 3},
		{"-7//2", nil, -4},
		{"7%3", nil, 1},
		{"-7%3", nil, 2},
		{"7%-3", nil, -2},
		{"1<2<3", nil, 1},
		{"5>4>3", nil, 0}, // left-assoc: (5>4)>3, not chained
		{"x==5", map[string]float64{"x": 5}, 1},
		{"x==5", map[string]float64{"x": 4}, 0},
		{"x!=5", map[string]float64{"x": 4}, 1},
		{"2+2==4", nil, 1},
		{"3>=3", nil, 1},
		{"a*2", map[string]float64{"a": 5}, 10},
		{"a+b*c", map[string]float64{"a": 1, "b": 2, "c": 3}, 7},
		{"pi", nil, math.Pi},
		{"tau/2", nil, math.Pi},
		{"e", map[string]float64{"e": 10}, 10}, // variable shadows the constant
		{"- -3", nil, 3},
		{"+5", nil, 5},
		{"2 + 3 * 5", nil, 17}, // whitespace collapsed by the sanitizer
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Evaluate(tc.in, tc.vars)
			if err != nil {
				t.Fatalf("Evaluate(%q): %v", tc.in, err)
			}
			if !almost(got, tc.want) {
				t.Errorf("Evaluate(%q) = %g, want %g", tc.in, got, tc.want)
			}
		})
	}
}

func TestEvaluateSpecials(t *testing.T) {
	if v, err := Evaluate("inf", nil); err != nil || !math.IsInf(v, 1) {
		t.Errorf("Evaluate(inf) = %g, %v", v, err)
	}
	if v, err := Evaluate("-inf", nil); err != nil || !math.IsInf(v, -1) {
		t.Errorf("Evaluate(-inf) = %g, %v", v, err)
	}
	if v, err := Evaluate("nan", nil); err != nil || !math.IsNaN(v) {
		t.Errorf("Evaluate(nan) = %g, %v", v, err)
	}
	// NaN compares unequal to everything, including itself.
	if v, err := Evaluate("nan==nan", nil); err != nil || v != 0 {
		t.Errorf("Evaluate(nan==nan) = %g, %v", v, err)
	}
}

func TestEvaluateErrors(t *testing.T) {
	t.Run("validation before arithmetic", func(t *testing.T) {
		var ve *ValidationError
		for _, in := range []string{"", "2+3;import", "print('x')", "open(1)'"} {
			_, err := Evaluate(in, nil)
			if !errors.As(err, &ve) {
				t.Errorf("Evaluate(%q) = %v, want ValidationError", in, err)
			}
		}
	})

	t.Run("undefined name", func(t *testing.T) {
		_, err := Evaluate("foo+1", nil)
		var ne *NameError
		if !errors.As(err, &ne) {
			t.Fatalf("err = %v, want NameError", err)
		}
		if ne.Name != "foo" {
			t.Errorf("NameError.Name = %q, want %q", ne.Name, "foo")
		}
	})

	t.Run("division by zero", func(t *testing.T) {
		var de *DomainError
		for _, in := range []string{"1/0", "1//0", "1%0", "0**-1"} {
			_, err := Evaluate(in, nil)
			if !errors.As(err, &de) {
				t.Errorf("Evaluate(%q) = %v, want DomainError", in, err)
			}
		}
	})

	t.Run("wrong arity", func(t *testing.T) {
		var ce *CallError
		_, err := Evaluate("sqrt(1,2)", nil)
		if !errors.As(err, &ce) {
			t.Fatalf("err = %v, want CallError", err)
		}
		if ce.Func != "sqrt" || ce.Args != 2 {
			t.Errorf("CallError = %+v, want sqrt/2", ce)
		}
	})

	t.Run("constant called", func(t *testing.T) {
		var ce *CallError
		_, err := Evaluate("pi(2)", nil)
		if !errors.As(err, &ce) || !ce.Value {
			t.Errorf("err = %v, want CallError with Value", err)
		}
	})

	t.Run("function as value", func(t *testing.T) {
		var ce *CallError
		_, err := Evaluate("sqrt+1", nil)
		if !errors.As(err, &ce) || ce.Args != -1 {
			t.Errorf("err = %v, want CallError with Args=-1", err)
		}
	})

	t.Run("shadowed function called", func(t *testing.T) {
		var ce *CallError
		_, err := Evaluate("sin(1)", map[string]float64{"sin": 2})
		if !errors.As(err, &ce) || !ce.Value {
			t.Errorf("err = %v, want CallError with Value", err)
		}
	})

	t.Run("shadowed function as value", func(t *testing.T) {
		v, err := Evaluate("sin*2", map[string]float64{"sin": 3})
		if err != nil || v != 6 {
			t.Errorf("Evaluate(sin*2) = %g, %v, want 6", v, err)
		}
	})
}

func TestEvaluateIdempotent(t *testing.T) {
	vars := map[string]float64{"a": 2, "b": 3}
	first, err := Evaluate("a**b+sin(a)", vars)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := Evaluate("a**b+sin(a)", vars)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first != second {
		t.Errorf("results differ: %g vs %g", first, second)
	}
	if vars["a"] != 2 || vars["b"] != 3 || len(vars) != 2 {
		t.Errorf("variable table mutated: %v", vars)
	}
}

func TestExprReuse(t *testing.T) {
	ex, err := Parse("x*x")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for x, want := range map[float64]float64{2: 4, 3: 9, -4: 16} {
		got, err := ex.Eval(map[string]float64{"x": x})
		if err != nil {
			t.Fatalf("Eval(x=%g): %v", x, err)
		}
		if got != want {
			t.Errorf("Eval(x=%g) = %g, want %g", x, got, want)
		}
	}
}
