package calc

import (
	"math"
	"slices"
)

// Func is a builtin function over float64 values. The builtin table is
// immutable after process start; evaluation never adds to it.
type Func struct {
	// min and max bound the accepted argument count. A negative max
	// means variadic.
	min, max int
	// call evaluates the function. len(args) satisfies canCall.
	call func(args []float64) (float64, error)
}

func (f *Func) canCall(n int) bool {
	return n >= f.min && (f.max < 0 || n <= f.max)
}

// builtinConsts are the named constants of the builtin table. A caller
// variable of the same name shadows the constant for that evaluation.
var builtinConsts = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"tau": 2 * math.Pi,
	"inf": math.Inf(1),
	"nan": math.NaN(),
}

// builtinFuncs is the function half of the builtin table.
var builtinFuncs = map[string]*Func{
	"abs":   monadic(math.Abs),
	"round": {1, 2, roundFn},
	"min":   {2, -1, reduceFn(math.Min)},
	"max":   {2, -1, reduceFn(math.Max)},
	"pow": {2, 2, func(args []float64) (float64, error) {
		return power("pow", args[0], args[1])
	}},

	"sqrt": domainMonadic("sqrt", func(x float64) bool { return x >= 0 }, math.Sqrt),
	"exp":  monadic(math.Exp),
	"log":  {1, 2, logFn},
	"log10": domainMonadic("log10",
		func(x float64) bool { return x > 0 }, math.Log10),
	"log2": domainMonadic("log2",
		func(x float64) bool { return x > 0 }, math.Log2),
	"factorial": {1, 1, factorialFn},

	"sin": monadic(math.Sin),
	"cos": monadic(math.Cos),
	"tan": monadic(math.Tan),
	"asin": domainMonadic("asin",
		func(x float64) bool { return x >= -1 && x <= 1 }, math.Asin),
	"acos": domainMonadic("acos",
		func(x float64) bool { return x >= -1 && x <= 1 }, math.Acos),
	"atan": monadic(math.Atan),
	"atan2": {2, 2, func(args []float64) (float64, error) {
		return math.Atan2(args[0], args[1]), nil
	}},
	"sinh": monadic(math.Sinh),
	"cosh": monadic(math.Cosh),
	"tanh": monadic(math.Tanh),
	"asinh": monadic(math.Asinh),
	"acosh": domainMonadic("acosh",
		func(x float64) bool { return x >= 1 }, math.Acosh),
	"atanh": domainMonadic("atanh",
		func(x float64) bool { return x > -1 && x < 1 }, math.Atanh),

	"degrees": monadic(func(x float64) float64 { return x * 180 / math.Pi }),
	"radians": monadic(func(x float64) float64 { return x * math.Pi / 180 }),

	"ceil":  monadic(math.Ceil),
	"floor": monadic(math.Floor),
	"trunc": monadic(math.Trunc),
	"gcd":   {2, 2, gcdFn},
	"lcm":   {2, 2, lcmFn},
}

// BuiltinNames returns the sorted names of every builtin function and
// constant, for callers that present completions or help.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinFuncs)+len(builtinConsts))
	for k := range builtinFuncs {
		names = append(names, k)
	}
	for k := range builtinConsts {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// Arity reports the accepted argument count range of a builtin
// function. A negative max means variadic. ok is false when name is
// not a builtin function.
func Arity(name string) (min, max int, ok bool) {
	f, ok := builtinFuncs[name]
	if !ok {
		return 0, 0, false
	}

	return f.min, f.max, true
}

// IsBuiltinFunc reports whether name is a builtin function.
func IsBuiltinFunc(name string) bool {
	_, ok := builtinFuncs[name]
	return ok
}

// IsBuiltinConst reports whether name is a builtin constant.
func IsBuiltinConst(name string) bool {
	_, ok := builtinConsts[name]
	return ok
}

// monadic wraps a total function of one variable.
func monadic(f func(float64) float64) *Func {
	return &Func{1, 1, func(args []float64) (float64, error) {
		return f(args[0]), nil
	}}
}

// domainMonadic wraps a function of one variable defined only where ok
// reports true.
func domainMonadic(name string, ok func(float64) bool, f func(float64) float64) *Func {
	return &Func{1, 1, func(args []float64) (float64, error) {
		if !ok(args[0]) {
			return 0, &DomainError{Func: name, X: args[0]}
		}
		return f(args[0]), nil
	}}
}

// reduceFn folds a binary function over two or more arguments.
func reduceFn(f func(a, b float64) float64) func([]float64) (float64, error) {
	return func(args []float64) (float64, error) {
		acc := args[0]
		for _, v := range args[1:] {
			acc = f(acc, v)
		}
		return acc, nil
	}
}

// roundFn rounds half to even. With a second argument it rounds to
// that many decimal digits; the digit count must be integral.
func roundFn(args []float64) (float64, error) {
	if len(args) == 1 {
		return math.RoundToEven(args[0]), nil
	}
	n := args[1]
	if n != math.Trunc(n) {
		return 0, &DomainError{Func: "round", X: n, Reason: "digit count must be an integer"}
	}
	shift := math.Pow(10, n)
	return math.RoundToEven(args[0]*shift) / shift, nil
}

// logFn is the natural logarithm, or the logarithm in the given base.
func logFn(args []float64) (float64, error) {
	x := args[0]
	if x <= 0 {
		return 0, &DomainError{Func: "log", X: x}
	}
	if len(args) == 1 {
		return math.Log(x), nil
	}
	base := args[1]
	if base <= 0 || base == 1 {
		return 0, &DomainError{Func: "log", X: base, Reason: "invalid base"}
	}
	return math.Log(x) / math.Log(base), nil
}

// factorialFn requires a non-negative integral argument. The result may
// overflow to +Inf, which is a representable value, not an error.
func factorialFn(args []float64) (float64, error) {
	x := args[0]
	if x < 0 || x != math.Trunc(x) {
		return 0, &DomainError{Func: "factorial", X: x, Reason: "requires a non-negative integer"}
	}
	r := 1.0
	for i := 2.0; i <= x; i++ {
		r *= i
	}
	return r, nil
}

// asInt converts an integral float64 argument to int64.
func asInt(name string, x float64) (int64, error) {
	if x != math.Trunc(x) || math.Abs(x) > math.MaxInt64 {
		return 0, &DomainError{Func: name, X: x, Reason: "requires an integer"}
	}
	return int64(x), nil
}

func gcdFn(args []float64) (float64, error) {
	a, err := asInt("gcd", args[0])
	if err != nil {
		return 0, err
	}
	b, err := asInt("gcd", args[1])
	if err != nil {
		return 0, err
	}
	return float64(gcd(a, b)), nil
}

// lcmFn is abs(a*b)/gcd(a,b), with lcm(0,n) = lcm(n,0) = 0 by
// definition rather than a division fault.
func lcmFn(args []float64) (float64, error) {
	a, err := asInt("lcm", args[0])
	if err != nil {
		return 0, err
	}
	b, err := asInt("lcm", args[1])
	if err != nil {
		return 0, err
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	g := gcd(a, b)
	return math.Abs(float64(a/g) * float64(b)), nil
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// power implements ** and pow with shared domain rules: zero cannot be
// raised to a negative power, and a negative base requires an integral
// exponent (non-integral powers of negatives are complex).
func power(name string, base, exp float64) (float64, error) {
	if base == 0 && exp < 0 {
		return 0, &DomainError{Func: name, X: exp, Reason: "zero to a negative power"}
	}
	if base < 0 && exp != math.Trunc(exp) && !math.IsInf(exp, 0) {
		return 0, &DomainError{Func: name, X: base, Reason: "negative base with fractional exponent"}
	}
	return math.Pow(base, exp), nil
}
