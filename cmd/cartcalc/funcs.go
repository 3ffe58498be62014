package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ajroetker/go-cartesian/cartesian"
)

// complexFuncs maps function names to the single-argument Complex methods,
// bound as method expressions.
var complexFuncs = map[string]func(cartesian.Complex) cartesian.Complex{
	"sqrt":  cartesian.Complex.Sqrt,
	"exp":   cartesian.Complex.Exp,
	"log":   cartesian.Complex.Log,
	"log10": cartesian.Complex.Log10,
	"sin":   cartesian.Complex.Sin,
	"cos":   cartesian.Complex.Cos,
	"tan":   cartesian.Complex.Tan,
	"asin":  cartesian.Complex.Asin,
	"acos":  cartesian.Complex.Acos,
	"atan":  cartesian.Complex.Atan,
	"sinh":  cartesian.Complex.Sinh,
	"cosh":  cartesian.Complex.Cosh,
	"tanh":  cartesian.Complex.Tanh,
	"asinh": cartesian.Complex.Asinh,
	"acosh": cartesian.Complex.Acosh,
	"atanh": cartesian.Complex.Atanh,
	"conj":  cartesian.Complex.Conj,
	"neg":   cartesian.Complex.Neg,
}

// scalarFuncs maps the function names whose results are real.
var scalarFuncs = map[string]func(cartesian.Complex) float64{
	"abs": cartesian.Complex.Abs,
	"arg": cartesian.Complex.Arg,
}

// function is one resolved eval/table target.
type function struct {
	name      string
	complexFn func(cartesian.Complex) cartesian.Complex
	scalarFn  func(cartesian.Complex) float64
}

// apply runs the function on z and renders the result per the format flags.
func (f function) apply(z cartesian.Complex, format *formatFlags) string {
	if f.scalarFn != nil {
		return format.formatFloat(f.scalarFn(z))
	}
	return format.formatComplex(f.complexFn(z))
}

// lookupFunction resolves a function name, case-insensitively.
func lookupFunction(name string) (function, error) {
	key := strings.ToLower(name)
	if fn, ok := complexFuncs[key]; ok {
		return function{name: key, complexFn: fn}, nil
	}
	if fn, ok := scalarFuncs[key]; ok {
		return function{name: key, scalarFn: fn}, nil
	}
	return function{}, fmt.Errorf("unknown function %q (have %s)", name, strings.Join(functionNames(), ", "))
}

// functionNames returns every eval/table function name, sorted.
func functionNames() []string {
	names := make([]string, 0, len(complexFuncs)+len(scalarFuncs))
	for name := range complexFuncs {
		names = append(names, name)
	}
	for name := range scalarFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// formatFlags holds the output controls shared by the subcommands.
type formatFlags struct {
	polar  bool
	digits int
}

// addFormatFlags wires the shared output flags onto a subcommand flag set.
func addFormatFlags(fs *pflag.FlagSet, f *formatFlags) {
	fs.BoolVar(&f.polar, "polar", false, "print complex results as modulus@phase")
	fs.IntVar(&f.digits, "digits", -1, "significant digits to print; -1 means the shortest form that round-trips")
}

func (f *formatFlags) formatComplex(z cartesian.Complex) string {
	if f.polar {
		return f.formatFloat(z.Abs()) + "@" + f.formatFloat(z.Arg())
	}
	if f.digits < 0 {
		return z.String()
	}
	return "(" + f.formatFloat(z.Real()) + "," + f.formatFloat(z.Imag()) + ")"
}

func (f *formatFlags) formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', f.digits, 64)
}
