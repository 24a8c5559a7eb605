package formula

import (
	"math"
	"sort"
)

// function is an entry in the function table. Constants are functions of no
// arguments and are written without parentheses.
type function interface {
	// call evaluates the function. args has length arity().
	call(args []float64) float64
	arity() int
}

type niladic float64

func (n niladic) call([]float64) float64 { return float64(n) }
func (niladic) arity() int               { return 0 }

type monadic func(x float64) float64

func (m monadic) call(args []float64) float64 { return m(args[0]) }
func (monadic) arity() int                    { return 1 }

type dyadic func(x, y float64) float64

func (d dyadic) call(args []float64) float64 { return d(args[0], args[1]) }
func (dyadic) arity() int                    { return 2 }

// pi is a fixed literal rather than math.Pi so that results are the same
// everywhere.
const pi = 3.14159265358979323846

func radians(deg float64) float64 {
	return deg * (pi / 180)
}

func degrees(rad float64) float64 {
	return rad * (180 / pi)
}

var globalfuncs = map[string]function{
	// constants
	"pi": niladic(pi),
	"e":  niladic(math.Exp(1)),

	"sqrt": monadic(math.Sqrt),
	"exp":  monadic(math.Exp),
	"log":  monadic(math.Log),
	"abs":  monadic(math.Abs),

	"sin":  monadic(math.Sin),
	"cos":  monadic(math.Cos),
	"tan":  monadic(math.Tan),
	"asin": monadic(math.Asin),
	"acos": monadic(math.Acos),
	"atan": monadic(math.Atan),

	// trig in degrees
	"sind":  monadic(func(x float64) float64 { return math.Sin(radians(x)) }),
	"cosd":  monadic(func(x float64) float64 { return math.Cos(radians(x)) }),
	"tand":  monadic(func(x float64) float64 { return math.Tan(radians(x)) }),
	"dasin": monadic(func(x float64) float64 { return degrees(math.Asin(x)) }),
	"dacos": monadic(func(x float64) float64 { return degrees(math.Acos(x)) }),
	"datan": monadic(func(x float64) float64 { return degrees(math.Atan(x)) }),

	"floor": monadic(math.Floor),
	"ceil":  monadic(math.Ceil),
	"sqr":   monadic(func(x float64) float64 { return x * x }),

	"pow":    dyadic(math.Pow),
	"atan2":  dyadic(math.Atan2),
	"datan2": dyadic(func(y, x float64) float64 { return degrees(math.Atan2(y, x)) }),
}

// FuncInfo describes a function or constant known to the evaluator.
type FuncInfo struct {
	// Name is the identifier that invokes the function.
	Name string
	// Arity is the number of arguments. Constants have arity 0.
	Arity int
}

// Funcs returns the functions and constants the evaluator knows, sorted by
// name.
func Funcs() []FuncInfo {
	r := make([]FuncInfo, 0, len(globalfuncs))
	for k, f := range globalfuncs {
		r = append(r, FuncInfo{Name: k, Arity: f.arity()})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Name < r[j].Name })
	return r
}
