// Command ev evaluates an arithmetic expression and prints the result.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/alecthomas/kong"

	"github.com/zephyrtronium/formula"
)

type cli struct {
	Hex       bool   `short:"x" xor:"repr" help:"Show result as hex."`
	Int       bool   `short:"i" xor:"repr" help:"Show result as a 32-bit integer."`
	Uint      bool   `short:"u" xor:"repr" help:"Show result as an unsigned 32-bit integer."`
	Precision int    `short:"p" default:"17" env:"EV_PRECISION" help:"Output precision."`
	List      bool   `short:"l" help:"List known functions and constants."`
	Verbose   bool   `short:"v" env:"EV_VERBOSE" help:"Log evaluation details to stderr."`
	Expr      string `arg:"" optional:"" help:"Expression to evaluate. Put -- before an expression that begins with -."`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Exit))
}

func run(args []string, stdout, stderr io.Writer, exit func(int)) int {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("ev"),
		kong.Description("Evaluate the given expression."),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
		kong.UsageOnError(),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%v", err)
		return 2
	}

	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if c.List {
		for _, f := range formula.Funcs() {
			fmt.Fprintln(stdout, signature(f))
		}
		return 0
	}
	if !hasExpr(kctx) {
		kctx.PrintUsage(false)
		return 2
	}
	if c.Precision < 0 {
		log.Warn("negative precision prints the shortest representation", slog.Int("precision", c.Precision))
	}

	switch {
	case c.Hex:
		var x float64
		x, err = formula.EvalFloat64(c.Expr)
		log.Debug("evaluated", slog.String("expr", c.Expr), slog.String("repr", "hex"), slog.Float64("value", x))
		if err == nil {
			fmt.Fprintf(stdout, "0x%08X\n", hexbits(x))
		}
	case c.Int:
		var x int32
		x, err = formula.EvalInt32(c.Expr)
		log.Debug("evaluated", slog.String("expr", c.Expr), slog.String("repr", "int32"), slog.Int64("value", int64(x)))
		if err == nil {
			fmt.Fprintf(stdout, "%d\n", x)
		}
	case c.Uint:
		var x uint32
		x, err = formula.EvalUint32(c.Expr)
		log.Debug("evaluated", slog.String("expr", c.Expr), slog.String("repr", "uint32"), slog.Uint64("value", uint64(x)))
		if err == nil {
			fmt.Fprintf(stdout, "%d\n", x)
		}
	default:
		var x float64
		x, err = formula.EvalFloat64(c.Expr)
		log.Debug("evaluated", slog.String("expr", c.Expr), slog.String("repr", "double"), slog.Float64("value", x))
		if err == nil {
			fmt.Fprintf(stdout, "%.*g\n", c.Precision, x)
		}
	}
	if err != nil {
		log.Debug("evaluation failed", slog.Any("err", err))
		formula.ReportError(stderr, err)
		return 1
	}
	return 0
}

// hasExpr reports whether an expression argument was given, even if empty.
func hasExpr(kctx *kong.Context) bool {
	for _, p := range kctx.Path {
		if p.Positional != nil {
			return true
		}
	}
	return false
}

// hexbits converts x to 32 bits the way a C cast through a signed integer
// does, so -1 is 0xFFFFFFFF.
func hexbits(x float64) uint32 {
	if math.IsNaN(x) || math.Abs(x) >= 1<<63 {
		return 0
	}
	return uint32(int64(x))
}

func signature(f formula.FuncInfo) string {
	switch f.Arity {
	case 0:
		return f.Name
	case 1:
		return f.Name + "(x)"
	default:
		return f.Name + "(x, y)"
	}
}
