// Command softfloatctl is a small demo/diagnostic CLI over the
// softfloat library, in the spirit of kshard/float8's cmd/main.go
// (which drives the float8 package from a standalone binary rather
// than burying every code path behind _test.go).
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/chewxy/math32"

	"github.com/zerfoo/softfloat"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "eval":
		if err := eval(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case "sqrt":
		if err := sqrtBench(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: softfloatctl eval <a> <op> <b>")
	fmt.Fprintln(os.Stderr, "       softfloatctl sqrt <n>")
	fmt.Fprintln(os.Stderr, "ops: + - * /")
}

// eval parses two decimal operands and an operator, computes the
// result with softfloat.Float, and prints it to stdout.
func eval(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("eval wants exactly 3 arguments: <a> <op> <b>")
	}

	a := softfloat.New().SetString(args[0])
	b := softfloat.New().SetString(args[2])

	switch args[1] {
	case "+":
		a.Add(b)
	case "-":
		a.Sub(b)
	case "*":
		a.Mul(b)
	case "/":
		a.Div(b)
	default:
		return fmt.Errorf("unknown op %q", args[1])
	}

	a.Print(os.Stdout, 9)
	fmt.Println()
	return nil
}

// sqrtBench prints this library's own sqrt result for n next to the
// float32 reference computed by chewxy/math32, the same oracle
// kshard/float8's tests use for its float32 codebook.
func sqrtBench(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("sqrt wants exactly 1 argument: <n>")
	}

	n, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", args[0], err)
	}

	f := softfloat.New().SetString(args[0])
	f.Sqrt()

	reference := math32.Sqrt(float32(n))

	fmt.Printf("softfloat: %s\n", f.ToString(9))
	fmt.Printf("reference: %g\n", reference)
	return nil
}
