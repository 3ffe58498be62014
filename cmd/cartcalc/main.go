// Copyright 2025 go-cartesian Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command cartcalc evaluates the go-cartesian elementary functions from the
// command line.
//
// Usage:
//
//	cartcalc eval sqrt "(-4,0)" "(2,3)"
//	cartcalc roots 3 "(-8,0)"
//	cartcalc table atanh
//
// Complex arguments use the "(re,im)" literal form accepted by
// cartesian.Parse; Inf and NaN spellings work, so edge cases are reachable
// from the shell. Results print one per line on stdout. The --polar flag
// switches output to modulus@phase form and --digits caps the printed
// precision. Unknown function names and malformed literals are reported on
// stderr with exit code 1.
package main

import (
	"fmt"
	"io"
	stdmath "math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-cartesian/cartesian"
)

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cartcalc",
		Short: "Evaluate complex elementary functions",
		Long: "cartcalc parses complex numbers in (re,im) form and runs them through\n" +
			"the go-cartesian function kernels. Functions: " + strings.Join(functionNames(), ", ") + ".",
		SilenceUsage: true,
	}
	cmd.AddCommand(newEvalCommand(out), newRootsCommand(out), newTableCommand(out))
	return cmd
}

func newEvalCommand(out io.Writer) *cobra.Command {
	var format formatFlags
	cmd := &cobra.Command{
		Use:   "eval <function> <complex>...",
		Short: "Apply a function to complex values",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(out, &format, args[0], args[1:])
		},
	}
	addFormatFlags(cmd.Flags(), &format)
	return cmd
}

func runEval(out io.Writer, format *formatFlags, name string, literals []string) error {
	fn, err := lookupFunction(name)
	if err != nil {
		return err
	}
	for _, literal := range literals {
		z, err := cartesian.Parse(literal)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, fn.apply(z, format))
	}
	return nil
}

func newRootsCommand(out io.Writer) *cobra.Command {
	var format formatFlags
	cmd := &cobra.Command{
		Use:   "roots <n> <complex>",
		Short: "Enumerate the n-th roots of a complex value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoots(out, &format, args[0], args[1])
		},
	}
	addFormatFlags(cmd.Flags(), &format)
	return cmd
}

func runRoots(out io.Writer, format *formatFlags, degree, literal string) error {
	n, err := strconv.Atoi(degree)
	if err != nil {
		return fmt.Errorf("bad root degree %q: %w", degree, err)
	}
	z, err := cartesian.Parse(literal)
	if err != nil {
		return err
	}
	roots, err := z.NthRoot(n)
	if err != nil {
		return err
	}
	for _, r := range roots {
		fmt.Fprintln(out, format.formatComplex(r))
	}
	return nil
}

// tableAxis is one edge of the special-value panel swept by the table
// subcommand: both zero signs, both units, both infinities and NaN.
var tableAxis = []float64{0, stdmath.Copysign(0, -1), 1, -1, stdmath.Inf(1), stdmath.Inf(-1), stdmath.NaN()}

func newTableCommand(out io.Writer) *cobra.Command {
	var format formatFlags
	cmd := &cobra.Command{
		Use:   "table <function>",
		Short: "Print a function over the special-value grid",
		Long: "Table sweeps a function over the 7x7 grid {0, -0, 1, -1, +Inf, -Inf, NaN}^2\n" +
			"and prints one input/output pair per line, for reviewing edge-case behavior.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(out, &format, args[0])
		},
	}
	addFormatFlags(cmd.Flags(), &format)
	return cmd
}

func runTable(out io.Writer, format *formatFlags, name string) error {
	fn, err := lookupFunction(name)
	if err != nil {
		return err
	}
	for _, re := range tableAxis {
		for _, im := range tableAxis {
			z := cartesian.New(re, im)
			fmt.Fprintf(out, "%s%v = %s\n", fn.name, z, fn.apply(z, format))
		}
	}
	return nil
}
