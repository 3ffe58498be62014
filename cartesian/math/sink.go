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

package math

// Sink consumes the (real, imaginary) result of a kernel and builds the
// caller's result type. Every kernel invokes its sink exactly once on every
// control path, so a sink may carry side effects (counters, tracing) without
// double-fire surprises. Passing a value constructor as the sink evaluates a
// function without any intermediate boxing.
type Sink[R any] func(re, im float64) R

// UnaryOperator is the shape shared by all single-operand kernels in this
// package: Sqrt, Exp, Log, the trigonometric and hyperbolic families and
// their inverses all satisfy it.
type UnaryOperator[R any] func(re, im float64, sink Sink[R]) R

// BinaryOperator is the shape of the two-operand kernels Multiply and Divide.
type BinaryOperator[R any] func(re1, im1, re2, im2 float64, sink Sink[R]) R

// Pair is a plain (real, imaginary) record. It is the natural result type
// when no other representation is wanted, and the intermediate carrier used
// by Compose.
type Pair struct {
	Re, Im float64
}

// PairOf is the identity sink.
func PairOf(re, im float64) Pair { return Pair{Re: re, Im: im} }

// Compose chains two operators: the returned operator applies first, feeds
// its (real, imaginary) result to then, and delivers then's result through
// the final sink. No intermediate values escape to the heap; each operator's
// sink still fires exactly once per evaluation.
func Compose[R any](first UnaryOperator[Pair], then UnaryOperator[R]) UnaryOperator[R] {
	return func(re, im float64, sink Sink[R]) R {
		p := first(re, im, PairOf)
		return then(p.Re, p.Im, sink)
	}
}
