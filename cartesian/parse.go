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

package cartesian

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders z as "(re,im)" using the shortest float formatting that
// round-trips, with infinities and NaN spelled +Inf, -Inf and NaN. The
// output parses back to the same value bit for bit (NaN payloads
// canonicalized).
func (z Complex) String() string {
	return "(" + strconv.FormatFloat(z.re, 'g', -1, 64) + "," +
		strconv.FormatFloat(z.im, 'g', -1, 64) + ")"
}

// Parse reads a complex literal of the form "(re,im)". The components are
// split on the last comma inside the parentheses and parsed as float64,
// accepting everything strconv.ParseFloat does (decimal, scientific and hex
// float syntax, Inf and NaN spellings). Whitespace around the literal and
// around each component is tolerated.
func Parse(s string) (Complex, error) {
	t := strings.TrimSpace(s)
	if len(t) < 2 || t[0] != '(' || t[len(t)-1] != ')' {
		return Complex{}, fmt.Errorf("cartesian: literal %q is not of the form (re,im)", s)
	}
	inner := t[1 : len(t)-1]
	comma := strings.LastIndexByte(inner, ',')
	if comma < 0 {
		return Complex{}, fmt.Errorf("cartesian: literal %q has no component separator", s)
	}
	re, err := strconv.ParseFloat(strings.TrimSpace(inner[:comma]), 64)
	if err != nil {
		return Complex{}, fmt.Errorf("cartesian: bad real component in %q: %w", s, err)
	}
	im, err := strconv.ParseFloat(strings.TrimSpace(inner[comma+1:]), 64)
	if err != nil {
		return Complex{}, fmt.Errorf("cartesian: bad imaginary component in %q: %w", s, err)
	}
	return New(re, im), nil
}
