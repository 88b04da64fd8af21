// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package safemath provides overflow-checked arithmetic for the accumulations
// performed while calibrating and applying differentially private noise.
//
// Every operation returns the exact mathematical result when it is
// representable. When it is not, the returned error wraps ErrOverflow and the
// returned value is clamped to the nearest representable bound, so a caller
// that ignores the error still receives a safe number rather than a silently
// wrapped one.
package safemath

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// Number covers the numeric kinds guarded by this package.
type Number interface {
	constraints.Integer | constraints.Float
}

var (
	// ErrOverflow reports that an exact result does not fit the target type.
	// The value returned alongside it is clamped to the type's bound nearest
	// to the true result.
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrNaN reports a NaN source value that has no integral image.
	ErrNaN = errors.New("NaN has no integral representation")
)

// SafeAdd returns a + b. For integer kinds the result is checked against the
// type's range; on overflow the returned value is clamped to the max (positive
// overflow) or lowest (negative overflow) representable value and the error
// wraps ErrOverflow. Floating kinds follow IEEE semantics: infinities are
// valid results and never an error.
func SafeAdd[T Number](a, b T) (T, error) {
	if isFloat[T]() {
		return a + b, nil
	}
	lo, hi := intBounds[T]()
	sum := a + b
	if b > 0 && sum < a {
		return hi, overflowError(a, "+", b)
	}
	if b < 0 && sum > a {
		return lo, overflowError(a, "+", b)
	}
	return sum, nil
}

// SafeSubtract returns a - b under the same contract as SafeAdd. For unsigned
// kinds a true result below zero counts as overflow and clamps to zero.
func SafeSubtract[T Number](a, b T) (T, error) {
	if isFloat[T]() {
		return a - b, nil
	}
	lo, hi := intBounds[T]()
	diff := a - b
	if b < 0 && diff < a {
		return hi, overflowError(a, "-", b)
	}
	if b > 0 && diff > a {
		return lo, overflowError(a, "-", b)
	}
	return diff, nil
}

// SafeSquare returns a * a. Overflow detection covers the asymmetric case
// where a is the most negative value of a signed kind, whose square exceeds
// the type's maximum even though its negation is unrepresentable. The check
// runs over a 128-bit product so it is exact for every 64-bit kind.
func SafeSquare[T Number](a T) (T, error) {
	if isFloat[T]() {
		return a * a, nil
	}
	_, hi := intBounds[T]()
	mag := magnitude(a)
	if uint128.From64(mag).Mul64(mag).Cmp64(uint64(hi)) > 0 {
		return hi, overflowError(a, "*", a)
	}
	return a * a, nil
}

// SafeCastFromDouble converts a float64 into the numeric kind T.
//
// Finite values outside T's range clamp to its max or lowest value without
// error. A NaN source fails with ErrNaN for integral targets and converts to
// NaN for floating targets. Magnitudes exceeding a narrower floating target's
// range collapse to signed infinity. Integral conversion truncates toward
// zero.
func SafeCastFromDouble[T Number](x float64) (T, error) {
	if isFloat[T]() {
		return T(x), nil
	}
	if math.IsNaN(x) {
		return 0, fmt.Errorf("cast of %v: %w", x, ErrNaN)
	}
	lo, hi := intBounds[T]()
	// float64(hi) rounds up to the first unrepresentable value for 64-bit
	// kinds (e.g. 2⁶³ for int64), so >= captures exactly the out-of-range set.
	if x >= float64(hi) {
		return hi, nil
	}
	if x <= float64(lo) {
		return lo, nil
	}
	return T(x), nil
}

// Clamp limits value to the interval [lower, upper].
func Clamp[T Number](lower, upper, value T) T {
	if value > upper {
		return upper
	}
	if value < lower {
		return lower
	}
	return value
}

func overflowError[T Number](a T, op string, b T) error {
	return fmt.Errorf("%v %s %v: %w", a, op, b, ErrOverflow)
}

// isFloat reports whether T is a floating kind. Integer division truncates
// 1/2 to zero, so the expression distinguishes the kinds without enumerating
// concrete types.
func isFloat[T Number]() bool {
	return T(1)/T(2) != 0
}

// intBounds returns the representable range of an integer instantiation of T.
// Only +, - and comparisons are defined across the whole Number type set, so
// the bounds are derived arithmetically: doubling until the signed wraparound
// locates the highest power of two. It must not be called for floating kinds.
func intBounds[T Number]() (lo, hi T) {
	if T(0)-1 > 0 {
		// Unsigned: subtraction wraps to the maximum.
		return 0, T(0) - 1
	}
	half := T(1)
	for next := half + half; next > half; next = half + half {
		half = next
	}
	hi = half - 1 + half
	lo = -hi - 1
	return lo, hi
}

// magnitude returns |a| as a uint64. The most negative value of a signed kind
// is handled without negating it, which would itself overflow.
func magnitude[T Number](a T) uint64 {
	if a >= 0 {
		return uint64(a)
	}
	return uint64(-(int64(a) + 1)) + 1
}
