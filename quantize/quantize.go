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

// Package quantize snaps values onto power-of-two grids.
//
// Snapping noisy outputs onto a coarse binary grid defends against inference
// attacks that exploit the uneven spacing of floating-point values. The
// defense requires every platform to produce the identical bit pattern for
// the same logical input, so all routines here work on exact binary
// floating-point semantics: mantissa/exponent decomposition and exact
// remainders, never logarithms or decimal intermediates.
package quantize

import "math"

// NextPowerOfTwo returns the smallest power of two greater than or equal to
// x, which must be positive. If x is itself a power of two it is returned
// unchanged, with no drift. Non-positive, NaN and +Inf inputs yield NaN.
func NextPowerOfTwo(x float64) float64 {
	if x <= 0 || math.IsInf(x, 1) || math.IsNaN(x) {
		return math.NaN()
	}
	frac, exp := math.Frexp(x) // x = frac * 2^exp with frac in [0.5, 1)
	if frac == 0.5 {
		exp--
	}
	return math.Ldexp(1, exp)
}

// RoundToNearestMultiple rounds value to the nearest integer multiple of
// granularity, which must be positive. Exact midpoints round toward positive
// infinity: RoundToNearestMultiple(5, 2) = 6 and
// RoundToNearestMultiple(-5, 2) = -4.
//
// When granularity is a power of two, including negative powers 1/2ᵏ, the
// result is bit-exact and idempotent on every platform: math.Mod computes the
// remainder exactly and the remaining additions operate on values sharing the
// granularity's binary alignment.
func RoundToNearestMultiple(value, granularity float64) float64 {
	remainder := math.Mod(value, granularity)
	half := granularity / 2
	if math.Abs(remainder) > half {
		return value - remainder + math.Copysign(granularity, remainder)
	}
	if remainder == half {
		return value + half
	}
	// A remainder of exactly -half lands here: value - remainder moves up
	// toward positive infinity, matching the tie-breaking direction.
	return value - remainder
}

// RoundToNearestInt64Multiple rounds value to the nearest multiple of the
// positive integer granularity, with the same toward-positive-infinity
// tie-breaking as RoundToNearestMultiple. Integer noise paths use it when the
// granularity exceeds one.
func RoundToNearestInt64Multiple(value, granularity int64) int64 {
	quotient := value / granularity
	remainder := value % granularity
	// Comparisons are arranged against granularity-remainder so that no
	// intermediate doubling can overflow.
	if remainder > 0 && remainder >= granularity-remainder {
		quotient++
	} else if remainder < 0 && -remainder > granularity+remainder {
		quotient--
	}
	return quotient * granularity
}
