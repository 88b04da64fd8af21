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

package quantize

import (
	"math"
	"testing"
)

// All comparisons in this file are exact: bit-exactness for power-of-two
// grids is the security property under test, so tolerances would defeat the
// purpose.

func TestNextPowerOfTwo(t *testing.T) {
	for _, tc := range []struct {
		x    float64
		want float64
	}{
		{3.0, 4.0},
		{5.0, 8.0},
		{7.9, 8.0},
		{2.0, 2.0},
		{8.0, 8.0},
		{1.0, 1.0},
		{0.4, 0.5},
		{0.2, 0.25},
		{0.5, 0.5},
		{0.125, 0.125},
		{math.Exp2(-30), math.Exp2(-30)},
		{math.Exp2(40), math.Exp2(40)},
	} {
		if got := NextPowerOfTwo(tc.x); got != tc.want {
			t.Errorf("NextPowerOfTwo(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestNextPowerOfTwoInvalidInput(t *testing.T) {
	for _, x := range []float64{0, -3, math.NaN(), math.Inf(1)} {
		if got := NextPowerOfTwo(x); !math.IsNaN(got) {
			t.Errorf("NextPowerOfTwo(%v) = %v, want NaN", x, got)
		}
	}
}

func TestRoundToNearestMultiple(t *testing.T) {
	for _, tc := range []struct {
		desc               string
		value, granularity float64
		want               float64
	}{
		{"positive below midpoint", 4.9, 2.0, 4.0},
		{"positive above midpoint", 5.1, 2.0, 6.0},
		{"negative below midpoint", -4.9, 2.0, -4.0},
		{"negative above midpoint", -5.1, 2.0, -6.0},
		{"positive tie rounds up", 5.0, 2.0, 6.0},
		{"negative tie rounds up", -5.0, 2.0, -4.0},
		{"fractional granularity", 0.2078795763, 0.25, 0.25},
		{"granularity 2^-10", 0.1, 1.0 / (1 << 10), 0.099609375},
		{"granularity 2^-30", 0.3, 1.0 / (1 << 30), 322122547.0 / (1 << 30)},
	} {
		if got := RoundToNearestMultiple(tc.value, tc.granularity); got != tc.want {
			t.Errorf("%s: RoundToNearestMultiple(%v, %v) = %v, want %v", tc.desc, tc.value, tc.granularity, got, tc.want)
		}
	}
}

func TestRoundToNearestMultipleIdempotent(t *testing.T) {
	values := []float64{0.3, 5.1, -7.77, 1234.5678, -0.0001, 42.0}
	for k := -30; k <= 30; k++ {
		granularity := math.Exp2(float64(k))
		for _, v := range values {
			rounded := RoundToNearestMultiple(v, granularity)
			if again := RoundToNearestMultiple(rounded, granularity); again != rounded {
				t.Errorf("RoundToNearestMultiple(%v, 2^%d) not idempotent: %v re-rounds to %v", v, k, rounded, again)
			}
		}
	}
}

func TestRoundToNearestInt64Multiple(t *testing.T) {
	for _, tc := range []struct {
		value, granularity int64
		want               int64
	}{
		{5, 2, 6},
		{-5, 2, -4},
		{7, 2, 8},
		{-7, 2, -6},
		{-6, 2, -6},
		{10, 4, 12},
		{-10, 4, -8},
		{0, 8, 0},
		{123, 1, 123},
		{-3, 2, -2},
	} {
		if got := RoundToNearestInt64Multiple(tc.value, tc.granularity); got != tc.want {
			t.Errorf("RoundToNearestInt64Multiple(%d, %d) = %d, want %d", tc.value, tc.granularity, got, tc.want)
		}
	}
}
