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

// Package stats provides the vector statistics used by calibration and
// testing code around the noise mechanisms.
package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Mean returns the arithmetic mean of v.
func Mean(v []float64) float64 {
	return stat.Mean(v, nil)
}

// Variance returns the population variance of v, normalized by len(v).
// A single-element vector has variance 0; an empty vector yields NaN.
func Variance(v []float64) float64 {
	n := len(v)
	switch n {
	case 0:
		return math.NaN()
	case 1:
		return 0
	}
	// stat.Variance is sample-normalized by n-1; rescale to the population
	// form. The factor is exact for the n-1 multiples stat.Variance produces.
	return stat.Variance(v, nil) * float64(n-1) / float64(n)
}

// StandardDev returns the population standard deviation of v.
func StandardDev(v []float64) float64 {
	return math.Sqrt(Variance(v))
}

// OrderStatistic returns the value at quantile q of v for q in [0, 1],
// interpolating linearly between the midpoint ranks of a sorted copy of v.
// q = 0 yields the minimum and q = 1 the maximum. An empty v yields NaN.
func OrderStatistic(q float64, v []float64) float64 {
	n := len(v)
	if n == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), v...)
	sort.Float64s(sorted)

	index := q*float64(n) - 0.5
	left := clampIndex(int(math.Floor(index)), n)
	right := clampIndex(int(math.Ceil(index)), n)
	fraction := index - math.Floor(index)
	return (1-fraction)*sorted[left] + fraction*sorted[right]
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// VectorFilter returns the order-preserving subsequence of v at the positions
// where keep is true. v and keep must have equal length.
func VectorFilter(v []float64, keep []bool) ([]float64, error) {
	if len(v) != len(keep) {
		return nil, status.Errorf(codes.InvalidArgument, "vector and mask must have equal length, got %d and %d", len(v), len(keep))
	}
	var filtered []float64
	for i, ok := range keep {
		if ok {
			filtered = append(filtered, v[i])
		}
	}
	return filtered, nil
}

// VectorToString renders v as "[v1, v2, ...]" for diagnostics.
func VectorToString(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%v", x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
