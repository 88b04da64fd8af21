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

// Package seedmix combines byte sequences when seeding secure randomness
// generation.
package seedmix

// XorStrings returns the byte-wise XOR of a and b. The shorter operand is
// repeated cyclically, so the result has the length of the longer operand.
// XOR against an empty operand returns the other operand unchanged.
func XorStrings(a, b string) string {
	longer, shorter := a, b
	if len(longer) < len(shorter) {
		longer, shorter = shorter, longer
	}
	if len(shorter) == 0 {
		return longer
	}
	mixed := make([]byte, len(longer))
	for i := range mixed {
		mixed[i] = longer[i] ^ shorter[i%len(shorter)]
	}
	return string(mixed)
}
