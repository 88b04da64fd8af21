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

package checks

import "math"

// epsilonLowest is the smallest epsilon the secure geometric sampler honors
// without overflow artifacts in its granularity computation (2⁻⁵⁰).
var epsilonLowest = math.Exp2(-50)

// CheckEpsilon returns an error if epsilon is not finite and strictly
// positive.
func CheckEpsilon(epsilon float64) error {
	return ValidateIsFiniteAndPositive(epsilon, "Epsilon")
}

// CheckEpsilonVeryStrict additionally requires epsilon to be at least 2⁻⁵⁰,
// the smallest value for which secure noise generation keeps its overflow
// probability negligible.
func CheckEpsilonVeryStrict(epsilon float64) error {
	if err := CheckEpsilon(epsilon); err != nil {
		return err
	}
	if epsilon < epsilonLowest {
		return invalidArgument("Epsilon must be at least 2⁻⁵⁰, but is %v.", epsilon)
	}
	return nil
}

// CheckDelta returns an error if delta lies outside [0, 1).
func CheckDelta(delta float64) error {
	return ValidateIsInInterval(delta, 0, 1, true, false, "Delta")
}

// CheckNoDelta returns an error unless delta is exactly zero. Pure-epsilon
// mechanisms must not consume a delta budget.
func CheckNoDelta(delta float64) error {
	if delta != 0 {
		return invalidArgument("Delta must be 0, but is %v.", delta)
	}
	return nil
}

// CheckAlpha returns an error if the confidence-interval level alpha lies
// outside the open interval (0, 1).
func CheckAlpha(alpha float64) error {
	return ValidateIsInInterval(alpha, 0, 1, false, false, "Alpha")
}

// CheckL0Sensitivity returns an error if the L_0 sensitivity is not strictly
// positive.
func CheckL0Sensitivity(l0Sensitivity int64) error {
	if l0Sensitivity <= 0 {
		return invalidArgument("L0 sensitivity must be positive, but is %v.", l0Sensitivity)
	}
	return nil
}

// CheckLInfSensitivity returns an error if the L_∞ sensitivity is not finite
// and strictly positive.
func CheckLInfSensitivity(lInfSensitivity float64) error {
	return ValidateIsFiniteAndPositive(lInfSensitivity, "LInf sensitivity")
}
