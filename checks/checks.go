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

// Package checks validates the numeric parameters supplied when configuring
// differential-privacy mechanisms.
//
// Every check takes the name of the field being validated and inserts it
// verbatim into the failure message, so a mechanism can surface the error to
// its caller without rewording. Failures are gRPC status errors with code
// InvalidArgument; they are never corrected or retried on the caller's
// behalf.
package checks

import (
	"math"

	log "github.com/golang/glog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// invalidArgument builds the InvalidArgument status shared by every failed
// precondition and records it at high verbosity for calibration debugging.
func invalidArgument(format string, args ...interface{}) error {
	err := status.Errorf(codes.InvalidArgument, format, args...)
	if log.V(2) {
		log.Info(err)
	}
	return err
}

func validateIsNumber(value float64, name string) error {
	if math.IsNaN(value) {
		return invalidArgument("%s must be a valid numeric value, but is %v.", name, value)
	}
	return nil
}

// ValidateIsSet fails when value is absent or present but NaN. A nil pointer
// models an unset optional parameter.
func ValidateIsSet(value *float64, name string) error {
	if value == nil {
		return invalidArgument("%s must be set.", name)
	}
	return validateIsNumber(*value, name)
}

// ValidateIsPositive fails unless value > 0. Positive infinity passes.
func ValidateIsPositive(value float64, name string) error {
	if err := validateIsNumber(value, name); err != nil {
		return err
	}
	if value <= 0 {
		return invalidArgument("%s must be positive, but is %v.", name, value)
	}
	return nil
}

// ValidateIsNonNegative fails unless value >= 0. Positive infinity passes.
func ValidateIsNonNegative(value float64, name string) error {
	if err := validateIsNumber(value, name); err != nil {
		return err
	}
	if value < 0 {
		return invalidArgument("%s must be non-negative, but is %v.", name, value)
	}
	return nil
}

// ValidateIsFinite fails only for positive or negative infinity.
func ValidateIsFinite(value float64, name string) error {
	if err := validateIsNumber(value, name); err != nil {
		return err
	}
	if math.IsInf(value, 0) {
		return invalidArgument("%s must be finite, but is %v.", name, value)
	}
	return nil
}

// ValidateIsFiniteAndPositive fails unless 0 < value < +Inf.
func ValidateIsFiniteAndPositive(value float64, name string) error {
	if err := validateIsNumber(value, name); err != nil {
		return err
	}
	if value <= 0 || math.IsInf(value, 0) {
		return invalidArgument("%s must be finite and positive, but is %v.", name, value)
	}
	return nil
}

// ValidateIsFiniteAndNonNegative fails unless 0 <= value < +Inf.
func ValidateIsFiniteAndNonNegative(value float64, name string) error {
	if err := validateIsNumber(value, name); err != nil {
		return err
	}
	if value < 0 || math.IsInf(value, 0) {
		return invalidArgument("%s must be finite and non-negative, but is %v.", name, value)
	}
	return nil
}

// ValidateIsLesserThan fails unless value < upperBound.
func ValidateIsLesserThan(value, upperBound float64, name string) error {
	if err := validateIsNumber(value, name); err != nil {
		return err
	}
	if value >= upperBound {
		return invalidArgument("%s must be lesser than %v, but is %v.", name, upperBound, value)
	}
	return nil
}

// ValidateIsLesserThanOrEqualTo fails unless value <= upperBound.
func ValidateIsLesserThanOrEqualTo(value, upperBound float64, name string) error {
	if err := validateIsNumber(value, name); err != nil {
		return err
	}
	if value > upperBound {
		return invalidArgument("%s must be lesser than or equal to %v, but is %v.", name, upperBound, value)
	}
	return nil
}

// ValidateIsGreaterThan fails unless value > lowerBound.
func ValidateIsGreaterThan(value, lowerBound float64, name string) error {
	if err := validateIsNumber(value, name); err != nil {
		return err
	}
	if value <= lowerBound {
		return invalidArgument("%s must be greater than %v, but is %v.", name, lowerBound, value)
	}
	return nil
}

// ValidateIsGreaterThanOrEqualTo fails unless value >= lowerBound.
func ValidateIsGreaterThanOrEqualTo(value, lowerBound float64, name string) error {
	if err := validateIsNumber(value, name); err != nil {
		return err
	}
	if value < lowerBound {
		return invalidArgument("%s must be greater than or equal to %v, but is %v.", name, lowerBound, value)
	}
	return nil
}

// ValidateIsInInterval fails unless value lies in the interval between
// lowerBound and upperBound, where includeLower and includeUpper select the
// boundary regime. The failure message renders the matching bracket notation:
// (l,u), [l,u], [l,u) or (l,u].
//
// A degenerate singleton interval (lowerBound == upperBound) admits exactly
// that value as long as at least one bound is inclusive.
//
// Boundary comparisons use raw float64 ordering: values within one unit in
// the last place of an exclusive bound can be misclassified. This behavior is
// preserved deliberately for compatibility with existing privacy-budget
// audits.
func ValidateIsInInterval(value, lowerBound, upperBound float64, includeLower, includeUpper bool, name string) error {
	if err := validateIsNumber(value, name); err != nil {
		return err
	}
	if lowerBound == upperBound && (includeLower || includeUpper) && value == lowerBound {
		return nil
	}
	lowerOK := value > lowerBound || (includeLower && value == lowerBound)
	upperOK := value < upperBound || (includeUpper && value == upperBound)
	if lowerOK && upperOK {
		return nil
	}
	switch {
	case includeLower && includeUpper:
		return invalidArgument("%s must be in the inclusive interval [%v,%v], but is %v.", name, lowerBound, upperBound, value)
	case !includeLower && !includeUpper:
		return invalidArgument("%s must be in the exclusive interval (%v,%v), but is %v.", name, lowerBound, upperBound, value)
	case includeLower:
		return invalidArgument("%s must be in the interval [%v,%v), but is %v.", name, lowerBound, upperBound, value)
	default:
		return invalidArgument("%s must be in the interval (%v,%v], but is %v.", name, lowerBound, upperBound, value)
	}
}
