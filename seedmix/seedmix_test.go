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

package seedmix

import "testing"

func TestXorStringsSameLength(t *testing.T) {
	got := XorStrings("foo", "bar")
	want := string([]byte{'f' ^ 'b', 'o' ^ 'a', 'o' ^ 'r'})
	if got != want {
		t.Errorf("XorStrings(%q, %q) = %q, want %q", "foo", "bar", got, want)
	}
}

func TestXorStringsShorterRepeated(t *testing.T) {
	got := XorStrings("foobar", "baz")
	if len(got) != len("foobar") {
		t.Fatalf("XorStrings(%q, %q) has length %d, want %d", "foobar", "baz", len(got), len("foobar"))
	}
	// The second operand wraps around after its third byte.
	if got[3] != 'b'^'b' || got[4] != 'a'^'a' || got[5] != 'z'^'r' {
		t.Errorf("XorStrings(%q, %q) = %v, want cyclic repetition of the shorter operand", "foobar", "baz", []byte(got))
	}
}

func TestXorStringsOperandOrderIrrelevant(t *testing.T) {
	if ab, ba := XorStrings("foobar", "baz"), XorStrings("baz", "foobar"); ab != ba {
		t.Errorf("XorStrings is not symmetric: %q vs %q", ab, ba)
	}
}

func TestXorStringsEmptyOperand(t *testing.T) {
	if got := XorStrings("foo", ""); got != "foo" {
		t.Errorf("XorStrings(%q, %q) = %q, want %q", "foo", "", got, "foo")
	}
	if got := XorStrings("", "foo"); got != "foo" {
		t.Errorf("XorStrings(%q, %q) = %q, want %q", "", "foo", got, "foo")
	}
	if got := XorStrings("", ""); got != "" {
		t.Errorf("XorStrings(%q, %q) = %q, want empty", "", "", got)
	}
}

func TestXorStringsInvertible(t *testing.T) {
	a, b := "ABCDEFGHIJKLMNOP", "sixteen-byte-key"
	if got := XorStrings(XorStrings(a, b), b); got != a {
		t.Errorf("XorStrings(XorStrings(a, b), b) = %q, want %q", got, a)
	}
}
