// Copyright (c) 2026, WormieCorp.  All rights reserved.
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

package version

import (
	"testing"
)

// FuzzParseChoco performs fuzz testing on ParseChoco to find edge cases
func FuzzParseChoco(f *testing.F) {
	// Seed corpus with valid and edge case inputs
	f.Add("3")
	f.Add("1.0")
	f.Add("4.5.1")
	f.Add("3.5.0.2342")
	f.Add("3.3-alpha001")
	f.Add("3.2-alpha.10")
	f.Add("3.3.5-beta-11")
	f.Add("3.1.1+55")
	f.Add("4.0.0.2-beta.5")
	f.Add("0.1.0-55")
	f.Add("4.2.1-alpha54.2")
	f.Add("6.1.0-55-alpha")
	f.Add("2.0.0-55beta")
	f.Add("1.2.2.5-unstable-0050")
	f.Add("")
	f.Add(".")
	f.Add("..")
	f.Add("1.")
	f.Add(".1")
	f.Add("1..2")
	f.Add("2.0.2.5.1")
	f.Add("255.255.255.4294967295")
	f.Add("256.0.0")
	f.Add("1.0-ä")
	f.Add("1.0--5")
	f.Add("1.0-99999999999999999999")
	f.Add("1.0-a99999999999")

	f.Fuzz(func(t *testing.T, input string) {
		// ParseChoco should never panic
		v, err := ParseChoco(input)
		if err != nil {
			return
		}

		// The canonical form must re-parse with identical numeric components.
		// Textual stability is only guaranteed for unambiguous pre-release
		// tails (the unstable-marker promotion can shuffle pathological
		// tails once more), so it is asserted on literal cases in
		// TestChocoStringParseRoundTrip instead.
		canon := v.String()
		v2, err := ParseChoco(canon)
		if err != nil {
			t.Fatalf("re-parsing %q (from %q) failed: %v", canon, input, err)
		}
		if !v.CoreEqual(v2) {
			t.Errorf("numeric components changed across round trip of %q: %v != %v", input, v, v2)
		}

		// Comparison must be reflexive and consistent with equality.
		if v.Compare(v) != 0 || !v.Equal(v) {
			t.Errorf("version %q does not compare equal to itself", canon)
		}
	})
}
