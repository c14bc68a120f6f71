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
	"strconv"
	"strings"
)

// Identifier is a single pre-release token, tagged as either purely numeric
// or alphanumeric. The tag drives both comparison and formatting: numeric
// identifiers compare by integer value and are zero-padded when rendered in
// the Chocolatey grammar, alphanumeric identifiers compare lexically.
type Identifier struct {
	str   string
	num   uint64
	isNum bool
}

// Numeric creates a purely numeric identifier.
func Numeric(n uint64) Identifier {
	return Identifier{num: n, isNum: true}
}

// AlphaNumeric creates an alphanumeric identifier.
func AlphaNumeric(s string) Identifier {
	return Identifier{str: s}
}

// IsNumeric reports whether the identifier carries a numeric value.
func (i Identifier) IsNumeric() bool {
	return i.isNum
}

// Num returns the numeric value. It is zero for alphanumeric identifiers.
func (i Identifier) Num() uint64 {
	return i.num
}

// Str returns the alphanumeric value. It is empty for numeric identifiers.
func (i Identifier) Str() string {
	return i.str
}

// String returns the textual form of the identifier: the plain decimal
// digits for a numeric identifier, the stored token otherwise.
func (i Identifier) String() string {
	if i.isNum {
		return strconv.FormatUint(i.num, 10)
	}
	return i.str
}

// Compare returns -1, 0, or 1 depending on whether i sorts before, equal to,
// or after other. Numeric identifiers compare by value, alphanumeric ones
// lexically, and a numeric identifier always sorts before an alphanumeric
// one, mirroring semantic versioning precedence.
func (i Identifier) Compare(other Identifier) int {
	switch {
	case i.isNum && other.isNum:
		if i.num < other.num {
			return -1
		}
		if i.num > other.num {
			return 1
		}
		return 0
	case i.isNum:
		return -1
	case other.isNum:
		return 1
	default:
		return strings.Compare(i.str, other.str)
	}
}

// Equal reports whether both identifiers carry the same tag and value.
func (i Identifier) Equal(other Identifier) bool {
	return i == other
}

// comparePre compares two pre-release identifier sequences using semantic
// versioning precedence: an empty sequence denotes a release and sorts after
// any non-empty sequence; otherwise identifiers compare pairwise with the
// shorter sequence sorting first on a tie.
func comparePre(a, b []Identifier) int {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return 1
	case len(b) == 0:
		return -1
	}

	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
