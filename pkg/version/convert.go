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
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SemVer converts a Chocolatey version to its semantic versioning
// equivalent. The conversion never fails: the semver grammar is a numeric
// superset of the Chocolatey one.
//
// Chocolatey has no build-metadata concept, so the four-part build and any
// numeric pre-release ordinal have to be re-encoded. Numeric identifiers in
// the pre-release tail feed a running ordinal accumulator that flushes each
// time a newer ordinal arrives; the survivor becomes the semver numeric
// tail. Which delimiter joins the tail depends on whether a '-' pre-release
// separator was already emitted: if so the ordinal joins with '.' and the
// four-part build with '+', otherwise the roles swap so the build stays
// visually distinguishable.
func (v ChocoVersion) SemVer() SemVersion {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d.%d.%d", v.major, v.minor, v.patchOr0())

	var ordinal uint64
	for _, id := range v.pre {
		if id.IsNumeric() {
			if ordinal > 0 {
				fmt.Fprintf(&sb, "-%d", ordinal)
			}
			ordinal = id.Num()
			continue
		}

		s := id.Str()
		cut := len(s)
		for i, ch := range s {
			if ch >= '0' && ch <= '9' {
				cut = i
				break
			}
		}
		prefix, suffix := s[:cut], s[cut:]

		if prefix != "" {
			fmt.Fprintf(&sb, "-%s", prefix)
		}
		if n, err := strconv.ParseUint(suffix, 10, 64); err == nil {
			if ordinal > 0 {
				fmt.Fprintf(&sb, "-%d", ordinal)
			}
			ordinal = n
		} else if suffix != "" {
			if prefix == "" {
				fmt.Fprintf(&sb, "-%s", suffix)
			} else {
				sb.WriteString(suffix)
			}
		}
	}

	delim, altDelim := "+", "-"
	if strings.ContainsRune(sb.String(), '-') {
		delim, altDelim = ".", "+"
	}

	switch {
	case v.hasBuild:
		if ordinal > 0 {
			fmt.Fprintf(&sb, "%s%d", delim, ordinal)
			fmt.Fprintf(&sb, "%s%d", altDelim, v.build)
		} else {
			fmt.Fprintf(&sb, "%s%d", delim, v.build)
		}
	case ordinal > 0:
		fmt.Fprintf(&sb, "%s%d", delim, ordinal)
	}

	sv, err := ParseSemVer(sb.String())
	if err != nil {
		// The assembled string not parsing as semver is a logic bug in the
		// encoder, not a recoverable input error.
		panic(fmt.Sprintf("version: assembled semver %q from %q: %v", sb.String(), v, err))
	}
	return sv
}

// ChocoFromSemVer converts a semantic version to the Chocolatey grammar.
//
// Major, minor, and patch narrow to 8 bits with saturation (300.0.0 becomes
// 255.0.0). Pre-release identifiers re-run the Chocolatey extraction rules,
// so a bare leading numeric gains the "unstable" label and mixed tokens
// split. Semver build metadata is discarded: the four-part grammar has a
// single numeric build slot and no room for it, a documented narrowing.
func ChocoFromSemVer(sv SemVersion) ChocoVersion {
	v := New(saturateUint8(sv.Major), saturateUint8(sv.Minor))
	v.SetPatch(saturateUint8(sv.Patch))

	var pre []Identifier
	for _, id := range sv.Pre {
		if id.IsNum {
			if len(pre) == 0 {
				pre = append(pre, AlphaNumeric(unstableMarker))
			}
			pre = append(pre, Numeric(id.VersionNum))
			continue
		}
		pre = append(pre, extractPre(id.VersionStr)...)
	}
	v.SetPre(pre)

	return v
}

func saturateUint8(n uint64) uint8 {
	if n > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(n)
}
