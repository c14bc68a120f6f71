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
	"errors"
	"fmt"

	blang "github.com/blang/semver/v4"
)

// ErrSemVer indicates a string that is not a valid semantic version.
var ErrSemVer = errors.New("not a valid semantic version")

// SemVersion is a strict Semantic Versioning 2.0.0 value. The representation
// is delegated to github.com/blang/semver, which exposes the tagged
// pre-release identifier model (numeric vs alphanumeric) the Chocolatey
// converters depend on.
type SemVersion = blang.Version

// ParseSemVer parses a strict three-component semantic version string.
// Failures wrap ErrSemVer.
func ParseSemVer(s string) (SemVersion, error) {
	sv, err := blang.Parse(s)
	if err != nil {
		return SemVersion{}, fmt.Errorf("%w: %q: %v", ErrSemVer, s, err)
	}
	return sv, nil
}

// MustParseSemVer parses a semantic version string and panics on failure.
// Only use this for hardcoded strings or in tests; for runtime data use
// ParseSemVer and handle the error explicitly.
func MustParseSemVer(s string) SemVersion {
	sv, err := ParseSemVer(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseSemVer: %v", err))
	}
	return sv
}
