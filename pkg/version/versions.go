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
	"gopkg.in/yaml.v3"
)

// Versions holds a version in whichever of the two grammars it parsed as:
// strict semantic versioning or the Chocolatey four-part scheme. Exactly one
// variant is set after a successful Parse.
type Versions struct {
	semver *SemVersion
	choco  *ChocoVersion
}

// NewSemVer wraps a semantic version in the union.
func NewSemVer(sv SemVersion) Versions {
	return Versions{semver: &sv}
}

// NewChoco wraps a Chocolatey version in the union.
func NewChoco(cv ChocoVersion) Versions {
	return Versions{choco: &cv}
}

// Parse attempts the semantic versioning grammar first and falls back to the
// Chocolatey grammar. When both fail, the Chocolatey parse error is
// returned, as it is the more permissive grammar of the two.
func Parse(s string) (Versions, error) {
	if sv, err := ParseSemVer(s); err == nil {
		return Versions{semver: &sv}, nil
	}

	cv, err := ParseChoco(s)
	if err != nil {
		return Versions{}, err
	}
	return Versions{choco: &cv}, nil
}

// MustParse parses a version string and panics on failure. Only use this for
// hardcoded strings or in tests.
func MustParse(s string) Versions {
	v, err := Parse(s)
	if err != nil {
		panic("MustParse: " + err.Error())
	}
	return v
}

// IsZero reports whether the union holds no version at all. yaml.v3 uses
// it to honor omitempty on struct-typed fields.
func (v Versions) IsZero() bool {
	return v.semver == nil && v.choco == nil
}

// IsSemVer reports whether the union holds the semantic versioning variant.
func (v Versions) IsSemVer() bool {
	return v.semver != nil
}

// IsChoco reports whether the union holds the Chocolatey variant.
func (v Versions) IsChoco() bool {
	return v.choco != nil
}

// ToChoco returns the Chocolatey rendition of the version, converting from
// semver when needed.
func (v Versions) ToChoco() ChocoVersion {
	if v.choco != nil {
		return *v.choco
	}
	if v.semver != nil {
		return ChocoFromSemVer(*v.semver)
	}
	return ChocoVersion{}
}

// ToSemVer returns the semantic versioning rendition of the version,
// converting from the Chocolatey grammar when needed.
func (v Versions) ToSemVer() SemVersion {
	if v.semver != nil {
		return *v.semver
	}
	if v.choco != nil {
		return v.choco.SemVer()
	}
	return SemVersion{}
}

// String renders the version in its native grammar. The zero union renders
// as an empty string.
func (v Versions) String() string {
	switch {
	case v.semver != nil:
		return v.semver.String()
	case v.choco != nil:
		return v.choco.String()
	default:
		return ""
	}
}

// MarshalYAML renders the version as its native string form.
func (v Versions) MarshalYAML() (any, error) {
	return v.String(), nil
}

// UnmarshalYAML parses the version from a YAML scalar.
func (v *Versions) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
