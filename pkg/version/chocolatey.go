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
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Error types for Chocolatey version parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrNoLeadingDigit    = errors.New("version string does not start with a digit")
	ErrTooManyComponents = errors.New("version has more than 4 numeric components")
	ErrComponentOverflow = errors.New("version component out of range")
)

// unstableMarker is the synthetic pre-release label inserted before a bare
// leading numeric pre-release token (e.g. "1.2-55" reads as unstable build 55).
const unstableMarker = "unstable"

// fixVersionThreshold is the lowest build number treated as a stamped
// YYYYMMDD fix date.
const fixVersionThreshold uint32 = 20070101

// nowFunc returns the current local time. Tests swap it out to pin the
// fix-version date.
var nowFunc = time.Now

// ChocoVersion represents a Chocolatey package version: up to four numeric
// components (major.minor.patch.build) followed by an optional pre-release
// tail. Patch and build are tracked separately from their values so that
// "1.2" and "1.2.0" render differently while comparing as equal.
//
// The build component is a 32-bit integer so it can hold date-shaped fix
// versions (see AddFix).
type ChocoVersion struct {
	major    uint8
	minor    uint8
	patch    uint8
	hasPatch bool
	build    uint32
	hasBuild bool
	pre      []Identifier
}

// New creates a two-component Chocolatey version.
func New(major, minor uint8) ChocoVersion {
	return ChocoVersion{major: major, minor: minor}
}

// WithPatch creates a three-component Chocolatey version.
func WithPatch(major, minor, patch uint8) ChocoVersion {
	v := New(major, minor)
	v.SetPatch(patch)
	return v
}

// WithBuild creates a four-component Chocolatey version.
func WithBuild(major, minor, patch uint8, build uint32) ChocoVersion {
	v := WithPatch(major, minor, patch)
	v.SetBuild(build)
	return v
}

// ParseChoco parses a Chocolatey version string.
//
// The first four digit runs separated by '.' populate major, minor, patch,
// and build. Scanning stops at the first rune that is neither a digit nor a
// dot; the remainder, minus any '+'-prefixed build metadata (which the
// Chocolatey grammar has no concept of and discards), becomes the
// pre-release tail.
//
// Returns ErrEmptyVersion for an empty string, ErrNoLeadingDigit when the
// string does not open with a digit, ErrTooManyComponents on a fifth digit
// run, and an error wrapping ErrComponentOverflow when a component exceeds
// its field width.
func ParseChoco(s string) (ChocoVersion, error) {
	if s == "" {
		return ChocoVersion{}, ErrEmptyVersion
	}
	if s[0] < '0' || s[0] > '9' {
		return ChocoVersion{}, ErrNoLeadingDigit
	}

	var v ChocoVersion
	part := 0
	var run strings.Builder

	commit := func() error {
		raw := run.String()
		run.Reset()
		switch part {
		case 0:
			n, err := parseComponent(raw, 8)
			v.major = uint8(n)
			return err
		case 1:
			n, err := parseComponent(raw, 8)
			v.minor = uint8(n)
			return err
		case 2:
			n, err := parseComponent(raw, 8)
			v.patch = uint8(n)
			v.hasPatch = true
			return err
		case 3:
			n, err := parseComponent(raw, 32)
			v.build = uint32(n)
			v.hasBuild = true
			return err
		default:
			return ErrTooManyComponents
		}
	}

scan:
	for _, ch := range s {
		switch {
		case ch >= '0' && ch <= '9':
			run.WriteRune(ch)
		case ch == '.':
			if err := commit(); err != nil {
				return ChocoVersion{}, err
			}
			part++
		default:
			break scan
		}
	}

	if run.Len() > 0 {
		if err := commit(); err != nil {
			return ChocoVersion{}, err
		}
	}

	// Everything after the numeric components is the pre-release suffix.
	v.pre = extractPre(strings.TrimLeft(s, "0123456789."))

	return v, nil
}

func parseComponent(raw string, bits int) (uint64, error) {
	n, err := strconv.ParseUint(raw, 10, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", ErrComponentOverflow, raw)
		}
		return 0, fmt.Errorf("invalid version component %q: %w", raw, err)
	}
	return n, nil
}

// Major returns the major component.
func (v ChocoVersion) Major() uint8 {
	return v.major
}

// Minor returns the minor component.
func (v ChocoVersion) Minor() uint8 {
	return v.minor
}

// Patch returns the patch component and whether it was set.
func (v ChocoVersion) Patch() (uint8, bool) {
	return v.patch, v.hasPatch
}

// Build returns the build component and whether it was set.
func (v ChocoVersion) Build() (uint32, bool) {
	return v.build, v.hasBuild
}

// Pre returns the pre-release identifier sequence.
func (v ChocoVersion) Pre() []Identifier {
	return v.pre
}

// SetPatch sets the patch component.
func (v *ChocoVersion) SetPatch(patch uint8) {
	v.patch = patch
	v.hasPatch = true
}

// SetBuild sets the build component. A build is only meaningful once patch
// exists, so an unset patch defaults to 0.
func (v *ChocoVersion) SetBuild(build uint32) {
	if !v.hasPatch {
		v.SetPatch(0)
	}
	v.build = build
	v.hasBuild = true
}

// SetPre replaces the pre-release identifier sequence.
func (v *ChocoVersion) SetPre(pre []Identifier) {
	v.pre = pre
}

// String renders the canonical Chocolatey form: "major.minor", then patch
// and build when set, then the pre-release tail. A numeric identifier that
// directly follows an alphanumeric one is rendered zero-padded to four
// digits with no separator ("alpha" + 54 becomes "alpha0054"); any other
// numeric identifier is preceded by a dash and padded the same way.
func (v ChocoVersion) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d.%d", v.major, v.minor)
	if v.hasPatch {
		fmt.Fprintf(&sb, ".%d", v.patch)
	}
	if v.hasBuild {
		fmt.Fprintf(&sb, ".%d", v.build)
	}

	prevAlpha := false
	for _, id := range v.pre {
		if id.IsNumeric() {
			if prevAlpha {
				fmt.Fprintf(&sb, "%04d", id.Num())
				prevAlpha = false
			} else {
				fmt.Fprintf(&sb, "-%04d", id.Num())
			}
		} else {
			fmt.Fprintf(&sb, "-%s", id)
			prevAlpha = true
		}
	}

	return sb.String()
}

func (v ChocoVersion) patchOr0() uint8 {
	if v.hasPatch {
		return v.patch
	}
	return 0
}

func (v ChocoVersion) buildOr0() uint32 {
	if v.hasBuild {
		return v.build
	}
	return 0
}

// Compare returns an integer comparing two versions:
// -1 if v < other, 0 if v == other, 1 if v > other.
// Unset patch and build components compare as zero, and the pre-release
// tail breaks ties with semantic versioning precedence (a pre-release sorts
// before the corresponding release: 1.2.0-55 < 1.2).
func (v ChocoVersion) Compare(other ChocoVersion) int {
	if v.major != other.major {
		if v.major < other.major {
			return -1
		}
		return 1
	}
	if v.minor != other.minor {
		if v.minor < other.minor {
			return -1
		}
		return 1
	}
	if p, op := v.patchOr0(), other.patchOr0(); p != op {
		if p < op {
			return -1
		}
		return 1
	}
	if b, ob := v.buildOr0(), other.buildOr0(); b != ob {
		if b < ob {
			return -1
		}
		return 1
	}
	return comparePre(v.pre, other.pre)
}

// Equal reports whether v and other are the same version, pre-release tail
// included, so it is consistent with Compare. The historical Chocolatey
// comparer ignored the pre-release tail for equality; that behavior survives
// as CoreEqual for callers that want it.
func (v ChocoVersion) Equal(other ChocoVersion) bool {
	return v.Compare(other) == 0
}

// CoreEqual reports whether the numeric components match, treating unset
// patch and build as zero and ignoring the pre-release tail.
func (v ChocoVersion) CoreEqual(other ChocoVersion) bool {
	return v.major == other.major &&
		v.minor == other.minor &&
		v.patchOr0() == other.patchOr0() &&
		v.buildOr0() == other.buildOr0()
}

// IsFixVersion reports whether the build component looks like a previously
// stamped YYYYMMDD fix date.
func (v ChocoVersion) IsFixVersion() bool {
	return v.hasBuild && v.build >= fixVersionThreshold
}

// AddFix stamps today's date (YYYYMMDD) into the build component, defaulting
// patch to 0 when unset. Versions whose build already holds a date at or
// above the 2007-01-01 threshold are left unchanged to avoid re-stamping.
func (v *ChocoVersion) AddFix() error {
	if v.IsFixVersion() {
		return nil
	}

	stamp := nowFunc().Format("20060102")
	fix, err := strconv.ParseUint(stamp, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid fix version %q: %w", stamp, err)
	}

	v.SetBuild(uint32(fix))
	return nil
}

// MarshalYAML renders the version as its canonical string.
func (v ChocoVersion) MarshalYAML() (any, error) {
	return v.String(), nil
}

// UnmarshalYAML parses the version from a YAML scalar.
func (v *ChocoVersion) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseChoco(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// extractPre splits a raw pre-release suffix into identifiers. The rules
// reproduce the Chocolatey normalization quirks:
//
//   - '-' and '.' are separators, and digits within a mixed token split off
//     from the letters ("alpha54" becomes "alpha", 54)
//   - a bare leading numeric token gets a synthetic "unstable" label
//   - the synthetic label is dropped again when a real label arrives later
//     in the string ("55-alpha" becomes "alpha", 55)
//   - anything from the first '+' on is build metadata and is discarded
func extractPre(s string) []Identifier {
	var result []Identifier
	var current, next string

	for _, ch := range s {
		if ch == '+' {
			break
		}

		if ch == '-' || ch == '.' {
			if id, ok := identifierFrom(current); ok {
				current = ""
				result = append(result, id)
			}
			if id, ok := identifierFrom(next); ok {
				result = append(result, id)
				next = ""
			}
			continue
		}

		digit := ch >= '0' && ch <= '9'
		switch {
		case digit:
			if len(result) == 0 && current == "" {
				result = append(result, AlphaNumeric(unstableMarker))
			} else if hasNonDigit(current) {
				if id, ok := identifierFrom(current); ok {
					current = ""
					result = append(result, id)
				}
			}
		case current == "" && len(result) > 1 && result[0] == AlphaNumeric(unstableMarker):
			// A real label supersedes the synthetic marker: drop the marker
			// and hold the trailing identifier until the label is complete.
			last := result[len(result)-1]
			result = result[1 : len(result)-1]
			next = last.String()
		case current != "" && len(result) > 0 && result[0] == AlphaNumeric(unstableMarker):
			result = result[1:]
			next = current
			current = ""
		}
		current += string(ch)
	}

	if id, ok := identifierFrom(current); ok {
		result = append(result, id)
	}
	if id, ok := identifierFrom(next); ok {
		result = append(result, id)
	}

	return result
}

// identifierFrom builds a single identifier from an accumulated token. A
// purely numeric token becomes a Numeric identifier; a mixed token keeps its
// letters and re-attaches the digit run zero-padded to four places, which is
// how Chocolatey canonicalizes pre-release ordinals.
func identifierFrom(s string) (Identifier, bool) {
	if s == "" {
		return Identifier{}, false
	}

	if !hasNonDigit(s) {
		if n, err := strconv.ParseUint(s, 10, 64); err == nil {
			return Numeric(n), true
		}
	}

	var letters, digits strings.Builder
	for _, ch := range s {
		if ch >= '0' && ch <= '9' {
			digits.WriteRune(ch)
		} else {
			letters.WriteRune(ch)
		}
	}

	if digits.Len() == 0 {
		return AlphaNumeric(letters.String()), true
	}
	if n, err := strconv.ParseUint(digits.String(), 10, 32); err == nil {
		return AlphaNumeric(fmt.Sprintf("%s%04d", letters.String(), n)), true
	}
	return AlphaNumeric(letters.String() + digits.String()), true
}

func hasNonDigit(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return true
		}
	}
	return false
}
