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

package metadata

import (
	"errors"
	"fmt"

	"github.com/wormiecorp/aer/pkg/version"
	"gopkg.in/yaml.v3"
)

// ErrUpdaterType is returned when a package document names an updater
// type that is not one of none, installer or archive.
var ErrUpdaterType = errors.New("invalid updater type")

// UpdaterType tells the updater what kind of artifact the parsed
// download link points at.
type UpdaterType string

const (
	// UpdaterTypeNone disables artifact handling.
	UpdaterTypeNone UpdaterType = "none"
	// UpdaterTypeInstaller treats the artifact as an installer binary.
	UpdaterTypeInstaller UpdaterType = "installer"
	// UpdaterTypeArchive treats the artifact as a compressed archive.
	UpdaterTypeArchive UpdaterType = "archive"
)

func (t UpdaterType) IsValid() bool {
	switch t {
	case UpdaterTypeNone, UpdaterTypeInstaller, UpdaterTypeArchive:
		return true
	default:
		return false
	}
}

func (t *UpdaterType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		*t = UpdaterTypeNone
		return nil
	}
	parsed := UpdaterType(s)
	if !parsed.IsValid() {
		return fmt.Errorf("%w: %q", ErrUpdaterType, s)
	}
	*t = parsed
	return nil
}

// ParseURL names the page the updater reads version information from,
// with an optional regex selecting the link on that page.
//
// In YAML it accepts a bare scalar or a mapping:
//
//	parse_url: https://example.org/releases
//	parse_url:
//	  url: https://example.org/releases
//	  regex: 'v(?P<version>[\d\.]+)'
type ParseURL struct {
	URL   string `yaml:"url" json:"url"`
	Regex string `yaml:"regex,omitempty" json:"regex,omitempty"`
}

func (p ParseURL) MarshalYAML() (any, error) {
	if p.Regex == "" {
		return p.URL, nil
	}
	type full ParseURL
	return full(p), nil
}

func (p *ParseURL) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*p = ParseURL{URL: s}
		return nil
	}

	type full ParseURL
	var aux full
	if err := value.Decode(&aux); err != nil {
		return fmt.Errorf("failed to decode parse url: %w", err)
	}
	*p = ParseURL(aux)
	return nil
}

// ChocolateyUpdater configures how new versions of a Chocolatey package
// are resolved from upstream version strings.
type ChocolateyUpdater struct {
	// Embedded embeds the downloaded artifact in the package instead of
	// downloading it at install time.
	Embedded bool `yaml:"embedded" json:"embedded"`

	Type UpdaterType `yaml:"type" json:"type"`

	ParseURL *ParseURL `yaml:"parse_url,omitempty" json:"parse_url,omitempty"`

	// Regexes are named expressions applied when resolving artifacts,
	// e.g. per-architecture download links.
	Regexes map[string]string `yaml:"regexes,omitempty" json:"regexes,omitempty"`

	// UseFixVersion stamps a date-based build component on resolved
	// versions, so a package can be re-pushed for the same upstream
	// release.
	UseFixVersion bool `yaml:"use_fix_version" json:"use_fix_version"`
}

// ResolveVersion translates a raw upstream version string into the
// Chocolatey version the package will carry. The string is parsed in
// either grammar; when UseFixVersion is set a fix build is stamped on
// versions that do not already carry one.
func (u *ChocolateyUpdater) ResolveVersion(raw string) (version.ChocoVersion, error) {
	vs, err := version.Parse(raw)
	if err != nil {
		return version.ChocoVersion{}, fmt.Errorf("failed to resolve version %q: %w", raw, err)
	}

	cv := vs.ToChoco()
	if u != nil && u.UseFixVersion {
		if err := cv.AddFix(); err != nil {
			return version.ChocoVersion{}, fmt.Errorf("failed to stamp fix version on %q: %w", raw, err)
		}
	}
	return cv, nil
}
