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
	"os"
	"os/user"

	"github.com/wormiecorp/aer/pkg/version"
	"gopkg.in/yaml.v3"
)

// maintainerEnvVar overrides the default maintainer list.
const maintainerEnvVar = "AER_MAINTAINER"

// PackageMetadata stores common values that are shared between package
// managers. Manager-specific values live in the nested sections.
type PackageMetadata struct {
	// ID is the identifier of the package.
	ID string `yaml:"id" json:"id"`

	// Maintainers lists the people responsible for creating and
	// maintaining the package. Defaults to AER_MAINTAINER or the
	// current OS user when the document leaves it out.
	Maintainers []string `yaml:"maintainers,omitempty" json:"maintainers,omitempty"`

	// Summary is a short description of the software.
	Summary string `yaml:"summary,omitempty" json:"summary,omitempty"`

	// ProjectURL is the main endpoint (homepage) of the software.
	ProjectURL string `yaml:"project_url,omitempty" json:"project_url,omitempty"`

	License License `yaml:"license,omitempty" json:"license,omitempty"`

	// Chocolatey carries the values only used when creating Chocolatey
	// packages. Nil when the package does not target Chocolatey.
	Chocolatey *ChocolateyMetadata `yaml:"chocolatey,omitempty" json:"chocolatey,omitempty"`

	// Updater configures how new versions of the software are resolved.
	Updater *ChocolateyUpdater `yaml:"updater,omitempty" json:"updater,omitempty"`
}

// New creates package metadata with the specified identifier and the
// default maintainer list.
func New(id string) *PackageMetadata {
	return &PackageMetadata{
		ID:          id,
		Maintainers: DefaultMaintainers(),
	}
}

// HasChocolatey reports whether a chocolatey section is present.
func (m *PackageMetadata) HasChocolatey() bool {
	return m != nil && m.Chocolatey != nil
}

func (m *PackageMetadata) UnmarshalYAML(value *yaml.Node) error {
	type plain PackageMetadata
	var aux plain
	if err := value.Decode(&aux); err != nil {
		return err
	}
	*m = PackageMetadata(aux)
	if len(m.Maintainers) == 0 {
		m.Maintainers = DefaultMaintainers()
	}
	return nil
}

// DefaultMaintainers resolves the maintainer list used when a package
// document does not name any: the AER_MAINTAINER environment variable,
// falling back to the current OS user.
func DefaultMaintainers() []string {
	if m := os.Getenv(maintainerEnvVar); m != "" {
		return []string{m}
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return []string{u.Username}
	}
	return nil
}

// ChocolateyMetadata holds the values only used when creating Chocolatey
// packages. Values shared between package managers belong on
// PackageMetadata instead.
type ChocolateyMetadata struct {
	// LowercaseID forces the package to be created with a lowercase
	// identifier, as required by the Chocolatey Community repository.
	// Defaults to true.
	LowercaseID bool `yaml:"lowercase_id" json:"lowercase_id"`

	// Title of the software.
	Title string `yaml:"title,omitempty" json:"title,omitempty"`

	Copyright string `yaml:"copyright,omitempty" json:"copyright,omitempty"`

	// Version of the Chocolatey package. Updated automatically by the
	// updater, so it does not need to be set initially.
	Version version.Versions `yaml:"version,omitempty" json:"version,omitempty"`

	// Authors of the software the package is created for (not the
	// package maintainers).
	Authors []string `yaml:"authors,omitempty" json:"authors,omitempty"`

	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// RequireLicenseAcceptance reports whether users must accept the
	// software license on install. Defaults to true.
	RequireLicenseAcceptance bool `yaml:"require_license_acceptance" json:"require_license_acceptance"`

	DocumentationURL string `yaml:"documentation_url,omitempty" json:"documentation_url,omitempty"`
	IssuesURL        string `yaml:"issues_url,omitempty" json:"issues_url,omitempty"`

	Tags         []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	ReleaseNotes string   `yaml:"release_notes,omitempty" json:"release_notes,omitempty"`

	// Dependencies maps package identifiers to their minimum versions.
	Dependencies map[string]version.Versions `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
}

// NewChocolatey creates Chocolatey metadata with the defaults applied.
func NewChocolatey() *ChocolateyMetadata {
	return &ChocolateyMetadata{
		LowercaseID:              true,
		RequireLicenseAcceptance: true,
	}
}

func (c *ChocolateyMetadata) UnmarshalYAML(value *yaml.Node) error {
	type plain ChocolateyMetadata
	// Start from the defaults so absent keys keep them.
	aux := plain(*NewChocolatey())
	if err := value.Decode(&aux); err != nil {
		return err
	}
	*c = ChocolateyMetadata(aux)
	return nil
}
