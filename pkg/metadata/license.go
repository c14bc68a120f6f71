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
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"
)

// License identifies the license of the packaged software, as an SPDX-style
// expression, the remote location of the license text, or both.
//
// In YAML it accepts a bare scalar or a mapping:
//
//	license: MIT
//	license: https://some-page.org/license
//	license:
//	  expression: MIT
//	  location: https://some-page.org/license
//
// A bare scalar is treated as a location when it parses as an http(s) URL,
// otherwise as an expression. Specifying both is preferred when targeting
// multiple package managers; the Chocolatey repository usually requires a
// license url.
type License struct {
	Expression string `yaml:"expression,omitempty" json:"expression,omitempty"`
	LocationURL string `yaml:"location,omitempty" json:"location,omitempty"`
}

// IsZero reports whether no license information is set. yaml.v3 uses it to
// honor the omitempty tag on struct-typed fields.
func (l License) IsZero() bool {
	return l.Expression == "" && l.LocationURL == ""
}

// URL returns the location of the license text, or "" when only an
// expression is known.
func (l License) URL() string {
	return l.LocationURL
}

func (l License) String() string {
	switch {
	case l.Expression != "" && l.LocationURL != "":
		return fmt.Sprintf("%s (%s)", l.Expression, l.LocationURL)
	case l.LocationURL != "":
		return l.LocationURL
	default:
		return l.Expression
	}
}

func (l License) MarshalYAML() (any, error) {
	switch {
	case l.Expression != "" && l.LocationURL != "":
		type full License
		return full(l), nil
	case l.LocationURL != "":
		return l.LocationURL, nil
	default:
		return l.Expression, nil
	}
}

func (l *License) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		if isHTTPURL(s) {
			*l = License{LocationURL: s}
		} else {
			*l = License{Expression: s}
		}
		return nil
	}

	type full License
	var aux full
	if err := value.Decode(&aux); err != nil {
		return fmt.Errorf("failed to decode license: %w", err)
	}
	*l = License(aux)
	return nil
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
