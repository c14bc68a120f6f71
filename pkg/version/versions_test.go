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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParsePicksGrammar(t *testing.T) {
	t.Run("four part version parses as chocolatey", func(t *testing.T) {
		v, err := Parse("5.1.6.4")
		require.NoError(t, err)

		assert.True(t, v.IsChoco())
		assert.True(t, v.ToChoco().Equal(WithBuild(5, 1, 6, 4)))
	})

	t.Run("three part version parses as semver", func(t *testing.T) {
		v, err := Parse("5.1.0")
		require.NoError(t, err)

		assert.True(t, v.IsSemVer())
		assert.Equal(t, MustParseSemVer("5.1.0"), v.ToSemVer())
	})

	t.Run("two part version falls back to chocolatey", func(t *testing.T) {
		v, err := Parse("3.2")
		require.NoError(t, err)
		assert.True(t, v.IsChoco())
	})

	t.Run("invalid version fails with chocolatey error", func(t *testing.T) {
		_, err := Parse("invalid")
		assert.ErrorIs(t, err, ErrNoLeadingDigit)
	})

	t.Run("five part version fails", func(t *testing.T) {
		_, err := Parse("2.0.2.5.1")
		assert.ErrorIs(t, err, ErrTooManyComponents)
	})
}

func TestVersionsToSemVer(t *testing.T) {
	t.Run("converts chocolatey variant", func(t *testing.T) {
		v := NewChoco(mustParseChoco(t, "2.1.0.5-alpha0055"))
		assert.Equal(t, MustParseSemVer("2.1.0-alpha.55+5"), v.ToSemVer())
	})

	t.Run("returns semver variant as is", func(t *testing.T) {
		v := MustParse("5.2.2-alpha.5+55")
		assert.Equal(t, MustParseSemVer("5.2.2-alpha.5+55"), v.ToSemVer())
	})
}

func TestVersionsToChoco(t *testing.T) {
	t.Run("converts semver variant", func(t *testing.T) {
		v := MustParse("1.0.5-beta.55+99")
		require.True(t, v.IsSemVer())
		assert.True(t, v.ToChoco().Equal(mustParseChoco(t, "1.0.5-beta0055")))
	})

	t.Run("returns chocolatey variant as is", func(t *testing.T) {
		v := NewChoco(mustParseChoco(t, "5.2.1.56-unstable-0050"))
		assert.True(t, v.ToChoco().Equal(mustParseChoco(t, "5.2.1.56-unstable0050")))
	})
}

func TestVersionsString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "4.2.1-alpha.5+6", want: "4.2.1-alpha.5+6"},
		{input: "3.2", want: "3.2"},
		{input: "5.2.1.6-beta-0005", want: "5.2.1.6-beta0005"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}

	t.Run("chocolatey variant renders canonical form", func(t *testing.T) {
		v := NewChoco(mustParseChoco(t, "2.1.0-unstable-0050"))
		assert.Equal(t, "2.1.0-unstable0050", v.String())
	})

	t.Run("zero union renders empty", func(t *testing.T) {
		assert.Empty(t, Versions{}.String())
	})
}

func TestVersionsYAML(t *testing.T) {
	type doc struct {
		Version Versions `yaml:"version"`
	}

	t.Run("round trip", func(t *testing.T) {
		in := doc{Version: MustParse("1.0.5-beta.55+99")}
		raw, err := yaml.Marshal(in)
		require.NoError(t, err)
		assert.Equal(t, "version: 1.0.5-beta.55+99\n", string(raw))

		var out doc
		require.NoError(t, yaml.Unmarshal(raw, &out))
		assert.Equal(t, in.Version.String(), out.Version.String())
	})

	t.Run("invalid scalar", func(t *testing.T) {
		var out doc
		err := yaml.Unmarshal([]byte("version: not-a-version\n"), &out)
		assert.ErrorIs(t, err, ErrNoLeadingDigit)
	})
}
