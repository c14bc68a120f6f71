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

package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVersionReport(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want versionReport
	}{
		{
			name: "four part version",
			raw:  "1.2.3.4",
			want: versionReport{
				Raw:             "1.2.3.4",
				Chocolatey:      "1.2.3.4",
				SemVerFromChoco: "1.2.3+4",
				SemVer:          noneValue,
				ChocoFromSemVer: noneValue,
			},
		},
		{
			name: "both grammars",
			raw:  "2.1.0-alpha.5",
			want: versionReport{
				Raw:             "2.1.0-alpha.5",
				Chocolatey:      "2.1.0-alpha0005",
				SemVerFromChoco: "2.1.0-alpha.5",
				SemVer:          "2.1.0-alpha.5",
				ChocoFromSemVer: "2.1.0-alpha0005",
			},
		},
		{
			name: "two part version is chocolatey only",
			raw:  "3.1",
			want: versionReport{
				Raw:             "3.1",
				Chocolatey:      "3.1",
				SemVerFromChoco: "3.1.0",
				SemVer:          noneValue,
				ChocoFromSemVer: noneValue,
			},
		},
		{
			name: "neither grammar",
			raw:  "not-a-version",
			want: versionReport{
				Raw:             "not-a-version",
				Chocolatey:      noneValue,
				SemVerFromChoco: noneValue,
				SemVer:          noneValue,
				ChocoFromSemVer: noneValue,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildVersionReport(tt.raw, false)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildVersionReportParsed(t *testing.T) {
	assert.True(t, buildVersionReport("1.2.3.4", false).parsed())
	assert.True(t, buildVersionReport("1.0.0", false).parsed())
	assert.False(t, buildVersionReport("not-a-version", false).parsed())
}

func TestBuildVersionReportWithFix(t *testing.T) {
	r := buildVersionReport("3.1", true)
	assert.True(t, strings.HasPrefix(r.ChocolateyFix, "3.1.0."),
		"fix version %q should carry a stamped build", r.ChocolateyFix)

	// A version already carrying a date build keeps it.
	r = buildVersionReport("3.1.0.20200826", true)
	assert.Equal(t, "3.1.0.20200826", r.ChocolateyFix)

	// Fix fields stay empty without the flag.
	r = buildVersionReport("3.1", false)
	assert.Empty(t, r.ChocolateyFix)
	assert.Empty(t, r.ChocoSemVerFix)
}

func TestVersionCommand(t *testing.T) {
	t.Run("writes json report to file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "report.json")

		root := New()
		err := root.Run(t.Context(), []string{"aer", "version", "--format", "json", "--output", out, "1.2.3.4"})
		require.NoError(t, err)

		content, err := os.ReadFile(out)
		require.NoError(t, err)

		var r versionReport
		require.NoError(t, json.Unmarshal(content, &r))
		assert.Equal(t, "1.2.3.4", r.Chocolatey)
		assert.Equal(t, "1.2.3+4", r.SemVerFromChoco)
		assert.Equal(t, noneValue, r.SemVer)
	})

	t.Run("multiple inputs produce a list", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "report.json")

		root := New()
		err := root.Run(t.Context(), []string{"aer", "version", "--format", "json", "--output", out, "3.1", "2.0.0"})
		require.NoError(t, err)

		content, err := os.ReadFile(out)
		require.NoError(t, err)

		var reports []versionReport
		require.NoError(t, json.Unmarshal(content, &reports))
		require.Len(t, reports, 2)
		assert.Equal(t, "3.1", reports[0].Raw)
		assert.Equal(t, "2.0.0", reports[1].SemVer)
	})

	t.Run("single unparseable input fails", func(t *testing.T) {
		root := New()
		err := root.Run(t.Context(), []string{"aer", "version", "--format", "json", "--output", os.DevNull, "bogus"})
		require.Error(t, err)
	})

	t.Run("mixed inputs succeed", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "report.json")

		root := New()
		err := root.Run(t.Context(), []string{"aer", "version", "--format", "json", "--output", out, "bogus", "1.0.0"})
		require.NoError(t, err)

		content, err := os.ReadFile(out)
		require.NoError(t, err)

		var reports []versionReport
		require.NoError(t, json.Unmarshal(content, &reports))
		require.Len(t, reports, 2)
		assert.Equal(t, noneValue, reports[0].Chocolatey)
		assert.Equal(t, "1.0.0", reports[1].SemVer)
	})

	t.Run("no arguments fails", func(t *testing.T) {
		root := New()
		err := root.Run(t.Context(), []string{"aer", "version"})
		require.Error(t, err)
	})

	t.Run("unknown format fails", func(t *testing.T) {
		root := New()
		err := root.Run(t.Context(), []string{"aer", "version", "--format", "xml", "1.0.0"})
		require.Error(t, err)
	})
}
