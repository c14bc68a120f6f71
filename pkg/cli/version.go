/*
Copyright © 2026 WormieCorp
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	ver "github.com/wormiecorp/aer/pkg/version"
)

// noneValue marks a grammar the input did not parse in.
const noneValue = "None"

// maxParseWorkers bounds the number of inputs translated concurrently.
const maxParseWorkers = 8

// versionReport holds the translations of a single raw version string.
// Fields for a grammar the input did not parse in hold "None".
type versionReport struct {
	Raw             string `json:"raw" yaml:"raw"`
	Chocolatey      string `json:"chocolatey" yaml:"chocolatey"`
	SemVerFromChoco string `json:"semver_from_choco" yaml:"semver_from_choco"`
	ChocolateyFix   string `json:"chocolatey_fix,omitempty" yaml:"chocolatey_fix,omitempty"`
	SemVer          string `json:"semver" yaml:"semver"`
	ChocoFromSemVer string `json:"choco_from_semver" yaml:"choco_from_semver"`
	ChocoSemVerFix  string `json:"choco_from_semver_fix,omitempty" yaml:"choco_from_semver_fix,omitempty"`
}

// parsed reports whether the input parsed in at least one grammar.
func (r versionReport) parsed() bool {
	return r.Chocolatey != noneValue || r.SemVer != noneValue
}

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:                  "version",
		EnableShellCompletion: true,
		Usage:                 "Translate version strings between the Chocolatey and semver grammars",
		ArgsUsage:             "VERSION [VERSION...]",
		Description: `Parse each version string in both supported grammars and print what it
translates to:
  - its Chocolatey rendition and the semver built from it
  - its strict semver rendition and the Chocolatey version built from that

A grammar the input does not parse in is reported as "None". With
--with-fix the date-stamped fix version is shown as well.

# Examples

Translate a four-part Chocolatey version:
  aer version 1.2.3.4

Translate several versions at once, as JSON:
  aer version --format json 3.1 2.1.0-alpha.5 5.0-beta-55

Show the fix version that a re-push would carry:
  aer version --with-fix 3.4.12`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "with-fix",
				Usage: "Also display what fix version would be created",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			raws := cmd.Args().Slice()
			if len(raws) == 0 {
				return fmt.Errorf("at least one version string is required")
			}

			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			slog.Info("translating versions", "count", len(raws))

			withFix := cmd.Bool("with-fix")
			reports := make([]versionReport, len(raws))

			g, _ := errgroup.WithContext(ctx)
			g.SetLimit(maxParseWorkers)
			for i, raw := range raws {
				g.Go(func() error {
					reports[i] = buildVersionReport(raw, withFix)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			allFailed := true
			for _, r := range reports {
				if r.parsed() {
					allFailed = false
					break
				}
			}
			if allFailed {
				return fmt.Errorf("none of the inputs parsed in either grammar")
			}

			if len(reports) == 1 {
				return writeOutput(ctx, cmd, reports[0])
			}
			return writeOutput(ctx, cmd, reports)
		},
	}
}

// buildVersionReport translates one raw version string in both grammars.
func buildVersionReport(raw string, withFix bool) versionReport {
	r := versionReport{
		Raw:             raw,
		Chocolatey:      noneValue,
		SemVerFromChoco: noneValue,
		SemVer:          noneValue,
		ChocoFromSemVer: noneValue,
	}

	if choco, err := ver.ParseChoco(raw); err == nil {
		r.Chocolatey = choco.String()
		r.SemVerFromChoco = choco.SemVer().String()
		if withFix {
			if err := choco.AddFix(); err != nil {
				slog.Error("failed to create fix version", "raw", raw, "error", err)
			} else {
				r.ChocolateyFix = choco.String()
			}
		}
	} else {
		slog.Debug("not a chocolatey version", "raw", raw, "error", err)
	}

	if sv, err := ver.ParseSemVer(raw); err == nil {
		r.SemVer = sv.String()
		choco := ver.ChocoFromSemVer(sv)
		r.ChocoFromSemVer = choco.String()
		if withFix {
			if err := choco.AddFix(); err != nil {
				slog.Error("failed to create fix version", "raw", raw, "error", err)
			} else {
				r.ChocoSemVerFix = choco.String()
			}
		}
	} else {
		slog.Debug("not a semantic version", "raw", raw, "error", err)
	}

	return r
}
