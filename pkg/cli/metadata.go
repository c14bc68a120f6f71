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

	"github.com/wormiecorp/aer/pkg/metadata"
	"github.com/wormiecorp/aer/pkg/serializer"
	ver "github.com/wormiecorp/aer/pkg/version"
)

func metadataCmd() *cli.Command {
	return &cli.Command{
		Name:                  "metadata",
		EnableShellCompletion: true,
		Usage:                 "Inspect a package metadata document",
		ArgsUsage:             "FILE",
		Description: `Load a package metadata document (YAML or JSON), apply defaults, and
print the result.

With --resolve the given upstream version string is run through the
package's updater configuration: it is translated to its Chocolatey
rendition, stamped with a fix build when the package uses fix
versions, and written back into the chocolatey section.

# Examples

Show a package document with defaults applied:
  aer metadata packages/astyle.aer.yml

Resolve a new upstream version for the package:
  aer metadata packages/astyle.aer.yml --resolve 3.4.12 --format yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "resolve",
				Usage: "Upstream version string to resolve through the package updater",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("path to a package metadata document is required")
			}

			meta, err := serializer.FromFile[metadata.PackageMetadata](path)
			if err != nil {
				return fmt.Errorf("failed to load package metadata from %q: %w", path, err)
			}

			slog.Debug("loaded package metadata", "path", path, "id", meta.ID)

			if raw := cmd.String("resolve"); raw != "" {
				resolved, err := meta.Updater.ResolveVersion(raw)
				if err != nil {
					return err
				}

				slog.Info("resolved package version",
					"id", meta.ID,
					"raw", raw,
					"version", resolved.String())

				if meta.Chocolatey == nil {
					meta.Chocolatey = metadata.NewChocolatey()
				}
				meta.Chocolatey.Version = ver.NewChoco(resolved)
			}

			return writeOutput(ctx, cmd, meta)
		},
	}
}
