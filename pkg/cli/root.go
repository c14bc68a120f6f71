/*
Copyright © 2026 WormieCorp
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/wormiecorp/aer/pkg/logging"
	"github.com/wormiecorp/aer/pkg/serializer"
)

const (
	name           = "aer"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write output to the specified file path (default: stdout)",
		Sources: cli.EnvVars("AER_OUTPUT"),
	}

	formatFlag = &cli.StringFlag{
		Name: "format",
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
		Value:   string(serializer.FormatTable),
		Sources: cli.EnvVars("AER_FORMAT"),
	}

	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars("LOG_LEVEL"),
	}
)

// New builds the root command with all subcommands attached.
func New() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Package version translation toolkit",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Flags:                 []cli.Flag{logLevelFlag},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			versionCmd(),
			metadataCmd(),
		},
	}
}

// Execute runs the root command. It is called by main.main() and handles
// SIGINT/SIGTERM for graceful shutdown.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return New().Run(ctx, os.Args)
}
