// Package cli implements the command-line interface for the aer tool.
//
// # Overview
//
// The aer CLI translates version strings between the Chocolatey package
// versioning grammar and strict semantic versioning, and inspects the
// package metadata documents the updater layer consumes.
//
// # Commands
//
// version - Translate version strings:
//
//	aer version [--with-fix] [--output FILE] [--format table|json|yaml] VERSION...
//
// Parses each input in both grammars and prints, per input, the raw
// string, its Chocolatey rendition, the semver built from that, its
// strict semver rendition, and the Chocolatey version built from the
// semver. A grammar the input does not parse in is reported as "None".
//
// metadata - Inspect a package metadata document:
//
//	aer metadata [--resolve VERSION] [--output FILE] [--format table|json|yaml] FILE
//
// Loads a YAML or JSON package document, applies defaults, and prints the
// result. With --resolve, the given upstream version is run through the
// package's updater configuration first.
//
// # Global Flags
//
//	--log-level    Set logging verbosity (debug, info, warn, error)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// Table (default):
//   - Flattened field/value pairs
//   - Suitable for terminal viewing
//
// JSON:
//   - Machine-parseable, compact
//   - Suitable for programmatic consumption
//
// YAML:
//   - Human-readable, preserves structure
//   - Suitable for version control
//
// # Usage Examples
//
// Translate a four-part version:
//
//	aer version 1.2.3.4
//
// Translate several versions to JSON, including fix versions:
//
//	aer version --with-fix --format json 3.1 2.1.0-alpha.5
//
// Resolve a new upstream version for a package:
//
//	aer metadata packages/astyle.aer.yml --resolve 3.4.12
//
// # Environment Variables
//
//	LOG_LEVEL   Set logging verbosity (debug, info, warn, error)
//	AER_OUTPUT  Default output file path
//	AER_FORMAT  Default output format
//
// # Exit Codes
//
//	0  Success (including inputs that fail to parse in one grammar)
//	1  General error, or no input parsed in either grammar
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/version - Version parsing, translation, and comparison
//   - pkg/metadata - Package metadata documents
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/wormiecorp/aer/pkg/cli.version=1.0.0'"
package cli
