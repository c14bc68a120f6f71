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

// Package serializer provides encoding and decoding of report and metadata
// documents in multiple formats.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, compact representation
//   - Suitable for programmatic consumption
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - Suitable for package metadata files and version control
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened key/value text representation
//   - Suitable for terminal/console viewing
//   - Write-only (no deserialization support)
//
// # Usage - Encoding
//
// Write to stdout:
//
//	w := serializer.NewStdoutWriter(serializer.FormatYAML)
//	if err := w.Serialize(ctx, data); err != nil {
//	    log.Fatal(err)
//	}
//
// Write to a file, falling back to stdout when the path is empty:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatJSON, path)
//	if closer, ok := w.(serializer.Closer); ok {
//	    defer closer.Close()
//	}
//	if err := w.Serialize(ctx, data); err != nil {
//	    log.Fatal(err)
//	}
//
// # Usage - Decoding
//
// Read a file with format detection from the extension:
//
//	meta, err := serializer.FromFile[metadata.PackageMetadata]("pkg/aer.pkg.yml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Read from an arbitrary io.Reader:
//
//	r, err := serializer.NewReader(serializer.FormatJSON, strings.NewReader(doc))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var data map[string]any
//	if err := r.Deserialize(&data); err != nil {
//	    log.Fatal(err)
//	}
//
// # Format Detection
//
// File extension-based detection:
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .table, .txt → Table
//   - Other → JSON (default)
//
// # Resource Management
//
// Writers and Readers backed by files must be closed. Close is idempotent
// and a no-op for stdout/stdin-backed instances.
package serializer
