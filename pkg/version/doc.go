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

// Package version translates between two incompatible versioning grammars:
// the Chocolatey four-part numeric scheme (major.minor.patch.build with
// zero-padded pre-release ordinals) and strict Semantic Versioning 2.0.0.
//
// The two grammars disagree on arity, separator semantics, and what counts
// as a valid pre-release identifier, so crossing between them is a lossy,
// rule-based re-encoding rather than a reformat. ChocoVersion and SemVersion
// model each grammar; Versions is the union produced by Parse, which tries
// strict semver first and falls back to the Chocolatey parser.
//
// Typical flow:
//
//	v, err := version.Parse("1.0.5-beta.55+99")
//	if err != nil { ... }
//	choco := v.ToChoco()          // 1.0.5-beta0055 (build metadata dropped)
//	sv := choco.SemVer()          // back to a semver value
//
// AddFix stamps a date-shaped build number (YYYYMMDD) into a Chocolatey
// version to force a new package revision without a source version bump.
//
// Everything in this package is a pure function over its inputs except the
// explicit ChocoVersion mutators; values are safe to share across goroutines
// as long as each goroutine mutates only values it owns.
package version
