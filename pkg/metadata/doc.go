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

// Package metadata holds the user-supplied data describing a package,
// shared across package managers plus a Chocolatey-specific section.
//
// A minimal package file looks like:
//
//	id: astyle
//	summary: A Free, Fast, and Small Automatic Formatter
//	project_url: http://astyle.sourceforge.net/
//	license:
//	  expression: MIT
//	  location: https://sourceforge.net/p/astyle/code/HEAD/tree/trunk/LICENSE.md
//	chocolatey:
//	  authors: [Jim Pattee, Tal Davidson]
//	  version: 3.1.0
//	updater:
//	  type: archive
//	  use_fix_version: true
//	  parse_url:
//	    url: https://sourceforge.net/projects/astyle/files/astyle/
//	    regex: 'astyle[ _](?P<version>[\d\.]+)'
//
// Documents are read with pkg/serializer (YAML or JSON); version fields
// marshal as plain strings in their native grammar.
package metadata
