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
)

func BenchmarkParseChoco(b *testing.B) {
	tests := []string{
		"3",
		"1.0",
		"4.5.1",
		"3.5.0.2342",
		"3.3-alpha001",
		"4.2.1-alpha54.2",
		"6.1.0-55-alpha",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		input := tests[i%len(tests)]
		_, _ = ParseChoco(input)
	}
}

func BenchmarkParseChocoPlain(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ParseChoco("4.5.1")
	}
}

func BenchmarkParseChocoPreRelease(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ParseChoco("4.2.1-alpha54.2")
	}
}

func BenchmarkChocoString(b *testing.B) {
	v, _ := ParseChoco("4.2.1-alpha54.2")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}

func BenchmarkChocoSemVer(b *testing.B) {
	v, _ := ParseChoco("2.1.0.5-alpha0055")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.SemVer()
	}
}

func BenchmarkChocoFromSemVer(b *testing.B) {
	sv := MustParseSemVer("1.0.5-beta.55+99")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ChocoFromSemVer(sv)
	}
}

func BenchmarkUnionParse(b *testing.B) {
	tests := []string{
		"5.1.0",
		"5.1.6.4",
		"1.0.5-beta.55+99",
		"3.2",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		input := tests[i%len(tests)]
		_, _ = Parse(input)
	}
}
