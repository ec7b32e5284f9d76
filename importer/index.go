/*
   Copyright 2026 The Seglint Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package importer validates the single-character importer index used to
// disambiguate importers within facility identifiers.
package importer

import (
	"strings"

	"seglint.dev/seglint"
	"seglint.dev/seglint/errcode"
)

// indexCharset is the 64-character set permitted for an importer index:
// file-safe, URI-safe base64 characters.
const indexCharset = "-0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz"

// Index validates a one-character importer index.
//
// Violations:
//   - wrong length: ImporterIndexBadLength over the whole value;
//   - character outside the permitted set: InvalidImporterIndexCharacter
//     over the single character.
//
// Index is a seglint.Linter.
func Index(value string) error {
	if len(value) != 1 {
		return seglint.New(errcode.ImporterIndexBadLength,
			"importer index must be a single character",
			seglint.WithWholeSpanOption(value),
		)
	}
	if !strings.ContainsRune(indexCharset, rune(value[0])) {
		return seglint.New(errcode.InvalidImporterIndexCharacter,
			"importer index character is outside the permitted set",
			seglint.WithSpanOption(0, 1),
		)
	}
	return nil
}
