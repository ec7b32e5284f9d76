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

// Package registry maps linter names to linter functions.
//
// A Registry is built once, from the library defaults plus any caller
// overrides, and is immutable afterwards. Construction validates every
// name and fails fast on malformed or conflicting registrations, so a
// successfully built Registry can be shared freely between goroutines.
//
// The usual lifecycle is:
//
//	reg, err := registry.New(
//		registry.WithLinter("orderref", lintOrderRef),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	lint, ok := reg.Lookup("iso3166")
//
// Callers that want full control over the linter set start from an empty
// registry with WithoutDefaults and register each linter explicitly.
package registry
