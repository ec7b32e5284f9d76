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

// Package iso3166 validates ISO 3166-1 "num-3" numeric country codes.
//
// The three-digit country codes are defined by ISO 3166-1 (Codes for the
// representation of names of countries and their subdivisions — Part 1:
// Country code) as the "num-3" codes.
//
// # Validation model
//
// The package ships a static snapshot of the published num-3 assignments as
// an immutable, strictly ascending table, and tests membership with a binary
// search. Validation is an exact string match against that table: no
// trimming, no case folding, no zero-padding — "04" does not match "004".
// Consequently there is exactly one failure mode (errcode.NotISO3166);
// malformed shapes fail the same membership test as unassigned codes.
//
// # Substituting the lookup
//
// The lookup step is an apis.CodeLookup and can be replaced at construction
// time, e.g. to consult a live or larger ISO 3166 dataset:
//
//	v := iso3166.NewValidator(iso3166.WithLookup(apis.LookupFunc(myFeed.Has)))
//	err := v.Numeric3("004")
//
// The substitution is a construction-time choice, never a per-call parameter:
// the reference dataset is not expected to change at runtime, and validators
// are meant to be built once and shared.
//
// # Concurrency
//
// All functions and methods are pure and safe for concurrent use; the table
// is read-only and each call's search state is local.
package iso3166
