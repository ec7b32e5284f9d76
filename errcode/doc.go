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

// Package errcode provides parsing, normalization and validation for seglint
// violation codes.
//
// A "code" names the exact check a linter performs and failed, such as
// "not_iso3166", "illegal_hour" or "non_digit_character". Codes are meant
// to be:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON/proto payloads and for lookup in registries.
//
// IMPORTANT: Empty codes ("") are NOT allowed. Every violation MUST have a
// non-empty code.
//
// This package defines the canonical representation, the functions that
// convert arbitrary user input to that canonical form, and the constants for
// the checks shipped with this library.
package errcode
