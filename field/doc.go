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

// Package field provides parsing, normalization and validation for component
// paths.
//
// A "path" names the component of a larger structured identifier or message
// that a linted value was extracted from, such as "shipment.origin.country"
// or "item.pack_date". Linters themselves never see paths — they lint bare
// values — but the surfacing layers (HTTP/gRPC adapters, aggregated
// validation reports) use paths to tell the end user *which* component of
// their input failed.
//
// Paths are optional: the empty path means "the value was linted standalone".
package field
