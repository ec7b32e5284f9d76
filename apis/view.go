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

package apis

// ViolationView is a minimal, serializable representation of a validation
// failure.
//
// This is *not* the concrete type used internally — it is the shape that we
// are comfortable exposing over the wire or logging. Keeping it here (in
// apis) allows HTTP and gRPC adapters to share the same struct.
type ViolationView struct {
	// Code is the canonical violation code, e.g. "not_iso3166",
	// "illegal_minute".
	//
	// Implementations SHOULD store only normalized, validated codes here.
	Code string `json:"code"`

	// Field is the optional dot-separated path of the identifier component
	// the violation applies to, e.g. "shipment.origin.country". Empty when
	// the value was linted standalone.
	Field string `json:"field,omitempty"`

	// Span locates the offending bytes within the linted value.
	Span Span `json:"span"`

	// Message is an optional human-friendly message.
	Message string `json:"message,omitempty"`
}
