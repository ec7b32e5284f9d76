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

// CodedError represents a validation failure that is classified into a
// well-defined, machine-readable violation *code*.
//
// A code names the exact check that failed, such as:
//   - "not_iso3166"         — value is not an ISO 3166 num-3 country code,
//   - "non_digit_character" — a digit-only value contains a non-digit,
//   - "illegal_hour"        — the hour component is out of range.
//
// Codes are intended to be stable and enumerable. They are the primary value
// that higher-level adapters (HTTP, gRPC) and aggregated validation reports
// key on.
//
// Implementations are expected to return a *canonicalized* code string — i.e.,
// normalized to the format enforced by the seglint/errcode package (lowercase,
// underscores, length limits, etc.). Adapters should treat unknown or empty
// codes as internal errors at the boundary.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable violation code.
	//
	// The returned value MUST be non-empty and MUST already be normalized
	// according to the rules of the errcode package. Callers should not try
	// to "fix" or "guess" the value here.
	ErrorCode() string
}

// SpannedError represents a validation failure that can locate the offending
// bytes inside the linted value.
//
// While the code answers "which check failed?", the span answers "where in
// the value?". The two together are everything a caller needs to render an
// error with the bad run highlighted.
//
// Having a separate interface lets surfacing code gracefully degrade: an
// error that carries no span is still reportable, just without highlighting.
type SpannedError interface {
	error

	// ErrorSpan returns the location of the offending bytes. A zero Span
	// with Length 0 means the whole (empty) value was rejected.
	ErrorSpan() Span
}

// CausedError represents an error that exposes its underlying cause.
//
// While Go 1.13 introduced errors.Unwrap, having this interface in apis lets
// us work with wrapped errors in places where we want to keep the contract
// explicit rather than depend on errors.As / errors.Is directly.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this one, if any.
	// May return nil.
	Cause() error
}
