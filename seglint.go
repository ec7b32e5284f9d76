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

package seglint

import (
	"errors"
	"fmt"

	"seglint.dev/seglint/apis"
	"seglint.dev/seglint/errcode"
)

// Linter is the contract shared by every validation routine in this library.
//
// A Linter inspects a single value — one component of a larger structured
// identifier — and returns nil when the value is well-formed, or a *Violation
// describing exactly what is wrong and where.
//
// Linters are pure functions over immutable reference data: no side effects,
// no I/O, safe to call concurrently.
type Linter func(value string) error

// Violation is the canonical rich validation failure for seglint.
//
// It carries:
//   - Code: the normalized machine-readable violation code (required);
//   - Span: the byte offset and length of the offending part of the value;
//   - Message: human-oriented description (what went wrong);
//   - Details: arbitrary key/value payload (for logging / HTTP body);
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// All mutation helpers (WithX) return a shallow copy, so Violation instances
// can be safely shared and modified in a functional style.
type Violation struct {
	// Code is the primary classification of the failure, e.g. "not_iso3166",
	// "illegal_hour". Must be a normalized code from seglint/errcode.
	Code errcode.Code

	// Span locates the bad data inside the linted value so that callers can
	// highlight it. For linters whose value has no internal structure the
	// span covers the whole value.
	Span apis.Span

	// Message is a human-readable explanation. This is what should end up
	// in logs or in the "message" field of an error response.
	Message string

	// Details is an optional, shallow map of extra fields. Use this to expose
	// structured data about the failure (expected lengths, limits, etc.).
	// The map is treated as immutable: WithDetail/WithDetails always copy it.
	Details map[string]any

	// Cause holds the wrapped underlying error (if any). This is used for
	// errors.Is / errors.As and for debugging in lower layers.
	Cause error
}

// New is a convenience constructor for Violation.
//
// Usage:
//
//	return seglint.New(errcode.IllegalMinute, "minute must be 00-59",
//	    seglint.WithSpanOption(2, 2),
//	)
//
// It always returns a *new* Violation and applies all provided options in order.
func New(c errcode.Code, msg string, opts ...Option) *Violation {
	v := &Violation{Code: c, Message: msg}
	for _, opt := range opts {
		v = opt(v)
	}
	return v
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<code>: <message>
//
// This makes the violation both human- and machine-scannable in logs. The
// span is deliberately absent from the string form; callers that want to
// highlight the bad bytes read it from the Span field.
func (v *Violation) Error() string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", v.Code, v.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (v *Violation) Unwrap() error { return v.Cause }

// ErrorCode implements apis.CodedError.
func (v *Violation) ErrorCode() string { return string(v.Code) }

// ErrorSpan implements apis.SpannedError.
func (v *Violation) ErrorSpan() apis.Span { return v.Span }

// WithSpan returns a shallow copy of v with the given span set.
// The original violation is not modified.
func (v *Violation) WithSpan(s apis.Span) *Violation {
	cp := *v
	cp.Span = s
	return &cp
}

// WithMessage returns a shallow copy of v with a replaced human message.
// Useful when a higher layer wants to keep the Code/Span but present the
// message in a different language or context.
func (v *Violation) WithMessage(msg string) *Violation {
	cp := *v
	cp.Message = msg
	return &cp
}

// WithDetail returns a shallow copy of v with one extra key/value in Details.
//
// The method always copies the map to preserve immutability. This prevents
// surprising modifications across goroutines or shared violation values.
func (v *Violation) WithDetail(k string, val any) *Violation {
	cp := *v
	// No details yet — create a new single-entry map.
	if len(cp.Details) == 0 {
		cp.Details = map[string]any{k: val}
		return &cp
	}
	// Copy existing details and add one more.
	m := make(map[string]any, len(cp.Details)+1)
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	m[k] = val
	cp.Details = m
	return &cp
}

// WithDetails returns a shallow copy of v with all provided kv merged into Details.
//
// If the Violation already has Details, both maps are copied and merged,
// with kv taking precedence on key conflicts.
func (v *Violation) WithDetails(kv map[string]any) *Violation {
	if len(kv) == 0 {
		return v
	}
	cp := *v
	// No existing details — just copy kv.
	if len(cp.Details) == 0 {
		m := make(map[string]any, len(kv))
		for k, val := range kv {
			m[k] = val
		}
		cp.Details = m
		return &cp
	}
	// Merge existing + new.
	m := make(map[string]any, len(cp.Details)+len(kv))
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	for k, val := range kv {
		m[k] = val
	}
	cp.Details = m
	return &cp
}

// WithCause returns a shallow copy of v with the given underlying cause attached.
// If err is nil, the original violation is returned unchanged.
func (v *Violation) WithCause(err error) *Violation {
	if err == nil {
		return v
	}
	cp := *v
	cp.Cause = err
	return &cp
}

// AsViolation unwraps err into a *Violation, following wrapped error chains.
// It returns (nil, false) when err is nil or carries no Violation.
func AsViolation(err error) (*Violation, bool) {
	if err == nil {
		return nil, false
	}
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
