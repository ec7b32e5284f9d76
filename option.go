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

import "seglint.dev/seglint/apis"

// Option is a functional option for constructing or transforming a Violation.
// It always takes a *Violation and returns a (possibly new) *Violation.
type Option func(*Violation) *Violation

// WithSpanOption sets the offending span on the violation being constructed.
// Intended to be used with New(...).
func WithSpanOption(offset, length int) Option {
	return func(v *Violation) *Violation {
		return v.WithSpan(apis.Span{Offset: offset, Length: length})
	}
}

// WithWholeSpanOption marks the entire value as offending.
// Intended to be used with New(...) by linters whose values have no internal
// structure to isolate a sub-span.
func WithWholeSpanOption(value string) Option {
	return func(v *Violation) *Violation {
		return v.WithSpan(apis.Whole(value))
	}
}

// WithDetailOption adds a single detail key/value on construction.
// Intended to be used with New(...).
func WithDetailOption(k string, val any) Option {
	return func(v *Violation) *Violation {
		return v.WithDetail(k, val)
	}
}

// WithDetailsOption merges multiple detail key/values on construction.
// Intended to be used with New(...).
func WithDetailsOption(kv map[string]any) Option {
	return func(v *Violation) *Violation {
		return v.WithDetails(kv)
	}
}

// WithCauseOption attaches a cause on construction.
// Intended to be used with New(...).
func WithCauseOption(err error) Option {
	return func(v *Violation) *Violation {
		return v.WithCause(err)
	}
}
