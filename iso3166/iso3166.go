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

package iso3166

import (
	"seglint.dev/seglint"
	"seglint.dev/seglint/apis"
	"seglint.dev/seglint/errcode"
)

// Validator checks values against a set of ISO 3166-1 num-3 country codes.
//
// The zero value is not usable; build instances with NewValidator. A
// Validator is immutable after construction and safe for concurrent use.
type Validator struct {
	// lookup answers the membership question. Defaults to the built-in
	// sorted-table binary search; replaced via WithLookup.
	lookup apis.CodeLookup
}

// Option configures a Validator at construction time.
type Option func(*Validator)

// WithLookup replaces the default table-backed lookup with a caller-supplied
// one, e.g. backed by a live or larger ISO 3166 dataset. A nil lookup is
// ignored and the default is kept.
//
// This is deliberately a construction-time option rather than a per-call
// parameter: the reference dataset is not expected to change at runtime.
func WithLookup(l apis.CodeLookup) Option {
	return func(v *Validator) {
		if l != nil {
			v.lookup = l
		}
	}
}

// NewValidator builds a Validator. Without options it uses the built-in
// snapshot of the published num-3 assignments.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{lookup: Table()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Table returns the default lookup: a binary search over the package's
// immutable sorted snapshot of num-3 assignments. Exposed so that callers
// can compose it (e.g. consult their own dataset first and fall back to the
// snapshot).
func Table() apis.CodeLookup { return tableLookup{} }

// Numeric3 validates that value is an ISO 3166-1 num-3 country code.
//
// It returns nil when value exactly equals one entry of the reference set —
// exact string equality, including length, so "04" does not match "004".
// Otherwise it returns a *seglint.Violation with code errcode.NotISO3166
// whose span covers the whole value: country codes have no internal
// structure to isolate a finer-grained sub-span.
//
// There is no distinct failure for malformed shape (wrong length, non-digit
// characters); such input simply fails the membership test.
func (v *Validator) Numeric3(value string) error {
	if v.lookup.Contains(value) {
		return nil
	}
	return seglint.New(errcode.NotISO3166,
		"value is not an ISO 3166 num-3 country code",
		seglint.WithWholeSpanOption(value),
	)
}

// defaultValidator backs the package-level functions. Built once; immutable.
var defaultValidator = NewValidator()

// Numeric3 validates value against the built-in snapshot of num-3
// assignments. It is equivalent to NewValidator().Numeric3(value) and is a
// seglint.Linter.
func Numeric3(value string) error {
	return defaultValidator.Numeric3(value)
}
