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

// NumericList validates that value is a non-empty concatenation of ISO
// 3166-1 num-3 country codes, e.g. "004270894".
//
// Each consecutive 3-byte group must pass the validator's membership test.
// On failure the violation's span covers the offending group: the first
// invalid 3-byte group, or the short trailing remainder (an empty value
// reports span 0,0).
func (v *Validator) NumericList(value string) error {
	pos := 0
	for ; pos+3 <= len(value); pos += 3 {
		if err := v.Numeric3(value[pos : pos+3]); err != nil {
			viol, _ := seglint.AsViolation(err)
			return viol.WithSpan(apis.Span{Offset: pos, Length: 3})
		}
	}
	// Trailing characters or an empty list are invalid.
	if pos != len(value) || len(value) == 0 {
		return seglint.New(errcode.NotISO3166,
			"value is not a sequence of ISO 3166 num-3 country codes",
			seglint.WithSpanOption(pos, len(value)-pos),
		)
	}
	return nil
}

// NumericList validates value against the built-in snapshot of num-3
// assignments. It is equivalent to NewValidator().NumericList(value) and is
// a seglint.Linter.
func NumericList(value string) error {
	return defaultValidator.NumericList(value)
}
