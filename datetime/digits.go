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

package datetime

import (
	"seglint.dev/seglint"
	"seglint.dev/seglint/errcode"
)

// checkDigits returns a NonDigitCharacter violation spanning the first
// non-digit byte of value, or nil when value is all ASCII digits.
func checkDigits(value string) error {
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return seglint.New(errcode.NonDigitCharacter,
				"value must contain only digits",
				seglint.WithSpanOption(i, 1),
			)
		}
	}
	return nil
}

// twoDigits decodes the two-digit decimal component at value[i:i+2].
// The caller must have already verified length and digit-ness.
func twoDigits(value string, i int) int {
	return int(value[i]-'0')*10 + int(value[i+1]-'0')
}
