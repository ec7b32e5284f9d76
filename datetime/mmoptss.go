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

// MMOptSS validates minutes with optional seconds: either two digits (MM) or
// four digits (MMSS), minute 00-59 and second 00-59.
//
// Violations:
//   - length neither 2 nor 4: MinutesWithSecondsBadLength over the whole value;
//   - non-digit: NonDigitCharacter over the first bad byte;
//   - minute out of range: IllegalMinute over bytes 0-1;
//   - second out of range: IllegalSecond over bytes 2-3.
//
// MMOptSS is a seglint.Linter.
func MMOptSS(value string) error {
	if len(value) != 2 && len(value) != 4 {
		return seglint.New(errcode.MinutesWithSecondsBadLength,
			"value must be two digits (MM) or four digits (MMSS)",
			seglint.WithWholeSpanOption(value),
		)
	}
	if err := checkDigits(value); err != nil {
		return err
	}
	if twoDigits(value, 0) > 59 {
		return seglint.New(errcode.IllegalMinute, "minute must be 00-59",
			seglint.WithSpanOption(0, 2),
		)
	}
	if len(value) == 4 && twoDigits(value, 2) > 59 {
		return seglint.New(errcode.IllegalSecond, "second must be 00-59",
			seglint.WithSpanOption(2, 2),
		)
	}
	return nil
}
