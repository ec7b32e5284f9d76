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

// HHMM validates a four-digit HHMM time of day: hour 00-23, minute 00-59.
//
// Violations:
//   - wrong length: HourWithMinuteTooShort / HourWithMinuteTooLong over the
//     whole value;
//   - non-digit: NonDigitCharacter over the first bad byte;
//   - hour out of range: IllegalHour over bytes 0-1;
//   - minute out of range: IllegalMinute over bytes 2-3.
//
// HHMM is a seglint.Linter.
func HHMM(value string) error {
	if len(value) != 4 {
		c := errcode.HourWithMinuteTooShort
		if len(value) > 4 {
			c = errcode.HourWithMinuteTooLong
		}
		return seglint.New(c, "value must be four digits (HHMM)",
			seglint.WithWholeSpanOption(value),
		)
	}
	if err := checkDigits(value); err != nil {
		return err
	}
	if twoDigits(value, 0) > 23 {
		return seglint.New(errcode.IllegalHour, "hour must be 00-23",
			seglint.WithSpanOption(0, 2),
		)
	}
	if twoDigits(value, 2) > 59 {
		return seglint.New(errcode.IllegalMinute, "minute must be 00-59",
			seglint.WithSpanOption(2, 2),
		)
	}
	return nil
}
