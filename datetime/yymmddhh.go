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

// YYMMDDHH validates an eight-digit YYMMDDHH date-with-hour: the first six
// digits must satisfy YYMMDD and the final two must be an hour 00-23.
//
// Violations:
//   - wrong length: DateWithHourTooShort / DateWithHourTooLong over the
//     whole value;
//   - non-digit: NonDigitCharacter over the first bad byte;
//   - bad date: whatever YYMMDD reports for the first six digits (its span
//     already falls inside this value, so it is passed through unchanged);
//   - hour out of range: IllegalHour over bytes 6-7.
//
// YYMMDDHH is a seglint.Linter.
func YYMMDDHH(value string) error {
	if len(value) != 8 {
		c := errcode.DateWithHourTooShort
		if len(value) > 8 {
			c = errcode.DateWithHourTooLong
		}
		return seglint.New(c, "value must be eight digits (YYMMDDHH)",
			seglint.WithWholeSpanOption(value),
		)
	}
	if err := checkDigits(value); err != nil {
		return err
	}
	if err := YYMMDD(value[:6]); err != nil {
		return err
	}
	if twoDigits(value, 6) > 23 {
		return seglint.New(errcode.IllegalHour, "hour must be 00-23",
			seglint.WithSpanOption(6, 2),
		)
	}
	return nil
}
