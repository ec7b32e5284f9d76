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

// daysInMonth maps month number (1-12) to its length in a non-leap year.
var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// YYMMDD validates a six-digit YYMMDD date: month 01-12 and a day that
// exists in that month. February 29 is accepted when the two-digit year is
// divisible by four.
//
// Violations:
//   - wrong length: DateTooShort / DateTooLong over the whole value;
//   - non-digit: NonDigitCharacter over the first bad byte;
//   - month out of range: IllegalMonth over bytes 2-3;
//   - day out of range for the month: IllegalDay over bytes 4-5.
//
// YYMMDD is a seglint.Linter.
func YYMMDD(value string) error {
	if len(value) != 6 {
		c := errcode.DateTooShort
		if len(value) > 6 {
			c = errcode.DateTooLong
		}
		return seglint.New(c, "value must be six digits (YYMMDD)",
			seglint.WithWholeSpanOption(value),
		)
	}
	if err := checkDigits(value); err != nil {
		return err
	}
	month := twoDigits(value, 2)
	if month < 1 || month > 12 {
		return seglint.New(errcode.IllegalMonth, "month must be 01-12",
			seglint.WithSpanOption(2, 2),
		)
	}
	maxDay := daysInMonth[month]
	if month == 2 && twoDigits(value, 0)%4 == 0 {
		maxDay = 29
	}
	if day := twoDigits(value, 4); day < 1 || day > maxDay {
		return seglint.New(errcode.IllegalDay, "day does not exist in the given month",
			seglint.WithSpanOption(4, 2),
		)
	}
	return nil
}
