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
	"testing"

	"seglint.dev/seglint"
	"seglint.dev/seglint/apis"
	"seglint.dev/seglint/errcode"
)

// wantViolation asserts err is a violation with the given code and span.
func wantViolation(t *testing.T, err error, code errcode.Code, span apis.Span) {
	t.Helper()
	v, ok := seglint.AsViolation(err)
	if !ok {
		t.Fatalf("error %v is not a violation", err)
	}
	if v.Code != code {
		t.Fatalf("code = %q, want %q", v.Code, code)
	}
	if v.Span != span {
		t.Fatalf("span = %+v, want %+v", v.Span, span)
	}
}

func TestHHMM(t *testing.T) {
	valid := []string{"0000", "0001", "1200", "2359"}
	for _, in := range valid {
		t.Run("valid "+in, func(t *testing.T) {
			if err := HHMM(in); err != nil {
				t.Fatalf("HHMM(%q) unexpected error: %v", in, err)
			}
		})
	}

	invalid := []struct {
		name string
		in   string
		code errcode.Code
		span apis.Span
	}{
		{"empty", "", errcode.HourWithMinuteTooShort, apis.Span{Offset: 0, Length: 0}},
		{"three digits", "235", errcode.HourWithMinuteTooShort, apis.Span{Offset: 0, Length: 3}},
		{"five digits", "23591", errcode.HourWithMinuteTooLong, apis.Span{Offset: 0, Length: 5}},
		{"letter", "12a0", errcode.NonDigitCharacter, apis.Span{Offset: 2, Length: 1}},
		{"hour 24", "2400", errcode.IllegalHour, apis.Span{Offset: 0, Length: 2}},
		{"hour 99", "9900", errcode.IllegalHour, apis.Span{Offset: 0, Length: 2}},
		{"minute 60", "2360", errcode.IllegalMinute, apis.Span{Offset: 2, Length: 2}},
		{"minute 99", "0099", errcode.IllegalMinute, apis.Span{Offset: 2, Length: 2}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			err := HHMM(tt.in)
			if err == nil {
				t.Fatalf("HHMM(%q) expected error", tt.in)
			}
			wantViolation(t, err, tt.code, tt.span)
		})
	}
}
