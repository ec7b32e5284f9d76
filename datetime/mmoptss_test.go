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

	"seglint.dev/seglint/apis"
	"seglint.dev/seglint/errcode"
)

func TestMMOptSS(t *testing.T) {
	valid := []string{"00", "59", "0000", "5959", "3014"}
	for _, in := range valid {
		t.Run("valid "+in, func(t *testing.T) {
			if err := MMOptSS(in); err != nil {
				t.Fatalf("MMOptSS(%q) unexpected error: %v", in, err)
			}
		})
	}

	invalid := []struct {
		name string
		in   string
		code errcode.Code
		span apis.Span
	}{
		{"empty", "", errcode.MinutesWithSecondsBadLength, apis.Span{Offset: 0, Length: 0}},
		{"one digit", "5", errcode.MinutesWithSecondsBadLength, apis.Span{Offset: 0, Length: 1}},
		{"three digits", "595", errcode.MinutesWithSecondsBadLength, apis.Span{Offset: 0, Length: 3}},
		{"five digits", "59595", errcode.MinutesWithSecondsBadLength, apis.Span{Offset: 0, Length: 5}},
		{"letter", "5a", errcode.NonDigitCharacter, apis.Span{Offset: 1, Length: 1}},
		{"minute 60", "60", errcode.IllegalMinute, apis.Span{Offset: 0, Length: 2}},
		{"minute 60 with seconds", "6000", errcode.IllegalMinute, apis.Span{Offset: 0, Length: 2}},
		{"second 60", "0060", errcode.IllegalSecond, apis.Span{Offset: 2, Length: 2}},
		{"second 99", "5999", errcode.IllegalSecond, apis.Span{Offset: 2, Length: 2}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			err := MMOptSS(tt.in)
			if err == nil {
				t.Fatalf("MMOptSS(%q) expected error", tt.in)
			}
			wantViolation(t, err, tt.code, tt.span)
		})
	}
}
