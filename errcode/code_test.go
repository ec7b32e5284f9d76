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

package errcode

import (
	"encoding"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  not_iso3166  ", "not_iso3166"},
		{"to lower", "IlLeGaL_hOuR", "illegal_hour"},
		{"dash to underscore", "illegal-day", "illegal_day"},
		{"mixed", "  INVALID-LATITUDE  ", "invalid_latitude"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Code
	}{
		{"simple", "not_iso3166", Code("not_iso3166")},
		{"with spaces", "  illegal_hour  ", Code("illegal_hour")},
		{"upper", "ILLEGAL_DAY", Code("illegal_day")},
		{"dash", "illegal-month", Code("illegal_month")},
		{"min length", "abc", Code("abc")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "a"},
		{"starts with digit", "1invalid"},
		{"trailing dash giving too short", "x-"},
		{"punctuation", "no!good"},
		{"too long", "a_very_long_code_that_is_definitely_more_than_sixty_four_characters_long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := []Code{
		"not_iso3166",
		"illegal_hour",
		"latlong_bad_length",
		"abc",
	}
	for _, c := range valid {
		if err := Validate(c); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", c, err)
		}
	}

	invalid := []Code{
		"",            // empty
		"ab",          // too short
		"Illegal",     // uppercase
		"illegal-day", // dash
	}
	for _, c := range invalid {
		if err := Validate(c); err == nil {
			t.Fatalf("Validate(%q) expected error", c)
		}
	}
}

// Every published constant must already be in normalized, valid form.
func TestAllConstantsAreValid(t *testing.T) {
	all := []Code{
		NotISO3166,
		NonDigitCharacter,
		DateTooShort,
		DateTooLong,
		DateWithHourTooShort,
		DateWithHourTooLong,
		HourWithMinuteTooShort,
		HourWithMinuteTooLong,
		MinutesWithSecondsBadLength,
		IllegalMonth,
		IllegalDay,
		IllegalHour,
		IllegalMinute,
		IllegalSecond,
		LatLongBadLength,
		InvalidLatitude,
		InvalidLongitude,
		ImporterIndexBadLength,
		InvalidImporterIndexCharacter,
	}
	seen := make(map[Code]bool, len(all))
	for _, c := range all {
		if err := Validate(c); err != nil {
			t.Fatalf("constant %q is not a valid code: %v", c, err)
		}
		if Normalize(string(c)) != string(c) {
			t.Fatalf("constant %q is not normalized", c)
		}
		if seen[c] {
			t.Fatalf("constant %q is duplicated", c)
		}
		seen[c] = true
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("INVALID CODE ??")
}

func TestMustParse_SucceedsOnValid(t *testing.T) {
	c := MustParse("not_iso3166")
	if c != Code("not_iso3166") {
		t.Fatalf("MustParse(valid) = %q, want %q", c, "not_iso3166")
	}
}

func TestCode_String(t *testing.T) {
	c := Code("not_iso3166")
	if c.String() != "not_iso3166" {
		t.Fatalf("String() = %q, want %q", c.String(), "not_iso3166")
	}
}

func TestCode_MarshalText(t *testing.T) {
	c := Code("illegal_hour")
	text, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "illegal_hour" {
		t.Fatalf("MarshalText() = %q, want %q", string(text), "illegal_hour")
	}

	// invalid code should fail MarshalText
	invalid := Code("Invalid-Dash")
	if _, err := invalid.MarshalText(); err == nil {
		t.Fatalf("MarshalText() on invalid code must return error")
	}
}

func TestCode_UnmarshalText(t *testing.T) {
	var c Code
	if err := c.UnmarshalText([]byte("  ILLEGAL-DAY  ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if c != Code("illegal_day") {
		t.Fatalf("UnmarshalText() = %q, want %q", c, "illegal_day")
	}

	// invalid
	var bad Code
	if err := bad.UnmarshalText([]byte("!@#")); err == nil {
		t.Fatalf("UnmarshalText() expected error for invalid input")
	}
}

func TestCode_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Code)(nil)
	var _ encoding.TextUnmarshaler = (*Code)(nil)
}

func TestRegexAndLengthAreConsistent(t *testing.T) {
	if MinLength != 3 {
		t.Fatalf("MinLength changed, update tests")
	}
	if MaxLength != 64 {
		t.Fatalf("MaxLength changed, update tests")
	}

	long := "a"
	for len(long) < MaxLength {
		long += "a"
	}
	if _, err := Parse(long); err != nil {
		t.Fatalf("expected %q to be valid (len=%d): %v", long, len(long), err)
	}

	longer := long + "a"
	if _, err := Parse(longer); err == nil {
		t.Fatalf("expected %q (len=%d) to be invalid", longer, len(longer))
	}
}
