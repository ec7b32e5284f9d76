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

// Reference-list membership codes
//
// These codes describe values that failed a membership test against a static
// reference code list. There is deliberately no finer-grained taxonomy here:
// a value of the wrong length, with non-digit characters, or simply not in
// the list all produce the same code, because the membership test is the
// whole contract.
const (
	// NotISO3166 indicates that the value is not an ISO 3166-1 "num-3"
	// country code: it does not exactly equal any entry in the reference
	// table of three-digit assignments.
	// Note that malformed shapes (wrong length, non-digits) are reported
	// under this same code — the lookup is an exact string match, there is
	// no separate shape check to fail first.
	//
	// The span covers the whole value, or the offending 3-byte group when
	// the value is a concatenated code list.
	NotISO3166 Code = "not_iso3166"
)

// Character-class codes
//
// These codes describe values whose basic character repertoire is wrong.
// The span points at the first offending character.
const (
	// NonDigitCharacter indicates that a value required to consist only of
	// ASCII decimal digits contains some other character.
	// The span covers exactly the first non-digit byte.
	NonDigitCharacter Code = "non_digit_character"
)

// Date and time component codes
//
// These codes describe failures of the fixed-width date/time formats
// (YYMMDD, YYMMDDHH, HHMM, MM or MMSS). Length failures span the whole
// value; range failures span the two-digit component that is out of range.
const (
	// DateTooShort indicates that a six-digit YYMMDD date has fewer than
	// six characters.
	DateTooShort Code = "date_too_short"

	// DateTooLong indicates that a six-digit YYMMDD date has more than
	// six characters.
	DateTooLong Code = "date_too_long"

	// DateWithHourTooShort indicates that an eight-digit YYMMDDHH value has
	// fewer than eight characters.
	DateWithHourTooShort Code = "date_with_hour_too_short"

	// DateWithHourTooLong indicates that an eight-digit YYMMDDHH value has
	// more than eight characters.
	DateWithHourTooLong Code = "date_with_hour_too_long"

	// HourWithMinuteTooShort indicates that a four-digit HHMM value has
	// fewer than four characters.
	HourWithMinuteTooShort Code = "hour_with_minute_too_short"

	// HourWithMinuteTooLong indicates that a four-digit HHMM value has
	// more than four characters.
	HourWithMinuteTooLong Code = "hour_with_minute_too_long"

	// MinutesWithSecondsBadLength indicates that a minutes-with-optional-
	// seconds value is neither two (MM) nor four (MMSS) characters long.
	MinutesWithSecondsBadLength Code = "minutes_with_seconds_bad_length"

	// IllegalMonth indicates a month component outside 01-12.
	IllegalMonth Code = "illegal_month"

	// IllegalDay indicates a day component that does not exist in the given
	// month (including "00" and, for February, a day 29 outside leap years).
	IllegalDay Code = "illegal_day"

	// IllegalHour indicates an hour component outside 00-23.
	IllegalHour Code = "illegal_hour"

	// IllegalMinute indicates a minute component outside 00-59.
	IllegalMinute Code = "illegal_minute"

	// IllegalSecond indicates a second component outside 00-59.
	IllegalSecond Code = "illegal_second"
)

// Geographic coordinate codes
//
// These codes describe failures of the 20-digit packed latitude/longitude
// format: ten digits of latitude then ten digits of longitude, each an
// offset-encoded decimal with four implied decimal places.
const (
	// LatLongBadLength indicates that a coordinate value is not exactly
	// twenty characters long.
	LatLongBadLength Code = "latlong_bad_length"

	// InvalidLatitude indicates that the latitude half exceeds its maximum
	// encoded value (1800000000). The span covers the first ten digits.
	InvalidLatitude Code = "invalid_latitude"

	// InvalidLongitude indicates that the longitude half exceeds its maximum
	// encoded value (3600000000). The span covers the last ten digits.
	InvalidLongitude Code = "invalid_longitude"
)

// Importer index codes
//
// These codes describe failures of the single-character importer index used
// in facility identifiers.
const (
	// ImporterIndexBadLength indicates that the importer index is not
	// exactly one character long.
	ImporterIndexBadLength Code = "importer_index_bad_length"

	// InvalidImporterIndexCharacter indicates that the importer index
	// character is outside the permitted 64-character set
	// (digits, letters, hyphen and underscore).
	InvalidImporterIndexCharacter Code = "invalid_importer_index_character"
)
