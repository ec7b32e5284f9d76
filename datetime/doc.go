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

// Package datetime validates the fixed-width date and time formats embedded
// in structured identifiers: YYMMDD dates, YYMMDDHH date-hours, HHMM times
// and MM / MMSS minute values.
//
// These formats carry no separators and no time zone; they are strings of
// ASCII digits whose two-digit components must each lie in range. Violations
// therefore come in two flavors: length/charset failures spanning the whole
// value or the first bad byte, and range failures spanning exactly the
// two-digit component that is out of range.
//
// Two-digit years are interpreted the way the carrying standards do: any year
// divisible by four gets a February 29. Within the windows these identifiers
// can express (no century boundaries except 2000, which is a leap year), the
// simple rule and the Gregorian rule agree.
package datetime
