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

// Package geo validates packed geographic coordinate values.
package geo

import (
	"strconv"

	"seglint.dev/seglint"
	"seglint.dev/seglint/errcode"
)

// Maximum encoded values for each coordinate half. Latitude spans 0-180
// degrees and longitude 0-360 degrees, both offset-encoded with four implied
// decimal places.
const (
	maxLatitude  = 1800000000
	maxLongitude = 3600000000
)

// LatLong validates a 20-digit packed latitude/longitude pair: ten digits of
// latitude followed by ten digits of longitude.
//
// Violations:
//   - wrong length: LatLongBadLength over the whole value;
//   - non-digit: NonDigitCharacter over the first bad byte;
//   - latitude above its encoded maximum: InvalidLatitude over bytes 0-9;
//   - longitude above its encoded maximum: InvalidLongitude over bytes 10-19.
//
// LatLong is a seglint.Linter.
func LatLong(value string) error {
	if len(value) != 20 {
		return seglint.New(errcode.LatLongBadLength,
			"value must be twenty digits (ten of latitude, ten of longitude)",
			seglint.WithWholeSpanOption(value),
		)
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return seglint.New(errcode.NonDigitCharacter,
				"value must contain only digits",
				seglint.WithSpanOption(i, 1),
			)
		}
	}
	// Digit-ness is established, so ParseUint cannot fail on either half.
	if lat, _ := strconv.ParseUint(value[:10], 10, 64); lat > maxLatitude {
		return seglint.New(errcode.InvalidLatitude,
			"latitude exceeds its maximum encoded value",
			seglint.WithSpanOption(0, 10),
		)
	}
	if lng, _ := strconv.ParseUint(value[10:], 10, 64); lng > maxLongitude {
		return seglint.New(errcode.InvalidLongitude,
			"longitude exceeds its maximum encoded value",
			seglint.WithSpanOption(10, 10),
		)
	}
	return nil
}
