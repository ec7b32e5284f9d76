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

package registry

import (
	"seglint.dev/seglint"
	"seglint.dev/seglint/datetime"
	"seglint.dev/seglint/geo"
	"seglint.dev/seglint/importer"
	"seglint.dev/seglint/iso3166"
)

// defaultLinters is the stock linter set every registry starts from unless
// WithoutDefaults is given. Names follow the segment-data naming used
// throughout the library.
var defaultLinters = map[string]seglint.Linter{
	"iso3166":     iso3166.Numeric3,
	"iso3166list": iso3166.NumericList,
	"hhmm":        datetime.HHMM,
	"mmoptss":     datetime.MMOptSS,
	"yymmdd":      datetime.YYMMDD,
	"yymmddhh":    datetime.YYMMDDHH,
	"latlong":     geo.LatLong,
	"importeridx": importer.Index,
}
