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

package apis

// Span locates a run of bytes inside a linted value. This is a *view type* —
// small, transport-friendly, and suitable for JSON or proto adapters.
//
// Spans exist to let callers highlight the exact bad bytes to an end user:
// a linter that rejects the minute field of "2575" reports Span{2, 2}, not
// just "invalid".
//
// Offsets are byte offsets, not rune offsets. Linted values are expected to
// be ASCII; a linter that encounters non-ASCII input rejects it, so byte and
// rune positions never diverge for accepted data.
type Span struct {
	// Offset is the 0-based byte offset of the first offending byte.
	Offset int `json:"offset"`

	// Length is the number of offending bytes. A zero length with a zero
	// offset describes an empty value.
	Length int `json:"length"`
}

// End returns the byte offset just past the offending run.
func (s Span) End() int { return s.Offset + s.Length }

// Whole returns a Span covering the entirety of value. Linters whose values
// have no internal structure to isolate a sub-span report this on failure.
func Whole(value string) Span {
	return Span{Offset: 0, Length: len(value)}
}
