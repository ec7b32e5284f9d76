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

// CodeLookup answers set-membership questions against a reference code list.
//
// This is the extension point that decouples validation policy from the data
// source: a validator that ships with a static snapshot of a code list can be
// rebound — at construction time, never per call — to a larger or more
// current dataset (a full ISO 3166 feed, a database table, a remote
// service's cache) without changing its external contract.
//
// Implementations MUST be safe for concurrent use and SHOULD be cheap:
// lookups sit on validation hot paths and callers will not add caching on
// top. The candidate code is passed exactly as received; implementations
// must not normalize it (exact match semantics are part of the validator's
// contract, not the lookup's).
type CodeLookup interface {
	// Contains reports whether code is a member of the reference set.
	Contains(code string) bool
}

// LookupFunc adapts an ordinary function to the CodeLookup interface,
// mirroring the net/http HandlerFunc pattern. It lets callers configure a
// validator with a closure instead of defining a one-method type.
type LookupFunc func(code string) bool

// Contains implements CodeLookup.
func (f LookupFunc) Contains(code string) bool { return f(code) }
