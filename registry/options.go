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

import "seglint.dev/seglint"

// Option configures the registry under construction.
type Option func(*builder)

// WithLinter registers lint under name, replacing a default or an earlier
// WithLinter for the same name. The name is normalized (lowercased, hyphens
// to underscores) before registration.
func WithLinter(name string, lint seglint.Linter) Option {
	return func(b *builder) {
		b.register(name, lint)
	}
}

// WithoutDefaults builds the registry without the library defaults, leaving
// only what the caller registers through WithLinter.
func WithoutDefaults() Option {
	return func(b *builder) {
		b.noDefaults = true
	}
}
