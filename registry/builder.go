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
	"fmt"
	"strings"

	"seglint.dev/seglint"
	"seglint.dev/seglint/registry/internal/nameindex"
)

// origin values reported by Describe.
const (
	originDefault = "default"
	originCustom  = "custom"
)

// entry pairs a linter with where it came from.
type entry struct {
	linter seglint.Linter
	origin string
}

// builder accumulates registrations before the one-shot freeze into an
// immutable Registry.
type builder struct {
	entries    map[string]entry
	noDefaults bool
	errs       []error
}

func newBuilder() *builder {
	return &builder{
		entries: make(map[string]entry, len(defaultLinters)),
	}
}

// register records a custom linter under name, replacing any previous
// registration. Malformed input is collected and reported by freeze, so a
// single New call surfaces every bad option at once.
func (b *builder) register(name string, lint seglint.Linter) {
	name = normalizeName(name)
	if lint == nil {
		b.errs = append(b.errs, fmt.Errorf("registry: nil linter for %q", name))
		return
	}
	b.entries[name] = entry{linter: lint, origin: originCustom}
}

// seedDefaults fills in the library defaults without touching names the
// caller has already registered.
func (b *builder) seedDefaults() {
	for name, lint := range defaultLinters {
		if _, taken := b.entries[name]; taken {
			continue
		}
		b.entries[name] = entry{linter: lint, origin: originDefault}
	}
}

// freeze validates the accumulated registrations and produces the final
// immutable Registry.
func (b *builder) freeze() (*Registry, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("registry: %d invalid registrations: %w", len(b.errs), b.errs[0])
	}
	idx := nameindex.New[entry]()
	for name, e := range b.entries {
		if err := idx.Insert(name, e); err != nil {
			return nil, fmt.Errorf("registry: register %q: %w", name, err)
		}
	}
	return &Registry{idx: idx}, nil
}

// normalizeName lowercases name and trims surrounding whitespace. Hyphens
// become underscores so "iso-3166" and "iso_3166" register the same linter.
func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, "-", "_")
}
