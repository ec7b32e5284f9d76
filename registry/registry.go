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

// Registry is an immutable snapshot of named linters.
// All methods are safe for concurrent use.
type Registry struct {
	idx *nameindex.Index[entry]
}

// New builds a Registry from the library defaults and the given options.
// Options are applied in order; a later WithLinter for the same name
// replaces an earlier one, and any WithLinter replaces the default of the
// same name. New fails on malformed names and nil linters.
func New(opts ...Option) (*Registry, error) {
	b := newBuilder()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(b)
	}
	if !b.noDefaults {
		b.seedDefaults()
	}
	return b.freeze()
}

// MustNew is like New but panics on error. It is intended for package-level
// registries built from trusted, static options.
func MustNew(opts ...Option) *Registry {
	reg, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return reg
}

// Lookup returns the linter registered under name.
// The second return value reports whether the name is known.
func (r *Registry) Lookup(name string) (seglint.Linter, bool) {
	e, ok := r.idx.Lookup(name)
	if !ok {
		return nil, false
	}
	return e.linter, true
}

// Names returns the registered linter names in ascending order.
func (r *Registry) Names() []string {
	return r.idx.Names()
}

// Len reports the number of registered linters.
func (r *Registry) Len() int { return r.idx.Len() }

// Describe renders a human-readable listing of the registry, one linter per
// line with its origin. The output is deterministic and is meant for
// startup logs and debugging, not for machine consumption.
func (r *Registry) Describe() string {
	var sb strings.Builder
	names := r.idx.Names()
	fmt.Fprintf(&sb, "registry: %d linters\n", len(names))
	for _, name := range names {
		e, _ := r.idx.Lookup(name)
		fmt.Fprintf(&sb, "  %-14s %s\n", name, e.origin)
	}
	return sb.String()
}
