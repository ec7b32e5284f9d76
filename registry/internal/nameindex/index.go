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

package nameindex

import "errors"

// Index is a sorted name-to-value index for flat lowercase names.
// Inserts keep the name slice strictly ascending, so lookups are a plain
// binary search — the same lookup discipline the linters use for their own
// reference tables. The zero number of entries is valid.
//
// Index is not safe for concurrent mutation; build it fully, then share it
// read-only.
type Index[T any] struct {
	// names is kept strictly ascending with no duplicates; vals is parallel.
	names []string
	vals  []T
}

var (
	// ErrInvalidName is returned when inserting a name that is empty or
	// contains characters outside [a-z][a-z0-9_]*.
	ErrInvalidName = errors.New("nameindex: invalid name")

	// ErrDuplicateName is returned when inserting a name that is already
	// present. Callers decide whether "replace" semantics are wanted and
	// must implement them above this type.
	ErrDuplicateName = errors.New("nameindex: duplicate name")
)

// New creates an empty index ready for inserts.
func New[T any]() *Index[T] {
	return &Index[T]{}
}

// Insert adds name with its associated value, keeping the index sorted.
// Returns ErrInvalidName on malformed input and ErrDuplicateName when the
// name is already present.
func (ix *Index[T]) Insert(name string, val T) error {
	if !validName(name) {
		return ErrInvalidName
	}
	pos, found := ix.search(name)
	if found {
		return ErrDuplicateName
	}
	ix.names = append(ix.names, "")
	copy(ix.names[pos+1:], ix.names[pos:])
	ix.names[pos] = name

	var zero T
	ix.vals = append(ix.vals, zero)
	copy(ix.vals[pos+1:], ix.vals[pos:])
	ix.vals[pos] = val
	return nil
}

// Lookup finds the value registered under name.
// It returns (value, true) on success, or the zero value and false when the
// name is unknown.
func (ix *Index[T]) Lookup(name string) (T, bool) {
	pos, found := ix.search(name)
	if !found {
		var zero T
		return zero, false
	}
	return ix.vals[pos], true
}

// Names returns the registered names in ascending order. The slice is a
// copy; mutating it does not affect the index.
func (ix *Index[T]) Names() []string {
	out := make([]string, len(ix.names))
	copy(out, ix.names)
	return out
}

// Len reports the number of registered names.
func (ix *Index[T]) Len() int { return len(ix.names) }

// search locates name in the sorted slice. It returns the position where
// name is (found=true) or where it would be inserted (found=false).
func (ix *Index[T]) search(name string) (pos int, found bool) {
	lo, hi := 0, len(ix.names)
	for lo < hi {
		mid := lo + (hi-lo)/2
		switch {
		case name == ix.names[mid]:
			return mid, true
		case name < ix.names[mid]:
			hi = mid
		default:
			lo = mid + 1
		}
	}
	return lo, false
}

// validName reports whether name matches [a-z][a-z0-9_]*.
// These rules keep registry names simple, predictable and easy to normalize.
func validName(name string) bool {
	if name == "" {
		return false
	}
	if name[0] < 'a' || name[0] > 'z' {
		return false
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
