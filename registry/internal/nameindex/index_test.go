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

import (
	"errors"
	"sort"
	"testing"
)

func TestInsertAndLookup(t *testing.T) {
	ix := New[int]()
	// Deliberately unsorted insert order.
	names := []string{"yymmdd", "hhmm", "latlong", "iso3166", "importeridx"}
	for i, name := range names {
		if err := ix.Insert(name, i); err != nil {
			t.Fatalf("Insert(%q) unexpected error: %v", name, err)
		}
	}

	if ix.Len() != len(names) {
		t.Fatalf("Len() = %d, want %d", ix.Len(), len(names))
	}

	for i, name := range names {
		got, ok := ix.Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) not found", name)
		}
		if got != i {
			t.Fatalf("Lookup(%q) = %d, want %d", name, got, i)
		}
	}

	if _, ok := ix.Lookup("unknown"); ok {
		t.Fatal("Lookup(unknown) must report false")
	}
	if _, ok := ix.Lookup(""); ok {
		t.Fatal("Lookup of empty name must report false")
	}
}

func TestNamesAreSortedCopies(t *testing.T) {
	ix := New[string]()
	for _, name := range []string{"ccc", "aaa", "bbb"} {
		if err := ix.Insert(name, name); err != nil {
			t.Fatalf("Insert(%q) unexpected error: %v", name, err)
		}
	}

	got := ix.Names()
	if !sort.StringsAreSorted(got) {
		t.Fatalf("Names() = %v, want sorted", got)
	}

	// Mutating the returned slice must not leak into the index.
	got[0] = "zzz"
	if again := ix.Names(); again[0] != "aaa" {
		t.Fatalf("Names() leaked internal state: %v", again)
	}
}

func TestInsert_RejectsDuplicates(t *testing.T) {
	ix := New[int]()
	if err := ix.Insert("iso3166", 1); err != nil {
		t.Fatalf("Insert unexpected error: %v", err)
	}
	err := ix.Insert("iso3166", 2)
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("Insert duplicate error = %v, want ErrDuplicateName", err)
	}

	// The original value must survive the rejected insert.
	got, _ := ix.Lookup("iso3166")
	if got != 1 {
		t.Fatalf("Lookup after duplicate insert = %d, want 1", got)
	}
}

func TestInsert_RejectsMalformedNames(t *testing.T) {
	bad := []string{
		"",
		"ISO3166",
		"9lives",
		"_leading",
		"has-dash",
		"has space",
		"dotted.name",
	}
	ix := New[int]()
	for _, name := range bad {
		if err := ix.Insert(name, 0); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("Insert(%q) error = %v, want ErrInvalidName", name, err)
		}
	}
	if ix.Len() != 0 {
		t.Fatalf("Len() = %d after rejected inserts, want 0", ix.Len())
	}
}
