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
	"fmt"
	"testing"
)

func BenchmarkLookup(b *testing.B) {
	ix := New[int]()
	for i := 0; i < 512; i++ {
		name := fmt.Sprintf("linter_%03d", i)
		if err := ix.Insert(name, i); err != nil {
			b.Fatalf("Insert(%q): %v", name, err)
		}
	}

	b.Run("hit", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, ok := ix.Lookup("linter_256"); !ok {
				b.Fatal("expected hit")
			}
		}
	})

	b.Run("miss", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, ok := ix.Lookup("linter_zzz"); ok {
				b.Fatal("expected miss")
			}
		}
	})
}
