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
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var update = flag.Bool("update", false, "update golden files")

// TestDescribe_Golden verifies Describe() output is stable and human-friendly.
// Update golden with: go test ./registry -run Describe_Golden -update
func TestDescribe_Golden(t *testing.T) {
	reg, err := New(
		WithLinter("orderref", func(string) error { return nil }),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := reg.Describe()

	goldenPath := filepath.Join("testdata", "describe.golden")
	if *update {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0o755); err != nil {
			t.Fatalf("mkdir testdata: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(got), 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
		t.Logf("updated %s", goldenPath)
		return
	}

	wantBytes, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v (run with -update to create)", err)
	}
	want := string(wantBytes)

	// normalize trailing newlines to avoid EOF newline mismatches
	normalize := func(s string) string { return strings.TrimRight(s, "\r\n") }

	if normalize(want) != normalize(got) {
		t.Fatalf("Describe() output mismatch.\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
}
