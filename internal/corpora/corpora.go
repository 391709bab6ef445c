// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package corpora runs golden-file tests: each case is a file in a testdata
// directory, and each of its expected outputs sits next to it with an extra
// extension.
package corpora

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus is a table-driven test whose table lives in the file system.
type Corpus struct {
	// Directory holding the cases, relative to the file that calls
	// [Corpus.Run].
	Root string

	// Environment variable holding a glob of case names to refresh. Matching
	// cases have their outputs rewritten instead of compared, and the test
	// fails so that a refresh is never mistaken for a pass.
	Refresh string

	// Extension, without the dot, of the files that define a case, e.g.
	// "yaml".
	Extension string

	// Expected outputs of each case. A missing output file is the same as
	// an empty one.
	Outputs []Output

	// Test runs one case and returns one result per element of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output is one expected output of a case.
type Output struct {
	// Suffix appended to the case file's name, so that case "see.yaml" with
	// extension "txt" is compared against "see.yaml.txt".
	Extension string

	// Compares the results. Defaults to an exact match reported as a
	// unified diff.
	Compare Compare
}

// Compare returns the empty string if got matches want, or a description of
// the mismatch.
type Compare func(got, want string) string

// Run executes every case under c.Root as a subtest.
func (c Corpus) Run(t *testing.T) {
	t.Helper()

	dir := callerDir(0)
	root := filepath.Join(dir, c.Root)
	cases, err := doublestar.Glob(os.DirFS(root), "**/*."+c.Extension, doublestar.WithFilesOnly())
	if err != nil {
		t.Fatalf("corpora: listing %q: %v", root, err)
	}
	if len(cases) == 0 {
		t.Fatalf("corpora: no *.%s cases in %q", c.Extension, root)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if refresh != "" && !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: %s=%q is not a valid glob", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing cases matching %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, name := range cases {
		path := filepath.Join(root, filepath.FromSlash(name))
		t.Run(name, func(t *testing.T) {
			input, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: reading case: %v", err)
			}

			results := c.Test(t, name, string(input))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: got %d results for %d outputs", len(results), len(c.Outputs))
			}

			update := refresh != "" && doublestar.MatchUnvalidated(refresh, name)
			for i, output := range c.Outputs {
				golden := fmt.Sprint(path, ".", output.Extension)
				if update {
					if err := write(golden, results[i]); err != nil {
						t.Errorf("corpora: %v", err)
					}
					continue
				}
				if msg := output.compare(golden, results[i]); msg != "" {
					t.Errorf("output mismatch for %q:\n%s", golden, msg)
				}
			}
		})
	}
}

func (o Output) compare(golden, got string) string {
	want, err := os.ReadFile(golden)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err.Error()
	}
	cmp := o.Compare
	if cmp == nil {
		cmp = Diff
	}
	return cmp(got, string(want))
}

// write replaces golden with result, removing it when result is empty.
func write(golden, result string) error {
	if result == "" {
		if err := os.Remove(golden); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("deleting %q: %w", golden, err)
		}
		return nil
	}
	if err := os.WriteFile(golden, []byte(result), 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", golden, err)
	}
	return nil
}

// Diff is the default [Compare]: an exact match, with mismatches shown as a
// colored unified diff.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = "\033[1;92m" + line + "\033[0m"
		case strings.HasPrefix(line, "-"):
			lines[i] = "\033[1;91m" + line + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
