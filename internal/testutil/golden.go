package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// GoldenDir is where golden files live, relative to the package under test.
const GoldenDir = "testdata"

// Golden compares got with testdata/<name>.golden.
// With GOLDEN_UPDATE set, the file is rewritten instead.
func Golden(t *testing.T, name string, got []byte) {
	t.Helper()

	path := filepath.Join(GoldenDir, name+".golden")
	if os.Getenv("GOLDEN_UPDATE") != "" {
		if err := os.MkdirAll(GoldenDir, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", GoldenDir, err)
		}
		if err := os.WriteFile(path, got, 0644); err != nil {
			t.Fatalf("failed to update golden file: %v", err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v\nGot:\n%s", path, err, got)
	}
	if string(got) == string(want) {
		return
	}
	line, wantLine, gotLine := firstDiff(string(want), string(got))
	t.Errorf("output mismatch for %s at line %d\nwant: %q\ngot:  %q\n\nWant:\n%s\nGot:\n%s",
		name, line, wantLine, gotLine, want, got)
}

// GoldenString is like Golden but takes a string.
func GoldenString(t *testing.T, name string, got string) {
	t.Helper()
	Golden(t, name, []byte(got))
}

// firstDiff returns the first differing line, 1-based.
func firstDiff(want, got string) (int, string, string) {
	w := strings.Split(want, "\n")
	g := strings.Split(got, "\n")
	for i := 0; i < len(w) || i < len(g); i++ {
		var wl, gl string
		if i < len(w) {
			wl = w[i]
		}
		if i < len(g) {
			gl = g[i]
		}
		if wl != gl || i >= len(w) || i >= len(g) {
			return i + 1, wl, gl
		}
	}
	return 0, "", ""
}
