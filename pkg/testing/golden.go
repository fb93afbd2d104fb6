package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// UpdateGoldenEnv names the environment variable that rewrites golden files
// instead of comparing against them.
const UpdateGoldenEnv = "REFRESH_UPDATE_GOLDEN"

// TestingT is the subset of *testing.T used by MatchesGolden, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// MatchesGolden compares actual against the text in path. On mismatch it
// reports a line diff. When REFRESH_UPDATE_GOLDEN=1 is set the file is
// written instead.
func MatchesGolden(t TestingT, path, actual string) {
	t.Helper()

	if os.Getenv(UpdateGoldenEnv) == "1" {
		if err := UpdateGolden(path, actual); err != nil {
			t.Fatalf("failed to update golden file: %v", err)
		}
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("golden file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateGoldenEnv, t.Name())
			return
		}
		t.Fatalf("failed to load golden file: %v", err)
		return
	}

	if diff := lineDiff(string(data), actual); diff != "" {
		t.Errorf("golden mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateGoldenEnv, t.Name())
	}
}

// UpdateGolden writes actual to path, creating directories as needed.
func UpdateGolden(path, actual string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(actual), 0o644)
}

// lineDiff produces a simple line-oriented diff, empty when equal.
func lineDiff(expected, actual string) string {
	if expected == actual {
		return ""
	}
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	maxLen := max(len(expectedLines), len(actualLines))
	for i := 0; i < maxLen; i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "%d -%s\n", i+1, e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "%d +%s\n", i+1, a)
			}
		}
	}
	return buf.String()
}
