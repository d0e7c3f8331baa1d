package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zeebo/clingy"
	"golang.org/x/tools/txtar"
)

// TestScripts runs the archives in testdata/script.
//
// Each archive has an "args" file with one argument per line, an optional "stdin"
// file and either "stdout", "stdout-nonl" (stdout without the final newline)
// or "error" (a substring of the expected error).
func TestScripts(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "script", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no scripts found")
	}

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			archive, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}

			sections := make(map[string]string)
			for _, f := range archive.Files {
				sections[f.Name] = string(f.Data)
			}

			args := strings.Split(strings.TrimSuffix(sections["args"], "\n"), "\n")
			if len(args) == 0 || args[0] == "" {
				t.Fatal("missing args")
			}

			var stdout, stderr strings.Builder
			ok, err := clingy.Environment{
				Name:   "fizzbar",
				Args:   args,
				Stdin:  strings.NewReader(sections["stdin"]),
				Stdout: &stdout,
				Stderr: &stderr,
			}.Run(context.Background(), commands)

			if want, expectErr := sections["error"]; expectErr {
				want = strings.TrimSpace(want)
				if err == nil {
					t.Fatalf("%q succeeded, want error containing %q", args, want)
				}
				if !strings.Contains(err.Error(), want) {
					t.Fatalf("%q error = %v, want error containing %q", args, err, want)
				}
				return
			}

			if !ok || err != nil {
				t.Fatalf("%q failed: ok=%v err=%v\nstderr:\n%s", args, ok, err, stderr.String())
			}

			want, exact := sections["stdout"]
			if !exact {
				want = strings.TrimSuffix(sections["stdout-nonl"], "\n")
			}
			if got := stdout.String(); got != want {
				t.Errorf("%q stdout = %q, want %q", args, got, want)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	if isTerminal(strings.NewReader("")) {
		t.Error("strings.Reader is a terminal")
	}

	f, err := os.CreateTemp(t.TempDir(), "stdin")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if isTerminal(f) {
		t.Error("regular file is a terminal")
	}
}
