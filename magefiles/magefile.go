//go:build mage

// Package main contains Mage build targets for jazzdb developer tooling.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pdiddy/jazzdb/internal/catalog"
	"github.com/pdiddy/jazzdb/internal/query"
)

const (
	binDir  = "bin"
	binName = "jazzdb"
	cmdPkg  = "./cmd/jazzdb"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	cmd := exec.Command("go", "build", "-o", out, cmdPkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the full test suite.
func Test() error {
	cmd := exec.Command("go", "test", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go test: %w", err)
	}
	return nil
}

// Dataset validates the embedded dataset and prints its field coverage.
func Dataset() error {
	songs, err := catalog.Load()
	if err != nil {
		return err
	}

	stats := query.Stats(songs)
	fmt.Printf("Songs: %d\n", stats.Total)
	fmt.Printf("  with composer:       %d\n", stats.Composers.Count)
	fmt.Printf("  with key:            %d\n", stats.Keys.Count)
	fmt.Printf("  with rhythm:         %d\n", stats.Rhythms.Count)
	fmt.Printf("  with time signature: %d\n", stats.TimeSignatures.Count)
	fmt.Printf("  with sections:       %d\n", stats.Sections.Count)

	keys, err := query.TopValues(songs, "keys", 3)
	if err != nil {
		return err
	}
	for _, k := range keys {
		fmt.Printf("  key %-3s: %d songs\n", k.Value, k.Count)
	}
	return nil
}

// Stats prints Go production and test line counts.
func Stats() error {
	prod, test, err := countGoLines(".")
	if err != nil {
		return err
	}
	fmt.Printf("Lines of code (Go, production): %d\n", prod)
	fmt.Printf("Lines of code (Go, tests):      %d\n", test)
	return nil
}

// countGoLines counts non-blank lines in the module's Go files, split
// into production and test totals. Hidden and underscore-prefixed
// directories are skipped, as is bin/.
func countGoLines(root string) (prod, test int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == binDir || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		n := 0
		sc := bufio.NewScanner(bytes.NewReader(data))
		for sc.Scan() {
			if strings.TrimSpace(sc.Text()) != "" {
				n++
			}
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}

		if strings.HasSuffix(path, "_test.go") {
			test += n
		} else {
			prod += n
		}
		return nil
	})
	return prod, test, err
}
