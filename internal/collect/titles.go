// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadTitles loads song titles from a text file, one per line. Blank
// lines and lines starting with # are skipped.
func ReadTitles(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open titles file: %w", err)
	}
	defer f.Close()

	var titles []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		titles = append(titles, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read titles file: %w", err)
	}
	return titles, nil
}
