//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Collect builds the CLI and runs its collect subcommand to refresh the
// dataset from public song databases.
func Collect() error {
	mg.Deps(Build)

	cmd := exec.Command(filepath.Join(binDir, binName), "collect")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("collect run: %w", err)
	}
	return nil
}
