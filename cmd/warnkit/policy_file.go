package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"warnkit/internal/policy"
)

// findWarnkitToml walks upward from startDir looking for a warnkit.toml
// policy file.
func findWarnkitToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "warnkit.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadPolicyFilter resolves the --policy flag: an explicit path must load,
// otherwise the nearest discovered warnkit.toml is used, and no file at all
// means no filtering (nil Filter forwards everything).
func loadPolicyFilter(cmd *cobra.Command) (*policy.Filter, error) {
	path, err := cmd.Flags().GetString("policy")
	if err != nil {
		return nil, err
	}
	if path != "" {
		return policy.Load(path)
	}
	discovered, ok, err := findWarnkitToml(".")
	if err != nil || !ok {
		return nil, err
	}
	return policy.Load(discovered)
}
