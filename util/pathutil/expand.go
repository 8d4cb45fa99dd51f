// Package pathutil resolves user-supplied paths.
package pathutil

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// HomeEnv overrides the kakapo home directory.
const HomeEnv = "KAKAPO_HOME"

// Expand expands a leading ~ and environment variables in path. It does
// not make the path absolute.
func Expand(path string) string {
	if path == "" {
		return path
	}
	path = os.ExpandEnv(path)
	if expanded, err := homedir.Expand(path); err == nil {
		return expanded
	}
	return path
}

// Resolve expands path and makes it absolute relative to baseDir. An empty
// baseDir leaves relative paths relative.
func Resolve(baseDir, path string) string {
	path = Expand(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	if baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}

// KakapoHome returns $KAKAPO_HOME, falling back to ~/.kakapo. It returns ""
// when neither is known.
func KakapoHome() string {
	if home := os.Getenv(HomeEnv); home != "" {
		return Expand(home)
	}
	if dir, err := homedir.Dir(); err == nil {
		return filepath.Join(dir, ".kakapo")
	}
	return ""
}
