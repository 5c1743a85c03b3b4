package util

import (
	"os"
	"path/filepath"
	"strings"
)

func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// FindSubdir looks for name inside parent: exact match first, then the
// lower-cased name, then any entry equal under case folding.
func FindSubdir(parent, name string) (string, bool) {
	exact := filepath.Join(parent, name)
	if DirExists(exact) {
		return exact, true
	}

	lower := filepath.Join(parent, strings.ToLower(name))
	if DirExists(lower) {
		return lower, true
	}

	entries, err := os.ReadDir(parent)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if e.IsDir() && strings.EqualFold(e.Name(), name) {
			return filepath.Join(parent, e.Name()), true
		}
	}
	return "", false
}

// Stem returns the base name without its final extension (file.tar.gz -> file.tar).
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// GlobFiles returns the regular files in dir whose names match pattern, sorted.
func GlobFiles(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}

	files := matches[:0]
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && info.Mode().IsRegular() {
			files = append(files, m)
		}
	}
	return files, nil
}
