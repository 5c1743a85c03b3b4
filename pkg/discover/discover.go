// Package discover finds input files below a directory tree.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	ignore "github.com/sabhiram/go-gitignore"
)

// Files walks root and returns every regular file whose base name matches
// glob, sorted. Paths matching one of the gitignore-style exclude patterns
// (relative to root) are skipped, directories included.
func Files(root, glob string, exclude []string) ([]string, error) {
	if _, err := filepath.Match(glob, ""); err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", glob, err)
	}

	var gi *ignore.GitIgnore
	if len(exclude) > 0 {
		gi = ignore.CompileIgnoreLines(exclude...)
	}

	var results []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil // skip unreadable entries
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			// Trailing slash so "dir/" patterns match the directory itself.
			if gi != nil && gi.MatchesPath(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}
		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if ok, _ := filepath.Match(glob, d.Name()); ok {
			results = append(results, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(results)
	return results, nil
}
