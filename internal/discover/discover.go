// Package discover walks source directories and produces the candidate file
// list for a formatting run using gitignore-style include/exclude patterns.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	ignore "github.com/sabhiram/go-gitignore"
)

// DefaultIncludes selects the supported languages when no include patterns
// are configured.
var DefaultIncludes = []string{"**/*.java", "**/*.js"}

// defaultExcludes keeps VCS metadata and build output out of every run.
// User excludes are appended and matched afterwards.
var defaultExcludes = []string{
	".git/",
	".refmt/",
	"node_modules/",
	"vendor/",
	"dist/",
	"build/",
	"target/",
}

// Files returns the sorted, de-duplicated list of absolute file paths under
// dirs that match the include patterns and none of the excludes. A missing
// directory is skipped silently so callers can pass conventional source and
// test roots without checking which exist.
func Files(dirs, includes, excludes []string) ([]string, error) {
	if len(includes) == 0 {
		includes = DefaultIncludes
	}
	includeMatcher := ignore.CompileIgnoreLines(includes...)
	excludeMatcher := ignore.CompileIgnoreLines(append(append([]string{}, defaultExcludes...), excludes...)...)

	seen := make(map[string]bool)
	var found []string
	for _, dir := range dirs {
		root, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("cannot resolve directory %q: %w", dir, err)
		}
		info, err := os.Stat(root)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("cannot access directory %q: %w", dir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%q is not a directory", dir)
		}

		err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil || rel == "." {
				return nil
			}
			rel = filepath.ToSlash(rel)

			if info.IsDir() {
				if excludeMatcher.MatchesPath(rel + "/") {
					return filepath.SkipDir
				}
				return nil
			}
			if excludeMatcher.MatchesPath(rel) || !includeMatcher.MatchesPath(rel) {
				return nil
			}
			if !seen[path] {
				seen[path] = true
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %q: %w", dir, err)
		}
	}

	sort.Strings(found)
	return found, nil
}
