// Package importorder resolves the configured ordering of import groups
// used when canonicalizing Java import blocks.
package importorder

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// DefaultOrder is used when no order file is configured.
var DefaultOrder = []string{"java", "javax", "org", "com"}

// Resolve reads an import order file of `index=groupPrefix` lines and
// returns the group prefixes in ascending index order. An empty path yields
// DefaultOrder. A missing file is a configuration error, not a soft skip:
// the caller asked for an ordering that does not exist.
func Resolve(path string) ([]string, error) {
	if path == "" {
		return append([]string(nil), DefaultOrder...), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("import order file %q not found: %w", path, err)
		}
		return nil, fmt.Errorf("cannot read import order file %q: %w", path, err)
	}

	return parse(path, string(data))
}

func parse(path, content string) ([]string, error) {
	type entry struct {
		index  int
		prefix string
	}

	entries := make([]entry, 0)
	for lineNo, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rawIndex, prefix, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%s:%d: expected index=groupPrefix, got %q", path, lineNo+1, line)
		}
		index, err := strconv.Atoi(strings.TrimSpace(rawIndex))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid group index %q", path, lineNo+1, rawIndex)
		}
		// An empty prefix is a valid catch-all group.
		entries = append(entries, entry{index: index, prefix: strings.TrimSpace(prefix)})
	}

	// Index is only a sort key; gaps are fine.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].index < entries[j].index
	})

	order := make([]string, 0, len(entries))
	for _, e := range entries {
		order = append(order, e.prefix)
	}
	return order, nil
}
