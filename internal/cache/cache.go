// Package cache tracks the content digest each file had at the end of the
// previous run so already-formatted files are skipped without invoking a
// formatting engine.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// StoreFile is the cache store name inside the target directory.
const StoreFile = "refmt-cache.properties"

// Cache maps project-relative slash paths to hex content digests.
type Cache struct {
	entries map[string]string
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]string)}
}

// Load reads the cache store from targetDir. A missing, unreadable or
// corrupt store yields an empty cache; the returned error is advisory and
// the cache is always usable.
func Load(targetDir string) (*Cache, error) {
	c := New()

	data, err := os.ReadFile(filepath.Join(targetDir, StoreFile))
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("cannot read cache store: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok || key == "" {
			// Treat a malformed store as no cache at all. A stale or
			// truncated store only costs re-formatting work, never
			// correctness.
			return New(), fmt.Errorf("cache store is corrupt, ignoring it")
		}
		c.entries[key] = value
	}
	return c, nil
}

// Get returns the stored digest for a relative path.
func (c *Cache) Get(path string) (string, bool) {
	digest, ok := c.entries[normalizeKey(path)]
	return digest, ok
}

// Put records the digest for a relative path, overwriting any prior entry.
func (c *Cache) Put(path, digest string) {
	c.entries[normalizeKey(path)] = digest
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Persist writes the full cache to the store in targetDir, creating the
// directory if needed. Keys are written sorted so the store diffs cleanly.
func (c *Cache) Persist(targetDir string) error {
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return fmt.Errorf("cannot create target directory: %w", err)
	}

	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(c.entries[key])
		b.WriteByte('\n')
	}

	path := filepath.Join(targetDir, StoreFile)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("cannot store cache: %w", err)
	}
	return nil
}

func normalizeKey(path string) string {
	return filepath.ToSlash(path)
}
