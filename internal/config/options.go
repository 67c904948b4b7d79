package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadOptions reads a formatter option file of key=value pairs.
//
// An empty path means "no file configured" and returns an empty map, which
// makes the formatter fall back to compiler-version-derived defaults. A path
// that does not exist returns (nil, nil): that language's formatter stays
// uninitialized, mirroring a build where only one language is configured.
// An unreadable or unparsable file is a hard error.
func LoadOptions(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot access option file %q: %w", path, err)
	}

	options, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("cannot parse option file %q: %w", path, err)
	}
	return options, nil
}
