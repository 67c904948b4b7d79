// Package run drives the per-file formatting pipeline: digest check against
// the cache, formatter dispatch by extension, atomic rewrite, and outcome
// accounting.
package run

import (
	"errors"
	"fmt"
	"os"

	"github.com/refmt-dev/refmt/internal/cache"
	"github.com/refmt-dev/refmt/internal/config"
	"github.com/refmt-dev/refmt/internal/formatter"
)

// Runner processes a file list sequentially. With DryRun set no file or
// cache write happens; OnChange, when non-nil, is invoked for every file
// whose formatted output differs from the on-disk content.
type Runner struct {
	cfg      *config.Config
	registry *formatter.Registry

	DryRun   bool
	OnChange func(path, original, formatted string)
}

// NewRunner wires a runner over an initialized formatter registry.
func NewRunner(cfg *config.Config, registry *formatter.Registry) (*Runner, error) {
	if !registry.AnyInitialized() {
		return nil, errors.New("no formatter could be configured; provide a Java or JavaScript option file")
	}
	return &Runner{cfg: cfg, registry: registry}, nil
}

// Run formats every file in files and returns the outcome counts. Errors on
// individual files are reported as warnings and counted as failures; they
// never abort the run.
func (r *Runner) Run(files []string) Stats {
	hashes, err := cache.Load(r.cfg.TargetDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	var stats Stats
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			stats.Failed++
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", path, err)
			continue
		}
		if info.Mode().Perm()&0200 == 0 {
			stats.ReadOnly++
			continue
		}

		outcome, err := r.processFile(hashes, path, info)
		switch outcome {
		case formatter.OutcomeSuccess:
			stats.Success++
		case formatter.OutcomeSkipped:
			stats.Skipped++
		default:
			stats.Failed++
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", path, err)
		}
	}

	if !r.DryRun {
		if err := hashes.Persist(r.cfg.TargetDir); err != nil {
			// Losing the cache only costs extra work next run.
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}
	return stats
}
