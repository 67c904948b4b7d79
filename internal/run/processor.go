package run

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/refmt-dev/refmt/internal/cache"
	"github.com/refmt-dev/refmt/internal/formatter"
)

// processFile takes one file through digest check, formatting and rewrite.
func (r *Runner) processFile(hashes *cache.Cache, path string, info os.FileInfo) (formatter.Outcome, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return formatter.OutcomeFail, fmt.Errorf("read: %w", err)
	}
	current := cache.Digest(raw)
	rel := r.relPath(path)

	// Fast path: unchanged since the last successful run.
	if cached, ok := hashes.Get(rel); ok && cached == current {
		return formatter.OutcomeSkipped, nil
	}

	f, ok := r.registry.ForFile(path)
	if !ok || !f.Initialized() {
		return formatter.OutcomeSkipped, nil
	}

	source, err := r.cfg.Encoding.Decode(raw)
	if err != nil {
		return formatter.OutcomeFail, err
	}

	out, changed, err := f.Format(source, r.cfg.LineEnding)
	if err != nil {
		// File untouched, cache not advanced; the file is retried next run.
		return formatter.OutcomeFail, err
	}
	if !changed {
		if !r.DryRun {
			// Record the digest so the next run takes the fast path.
			hashes.Put(rel, current)
		}
		return formatter.OutcomeSkipped, nil
	}

	encoded, err := r.cfg.Encoding.Encode(out)
	if err != nil {
		return formatter.OutcomeFail, err
	}
	formatted := cache.Digest(encoded)
	if formatted == current {
		if !r.DryRun {
			hashes.Put(rel, current)
		}
		return formatter.OutcomeSkipped, nil
	}

	if r.DryRun {
		if r.OnChange != nil {
			r.OnChange(path, source, out)
		}
		return formatter.OutcomeSuccess, nil
	}

	if err := writeAtomic(path, encoded, info.Mode().Perm()); err != nil {
		return formatter.OutcomeFail, fmt.Errorf("write: %w", err)
	}
	hashes.Put(rel, formatted)
	return formatter.OutcomeSuccess, nil
}

func (r *Runner) relPath(path string) string {
	rel, err := filepath.Rel(r.cfg.BaseDir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// writeAtomic replaces path via a same-directory temp file and rename so a
// crash mid-write never leaves a truncated source file behind.
func writeAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".refmt-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
