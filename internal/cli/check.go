package cli

import (
	"fmt"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/refmt-dev/refmt/internal/discover"
	"github.com/refmt-dev/refmt/internal/run"
)

func RunCheck(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, registry, includes, excludes, err := setupRun(cmd)
	if err != nil {
		return err
	}

	files, err := discover.Files(runDirs(args), includes, excludes)
	if err != nil {
		return err
	}

	runner, err := run.NewRunner(cfg, registry)
	if err != nil {
		return err
	}
	runner.DryRun = true

	noDiff, _ := cmd.Flags().GetBool("no-diff")
	if !noDiff {
		dmp := diffmatchpatch.New()
		runner.OnChange = func(path, original, formatted string) {
			diffs := dmp.DiffMain(original, formatted, false)
			diffs = dmp.DiffCleanupSemantic(diffs)
			fmt.Printf("--- %s\n%s\n", path, dmp.DiffPrettyText(diffs))
		}
	}

	stats := runner.Run(files)

	asJSON, _ := cmd.Flags().GetBool("json")
	if err := PrintRunSummary(RunSummary{
		Mode:       "check",
		RootPath:   cfg.BaseDir,
		Scanned:    len(files),
		Success:    stats.Success,
		Failed:     stats.Failed,
		Skipped:    stats.Skipped,
		ReadOnly:   stats.ReadOnly,
		DurationMS: time.Since(start).Milliseconds(),
	}, asJSON); err != nil {
		return err
	}

	if stats.Success > 0 {
		return fmt.Errorf("%d file(s) would be reformatted", stats.Success)
	}
	return nil
}
