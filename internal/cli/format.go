package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/refmt-dev/refmt/internal/discover"
	"github.com/refmt-dev/refmt/internal/run"
)

func RunFormat(cmd *cobra.Command, args []string) error {
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
	stats := runner.Run(files)

	asJSON, _ := cmd.Flags().GetBool("json")
	return PrintRunSummary(RunSummary{
		Mode:       "format",
		RootPath:   cfg.BaseDir,
		Scanned:    len(files),
		Success:    stats.Success,
		Failed:     stats.Failed,
		Skipped:    stats.Skipped,
		ReadOnly:   stats.ReadOnly,
		DurationMS: time.Since(start).Milliseconds(),
	}, asJSON)
}
