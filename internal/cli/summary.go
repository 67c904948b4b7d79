package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

type RunSummary struct {
	Mode       string `json:"mode"`
	RootPath   string `json:"root_path"`
	Scanned    int    `json:"scanned"`
	Success    int    `json:"success"`
	Failed     int    `json:"failed"`
	Skipped    int    `json:"skipped"`
	ReadOnly   int    `json:"read_only"`
	DurationMS int64  `json:"duration_ms"`
}

func PrintRunSummary(summary RunSummary, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summary)
	}

	fmt.Printf("%s complete in %dms\n", summary.Mode, summary.DurationMS)
	fmt.Printf(
		"files: scanned=%d formatted=%d skipped=%d failed=%d read-only=%d\n",
		summary.Scanned,
		summary.Success,
		summary.Skipped,
		summary.Failed,
		summary.ReadOnly,
	)
	return nil
}
