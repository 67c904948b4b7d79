package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "refmt",
		Short: "Incrementally reformat Java and JavaScript sources",
		Long: `Refmt rewrites Java and JavaScript sources into canonical style and
regroups Java imports per a configurable import order. A content-hash
cache under the target directory makes repeat runs skip files that have
not changed since they were last formatted.`,
	}

	formatCmd := &cobra.Command{
		Use:   "format [dir...]",
		Short: "Reformat sources in place",
		RunE:  RunFormat,
	}
	addRunFlags(formatCmd)

	checkCmd := &cobra.Command{
		Use:   "check [dir...]",
		Short: "Report files that would be reformatted, without writing",
		RunE:  RunCheck,
	}
	addRunFlags(checkCmd)
	checkCmd.Flags().Bool("no-diff", false, "Suppress per-file diffs, print the summary only")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("refmt %s\n", version)
		},
	}

	rootCmd.AddCommand(
		formatCmd,
		checkCmd,
		versionCmd,
	)

	return rootCmd
}
