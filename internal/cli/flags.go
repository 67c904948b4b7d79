package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/refmt-dev/refmt/internal/config"
	"github.com/refmt-dev/refmt/internal/encoding"
	"github.com/refmt-dev/refmt/internal/formatter"
	"github.com/refmt-dev/refmt/internal/formatter/java"
	"github.com/refmt-dev/refmt/internal/formatter/javascript"
	"github.com/refmt-dev/refmt/internal/importorder"
	"github.com/refmt-dev/refmt/internal/lineending"
)

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("java-options", "", "Java formatter option file (key=value lines)")
	cmd.Flags().String("js-options", "", "JavaScript formatter option file (key=value lines)")
	cmd.Flags().String("import-order", "", "Java import order file (index=prefix lines)")
	cmd.Flags().String("line-ending", "AUTO", "Line ending policy: AUTO|KEEP|LF|CRLF|CR")
	cmd.Flags().String("encoding", "UTF-8", "Source file encoding (IANA charset name)")
	cmd.Flags().StringSlice("include", []string{}, "Include patterns (default: **/*.java, **/*.js)")
	cmd.Flags().StringSlice("exclude", []string{}, "Additional exclude patterns")
	cmd.Flags().String("target-dir", ".refmt", "Directory for the content-hash cache store")
	cmd.Flags().String("compiler-source", "17", "Java source version for default formatter options")
	cmd.Flags().String("compiler-compliance", "17", "Java compliance version for default formatter options")
	cmd.Flags().String("compiler-target", "17", "Java target version for default formatter options")
	cmd.Flags().Bool("json", false, "Print machine-readable run summary")
}

// setupRun resolves the shared flags into a run config and an initialized
// formatter registry. A configured-but-missing option file leaves that
// language's formatter uninitialized and prints a warning; having no
// initialized formatter at all is the caller's error to surface.
func setupRun(cmd *cobra.Command) (*config.Config, *formatter.Registry, []string, []string, error) {
	baseDir, err := os.Getwd()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("cannot determine working directory: %w", err)
	}

	encodingName, _ := cmd.Flags().GetString("encoding")
	codec, err := encoding.Resolve(encodingName)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	endingValue, _ := cmd.Flags().GetString("line-ending")
	ending, err := lineending.Parse(endingValue)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	targetDir, _ := cmd.Flags().GetString("target-dir")
	if !filepath.IsAbs(targetDir) {
		targetDir = filepath.Join(baseDir, targetDir)
	}

	cfg := &config.Config{
		BaseDir:    baseDir,
		TargetDir:  targetDir,
		Encoding:   codec,
		LineEnding: ending,
	}
	cfg.CompilerSource, _ = cmd.Flags().GetString("compiler-source")
	cfg.CompilerCompliance, _ = cmd.Flags().GetString("compiler-compliance")
	cfg.CompilerTarget, _ = cmd.Flags().GetString("compiler-target")

	importOrderPath, _ := cmd.Flags().GetString("import-order")
	order, err := importorder.Resolve(importOrderPath)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	registry := formatter.NewRegistry()
	if err := initFormatter(cmd, cfg, registry, "java-options", java.New(order)); err != nil {
		return nil, nil, nil, nil, err
	}
	if err := initFormatter(cmd, cfg, registry, "js-options", javascript.New()); err != nil {
		return nil, nil, nil, nil, err
	}

	includes, _ := cmd.Flags().GetStringSlice("include")
	excludes, _ := cmd.Flags().GetStringSlice("exclude")
	return cfg, registry, includes, excludes, nil
}

func initFormatter(cmd *cobra.Command, cfg *config.Config, registry *formatter.Registry, flagName string, f formatter.Formatter) error {
	path, _ := cmd.Flags().GetString(flagName)
	options, err := config.LoadOptions(path)
	if err != nil {
		return err
	}
	if options == nil && path != "" {
		fmt.Fprintf(os.Stderr, "warning: option file %q not found; %s formatter disabled\n", path, f.Language())
	}
	if err := f.Init(options, cfg); err != nil {
		return err
	}
	registry.Register(f)
	return nil
}

// runDirs turns positional args into the directory list, defaulting to the
// working directory.
func runDirs(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}
