// Package config carries the run-wide settings shared by the formatters and
// the orchestrator.
package config

import (
	"github.com/refmt-dev/refmt/internal/encoding"
	"github.com/refmt-dev/refmt/internal/lineending"
)

// Option keys recognized by the formatting engines.
const (
	KeyCompilerSource     = "compiler.source"
	KeyCompilerCompliance = "compiler.compliance"
	KeyCompilerTarget     = "compiler.target"
	KeyIndentChar         = "indent.char"
	KeyIndentSize         = "indent.size"
	KeyTrimTrailing       = "trim.trailing.whitespace"
	KeyFinalNewline       = "insert.final.newline"
)

// Config is the global configuration for one formatting run.
type Config struct {
	// BaseDir is the project root; cache keys are relative to it.
	BaseDir string
	// TargetDir holds build output, including the cache store.
	TargetDir string

	Encoding   *encoding.Codec
	LineEnding lineending.LineEnding

	CompilerSource     string
	CompilerCompliance string
	CompilerTarget     string
}

// CompilerOptions returns the compiler-version-derived option map used when
// no explicit option file is configured for a language.
func (c *Config) CompilerOptions() map[string]string {
	return map[string]string{
		KeyCompilerSource:     c.CompilerSource,
		KeyCompilerCompliance: c.CompilerCompliance,
		KeyCompilerTarget:     c.CompilerTarget,
	}
}
