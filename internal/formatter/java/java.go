// Package java implements the Java formatter: whitespace canonicalization
// through the shared engine, then import regrouping per the configured
// import order.
package java

import (
	"fmt"

	"github.com/smacker/go-tree-sitter/java"

	"github.com/refmt-dev/refmt/internal/config"
	"github.com/refmt-dev/refmt/internal/formatter/cstyle"
	"github.com/refmt-dev/refmt/internal/lineending"
)

type Formatter struct {
	engine      *cstyle.Engine
	importOrder []string
}

// New creates an uninitialized Java formatter. importOrder is shared
// read-only; the formatter never mutates it.
func New(importOrder []string) *Formatter {
	return &Formatter{importOrder: importOrder}
}

func (f *Formatter) Language() string {
	return "java"
}

func (f *Formatter) Extensions() []string {
	return []string{".java"}
}

// Init builds the engine from the option map. A nil map means no option file
// was found for this language and the formatter stays uninitialized; an
// empty map falls back to compiler-version-derived defaults.
func (f *Formatter) Init(options map[string]string, cfg *config.Config) error {
	if options == nil {
		return nil
	}
	if len(options) == 0 {
		options = cfg.CompilerOptions()
	}
	opts, err := cstyle.OptionsFromMap(options)
	if err != nil {
		return fmt.Errorf("java formatter options: %w", err)
	}
	f.engine = cstyle.NewEngine(java.GetLanguage(), opts)
	return nil
}

func (f *Formatter) Initialized() bool {
	return f.engine != nil
}

func (f *Formatter) Format(source string, ending lineending.LineEnding) (string, bool, error) {
	if !f.Initialized() {
		return "", false, fmt.Errorf("java formatter is not initialized")
	}

	tree, err := f.engine.Parse(source)
	if err != nil {
		return "", false, err
	}
	tree.Close()

	eol := ending.Chars(source)
	out := f.engine.Reformat(source, eol)
	out, err = sortImports(f.engine, out, eol, f.importOrder)
	if err != nil {
		return "", false, err
	}

	if out == source {
		return "", false, nil
	}
	return out, true, nil
}
