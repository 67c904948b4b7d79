// Package javascript implements the JavaScript formatter on top of the
// shared whitespace engine.
package javascript

import (
	"fmt"

	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/refmt-dev/refmt/internal/config"
	"github.com/refmt-dev/refmt/internal/formatter/cstyle"
	"github.com/refmt-dev/refmt/internal/lineending"
)

type Formatter struct {
	engine *cstyle.Engine
}

func New() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Language() string {
	return "javascript"
}

func (f *Formatter) Extensions() []string {
	return []string{".js"}
}

func (f *Formatter) Init(options map[string]string, cfg *config.Config) error {
	if options == nil {
		return nil
	}
	if len(options) == 0 {
		options = cfg.CompilerOptions()
	}
	opts, err := cstyle.OptionsFromMap(options)
	if err != nil {
		return fmt.Errorf("javascript formatter options: %w", err)
	}
	f.engine = cstyle.NewEngine(javascript.GetLanguage(), opts)
	return nil
}

func (f *Formatter) Initialized() bool {
	return f.engine != nil
}

func (f *Formatter) Format(source string, ending lineending.LineEnding) (string, bool, error) {
	if !f.Initialized() {
		return "", false, fmt.Errorf("javascript formatter is not initialized")
	}

	tree, err := f.engine.Parse(source)
	if err != nil {
		return "", false, err
	}
	tree.Close()

	out := f.engine.Reformat(source, ending.Chars(source))
	if out == source {
		return "", false, nil
	}
	return out, true, nil
}
