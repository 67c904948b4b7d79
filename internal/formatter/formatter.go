// Package formatter defines the per-language formatting capability and the
// extension-based dispatch used by the run pipeline.
package formatter

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/refmt-dev/refmt/internal/config"
	"github.com/refmt-dev/refmt/internal/lineending"
)

// ErrCannotFormat marks input the formatting engine could not produce output
// for (malformed source, unsupported syntax). Reported as a per-file failure,
// never a fatal run error.
var ErrCannotFormat = errors.New("cannot format")

// Outcome is the terminal result of processing one file.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFail
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFail:
		return "fail"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Formatter rewrites source text of one language into canonical style.
type Formatter interface {
	// Language returns the language name (e.g., "java").
	Language() string

	// Extensions returns file extensions this formatter handles.
	Extensions() []string

	// Init builds the underlying engine from an option map, falling back to
	// compiler-version-derived defaults when the map is empty. A formatter
	// given a nil map stays uninitialized.
	Init(options map[string]string, cfg *config.Config) error

	// Initialized reports whether Format may be called.
	Initialized() bool

	// Format returns the canonical form of source under the given line
	// ending policy. changed is false when the input already is canonical;
	// out is empty in that case.
	Format(source string, ending lineending.LineEnding) (out string, changed bool, err error)
}

// Registry dispatches files to formatters by extension.
type Registry struct {
	formatters map[string]Formatter
	extToLang  map[string]string
}

// NewRegistry creates an empty formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
		extToLang:  make(map[string]string),
	}
}

// Register adds a formatter for all extensions it reports.
func (r *Registry) Register(f Formatter) {
	lang := f.Language()
	r.formatters[lang] = f
	for _, ext := range f.Extensions() {
		r.extToLang[ext] = lang
	}
}

// ForFile returns the formatter responsible for a file, if any.
func (r *Registry) ForFile(filename string) (Formatter, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	lang, ok := r.extToLang[ext]
	if !ok {
		return nil, false
	}
	f, ok := r.formatters[lang]
	return f, ok
}

// AnyInitialized reports whether at least one registered formatter is ready.
func (r *Registry) AnyInitialized() bool {
	for _, f := range r.formatters {
		if f.Initialized() {
			return true
		}
	}
	return false
}
