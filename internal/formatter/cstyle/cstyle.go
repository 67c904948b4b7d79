// Package cstyle implements the concrete formatting engine shared by the
// brace-delimited languages: a tree-sitter parse gate followed by
// whitespace canonicalization (indentation by brace depth, trailing
// whitespace trim, final newline, line-ending normalization).
package cstyle

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/refmt-dev/refmt/internal/config"
	"github.com/refmt-dev/refmt/internal/formatter"
	"github.com/refmt-dev/refmt/internal/lineending"
)

// Options controls the whitespace style the engine produces.
type Options struct {
	IndentString string
	TrimTrailing bool
	FinalNewline bool
}

// DefaultOptions is four-space indentation with trimming and a final newline.
func DefaultOptions() Options {
	return Options{IndentString: "    ", TrimTrailing: true, FinalNewline: true}
}

// OptionsFromMap builds engine options from a formatter option map.
// Unrecognized keys (compiler versions among them) are ignored here; they
// belong to the language formatter.
func OptionsFromMap(m map[string]string) (Options, error) {
	opts := DefaultOptions()

	indentChar := " "
	if raw, ok := m[config.KeyIndentChar]; ok {
		switch raw {
		case "space":
			indentChar = " "
		case "tab":
			indentChar = "\t"
		default:
			return opts, fmt.Errorf("invalid %s %q (expected space or tab)", config.KeyIndentChar, raw)
		}
	}

	size := 4
	if raw, ok := m[config.KeyIndentSize]; ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return opts, fmt.Errorf("invalid %s %q", config.KeyIndentSize, raw)
		}
		size = parsed
	}
	if indentChar == "\t" {
		size = 1
	}
	opts.IndentString = strings.Repeat(indentChar, size)

	if raw, ok := m[config.KeyTrimTrailing]; ok {
		opts.TrimTrailing = raw != "false"
	}
	if raw, ok := m[config.KeyFinalNewline]; ok {
		opts.FinalNewline = raw != "false"
	}
	return opts, nil
}

// Engine reformats source text for one tree-sitter grammar.
type Engine struct {
	parser *sitter.Parser
	opts   Options
}

// NewEngine creates an engine for the given grammar.
func NewEngine(lang *sitter.Language, opts Options) *Engine {
	p := sitter.NewParser()
	p.SetLanguage(lang)
	return &Engine{parser: p, opts: opts}
}

// Parse runs the grammar over source and fails when the tree contains
// syntax errors, so malformed input is rejected before any rewrite.
func (e *Engine) Parse(source string) (*sitter.Tree, error) {
	tree, err := e.parser.ParseCtx(context.Background(), nil, []byte(source))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", formatter.ErrCannotFormat, err)
	}
	if tree.RootNode().HasError() {
		tree.Close()
		return nil, fmt.Errorf("%w: source contains syntax errors", formatter.ErrCannotFormat)
	}
	return tree, nil
}

// Reformat returns the canonical form of source using the given newline
// sequence. The input must already have passed Parse.
func (e *Engine) Reformat(source, eol string) string {
	normalized := lineending.Normalize(source, "\n")
	lines := strings.Split(normalized, "\n")

	var scan scanner
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")

		var emitted string
		switch {
		case scan.inBlockComment:
			// Align block comment continuations under the opener.
			if strings.HasPrefix(trimmed, "*") {
				emitted = e.indent(scan.depth) + " " + trimmed
			} else {
				emitted = line
			}
		case trimmed == "":
			emitted = ""
		default:
			depth := scan.depth
			if leadingCloser(trimmed) {
				depth--
			}
			if depth < 0 {
				depth = 0
			}
			emitted = e.indent(depth) + trimmed
		}

		if e.opts.TrimTrailing {
			emitted = strings.TrimRight(emitted, " \t")
		}
		out = append(out, emitted)

		scan.advance(trimmed)
	}

	result := strings.Join(out, "\n")
	if e.opts.FinalNewline {
		result = strings.TrimRight(result, "\n") + "\n"
	}
	return lineending.Normalize(result, eol)
}

func (e *Engine) indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(e.opts.IndentString, depth)
}

func leadingCloser(trimmed string) bool {
	return strings.HasPrefix(trimmed, "}") || strings.HasPrefix(trimmed, ")")
}

// scanner tracks brace depth across lines, skipping string and character
// literals and comments so braces inside them do not shift indentation.
type scanner struct {
	depth          int
	inBlockComment bool
}

func (s *scanner) advance(line string) {
	i := 0
	for i < len(line) {
		if s.inBlockComment {
			if end := strings.Index(line[i:], "*/"); end >= 0 {
				s.inBlockComment = false
				i += end + 2
				continue
			}
			return
		}

		c := line[i]
		switch c {
		case '/':
			if i+1 < len(line) {
				switch line[i+1] {
				case '/':
					return
				case '*':
					s.inBlockComment = true
					i += 2
					continue
				}
			}
		case '"', '\'', '`':
			i = skipLiteral(line, i)
			continue
		case '{', '(':
			s.depth++
		case '}', ')':
			if s.depth > 0 {
				s.depth--
			}
		}
		i++
	}
}

// skipLiteral returns the position just past a quoted literal opened at
// start. Unterminated literals run to end of line.
func skipLiteral(line string, start int) int {
	quote := line[start]
	i := start + 1
	for i < len(line) {
		switch line[i] {
		case '\\':
			i += 2
			continue
		case quote:
			return i + 1
		}
		i++
	}
	return i
}
