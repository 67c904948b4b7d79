package java

import (
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/refmt-dev/refmt/internal/formatter/cstyle"
)

type importDecl struct {
	text  string // canonical single-line declaration
	fqn   string // fully-qualified name, ".*" suffix included
	group int
}

// sortImports regroups the file's import block per the configured group
// prefixes: each import joins the first prefix that prefix-matches its
// fully-qualified name, groups are emitted in configured order separated by
// a blank line, unmatched imports go last, and the original relative order
// is preserved inside every group. An empty configured prefix matches
// everything and acts as an explicit catch-all at its position.
func sortImports(engine *cstyle.Engine, source, eol string, order []string) (string, error) {
	if len(order) == 0 {
		return source, nil
	}

	tree, err := engine.Parse(source)
	if err != nil {
		return "", err
	}
	defer tree.Close()

	content := []byte(source)
	root := tree.RootNode()

	var nodes []*sitter.Node
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() == "import_declaration" {
			nodes = append(nodes, child)
		}
	}
	if len(nodes) < 2 {
		return source, nil
	}

	// Comments interleaved with the imports would be lost by a block
	// rewrite; leave such files untouched.
	start := nodes[0].StartByte()
	end := nodes[len(nodes)-1].EndByte()
	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)
		if child.Type() == "import_declaration" {
			continue
		}
		if child.StartByte() < end && child.EndByte() > start {
			return source, nil
		}
	}

	decls := make([]importDecl, 0, len(nodes))
	for _, node := range nodes {
		text := canonicalImport(node.Content(content))
		fqn := importName(text)
		decls = append(decls, importDecl{text: text, fqn: fqn, group: groupIndex(fqn, order)})
	}

	sort.SliceStable(decls, func(i, j int) bool {
		return decls[i].group < decls[j].group
	})

	var b strings.Builder
	for i, decl := range decls {
		if i > 0 {
			b.WriteString(eol)
			if decl.group != decls[i-1].group {
				b.WriteString(eol)
			}
		}
		b.WriteString(decl.text)
	}

	return source[:start] + b.String() + source[end:], nil
}

// canonicalImport collapses an import declaration onto one line with single
// spaces.
func canonicalImport(raw string) string {
	fields := strings.Fields(strings.TrimSuffix(strings.TrimSpace(raw), ";"))
	return strings.Join(fields, " ") + ";"
}

// importName extracts the fully-qualified name from a canonical declaration.
func importName(decl string) string {
	name := strings.TrimSuffix(decl, ";")
	name = strings.TrimPrefix(name, "import")
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "static")
	return strings.TrimSpace(name)
}

func groupIndex(fqn string, order []string) int {
	for i, prefix := range order {
		if prefix == "" || strings.HasPrefix(fqn, prefix) {
			return i
		}
	}
	return len(order)
}
