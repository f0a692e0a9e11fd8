package extract

import (
	"context"
	"fmt"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/python"
)

// langSpec describes how to read top-level declarations for one
// language: the grammar plus a node-type -> label mapping.
type langSpec struct {
	language *sitter.Language
	decls    map[string]string
}

var codeLangs = map[string]langSpec{
	".go": {
		language: golang.GetLanguage(),
		decls: map[string]string{
			"function_declaration": "func",
			"method_declaration":   "func",
			"type_declaration":     "type",
		},
	},
	".py": {
		language: python.GetLanguage(),
		decls: map[string]string{
			"function_definition": "def",
			"class_definition":    "class",
		},
	},
}

// extractCode lists the top-level declarations of a source file as the
// preview. A declaration outline identifies a code file's content for
// matching and prompting far better than its raw head.
func extractCode(path string, ext string, limits Limits) Result {
	spec, ok := codeLangs[strings.ToLower(ext)]
	if !ok {
		return Result{}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Result{Err: fmt.Errorf("failed to read source file: %w", err)}
	}

	parser := sitter.NewParser()
	parser.SetLanguage(spec.language)
	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return Result{Err: fmt.Errorf("failed to parse source file: %w", err)}
	}
	defer tree.Close()

	var decls []string
	root := tree.RootNode()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)
		label, ok := spec.decls[node.Type()]
		if !ok {
			continue
		}
		for _, name := range declNames(node, content) {
			decls = append(decls, label+" "+name)
		}
	}

	return textResult(strings.Join(decls, "\n"), limits)
}

func declNames(node *sitter.Node, content []byte) []string {
	if name := node.ChildByFieldName("name"); name != nil {
		return []string{name.Content(content)}
	}

	// Go type_declaration wraps one or more type_spec children.
	var names []string
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() != "type_spec" {
			continue
		}
		if name := child.ChildByFieldName("name"); name != nil {
			names = append(names, name.Content(content))
		}
	}
	return names
}
