package modules

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/LegacyCodeHQ/resprune/resources"
)

// OutputFormat represents an output format type
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatDOT  OutputFormat = "dot"
)

// String returns the string representation of the format
func (f OutputFormat) String() string {
	return string(f)
}

// SupportedFormats returns the accepted format names, comma separated.
func SupportedFormats() string {
	return strings.Join([]string{OutputFormatText.String(), OutputFormatDOT.String()}, ", ")
}

// Formatter renders a module graph.
type Formatter interface {
	Format(g *resources.ModuleGraph) (string, error)
}

// NewFormatter creates a Formatter for the specified format type.
func NewFormatter(format string) (Formatter, error) {
	switch OutputFormat(format) {
	case OutputFormatText:
		return TextFormatter{}, nil
	case OutputFormatDOT:
		return DOTFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (valid options: %s)", format, SupportedFormats())
	}
}

// TextFormatter prints one module per line, indented by nesting depth.
type TextFormatter struct{}

func (TextFormatter) Format(g *resources.ModuleGraph) (string, error) {
	var sb strings.Builder
	if err := writeTree(&sb, g, g.Root, 0); err != nil {
		return "", err
	}
	if sb.Len() == 0 {
		return "No modules found\n", nil
	}
	return sb.String(), nil
}

func writeTree(sb *strings.Builder, g *resources.ModuleGraph, dir string, depth int) error {
	children, err := g.Children(dir)
	if err != nil {
		return err
	}
	for _, child := range children {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(displayName(g.Root, child))
		sb.WriteString("\n")
		if err := writeTree(sb, g, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// DOTFormatter renders the module tree as a Graphviz digraph.
type DOTFormatter struct{}

func (DOTFormatter) Format(g *resources.ModuleGraph) (string, error) {
	modules, err := g.Modules()
	if err != nil {
		return "", err
	}
	edges, err := g.Edges()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("digraph modules {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box];\n")
	fmt.Fprintf(&sb, "  %q [shape=folder];\n", displayName(g.Root, g.Root))
	for _, module := range modules {
		fmt.Fprintf(&sb, "  %q;\n", displayName(g.Root, module))
	}
	for _, edge := range edges {
		fmt.Fprintf(&sb, "  %q -> %q;\n", displayName(g.Root, edge[0]), displayName(g.Root, edge[1]))
	}
	sb.WriteString("}\n")
	return sb.String(), nil
}

// displayName is dir relative to root, slash separated.
func displayName(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return filepath.ToSlash(dir)
	}
	return filepath.ToSlash(rel)
}
