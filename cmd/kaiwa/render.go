package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	kaiwa "github.com/kaiwadb/kaiwa-go"
)

// renderer renders derived tables as an indented tree.
type renderer struct {
	table lipgloss.Style
	alias lipgloss.Style
	key   lipgloss.Style
	typ   lipgloss.Style
	note  lipgloss.Style
}

func newRenderer(color bool) *renderer {
	if !color {
		plain := lipgloss.NewStyle()

		return &renderer{table: plain, alias: plain, key: plain, typ: plain, note: plain}
	}

	return &renderer{
		table: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		alias: lipgloss.NewStyle().Faint(true),
		key:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		typ:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		note:  lipgloss.NewStyle().Faint(true).Italic(true),
	}
}

func (r *renderer) renderTables(tables []*kaiwa.Table) string {
	var b strings.Builder

	for i, table := range tables {
		if i > 0 {
			b.WriteByte('\n')
		}

		b.WriteString(r.table.Render(table.Name))

		if table.Alias != table.Name {
			b.WriteString(" " + r.alias.Render("("+table.Alias+")"))
		}

		b.WriteByte('\n')
		r.renderProperties(&b, "", table.Fields)
	}

	return b.String()
}

func (r *renderer) renderProperties(b *strings.Builder, prefix string, props *kaiwa.Properties) {
	keys := props.Keys()

	for i, key := range keys {
		node, _ := props.Get(key)
		last := i == len(keys)-1

		branch, childPrefix := "├─ ", prefix+"│  "
		if last {
			branch, childPrefix = "└─ ", prefix+"   "
		}

		b.WriteString(prefix + branch + r.key.Render(key) + ": " + r.describe(node) + "\n")
		r.renderChildren(b, childPrefix, node)
	}
}

// describe returns the single-line summary of a node: its type, an optional
// marker and any description.
func (r *renderer) describe(node kaiwa.SchemaNode) string {
	label := node.NodeType()

	switch n := node.(type) {
	case *kaiwa.EnumField:
		label = "enum " + n.Name
	case *kaiwa.UnionField:
		label = fmt.Sprintf("union (%d types)", len(n.Types))
	}

	out := r.typ.Render(label)

	meta := node.Meta()
	if meta.Optional {
		out += r.note.Render(" optional")
	}

	if meta.Description != "" {
		out += " " + r.note.Render("· "+meta.Description)
	}

	return out
}

// renderChildren renders the variant-specific payload below the node line.
func (r *renderer) renderChildren(b *strings.Builder, prefix string, node kaiwa.SchemaNode) {
	switch n := node.(type) {
	case *kaiwa.ArrayField:
		b.WriteString(prefix + "└─ " + r.key.Render("item") + ": " + r.describe(n.Item) + "\n")
		r.renderChildren(b, prefix+"   ", n.Item)
	case *kaiwa.UnionField:
		for i, member := range n.Types {
			branch, childPrefix := "├─ ", prefix+"│  "
			if i == len(n.Types)-1 {
				branch, childPrefix = "└─ ", prefix+"   "
			}

			b.WriteString(prefix + branch + r.describe(member) + "\n")
			r.renderChildren(b, childPrefix, member)
		}
	case *kaiwa.EnumField:
		for i, v := range n.Variants {
			branch := "├─ "
			if i == len(n.Variants)-1 {
				branch = "└─ "
			}

			label := v.Value
			if v.Alias != "" {
				label += " " + r.alias.Render("("+v.Alias+")")
			}

			b.WriteString(prefix + branch + label + "\n")
		}
	case *kaiwa.ObjectField:
		r.renderProperties(b, prefix, n.Properties)
	}
}
