// Package outline draws node trees and variant tables for the terminal.
package outline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/alexisbeaulieu97/positivus/internal/ui/node"
	"github.com/alexisbeaulieu97/positivus/internal/ui/variant"
)

var (
	tagStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	classStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	attrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	assetStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)

	// enumeratorStyle keeps the gap lipgloss/tree puts after each branch.
	enumeratorStyle = branchStyle.PaddingRight(1)
)

// Tree returns the lipgloss tree for n.
func Tree(n node.Node) *tree.Tree {
	t := tree.Root(Label(n)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumeratorStyle)

	if inlineText(n) {
		return t
	}
	for _, child := range n.Children() {
		if child.IsText() || child.Len() == 0 || inlineText(child) {
			t.Child(Label(child))
			continue
		}
		t.Child(Tree(child))
	}
	return t
}

// Render draws n as an indented tree.
func Render(n node.Node) string {
	return Tree(n).String()
}

// Label describes a single node on one line: tag and classes in selector
// form, then attributes and the asset id. Text nodes are quoted.
func Label(n node.Node) string {
	if n.IsText() {
		return textStyle.Render(strconv.Quote(n.Text()))
	}

	var b strings.Builder
	b.WriteString(tagStyle.Render(n.Tag()))
	if classes := n.Classes(); len(classes) > 0 {
		b.WriteString(classStyle.Render("." + strings.Join(classes, ".")))
	}

	attrs := n.Attrs()
	if len(attrs) > 0 {
		parts := make([]string, 0, len(attrs))
		for _, attr := range attrs {
			parts = append(parts, fmt.Sprintf("%s=%q", attr.Name, attr.Value))
		}
		b.WriteString(" ")
		b.WriteString(attrStyle.Render("[" + strings.Join(parts, " ") + "]"))
	}

	if id := n.Asset(); id != "" {
		b.WriteString(" ")
		b.WriteString(assetStyle.Render("@" + id))
	}

	if inlineText(n) {
		b.WriteString(" ")
		b.WriteString(textStyle.Render(strconv.Quote(n.Child(0).Text())))
	}
	return b.String()
}

// inlineText reports whether n's only child is text, which Label prints on
// the same line.
func inlineText(n node.Node) bool {
	return n.Len() == 1 && n.Child(0).IsText()
}

// VariantRow is one resolved pair in a variant table.
type VariantRow struct {
	Kind    variant.Kind
	Variant variant.Variant
	Bundle  variant.Bundle
}

// VariantRows resolves every declared variant of the given kinds, or of all
// kinds carrying a table when none are given.
func VariantRows(kinds ...variant.Kind) ([]VariantRow, error) {
	if len(kinds) == 0 {
		kinds = variant.Kinds()
	}

	var rows []VariantRow
	for _, kind := range kinds {
		for _, v := range variant.Variants(kind) {
			bundle, err := variant.Resolve(kind, v)
			if err != nil {
				return nil, err
			}
			rows = append(rows, VariantRow{Kind: kind, Variant: v, Bundle: bundle})
		}
	}
	return rows, nil
}

// VariantTable draws resolved variants as a bordered table.
func VariantTable(rows []VariantRow) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(branchStyle).
		Headers("KIND", "VARIANT", "ORDER", "ROLE", "ASSET", "CLASSES").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, r := range rows {
		asset := r.Bundle.Asset
		if asset == "" {
			asset = "-"
		}
		classes := strings.Join(r.Bundle.Classes, " ")
		if classes == "" {
			classes = "-"
		}
		t.Row(string(r.Kind), string(r.Variant), r.Bundle.Order.String(), string(r.Bundle.ColorRole), asset, classes)
	}
	return t.String()
}
