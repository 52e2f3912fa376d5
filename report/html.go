// Package report renders section extraction results for inspection: an HTML
// table of classified records and a PNG overlay of a page's columns and
// sections.
package report

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/sections/model"
)

var recordColumns = []string{
	"#", "Category", "Score", "Type", "Words", "Letter", "Year", "Name", "Centre", "Text",
}

// WriteHTML writes a standalone HTML document with one table row per record
func WriteHTML(w io.Writer, title string, records []*model.Record) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	doc.AppendChild(root)

	head := element(atom.Head)
	root.AppendChild(head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	head.AppendChild(withText(element(atom.Title), title))
	head.AppendChild(withText(element(atom.Style), stylesheet))

	body := element(atom.Body)
	root.AppendChild(body)
	body.AppendChild(withText(element(atom.H1), title))
	body.AppendChild(withText(element(atom.P), fmt.Sprintf("%d sections", len(records))))

	table := element(atom.Table)
	body.AppendChild(table)

	thead := element(atom.Thead)
	table.AppendChild(thead)
	headRow := element(atom.Tr)
	thead.AppendChild(headRow)
	for _, c := range recordColumns {
		headRow.AppendChild(withText(element(atom.Th), c))
	}

	tbody := element(atom.Tbody)
	table.AppendChild(tbody)
	for _, r := range records {
		tbody.AppendChild(recordRow(r))
	}

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("rendering html report: %w", err)
	}
	return nil
}

func recordRow(r *model.Record) *html.Node {
	row := element(atom.Tr)
	if r.Category != "" {
		row.Attr = append(row.Attr, html.Attribute{Key: "class", Val: r.Category})
	}

	cells := []string{
		strconv.Itoa(r.Index),
		r.Category,
		formatRatio(r.Score),
		r.Type,
		strconv.Itoa(r.WordCount),
		formatRatio(r.LetterRatio),
		formatRatio(r.YearRatio),
		formatRatio(r.NameRatio),
		r.Centre,
	}
	for _, c := range cells {
		row.AppendChild(withText(element(atom.Td), c))
	}

	text := element(atom.Td)
	row.AppendChild(text)
	text.AppendChild(withText(element(atom.Pre), r.Text))

	return row
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func withText(n *html.Node, s string) *html.Node {
	if s != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	}
	return n
}

func formatRatio(v float64) string {
	return strconv.FormatFloat(model.Round(v, 3), 'f', -1, 64)
}

const stylesheet = `
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 4px 8px; vertical-align: top; }
pre { margin: 0; white-space: pre-wrap; }
tr.reference { background: #fff4d6; }
tr.body { background: #eef6ff; }
`
