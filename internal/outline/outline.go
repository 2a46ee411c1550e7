// Package outline extracts headings from section documents.
package outline

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Heading is a markdown heading with its level (1-6).
type Heading struct {
	Level int
	Text  string
}

var engine = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Headings returns every heading in source in document order.
func Headings(source []byte) []Heading {
	doc := engine.Parser().Parse(text.NewReader(source))

	var headings []Heading
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := node.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		headings = append(headings, Heading{
			Level: heading.Level,
			Text:  plainText(heading, source),
		})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// Title returns the text of the first heading, or "" when there is none.
func Title(source []byte) string {
	headings := Headings(source)
	if len(headings) == 0 {
		return ""
	}
	return headings[0].Text
}

// plainText concatenates the text segments below node, dropping emphasis
// and link markup.
func plainText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		case *ast.CodeSpan:
			for c := t.FirstChild(); c != nil; c = c.NextSibling() {
				if seg, ok := c.(*ast.Text); ok {
					buf.Write(seg.Segment.Value(source))
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}
