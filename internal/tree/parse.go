package tree

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
)

// Parse reads an XML document and returns its root as an element holding
// the single top-level tag.
func Parse(r io.Reader) (*Node, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return FromDOM(doc)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Node, error) {
	return Parse(strings.NewReader(s))
}

// FromDOM converts an xmlquery document into a tree.
//
// Elements without attributes or child elements collapse to scalars holding
// their trimmed text. Repeated sibling tags are gathered into one sequence
// value. Comments, declarations and processing instructions are dropped.
func FromDOM(doc *xmlquery.Node) (*Node, error) {
	root := NewElement()
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		if len(root.keys) > 0 {
			return nil, &ParseError{Err: errors.New("more than one root element")}
		}
		root.SetNode(qualifiedName(c), convert(c))
	}
	if len(root.keys) == 0 {
		return nil, &ParseError{Err: errors.New("no root element")}
	}
	return root, nil
}

func convert(el *xmlquery.Node) *Node {
	var text strings.Builder
	hasElements := false
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.ElementNode:
			hasElements = true
		case xmlquery.TextNode, xmlquery.CharDataNode:
			text.WriteString(c.Data)
		}
	}
	trimmed := strings.TrimSpace(text.String())

	if !hasElements && len(el.Attr) == 0 {
		return NewScalar(trimmed)
	}

	n := NewElement()
	for _, attr := range el.Attr {
		n.SetAttr(attrName(attr), attr.Value)
	}
	if trimmed != "" {
		n.SetText(TextKey, trimmed)
	}
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			n.Append(qualifiedName(c), convert(c))
		}
	}
	return n
}

func qualifiedName(el *xmlquery.Node) string {
	if el.Prefix != "" {
		return el.Prefix + ":" + el.Data
	}
	return el.Data
}

func attrName(attr xmlquery.Attr) string {
	if attr.Name.Space != "" {
		return fmt.Sprintf("%s:%s", attr.Name.Space, attr.Name.Local)
	}
	return attr.Name.Local
}
