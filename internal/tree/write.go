package tree

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// Header is written before the root element.
const Header = `<?xml version="1.0" encoding="utf-8"?>`

// WriteOptions controls serialization.
type WriteOptions struct {
	Indent string // defaults to a tab
}

// Write pretty prints root, one element per line. Sequence values are
// written as repeated siblings in order.
func Write(w io.Writer, root *Node, opts WriteOptions) error {
	if opts.Indent == "" {
		opts.Indent = "\t"
	}
	p := &printer{w: w, indent: opts.Indent}
	p.str(Header + "\n")
	for _, key := range root.keys {
		for _, n := range root.children[key].nodes {
			p.element(key, n, 0)
		}
	}
	return p.err
}

// Serialize returns root as text using the default options.
func Serialize(root *Node) []byte {
	var buf bytes.Buffer
	// writes to a bytes.Buffer do not fail
	_ = Write(&buf, root, WriteOptions{})
	return buf.Bytes()
}

type printer struct {
	w      io.Writer
	indent string
	err    error
}

func (p *printer) str(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) escaped(s string) {
	if p.err != nil {
		return
	}
	p.err = xml.EscapeText(p.w, []byte(s))
}

func (p *printer) element(tag string, n *Node, depth int) {
	pad := strings.Repeat(p.indent, depth)
	p.str(pad + "<" + tag)

	if n.IsScalar() {
		p.str(">")
		p.escaped(n.text)
		p.str("</" + tag + ">\n")
		return
	}

	var text string
	var nested []string
	for _, key := range n.keys {
		switch {
		case isAttr(key):
			p.str(" " + strings.TrimPrefix(key, AttrPrefix) + `="`)
			p.escaped(n.children[key].nodes[0].text)
			p.str(`"`)
		case key == TextKey:
			text = n.children[key].nodes[0].text
		default:
			if n.children[key].Len() > 0 {
				nested = append(nested, key)
			}
		}
	}
	p.str(">")

	if len(nested) == 0 {
		p.escaped(text)
		p.str("</" + tag + ">\n")
		return
	}

	p.str("\n")
	if text != "" {
		p.str(pad + p.indent)
		p.escaped(text)
		p.str("\n")
	}
	for _, key := range nested {
		for _, child := range n.children[key].nodes {
			p.element(key, child, depth+1)
		}
	}
	p.str(pad + "</" + tag + ">\n")
}
