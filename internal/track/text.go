package track

import (
	"strings"

	"golang.org/x/net/html"
)

// block elements that start a new line in the plain text rendering
var lineBreaking = map[string]bool{
	"br": true, "p": true, "div": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "table": true,
}

// PlainText renders the HTML that KML descriptions commonly carry as plain
// text for GPX desc fields. Text without markup passes through with its
// whitespace collapsed.
func PlainText(src string) string {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return strings.TrimSpace(src)
	}

	var lines []string
	var cur strings.Builder
	flush := func() {
		if line := strings.Join(strings.Fields(cur.String()), " "); line != "" {
			lines = append(lines, line)
		}
		cur.Reset()
	}

	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			cur.WriteString(n.Data)
			return
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
			if lineBreaking[n.Data] {
				flush()
			}
			if n.Data == "td" || n.Data == "th" {
				cur.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
		if n.Type == html.ElementNode && lineBreaking[n.Data] {
			flush()
		}
	}
	traverse(doc)
	flush()
	return strings.Join(lines, "\n")
}
