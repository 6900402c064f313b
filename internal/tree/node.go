// Package tree holds the ordered, tag-keyed document model that KML and GPX
// files are parsed into, together with the tag finder and the serializer.
package tree

import "strings"

const (
	// AttrPrefix marks keys that hold attributes rather than child elements.
	AttrPrefix = "@"
	// TextKey holds the character data of an element that also carries
	// attributes or child elements.
	TextKey = "#text"
)

// Node is either a scalar holding text or an element mapping tag names to
// child values in document order.
type Node struct {
	text     string
	element  bool
	keys     []string
	children map[string]*Value
	order    []entry // children in source order, across tags
}

// entry is one child in the order it was added.
type entry struct {
	tag  string
	node *Node
}

// NewScalar returns a leaf node holding text.
func NewScalar(text string) *Node {
	return &Node{text: text}
}

// NewElement returns an element with no children.
func NewElement() *Node {
	return &Node{element: true, children: map[string]*Value{}}
}

// IsScalar reports whether n is a leaf.
func (n *Node) IsScalar() bool {
	return !n.element
}

// Text returns the scalar text, or the #text child of an element.
func (n *Node) Text() string {
	if !n.element {
		return n.text
	}
	if v, ok := n.children[TextKey]; ok && v.Len() > 0 {
		return v.Nodes()[0].text
	}
	return ""
}

// Keys returns the child tags in insertion order, attributes included.
func (n *Node) Keys() []string {
	return append([]string(nil), n.keys...)
}

// Has reports whether tag is present among the direct children.
func (n *Node) Has(tag string) bool {
	if !n.element {
		return false
	}
	_, ok := n.children[tag]
	return ok
}

// Get returns the value stored under tag.
func (n *Node) Get(tag string) (*Value, error) {
	if !n.Has(tag) {
		return nil, &MissingFieldError{Field: tag}
	}
	return n.children[tag], nil
}

// Child returns the single node stored under tag. A tag repeated among the
// siblings is reported as a MissingFieldError with Repeated set.
func (n *Node) Child(tag string) (*Node, error) {
	v, err := n.Get(tag)
	if err != nil {
		return nil, err
	}
	if v.IsMany() {
		return nil, &MissingFieldError{Field: tag, Repeated: true}
	}
	return v.nodes[0], nil
}

// ChildText returns the text of the single node stored under tag.
func (n *Node) ChildText(tag string) (string, error) {
	c, err := n.Child(tag)
	if err != nil {
		return "", err
	}
	return c.Text(), nil
}

// Attr returns the named attribute and whether it is set.
func (n *Node) Attr(name string) (string, bool) {
	c, err := n.Child(AttrPrefix + name)
	if err != nil {
		return "", false
	}
	return c.text, true
}

// Set stores v under tag, keeping the original position when the tag
// already exists. Scalars are promoted to elements.
func (n *Node) Set(tag string, v *Value) {
	n.promote()
	if _, ok := n.children[tag]; !ok {
		n.keys = append(n.keys, tag)
	}
	n.children[tag] = v

	at := len(n.order)
	kept := n.order[:0]
	for _, e := range n.order {
		if e.tag == tag {
			if at > len(kept) {
				at = len(kept)
			}
			continue
		}
		kept = append(kept, e)
	}
	added := make([]entry, len(v.nodes))
	for i, c := range v.nodes {
		added[i] = entry{tag: tag, node: c}
	}
	n.order = append(kept[:at:at], append(added, kept[at:]...)...)
}

// SetNode stores c as the single child under tag.
func (n *Node) SetNode(tag string, c *Node) {
	n.Set(tag, Single(c))
}

// SetText stores a scalar child under tag.
func (n *Node) SetText(tag, text string) {
	n.Set(tag, Single(NewScalar(text)))
}

// SetAttr stores an attribute.
func (n *Node) SetAttr(name, value string) {
	n.SetText(AttrPrefix+name, value)
}

// Append adds c under tag. The first occurrence stays a single value; the
// second turns the value into a sequence.
func (n *Node) Append(tag string, c *Node) {
	n.promote()
	n.order = append(n.order, entry{tag: tag, node: c})
	v, ok := n.children[tag]
	if !ok {
		n.keys = append(n.keys, tag)
		n.children[tag] = Single(c)
		return
	}
	v.nodes = append(v.nodes, c)
	v.many = true
}

// Delete removes tag and its value.
func (n *Node) Delete(tag string) {
	if !n.Has(tag) {
		return
	}
	delete(n.children, tag)
	for i, k := range n.keys {
		if k == tag {
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			break
		}
	}
	kept := n.order[:0]
	for _, e := range n.order {
		if e.tag != tag {
			kept = append(kept, e)
		}
	}
	n.order = kept
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if !n.element {
		return NewScalar(n.text)
	}
	c := NewElement()
	clones := make(map[*Node]*Node)
	for _, k := range n.keys {
		v := n.children[k]
		nodes := make([]*Node, len(v.nodes))
		for i, child := range v.nodes {
			nodes[i] = child.Clone()
			clones[child] = nodes[i]
		}
		c.keys = append(c.keys, k)
		c.children[k] = &Value{nodes: nodes, many: v.many}
	}
	c.order = make([]entry, len(n.order))
	for i, e := range n.order {
		c.order[i] = entry{tag: e.tag, node: clones[e.node]}
	}
	return c
}

func (n *Node) promote() {
	if n.element {
		return
	}
	n.element = true
	n.children = map[string]*Value{}
	if text := strings.TrimSpace(n.text); text != "" {
		t := NewScalar(text)
		n.keys = append(n.keys, TextKey)
		n.children[TextKey] = Single(t)
		n.order = append(n.order, entry{tag: TextKey, node: t})
	}
	n.text = ""
}

func isAttr(tag string) bool {
	return strings.HasPrefix(tag, AttrPrefix)
}

// Value is the content stored under one tag: either a single node or an
// ordered sequence of sibling nodes sharing that tag.
type Value struct {
	nodes []*Node
	many  bool
}

// Single wraps one node.
func Single(n *Node) *Value {
	return &Value{nodes: []*Node{n}}
}

// Many wraps an ordered sequence of nodes. An empty sequence is valid and
// serializes to nothing.
func Many(nodes ...*Node) *Value {
	return &Value{nodes: append([]*Node(nil), nodes...), many: true}
}

// IsMany reports whether v is a sequence.
func (v *Value) IsMany() bool {
	return v.many
}

// Nodes returns the nodes of v as a sequence regardless of its shape.
func (v *Value) Nodes() []*Node {
	return v.nodes
}

// Len returns the number of nodes in v.
func (v *Value) Len() int {
	return len(v.nodes)
}
