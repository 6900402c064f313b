package tree

// Find returns every node stored under tag anywhere below root, in document
// order. A match does not stop the walk: the matched node is searched too, so
// a tag nested inside another occurrence of itself yields both, outer first.
func Find(tag string, root *Node) []*Node {
	return FindFunc(root, func(key string, _ *Node) bool {
		return key == tag
	})
}

// FindFunc walks root depth first, visiting children in source order across
// tags, and collects every child for which match returns true. Attributes are
// never visited.
func FindFunc(root *Node, match func(tag string, n *Node) bool) []*Node {
	var results []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		if n.IsScalar() {
			return
		}
		for _, e := range n.order {
			if isAttr(e.tag) || e.tag == TextKey {
				continue
			}
			if match(e.tag, e.node) {
				results = append(results, e.node)
			}
			walk(e.node)
		}
	}
	walk(root)
	return results
}

// FindByAttr returns the elements below root whose attribute name equals
// value, in document order.
func FindByAttr(name, value string, root *Node) []*Node {
	return FindFunc(root, func(_ string, n *Node) bool {
		v, ok := n.Attr(name)
		return ok && v == value
	})
}
