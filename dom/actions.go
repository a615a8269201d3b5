package dom

// Predicate is a function type to match against nodes of a tree.
type Predicate func(n *Node) bool

// NodeIsText is a predicate to match text nodes.
var NodeIsText Predicate = func(n *Node) bool {
	return n.IsText()
}

// NodeIsElement is a predicate to match element nodes.
var NodeIsElement Predicate = func(n *Node) bool {
	return n.IsElement()
}

// NodeIsNamed creates a predicate matching elements with a given name.
func NodeIsNamed(name string) Predicate {
	return func(n *Node) bool {
		return n.IsElement() && n.name == name
	}
}

// AttributeIs creates a predicate matching nodes with attribute key set to
// value.
func AttributeIs(key string, value any) Predicate {
	return func(n *Node) bool {
		v, ok := n.attrs[key]
		return ok && sameValue(v, value)
	}
}

// Walk calls f for n and all of its descendents, top down in document
// order. If f returns false, the children of that node are skipped.
func (n *Node) Walk(f func(*Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, ch := range n.children.asSlice() {
		ch.Walk(f)
	}
}

// Find collects all descendents of n (not including n) matching a
// predicate, in document order.
func (n *Node) Find(pred Predicate) []*Node {
	var found []*Node
	for _, ch := range n.children.slice {
		ch.Walk(func(m *Node) bool {
			if pred(m) {
				found = append(found, m)
			}
			return true
		})
	}
	return found
}

// TextContent concatenates the values of all text nodes below n.
func (n *Node) TextContent() string {
	var s []byte
	n.Walk(func(m *Node) bool {
		if m.IsText() {
			s = append(s, m.value...)
		}
		return true
	})
	return string(s)
}
