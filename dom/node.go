package dom

import (
	"fmt"

	"golang.org/x/net/html"
)

// Attributes map attribute keys to scalar values. Values are never nil.
type Attributes = map[string]any

// Node is the building block of microdom trees. A node is either an element
// (optionally named, with attributes and children), a text node carrying a
// value, or the root node of a Document.
//
// Nodes are created by the mutation API (AppendElement, AppendText, …), by
// builders reacting to tokenizer events, or detached with NewElement and
// NewText.
type Node struct {
	kind     html.NodeType
	name     string
	value    string
	attrs    Attributes
	children childrenSlice
	parent   *Node
	owner    *Document
	registry *Registry
	variant  Variant
}

// NewElement creates a detached element node, using the default registry.
func NewElement(name string, attrs Attributes) *Node {
	return DefaultRegistry().NewElement(name, attrs)
}

// NewText creates a detached text node, using the default registry.
func NewText(value string) *Node {
	return DefaultRegistry().NewText(value)
}

func (n *Node) String() string {
	switch n.kind {
	case html.TextNode:
		return fmt.Sprintf("(Text %q)", n.value)
	case html.DocumentNode:
		return fmt.Sprintf("(Document #ch=%d)", n.Length())
	}
	return fmt.Sprintf("(Node %q #ch=%d)", n.name, n.Length())
}

// Type returns html.ElementNode, html.TextNode or html.DocumentNode.
func (n *Node) Type() html.NodeType {
	return n.kind
}

// IsText is true for text nodes.
func (n *Node) IsText() bool {
	return n != nil && n.kind == html.TextNode
}

// IsElement is true for element nodes.
func (n *Node) IsElement() bool {
	return n != nil && n.kind == html.ElementNode
}

// Name returns the tag name of an element, or "" if the node has no name.
func (n *Node) Name() string {
	return n.name
}

// Value returns the text of a text node, or "".
func (n *Node) Value() string {
	return n.value
}

// Parent returns the parent node, or nil for roots and detached nodes.
func (n *Node) Parent() *Node {
	return n.parent
}

// Owner returns the document which last attached this node. It is not
// cleared when the node is removed from its parent.
func (n *Node) Owner() *Document {
	return n.owner
}

// Variant returns the variant created for this node by the registry's
// tag factory, or a default variant (Element or Text).
func (n *Node) Variant() Variant {
	return n.variant
}

// Registry returns the registry the node has been created with.
func (n *Node) Registry() *Registry {
	if n.registry == nil {
		return DefaultRegistry()
	}
	return n.registry
}

// Child returns the child at position i, or nil if i is out of range.
func (n *Node) Child(i int) *Node {
	return n.children.child(i)
}

// Children returns the children of n in document order. The slice is a copy.
func (n *Node) Children() []*Node {
	return n.children.asSlice()
}

// Length returns the number of children.
func (n *Node) Length() int {
	return n.children.length()
}

// IndexOf returns the position of ch among the children of n, or -1 if ch
// is nil or not a child of n.
func (n *Node) IndexOf(ch *Node) int {
	return n.children.index(ch)
}

// contains is true if m is n or a descendent of n.
func (n *Node) contains(m *Node) bool {
	for p := m; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// connected returns the owner of n if n is part of its owner's tree, and
// nil otherwise.
func (n *Node) connected() *Document {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	if r.owner != nil && r == &r.owner.Node {
		return r.owner
	}
	return nil
}

// publish sends an event to the document n is connected to, if any.
func (n *Node) publish(evt Event) {
	if doc := n.connected(); doc != nil {
		doc.channel.publish(evt)
		return
	}
	tracer().Debugf("%s event for unconnected node %v", evt.Kind, n)
}
