package dom

import (
	"fmt"

	"golang.org/x/net/html"
)

// atEnd is a position for inserting children after the last child.
const atEnd = -1

// Append attaches ch as the last child of n and returns ch.
//
// If ch currently has a parent, it is removed from there first, i.e. Append
// moves nodes, possibly between different documents. The owner of ch and of
// all its descendents is set to the owner of n. Documents cannot be
// appended, and neither can n itself or one of its ancestors; in these cases
// nothing happens and Append returns nil.
func (n *Node) Append(ch *Node) *Node {
	return n.insertAt(atEnd, ch)
}

// Prepend attaches ch as the first child of n and returns ch.
// Otherwise it works like Append.
func (n *Node) Prepend(ch *Node) *Node {
	return n.insertAt(0, ch)
}

// AppendElement creates a new element and appends it as the last child of n.
// name may be empty. The new node is returned.
func (n *Node) AppendElement(name string, attrs Attributes) *Node {
	return n.Append(n.Registry().NewElement(name, attrs))
}

// PrependElement creates a new element and inserts it as the first child of n.
func (n *Node) PrependElement(name string, attrs Attributes) *Node {
	return n.Prepend(n.Registry().NewElement(name, attrs))
}

// AppendText creates a new text node and appends it as the last child of n.
func (n *Node) AppendText(value string) *Node {
	return n.Append(n.Registry().NewText(value))
}

// PrependText creates a new text node and inserts it as the first child of n.
func (n *Node) PrependText(value string) *Node {
	return n.Prepend(n.Registry().NewText(value))
}

// AppendMarkup parses src and appends the resulting nodes, in document
// order, after the last child of n. It returns the last node inserted,
// which is nil for empty markup. If parsing fails, n is left unchanged.
//
// Markup is parsed with the registry of n and the tokenizer configured
// for the owner of n.
func (n *Node) AppendMarkup(src string) (*Node, error) {
	return n.spliceMarkup(src, atEnd)
}

// PrependMarkup parses src and inserts the resulting nodes, in document
// order, in front of the first child of n. It returns the last node
// inserted.
func (n *Node) PrependMarkup(src string) (*Node, error) {
	return n.spliceMarkup(src, 0)
}

func (n *Node) spliceMarkup(src string, at int) (*Node, error) {
	opts := []Option{WithRegistry(n.Registry())}
	if n.owner != nil {
		opts = append(opts, WithTokenizer(n.owner.tokenizer))
	}
	frag, err := Parse(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("dom: cannot insert markup: %w", err)
	}
	var last *Node
	for i, ch := range Nodes(frag) {
		if at == atEnd {
			last = n.insertAt(atEnd, ch)
		} else {
			last = n.insertAt(at+i, ch)
		}
	}
	return last, nil
}

// insertAt is the single point where nodes get attached to a parent.
func (n *Node) insertAt(at int, ch *Node) *Node {
	if ch == nil {
		return nil
	}
	if ch.kind == html.DocumentNode {
		tracer().Errorf("cannot attach document %v to %v", ch, n)
		return nil
	}
	if ch.contains(n) {
		tracer().Errorf("cannot attach %v to itself or to a descendent", ch)
		return nil
	}
	if ch.parent != nil {
		tracer().Debugf("moving %v from %v to %v", ch, ch.parent, n)
		ch.Detach()
	}
	if at == atEnd {
		at = n.children.length()
	}
	n.children.insertChildAt(at, ch)
	ch.parent = n
	ch.adopt(n.owner)
	n.publish(Event{Kind: NodeAdded, Node: ch})
	return ch
}

// adopt sets the owner of n and all of its descendents.
func (n *Node) adopt(owner *Document) {
	n.owner = owner
	for _, ch := range n.children.slice {
		ch.adopt(owner)
	}
}

// Remove detaches the child ch from n and returns it. If ch is not a child
// of n, Remove returns nil.
//
// The parent of a removed node is cleared, its owner is left unchanged.
func (n *Node) Remove(ch *Node) *Node {
	return n.removeAt(n.children.index(ch))
}

// RemoveAt detaches the child at position i and returns it. If i is out of
// range, nothing happens and RemoveAt returns nil.
func (n *Node) RemoveAt(i int) *Node {
	return n.removeAt(i)
}

// Detach removes n from its parent, if any, and returns n.
func (n *Node) Detach() *Node {
	if n != nil && n.parent != nil {
		n.parent.removeAt(n.parent.children.index(n))
	}
	return n
}

func (n *Node) removeAt(i int) *Node {
	doc := n.connected() // before the mutation, the child is still reachable
	ch := n.children.removeAt(i)
	if ch == nil {
		return nil
	}
	ch.parent = nil
	if doc != nil {
		doc.channel.publish(Event{Kind: NodeRemoved, Node: ch})
	}
	return ch
}
