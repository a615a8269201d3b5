/*
Package w3cdom presents microdom trees through the interface of W3C
Document Object Models.

See also https://www.w3schools.com/XML/dom_intro.asp

Node names follow the W3C conventions: elements report their tag name,
text nodes '#text' and documents '#document'. Attribute values are
rendered as strings.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"fmt"

	"github.com/npillmayer/microdom/dom"
	"golang.org/x/net/html"
)

// Node represents W3C-type Node
type Node interface {
	NodeType() html.NodeType  // ElementNode, TextNode or DocumentNode
	NodeName() string         // node name output depends on the node's type
	NodeValue() string        // node value output depends on the node's type
	HasAttributes() bool      // check for existence of attributes
	ParentNode() Node         // get the parent node, if any
	HasChildNodes() bool      // check for existence of sub-nodes
	ChildNodes() NodeList     // get a list of all children-nodes
	Children() NodeList       // get a list of element child-nodes
	FirstChild() Node         // get the first children-node
	NextSibling() Node        // get the Node's next sibling or nil if last
	Attributes() NamedNodeMap // get all attributes of a node
	TextContent() string      // get text from node and all descendents
}

// NodeList represents W3C-type NodeList
type NodeList interface {
	Length() int
	Item(int) Node
	String() string
}

// Attr represents W3C-type Attr
type Attr interface {
	Key() string
	Value() string
}

// NamedNodeMap represents W3C-type NamedNodeMap
type NamedNodeMap interface {
	Length() int
	Item(int) Attr
	GetNamedItem(string) Attr
}

// --- Adapter for microdom nodes --------------------------------------------

// W3CNode wraps a microdom node.
type W3CNode struct {
	n *dom.Node
}

// Wrap returns the W3C view of a microdom node, or nil for nil.
func Wrap(n *dom.Node) *W3CNode {
	if n == nil {
		return nil
	}
	return &W3CNode{n: n}
}

// wrap avoids non-nil interfaces holding nil pointers.
func wrap(n *dom.Node) Node {
	if n == nil {
		return nil
	}
	return Wrap(n)
}

// DOMNode returns the underlying microdom node.
func (w *W3CNode) DOMNode() *dom.Node {
	return w.n
}

// NodeType is part of interface Node.
func (w *W3CNode) NodeType() html.NodeType {
	return w.n.Type()
}

// NodeName is part of interface Node.
func (w *W3CNode) NodeName() string {
	switch w.n.Type() {
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	}
	return w.n.Name()
}

// NodeValue is part of interface Node.
func (w *W3CNode) NodeValue() string {
	return w.n.Value()
}

// HasAttributes is part of interface Node.
func (w *W3CNode) HasAttributes() bool {
	return len(w.n.AttrKeys()) > 0
}

// ParentNode is part of interface Node.
func (w *W3CNode) ParentNode() Node {
	return wrap(w.n.Parent())
}

// HasChildNodes is part of interface Node.
func (w *W3CNode) HasChildNodes() bool {
	return w.n.Length() > 0
}

// ChildNodes is part of interface Node.
func (w *W3CNode) ChildNodes() NodeList {
	return nodeList(w.n.Children())
}

// Children is part of interface Node.
func (w *W3CNode) Children() NodeList {
	var elements []*dom.Node
	for _, ch := range w.n.Children() {
		if ch.IsElement() {
			elements = append(elements, ch)
		}
	}
	return nodeList(elements)
}

// FirstChild is part of interface Node.
func (w *W3CNode) FirstChild() Node {
	return wrap(w.n.Child(0))
}

// NextSibling is part of interface Node.
func (w *W3CNode) NextSibling() Node {
	p := w.n.Parent()
	if p == nil {
		return nil
	}
	return wrap(p.Child(p.IndexOf(w.n) + 1))
}

// Attributes is part of interface Node.
func (w *W3CNode) Attributes() NamedNodeMap {
	return attributes{w.n}
}

// TextContent is part of interface Node.
func (w *W3CNode) TextContent() string {
	return w.n.TextContent()
}

var _ Node = &W3CNode{}

// --- Node lists and attribute maps -----------------------------------------

type nodeList []*dom.Node

func (l nodeList) Length() int {
	return len(l)
}

func (l nodeList) Item(i int) Node {
	if i < 0 || i >= len(l) {
		return nil
	}
	return Wrap(l[i])
}

func (l nodeList) String() string {
	return fmt.Sprintf("NodeList%v", []*dom.Node(l))
}

type attr struct {
	key, value string
}

func (a attr) Key() string   { return a.key }
func (a attr) Value() string { return a.value }

type attributes struct {
	n *dom.Node
}

func (m attributes) Length() int {
	return len(m.n.AttrKeys())
}

func (m attributes) Item(i int) Attr {
	keys := m.n.AttrKeys()
	if i < 0 || i >= len(keys) {
		return nil
	}
	return m.GetNamedItem(keys[i])
}

func (m attributes) GetNamedItem(key string) Attr {
	if !m.n.HasAttr(key) {
		return nil
	}
	return attr{key: key, value: fmt.Sprint(m.n.Attr(key))}
}
