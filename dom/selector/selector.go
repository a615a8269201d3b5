/*
Package selector finds nodes of a microdom tree by CSS selectors.

Selectors are compiled with cascadia, which operates on
golang.org/x/net/html parse trees. For matching, the tree is mirrored as
an html.Node tree. cascadia folds tag names and attribute keys of
selectors to lower case, and so does the mirror: matching of names is
case-insensitive, even though microdom keeps the original case.
Attribute values are matched in their fmt.Sprint form.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/microdom/dom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'microdom.selector'.
func tracer() tracing.Trace {
	return tracing.Select("microdom.selector")
}

// Selector is a compiled CSS selector.
type Selector struct {
	source string
	sel    cascadia.Selector
}

// Compile parses a CSS selector.
func Compile(selector string) (Selector, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return Selector{}, fmt.Errorf("selector: cannot compile %q: %w", selector, err)
	}
	return Selector{source: selector, sel: sel}, nil
}

// MustCompile is like Compile, but panics on syntax errors.
func MustCompile(selector string) Selector {
	s, err := Compile(selector)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Selector) String() string {
	return s.source
}

// Select returns all nodes below root (including root) matching a selector,
// in document order.
func Select(root *dom.Node, selector string) ([]*dom.Node, error) {
	s, err := Compile(selector)
	if err != nil {
		return nil, err
	}
	return s.MatchAll(root), nil
}

// MatchAll returns all nodes below root (including root) matching s, in
// document order. Ancestors of root are taken into account for
// combinators like '>', but are never part of the result.
func (s Selector) MatchAll(root *dom.Node) []*dom.Node {
	if root == nil || s.sel == nil {
		return nil
	}
	m := newMirror(root)
	var result []*dom.Node
	for _, h := range s.sel.MatchAll(m.html[root]) {
		result = append(result, m.dom[h])
	}
	tracer().Debugf("selector %q matches %d node(s)", s.source, len(result))
	return result
}

// Match checks if n matches s, in the context of its ancestors.
func (s Selector) Match(n *dom.Node) bool {
	if n == nil || s.sel == nil {
		return false
	}
	return s.sel.Match(newMirror(n).html[n])
}

// MatchFirst returns the first node below root matching s, or nil.
func (s Selector) MatchFirst(root *dom.Node) *dom.Node {
	if root == nil || s.sel == nil {
		return nil
	}
	m := newMirror(root)
	return m.dom[s.sel.MatchFirst(m.html[root])]
}

// --- Mirror trees ----------------------------------------------------------

// mirror is an html.Node copy of the tree containing a node, with
// mappings in both directions.
type mirror struct {
	html map[*dom.Node]*html.Node
	dom  map[*html.Node]*dom.Node
}

func newMirror(n *dom.Node) *mirror {
	top := n
	for top.Parent() != nil {
		top = top.Parent()
	}
	m := &mirror{
		html: make(map[*dom.Node]*html.Node),
		dom:  make(map[*html.Node]*dom.Node),
	}
	m.copy(top)
	return m
}

func (m *mirror) copy(n *dom.Node) *html.Node {
	h := &html.Node{Type: n.Type()}
	switch n.Type() {
	case html.ElementNode:
		h.Data = strings.ToLower(n.Name())
		h.DataAtom = atom.Lookup([]byte(h.Data))
		for _, k := range n.AttrKeys() {
			h.Attr = append(h.Attr, html.Attribute{
				Key: strings.ToLower(k),
				Val: fmt.Sprint(n.Attr(k)),
			})
		}
	case html.TextNode:
		h.Data = n.Value()
	}
	m.html[n] = h
	m.dom[h] = n
	for _, ch := range n.Children() {
		h.AppendChild(m.copy(ch))
	}
	return h
}
