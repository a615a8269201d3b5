package dom

import (
	"reflect"
	"sort"

	"github.com/google/go-cmp/cmp"
)

// Attr returns the value of attribute key, or nil if n has no such
// attribute.
func (n *Node) Attr(key string) any {
	return n.attrs[key]
}

// HasAttr checks for the existence of attribute key.
func (n *Node) HasAttr(key string) bool {
	_, ok := n.attrs[key]
	return ok
}

// Attributes returns a copy of the attributes of n.
func (n *Node) Attributes() Attributes {
	attrs := make(Attributes, len(n.attrs))
	for k, v := range n.attrs {
		attrs[k] = v
	}
	return attrs
}

// AttrKeys returns the attribute keys of n in sorted order.
func (n *Node) AttrKeys() []string {
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SetAttr sets attribute key to value. Setting an attribute to nil deletes
// it. SetAttr returns n to allow for chaining.
//
// Every effective change publishes one event: '+attr.<key>' for a new key,
// '~attr.<key>' for a changed value and '-attr.<key>' for a deletion.
// Writing the current value again, or deleting a missing key, publishes
// nothing.
func (n *Node) SetAttr(key string, value any) *Node {
	old, existed := n.attrs[key]
	var evt Event
	switch {
	case value == nil && !existed:
		return n
	case value == nil:
		delete(n.attrs, key)
		evt = Event{Kind: AttrRemoved(key), Node: n, Old: old}
	case !existed:
		n.setAttr(key, value)
		evt = Event{Kind: AttrAdded(key), Node: n, Value: value}
	case sameValue(old, value):
		return n
	default:
		n.setAttr(key, value)
		evt = Event{Kind: AttrChanged(key), Node: n, Value: value, Old: old}
	}
	n.publish(evt)
	return n
}

// SetAttrs applies every entry of attrs as a single SetAttr call, in
// sorted order of keys.
func (n *Node) SetAttrs(attrs Attributes) *Node {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		n.SetAttr(k, attrs[k])
	}
	return n
}

func (n *Node) setAttr(key string, value any) {
	if n.attrs == nil {
		n.attrs = make(Attributes)
	}
	n.attrs[key] = value
}

// exportAll lets cmp look into unexported struct fields, which it would
// otherwise refuse with a panic.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// sameValue reports whether two attribute values are equal. Values of
// different dynamic types are never equal.
func sameValue(a, b any) (same bool) {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta == nil || !ta.Comparable() {
		return cmp.Equal(a, b, exportAll)
	}
	defer func() {
		if recover() != nil { // interface fields holding uncomparable values
			same = cmp.Equal(a, b, exportAll)
		}
	}()
	return a == b
}
