package dom

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"
)

// ErrNoCapability is returned when calling a capability which has not been
// registered.
var ErrNoCapability = errors.New("no such capability")

// Variant is the behaviour a node gets from its tag. Factories registered
// for a tag name create a variant for every element of that name.
type Variant interface {
	Node() *Node
}

// Element is the default variant of element nodes.
type Element struct {
	node *Node
}

// Node is part of interface Variant.
func (e Element) Node() *Node {
	return e.node
}

// Text is the variant of text nodes.
type Text struct {
	node *Node
}

// Node is part of interface Variant.
func (t Text) Node() *Node {
	return t.node
}

// Factory creates a variant for a freshly constructed node. Factories are
// called before the node gets attached, with its name and attributes set.
type Factory func(n *Node) Variant

// Capability is a function available on every node of a registry.
type Capability func(n *Node, args ...any) any

// CapabilitySet maps names to capabilities.
type CapabilitySet map[string]Capability

// Registry holds the configuration for constructing nodes: a table of
// variant factories by tag name, and a set of capabilities shared by all
// nodes created with the registry.
//
// Registries are not synchronized.
type Registry struct {
	tags         map[string]Factory
	capabilities CapabilitySet
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tags:         make(map[string]Factory),
		capabilities: make(CapabilitySet),
	}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry, which is used
// whenever no other registry has been configured.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// RegisterTag registers f as the factory for elements named name, in the
// default registry. See Registry.RegisterTag.
func RegisterTag(name string, f Factory) *Registry {
	return defaultRegistry.RegisterTag(name, f)
}

// Extend adds capabilities to the default registry. See Registry.Extend.
func Extend(caps CapabilitySet) *Registry {
	return defaultRegistry.Extend(caps)
}

// ExtendWith transforms the capabilities of the default registry.
// See Registry.ExtendWith.
func ExtendWith(f func(CapabilitySet)) *Registry {
	return defaultRegistry.ExtendWith(f)
}

// RegisterTag registers f as the factory for elements named name. Names
// are matched exactly, including case. A nil factory clears the entry,
// restoring the default variant for name.
func (r *Registry) RegisterTag(name string, f Factory) *Registry {
	if f == nil {
		delete(r.tags, name)
		return r
	}
	r.tags[name] = f
	return r
}

// TagFactory returns the factory registered for name, if any.
func (r *Registry) TagFactory(name string) (Factory, bool) {
	f, ok := r.tags[name]
	return f, ok
}

// Extend merges caps into the capabilities of r. Entries with a nil
// capability remove the capability of that name.
func (r *Registry) Extend(caps CapabilitySet) *Registry {
	for name, c := range caps {
		if c == nil {
			delete(r.capabilities, name)
			continue
		}
		r.capabilities[name] = c
	}
	return r
}

// ExtendWith calls f with the capability set of r, which f may modify in
// place.
func (r *Registry) ExtendWith(f func(CapabilitySet)) *Registry {
	if f != nil {
		f(r.capabilities)
	}
	return r
}

// Capabilities returns a snapshot of the capabilities of r. Later
// extensions of r are not reflected in the snapshot.
func (r *Registry) Capabilities() CapabilitySet {
	caps := make(CapabilitySet, len(r.capabilities))
	for name, c := range r.capabilities {
		caps[name] = c
	}
	return caps
}

// NewElement creates a detached element node. nil-valued attributes are
// dropped. The variant of the node is created by the factory registered for
// name, if any.
func (r *Registry) NewElement(name string, attrs Attributes) *Node {
	n := &Node{kind: html.ElementNode, name: name, registry: r}
	for k, v := range attrs {
		if v != nil {
			n.setAttr(k, v)
		}
	}
	n.variant = r.variantFor(n)
	return n
}

// NewText creates a detached text node.
func (r *Registry) NewText(value string) *Node {
	n := &Node{kind: html.TextNode, value: value, registry: r}
	n.variant = Text{node: n}
	return n
}

func (r *Registry) variantFor(n *Node) Variant {
	if f, ok := r.tags[n.name]; ok {
		if v := f(n); v != nil {
			return v
		}
		tracer().Infof("factory for <%s> did not create a variant, using default", n.name)
	}
	return Element{node: n}
}

// --- Capabilities of nodes -------------------------------------------------

// Capability looks up a capability in the registry of n. Lookup happens at
// call time, so capabilities registered after n has been created are
// available, too.
func (n *Node) Capability(name string) (Capability, bool) {
	c, ok := n.Registry().capabilities[name]
	return c, ok
}

// Call invokes the capability name for n.
func (n *Node) Call(name string, args ...any) (any, error) {
	c, ok := n.Capability(name)
	if !ok {
		return nil, fmt.Errorf("dom: calling %q on %v: %w", name, n, ErrNoCapability)
	}
	return c(n, args...), nil
}
