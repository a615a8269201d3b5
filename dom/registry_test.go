package dom

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// anchor is a custom variant for <a> elements.
type anchor struct {
	node *Node
}

func (a *anchor) Node() *Node { return a.node }

func (a *anchor) Href() string {
	s, _ := a.node.Attr("href").(string)
	return s
}

func TestTagRegistryOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "microdom.dom")
	defer teardown()
	//
	reg := NewRegistry()
	reg.RegisterTag("a", func(n *Node) Variant { return &anchor{node: n} })
	frag, err := Parse(`<div><a href="/x">x</a><A href="/y">y</A></div>`, WithRegistry(reg))
	require.NoError(t, err)
	div := single(t, frag)
	a, ok := div.Child(0).Variant().(*anchor)
	require.True(t, ok, "expected <a> to be built as anchor, is %T", div.Child(0).Variant())
	assert.Equal(t, "/x", a.Href())
	assert.Same(t, div.Child(0), a.Node())
	_, ok = div.Child(1).Variant().(Element)
	assert.True(t, ok, "lookup of tag names is case-sensitive")
	_, ok = div.Variant().(Element)
	assert.True(t, ok)
	_, ok = div.Child(0).Child(0).Variant().(Text)
	assert.True(t, ok)
	//
	reg.RegisterTag("a", nil)
	frag, err = Parse(`<a href="/x">x</a>`, WithRegistry(reg))
	require.NoError(t, err)
	_, ok = single(t, frag).Variant().(Element)
	assert.True(t, ok, "clearing an override restores the default variant")
	reg.RegisterTag("never-registered", nil)
}

func TestRegistriesAreIsolated(t *testing.T) {
	reg := NewRegistry().RegisterTag("x", func(n *Node) Variant { return &anchor{node: n} })
	doc := New(WithRegistry(reg))
	x := doc.AppendElement("x", nil)
	_, ok := x.Variant().(*anchor)
	assert.True(t, ok)
	assert.Same(t, reg, x.Registry())
	y := New().AppendElement("x", nil)
	_, ok = y.Variant().(Element)
	assert.True(t, ok, "default registry must not see tags of other registries")
	_, found := DefaultRegistry().TagFactory("x")
	assert.False(t, found)
}

func TestFactoryReturningNilFallsBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "microdom.dom")
	defer teardown()
	//
	reg := NewRegistry().RegisterTag("x", func(*Node) Variant { return nil })
	n := reg.NewElement("x", Attributes{"drop": nil, "keep": 1})
	_, ok := n.Variant().(Element)
	assert.True(t, ok)
	assert.Equal(t, Attributes{"keep": 1}, n.Attributes())
}

func TestCapabilitiesAreRetroactive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "microdom.dom")
	defer teardown()
	//
	reg := NewRegistry()
	doc := New(WithRegistry(reg))
	n := doc.AppendElement("p", Attributes{"id": "p1"})
	snapshot := reg.Capabilities()
	_, err := n.Call("describe")
	assert.ErrorIs(t, err, ErrNoCapability)
	//
	reg.Extend(CapabilitySet{
		"describe": func(n *Node, args ...any) any {
			return fmt.Sprintf("%s#%v", n.Name(), n.Attr("id"))
		},
	})
	v, err := n.Call("describe")
	require.NoError(t, err)
	assert.Equal(t, "p#p1", v)
	assert.Empty(t, snapshot, "snapshots must not see later extensions")
	//
	reg.ExtendWith(func(caps CapabilitySet) {
		old := caps["describe"]
		caps["describe"] = func(n *Node, args ...any) any {
			return fmt.Sprintf("<%v>", old(n, args...))
		}
		caps["sum"] = func(n *Node, args ...any) any {
			s := 0
			for _, a := range args {
				s += a.(int)
			}
			return s
		}
	})
	v, _ = n.Call("describe")
	assert.Equal(t, "<p#p1>", v)
	v, _ = n.Call("sum", 1, 2, 3)
	assert.Equal(t, 6, v)
	//
	reg.Extend(CapabilitySet{"sum": nil})
	_, ok := n.Capability("sum")
	assert.False(t, ok)
}

func TestDefaultRegistryFunctions(t *testing.T) {
	RegisterTag("microdom-test", func(n *Node) Variant { return &anchor{node: n} })
	defer RegisterTag("microdom-test", nil)
	Extend(CapabilitySet{"microdom-test": func(*Node, ...any) any { return true }})
	defer ExtendWith(func(caps CapabilitySet) { delete(caps, "microdom-test") })
	//
	n := NewElement("microdom-test", nil)
	_, ok := n.Variant().(*anchor)
	assert.True(t, ok)
	v, err := NewText("t").Call("microdom-test")
	require.NoError(t, err)
	assert.Equal(t, true, v)
}
