package style

import (
	"testing"

	"github.com/npillmayer/microdom/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "microdom.style")
	defer teardown()
	//
	doc, err := dom.NewFromString(`<p style="color: red; margin: 0 !important; color: blue">x</p>`)
	if err != nil {
		t.Fatal(err)
	}
	p := doc.Child(0)
	color, ok := Property(p, "color")
	assert.True(t, ok)
	assert.Equal(t, "blue", color, "last declaration of a property wins")
	_, ok = Property(p, "padding")
	assert.False(t, ok)
	_, ok = Property(p.Child(0), "color")
	assert.False(t, ok, "text node has no style")
	decls, err := Declarations(p)
	assert.NoError(t, err)
	if assert.Len(t, decls, 3) {
		assert.True(t, decls[1].Important)
	}
}

func TestSetPropertyFiresAttributeEvent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "microdom.style")
	defer teardown()
	//
	doc := dom.New()
	p := doc.AppendElement("p", dom.Attributes{"style": "color: red"})
	var events []dom.Event
	doc.Subscribe(dom.AttrChanged(Attribute), func(e dom.Event) {
		events = append(events, e)
	})
	doc.Subscribe(dom.AttrRemoved(Attribute), func(e dom.Event) {
		events = append(events, e)
	})
	assert.NoError(t, SetProperty(p, "margin", "1em"))
	assert.Equal(t, "color: red; margin: 1em;", p.Attr(Attribute))
	assert.NoError(t, SetProperty(p, "color", "green"))
	assert.Equal(t, "color: green; margin: 1em;", p.Attr(Attribute))
	assert.NoError(t, SetProperty(p, "color", ""))
	assert.NoError(t, SetProperty(p, "margin", ""))
	assert.False(t, p.HasAttr(Attribute))
	if assert.Len(t, events, 4) {
		assert.Equal(t, "color: red", events[0].Old)
		assert.Equal(t, dom.AttrRemoved(Attribute), events[3].Kind)
	}
}

func TestStyleCapabilities(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "microdom.style")
	defer teardown()
	//
	reg := Install(dom.NewRegistry())
	n := reg.NewElement("div", dom.Attributes{"style": "width: 10px"})
	v, err := n.Call("style", "width")
	assert.NoError(t, err)
	assert.Equal(t, "10px", v)
	v, _ = n.Call("style", "height")
	assert.Nil(t, v)
	v, _ = n.Call("set-style", "height", "2px")
	assert.Nil(t, v)
	h, _ := Property(n, "height")
	assert.Equal(t, "2px", h)
	v, _ = n.Call("set-style", "height")
	assert.Error(t, v.(error))
	_, err = dom.NewElement("div", nil).Call("style", "width")
	assert.ErrorIs(t, err, dom.ErrNoCapability)
}
