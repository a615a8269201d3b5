/*
Package style reads and writes inline CSS declarations, i.e. the contents
of the 'style' attribute of microdom elements.

Parsing is done by package douceur. Writing a property re-serializes the
attribute, so subscribers of the owning document see a regular
'~attr.style' event.

Install adds the capabilities "style" (lookup) and "set-style" (update)
to a registry:

    style.Install(dom.DefaultRegistry())
    color, _ := node.Call("style", "color")

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/microdom/dom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'microdom.style'.
func tracer() tracing.Trace {
	return tracing.Select("microdom.style")
}

// Attribute is the name of the attribute holding inline styles.
const Attribute = "style"

// Declarations parses the style attribute of n. Nodes without a style
// attribute have no declarations.
func Declarations(n *dom.Node) ([]*css.Declaration, error) {
	if n == nil || !n.HasAttr(Attribute) {
		return nil, nil
	}
	decls, err := parser.ParseDeclarations(fmt.Sprint(n.Attr(Attribute)))
	if err != nil {
		return nil, fmt.Errorf("style: parsing style of %v: %w", n, err)
	}
	return decls, nil
}

// Property returns the value of the last declaration of key within the
// style attribute of n.
func Property(n *dom.Node, key string) (string, bool) {
	decls, err := Declarations(n)
	if err != nil {
		tracer().Debugf("%v", err)
		return "", false
	}
	value, found := "", false
	for _, d := range decls {
		if d.Property == key {
			value, found = d.Value, true
		}
	}
	return value, found
}

// SetProperty replaces (or adds) the declaration of key in the style
// attribute of n. An empty value removes the declaration; if no
// declarations remain, the style attribute is removed.
func SetProperty(n *dom.Node, key, value string) error {
	decls, err := Declarations(n)
	if err != nil {
		return err
	}
	kept := decls[:0]
	replaced := false
	for _, d := range decls {
		if d.Property != key {
			kept = append(kept, d)
			continue
		}
		if value != "" && !replaced {
			d.Value, d.Important = value, false
			kept = append(kept, d)
			replaced = true
		}
	}
	if value != "" && !replaced {
		kept = append(kept, &css.Declaration{Property: key, Value: value})
	}
	if len(kept) == 0 {
		n.SetAttr(Attribute, nil)
		return nil
	}
	n.SetAttr(Attribute, serialize(kept))
	return nil
}

func serialize(decls []*css.Declaration) string {
	var b strings.Builder
	for i, d := range decls {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		if d.Important {
			b.WriteString(" !important")
		}
		b.WriteByte(';')
	}
	return b.String()
}

// Capabilities returns the capabilities "style" and "set-style".
//
//   n.Call("style", key)            → string, or nil if not set
//   n.Call("set-style", key, value) → error, or nil
//
func Capabilities() dom.CapabilitySet {
	return dom.CapabilitySet{
		"style": func(n *dom.Node, args ...any) any {
			if len(args) == 0 {
				return nil
			}
			if v, ok := Property(n, fmt.Sprint(args[0])); ok {
				return v
			}
			return nil
		},
		"set-style": func(n *dom.Node, args ...any) any {
			if len(args) < 2 {
				return fmt.Errorf("style: set-style needs a key and a value")
			}
			if err := SetProperty(n, fmt.Sprint(args[0]), fmt.Sprint(args[1])); err != nil {
				return err
			}
			return nil
		},
	}
}

// Install extends registry r with the style capabilities.
func Install(r *dom.Registry) *dom.Registry {
	return r.Extend(Capabilities())
}
