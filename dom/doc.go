/*
Package dom implements microdom, a small and mutable element tree.

Overview

A tree is rooted in a Document. Documents, element nodes and text nodes
are all of type Node; a Document embeds its root node and adds an event
channel and the configuration for building nodes (registry, tokenizer).

Trees may be built programmatically:

   doc := dom.New()
   div := doc.AppendElement("div", dom.Attributes{"class": "test"})
   div.AppendText("hello")

or from markup, either in one go (Parse, NewFromString) or incrementally
from a live tokenizer stream (Load). Builders consume the events of a
markup.Tokenizer.

Ownership

Every node knows its parent and its owner, the Document which last
attached it. Removing a node from its parent clears the parent, but not
the owner: a detached node continues to report the tree it came from
until it is attached somewhere else.

Events

Mutations are published to listeners subscribed at the Document, after
the mutation has been applied. Event kinds are '+node' and '-node' for
insertion and removal of children, and '+attr.<key>', '~attr.<key>' and
'-attr.<key>' for new, changed and deleted attributes. Mutations of nodes
which are not connected to a document are not published.

Registries

A Registry maps tag names to factories for node variants and holds a set
of capabilities shared by all nodes built with it. There is a process-wide
default registry; clients may create isolated ones and hand them to
documents with option WithRegistry.

Concurrency

Nothing in this package is synchronized. Trees and registries must not
be mutated from more than one goroutine at a time.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'microdom.dom'.
func tracer() tracing.Trace {
	return tracing.Select("microdom.dom")
}
