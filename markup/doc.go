/*
Package markup is the boundary between lexical tokenizers and tree builders.

Tokenizers read markup text and push a stream of events to subscribed
handlers, in document order:

   OpenTag(name, attributes)
   Text(value)
   CloseTag(name)
   End()

Tag names keep the casing of the source. Self-closing tags produce an
OpenTag event immediately followed by a CloseTag event. Comments,
processing instructions and doctype declarations are not reported.

Two tokenizers are provided: one for HTML-ish markup on top of
golang.org/x/net/html, and one for XML on top of encoding/xml.
Tokenizers do not check tag balance beyond what the underlying
library does; handlers have to trust the stream.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"io"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'microdom.markup'.
func tracer() tracing.Trace {
	return tracing.Select("microdom.markup")
}

// Handler receives the events of a tokenizer.
type Handler interface {
	OpenTag(name string, attrs map[string]any)
	Text(value string)
	CloseTag(name string)
	End()
}

// Tokenizer is a streaming source of markup events. Clients subscribe
// handlers and then call Run, which reads the input until it is
// exhausted. End is delivered to every handler exactly once, even if
// Run returns an error.
type Tokenizer interface {
	Subscribe(h Handler)
	Run() error
}

// Factory creates a tokenizer reading from r.
type Factory func(r io.Reader) Tokenizer

// --- Fan-out to subscribers ------------------------------------------------

// handlers is a list of subscribers, itself acting as a Handler.
type handlers []Handler

func (hs *handlers) add(h Handler) {
	if h != nil {
		*hs = append(*hs, h)
	}
}

func (hs handlers) OpenTag(name string, attrs map[string]any) {
	for _, h := range hs {
		h.OpenTag(name, attrs)
	}
}

func (hs handlers) Text(value string) {
	for _, h := range hs {
		h.Text(value)
	}
}

func (hs handlers) CloseTag(name string) {
	for _, h := range hs {
		h.CloseTag(name)
	}
}

func (hs handlers) End() {
	for _, h := range hs {
		h.End()
	}
}

var _ Handler = handlers{}
