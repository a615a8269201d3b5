package markup

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// XMLTokenizer tokenizes XML with encoding/xml. Tag names and attribute
// keys keep their case and their namespace prefix ("svg:rect"); prefixes
// are not resolved.
type XMLTokenizer struct {
	d        *xml.Decoder
	handlers handlers
}

// NewXMLTokenizer creates a tokenizer for XML read from r.
// HTML entities like '&nbsp;' are accepted in text.
func NewXMLTokenizer(r io.Reader) *XMLTokenizer {
	d := xml.NewDecoder(r)
	d.Entity = xml.HTMLEntity
	return &XMLTokenizer{d: d}
}

// XML is a Factory for XML tokenizers.
func XML(r io.Reader) Tokenizer {
	return NewXMLTokenizer(r)
}

// Subscribe is part of interface Tokenizer.
func (t *XMLTokenizer) Subscribe(h Handler) {
	t.handlers.add(h)
}

// Run is part of interface Tokenizer.
//
// Run reads raw tokens, i.e. the decoder does not check that start and end
// elements match.
func (t *XMLTokenizer) Run() error {
	defer t.handlers.End()
	for {
		tok, err := t.d.RawToken()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			tracer().Errorf("xml tokenizer: %v", err)
			return fmt.Errorf("markup: reading xml: %w", err)
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			attrs := make(map[string]any, len(tok.Attr))
			for _, a := range tok.Attr {
				attrs[qualified(a.Name)] = a.Value
			}
			t.handlers.OpenTag(qualified(tok.Name), attrs)
		case xml.EndElement:
			t.handlers.CloseTag(qualified(tok.Name))
		case xml.CharData:
			t.handlers.Text(string(tok))
		default:
			tracer().Debugf("xml tokenizer: skipping %T", tok)
		}
	}
}

func qualified(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

var _ Tokenizer = &XMLTokenizer{}
