package markup

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLTokenizer tokenizes HTML-like markup with golang.org/x/net/html.
//
// The x/net tokenizer folds tag names and attribute keys to lower case. We
// recover the original spelling from the raw token text, so '<aBc viewBox=1>'
// is reported as "aBc" with key "viewBox". Attribute values and text have
// entities unescaped.
//
// Elements like <title>, <script> or <textarea> are tokenized like every
// other element, i.e. tags within them are reported as tags. RawText
// switches to HTML's raw text handling for them.
type HTMLTokenizer struct {
	z        *html.Tokenizer
	handlers handlers
	voids    map[string]bool // lower-case names of elements without content
	rawText  bool            // contents of <script>, <title> etc. are text
	open     int             // depth of open tags, for tracing only
}

// NewHTMLTokenizer creates a tokenizer for HTML markup read from r.
func NewHTMLTokenizer(r io.Reader) *HTMLTokenizer {
	return &HTMLTokenizer{z: html.NewTokenizer(r)}
}

// HTML is a Factory for HTML tokenizers.
func HTML(r io.Reader) Tokenizer {
	return NewHTMLTokenizer(r)
}

// VoidElements makes the tokenizer treat the given (lower-case) element
// names as void elements, like HTML's <br> or <img>: a start tag is
// immediately followed by a CloseTag event, and explicit end tags for them
// are dropped. By default no element is void, as markup fed to microdom
// is expected to close every tag.
func (t *HTMLTokenizer) VoidElements(names ...string) *HTMLTokenizer {
	if t.voids == nil {
		t.voids = make(map[string]bool, len(names))
	}
	for _, name := range names {
		t.voids[name] = true
	}
	return t
}

// RawText makes the tokenizer treat the contents of <script>, <style>,
// <title>, <textarea> and the other raw text elements of HTML as a single
// text, as an HTML parser does.
func (t *HTMLTokenizer) RawText() *HTMLTokenizer {
	t.rawText = true
	return t
}

// Subscribe is part of interface Tokenizer.
func (t *HTMLTokenizer) Subscribe(h Handler) {
	t.handlers.add(h)
}

// Run is part of interface Tokenizer.
func (t *HTMLTokenizer) Run() error {
	defer t.handlers.End()
	for {
		tt := t.z.Next()
		switch tt {
		case html.ErrorToken:
			err := t.z.Err()
			if errors.Is(err, io.EOF) {
				if t.open > 0 {
					tracer().Debugf("html tokenizer: %d tag(s) left open at end of input", t.open)
				}
				return nil
			}
			tracer().Errorf("html tokenizer: %v", err)
			return fmt.Errorf("markup: reading html: %w", err)
		case html.TextToken:
			t.handlers.Text(string(t.z.Text()))
		case html.StartTagToken, html.SelfClosingTagToken:
			// raw text must be copied before TagName() folds it in place
			raw := t.z.Raw()
			name, keys := rawTagName(raw), rawAttrKeys(raw)
			lower, more := t.z.TagName()
			void := t.voids[string(lower)]
			if !t.rawText {
				t.z.NextIsNotRawText()
			}
			t.handlers.OpenTag(name, t.attributes(more, keys))
			t.open++
			if tt == html.SelfClosingTagToken || void {
				t.handlers.CloseTag(name)
				t.open--
			}
		case html.EndTagToken:
			name := rawTagName(t.z.Raw())
			if lower, _ := t.z.TagName(); t.voids[string(lower)] {
				continue
			}
			t.handlers.CloseTag(name)
			t.open--
		default: // comments and doctype
			tracer().Debugf("html tokenizer: skipping %s token", tt)
		}
	}
}

// attributes collects the attributes of the current start tag. It must be
// called after TagName. keys are the raw attribute keys of the tag, in
// order; a raw key replaces the folded key delivered by x/net if they match.
func (t *HTMLTokenizer) attributes(more bool, keys []string) map[string]any {
	attrs := make(map[string]any)
	for i := 0; more; i++ {
		var k, v []byte
		k, v, more = t.z.TagAttr()
		key := string(k)
		if i < len(keys) && strings.EqualFold(keys[i], key) {
			key = keys[i]
		}
		attrs[key] = string(v)
	}
	return attrs
}

// rawTagName extracts the tag name from the raw text of a start tag or end
// tag, preserving its case.
func rawTagName(raw []byte) string {
	i := 0
	if i < len(raw) && raw[i] == '<' {
		i++
	}
	if i < len(raw) && raw[i] == '/' {
		i++
	}
	start := i
	for i < len(raw) {
		switch raw[i] {
		case ' ', '\n', '\t', '\r', '\f', '/', '>':
			return string(raw[start:i])
		}
		i++
	}
	return string(raw[start:])
}

// rawAttrKeys extracts the attribute keys from the raw text of a start tag,
// preserving their case. Keys are split the way x/net splits them, so
// they line up with the attributes returned by TagAttr.
func rawAttrKeys(raw []byte) []string {
	i := 1 // skip '<'
	for i < len(raw) && !isSpace(raw[i]) && raw[i] != '/' && raw[i] != '>' {
		i++
	}
	var keys []string
	for i < len(raw) {
		for i < len(raw) && isSpace(raw[i]) {
			i++
		}
		if i >= len(raw) || raw[i] == '>' {
			break
		}
		start := i
		for i < len(raw) {
			c := raw[i]
			if isSpace(c) || c == '/' || c == '>' || (c == '=' && i > start) {
				break
			}
			i++
		}
		key := string(raw[start:i])
		if i < len(raw) && (isSpace(raw[i]) || raw[i] == '/') {
			i++
		}
		j := i
		for j < len(raw) && isSpace(raw[j]) {
			j++
		}
		if j < len(raw) && raw[j] == '=' {
			j++
			for j < len(raw) && isSpace(raw[j]) {
				j++
			}
			if j < len(raw) && (raw[j] == '"' || raw[j] == '\'') {
				q := raw[j]
				for j++; j < len(raw) && raw[j] != q; j++ {
				}
				if j < len(raw) {
					j++
				}
			} else {
				for j < len(raw) && !isSpace(raw[j]) && raw[j] != '>' {
					j++
				}
			}
			i = j
		}
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\n', '\t', '\r', '\f':
		return true
	}
	return false
}

var _ Tokenizer = &HTMLTokenizer{}
