package dom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/microdom/markup"
	"golang.org/x/net/html"
)

// ErrNoTokenizer is returned when a document should be built without a
// tokenizer to read from.
var ErrNoTokenizer = errors.New("no tokenizer given")

// Document is the root of a tree. It embeds its root node, which has no
// parent, no name and no value, and which is its own owner.
//
// Document shadows Remove and RemoveAt of its root node: they return the
// document on success, to allow for chaining.
type Document struct {
	Node
	channel   *channel
	tokenizer markup.Factory
}

// Option configures a document.
type Option func(*Document)

// WithRegistry sets the registry used for creating nodes. A nil registry
// selects the default registry.
func WithRegistry(r *Registry) Option {
	return func(d *Document) {
		d.registry = r
	}
}

// WithTokenizer sets the tokenizer used for parsing markup. A nil factory
// selects the HTML tokenizer.
func WithTokenizer(f markup.Factory) Option {
	return func(d *Document) {
		if f != nil {
			d.tokenizer = f
		}
	}
}

// New creates an empty document.
func New(opts ...Option) *Document {
	d := &Document{
		channel:   newChannel(),
		tokenizer: markup.HTML,
	}
	d.kind = html.DocumentNode
	d.owner = d
	for _, opt := range opts {
		opt(d)
	}
	if d.registry == nil {
		d.registry = DefaultRegistry()
	}
	return d
}

// NewFromString creates a document and builds its children from markup.
// The document is returned even if tokenizing fails, holding the nodes
// built up to the point of failure.
func NewFromString(src string, opts ...Option) (*Document, error) {
	d := New(opts...)
	tok := d.tokenizer(strings.NewReader(src))
	tok.Subscribe(NewBuilder(&d.Node))
	if err := tok.Run(); err != nil {
		return d, fmt.Errorf("dom: building document: %w", err)
	}
	return d, nil
}

// Load creates a document which is built from the events of a live
// tokenizer stream. Nodes are appended to the document as the tokenizer
// emits events, i.e. while the caller runs tok. When the stream ends, done
// is called with the document (done may be nil).
//
// There is no way to cancel building other than stopping the tokenizer;
// the document then holds whatever has been built so far. Clients must not
// access the document from another goroutine while tok is running.
func Load(tok markup.Tokenizer, done func(*Document), opts ...Option) (*Document, error) {
	if tok == nil {
		return nil, ErrNoTokenizer
	}
	d := New(opts...)
	b := NewBuilder(&d.Node)
	if done != nil {
		b.OnEnd(func(*Builder) {
			done(d)
		})
	}
	tok.Subscribe(b)
	return d, nil
}

// AsNode returns the root node of d.
func (d *Document) AsNode() *Node {
	return &d.Node
}

// Remove detaches ch from the top level of d. It returns d, or nil if ch is
// not a top-level child of d.
func (d *Document) Remove(ch *Node) *Document {
	if d.Node.Remove(ch) == nil {
		return nil
	}
	return d
}

// RemoveAt detaches the top-level child at position i. It returns d, or
// nil if i is out of range.
func (d *Document) RemoveAt(i int) *Document {
	if d.Node.RemoveAt(i) == nil {
		return nil
	}
	return d
}

// Subscribe registers a listener for events of a given kind (see
// NodeAdded, AttrAdded etc.). Listeners are called synchronously after
// the mutation has been applied, in order of subscription.
func (d *Document) Subscribe(kind string, l Listener) Subscription {
	return d.channel.subscribe(kind, l)
}

// Unsubscribe removes a listener. It returns false if the subscription is
// unknown, e.g. because it already has been removed.
func (d *Document) Unsubscribe(s Subscription) bool {
	return d.channel.unsubscribe(s)
}
