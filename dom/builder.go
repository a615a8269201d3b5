package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/microdom/either"
	"github.com/npillmayer/microdom/markup"
)

// Fragment is the result of parsing markup: either a single node, if the
// markup has exactly one top-level node, or a sequence of top-level nodes
// otherwise (possibly empty).
type Fragment = either.Either[*Node, []*Node]

// Nodes returns the nodes of a fragment as a slice.
func Nodes(frag Fragment) []*Node {
	if frag == nil {
		return nil
	}
	return either.Fold(frag,
		func(n *Node) []*Node { return []*Node{n} },
		func(nodes []*Node) []*Node { return nodes },
	)
}

// Builder assembles a tree from tokenizer events. It implements
// markup.Handler.
//
// A builder keeps a stack of open elements, seeded with a container node.
// Open tags append a new element to the top of the stack and push it, text
// appends a text node, close tags pop. Close tags are not checked against
// the names of open elements; tokenizers are trusted to deliver balanced
// streams.
type Builder struct {
	stack []*Node
	onEnd func(*Builder)
	ended bool
}

// NewBuilder creates a builder which appends top-level nodes to container.
func NewBuilder(container *Node) *Builder {
	return &Builder{stack: []*Node{container}}
}

// OnEnd sets a callback to be called at the end of the token stream.
func (b *Builder) OnEnd(f func(*Builder)) *Builder {
	b.onEnd = f
	return b
}

func (b *Builder) top() *Node {
	return b.stack[len(b.stack)-1]
}

// Container returns the node the builder has been seeded with.
func (b *Builder) Container() *Node {
	return b.stack[0]
}

// Ended is true after the end of the token stream has been received.
func (b *Builder) Ended() bool {
	return b.ended
}

// OpenTag is part of interface markup.Handler.
func (b *Builder) OpenTag(name string, attrs map[string]any) {
	n := b.top().AppendElement(name, attrs)
	b.stack = append(b.stack, n)
}

// Text is part of interface markup.Handler.
func (b *Builder) Text(value string) {
	b.top().AppendText(value)
}

// CloseTag is part of interface markup.Handler.
func (b *Builder) CloseTag(name string) {
	if len(b.stack) == 1 {
		tracer().Debugf("builder: ignoring unbalanced </%s>", name)
		return
	}
	b.stack = b.stack[:len(b.stack)-1]
}

// End is part of interface markup.Handler.
func (b *Builder) End() {
	if b.ended {
		return
	}
	b.ended = true
	if len(b.stack) > 1 {
		tracer().Debugf("builder: %d element(s) not closed at end of stream", len(b.stack)-1)
	}
	if b.onEnd != nil {
		b.onEnd(b)
	}
}

// Result inspects the top-level children of the container: a single child
// is returned as a single node, any other number as a sequence.
func (b *Builder) Result() Fragment {
	children := b.Container().Children()
	if len(children) == 1 {
		return either.Left[*Node, []*Node](children[0])
	}
	return either.Right[*Node](children)
}

var _ markup.Handler = &Builder{}

// Parse tokenizes and builds markup synchronously. If src has exactly one
// top-level node, the result holds that node; otherwise it holds the
// sequence of top-level nodes.
//
// Top-level nodes are owned by an anonymous document, configured with opts.
func Parse(src string, opts ...Option) (Fragment, error) {
	d := New(opts...)
	b := NewBuilder(&d.Node)
	tok := d.tokenizer(strings.NewReader(src))
	tok.Subscribe(b)
	if err := tok.Run(); err != nil {
		return nil, fmt.Errorf("dom: parsing markup: %w", err)
	}
	return b.Result(), nil
}
