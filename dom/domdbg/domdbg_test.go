package domdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/microdom/dom"
)

func TestPrint(t *testing.T) {
	doc, err := dom.NewFromString(`<ul id="l"><li>one</li><li/></ul>`)
	if err != nil {
		t.Fatal(err)
	}
	s := Print(doc.AsNode())
	t.Logf("tree =\n%s", s)
	for _, part := range []string{"#document", `ul id="l"`, `"one"`, "li"} {
		if !strings.Contains(s, part) {
			t.Errorf("expected print of tree to contain %s, doesn't", part)
		}
	}
}

func TestToGraphViz(t *testing.T) {
	doc, _ := dom.NewFromString(`<p>a long text with spaces<b>x</b></p>`)
	var buf bytes.Buffer
	if err := ToGraphViz(doc.AsNode(), &buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	t.Logf("dot =\n%s", dot)
	if !strings.HasPrefix(dot, "digraph g {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("expected a digraph, got %q", dot)
	}
	if n := strings.Count(dot, "->"); n != 4 {
		t.Errorf("expected 4 edges in digraph, have %d", n)
	}
	if !strings.Contains(dot, `a␣long␣tex...`) {
		t.Errorf("expected long text to be shortened")
	}
}
