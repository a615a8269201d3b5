package dom

import (
	"testing"
)

func TestFindWithPredicates(t *testing.T) {
	doc, err := NewFromString(`<ul id="l"><li class="a">1</li><li>2</li><li class="a">3</li></ul>`)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("tree =\n%s", printTree(doc.AsNode()))
	if items := doc.Find(NodeIsNamed("li")); len(items) != 3 {
		t.Errorf("expected to find 3 <li>, found %d", len(items))
	}
	texts := doc.Find(NodeIsText)
	if len(texts) != 3 || texts[2].Value() != "3" {
		t.Errorf("expected 3 text nodes in document order, found %v", texts)
	}
	marked := doc.Find(AttributeIs("class", "a"))
	if len(marked) != 2 || marked[1].TextContent() != "3" {
		t.Errorf("expected 2 nodes with class=a, found %v", marked)
	}
	if elements := doc.Find(NodeIsElement); len(elements) != 4 {
		t.Errorf("expected 4 elements, found %d", len(elements))
	}
}

func TestWalkSkipsSubtrees(t *testing.T) {
	doc, _ := NewFromString(`<a><b><c/></b></a><d/>`)
	var visited []string
	doc.Walk(func(n *Node) bool {
		visited = append(visited, n.Name())
		return n.Name() != "b"
	})
	expected := []string{"", "a", "b", "d"}
	if len(visited) != len(expected) {
		t.Fatalf("expected walk to visit %v, visited %v", expected, visited)
	}
	for i := range expected {
		if visited[i] != expected[i] {
			t.Errorf("expected walk to visit %v, visited %v", expected, visited)
		}
	}
}
