/*
Package domdbg implements helpers to debug a microdom tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/microdom/dom"
	"github.com/npillmayer/microdom/dom/w3cdom"
	"github.com/xlab/treeprint"
)

// Print returns an indented text rendering of the tree below n.
func Print(n *dom.Node) string {
	p := treeprint.New()
	ppt(p, w3cdom.Wrap(n))
	return p.String()
}

func ppt(p treeprint.Tree, n w3cdom.Node) {
	if !n.HasChildNodes() {
		p.AddNode(label(n))
		return
	}
	branch := p.AddBranch(label(n))
	children := n.ChildNodes()
	for i := 0; i < children.Length(); i++ {
		ppt(branch, children.Item(i))
	}
}

func label(n w3cdom.Node) string {
	if n.NodeName() == "#text" {
		return fmt.Sprintf("%q", n.NodeValue())
	}
	var b strings.Builder
	b.WriteString(n.NodeName())
	attrs := n.Attributes()
	for i := 0; i < attrs.Length(); i++ {
		a := attrs.Item(i)
		fmt.Fprintf(&b, " %s=%q", a.Key(), a.Value())
	}
	return b.String()
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a microdom tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the tree and a Writer.
func ToGraphViz(doc *dom.Node, w io.Writer) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
			"label":       label,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*dom.Node]string, 256)
	if err = nodes(w3cdom.Wrap(doc), w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a microdom node and a testing.T, it
// will create a Graphiviz image of the tree under `doc` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(doc *dom.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(doc, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    w3cdom.Node
	Name string
}

func nodes(n *w3cdom.W3CNode, w io.Writer, dict map[*dom.Node]string, gparams *graphParamsType) error {
	if err := domNode(n, w, dict, gparams); err != nil {
		return err
	}
	for _, ch := range n.DOMNode().Children() {
		c := w3cdom.Wrap(ch)
		if err := nodes(c, w, dict, gparams); err != nil {
			return err
		}
		if err := domEdge(n, c, w, dict, gparams); err != nil {
			return err
		}
	}
	return nil
}

func domNode(n *w3cdom.W3CNode, w io.Writer, dict map[*dom.Node]string, gparams *graphParamsType) error {
	name := dict[n.DOMNode()]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n.DOMNode()] = name
	}
	return gparams.NodeTmpl.Execute(w, &node{n, name})
}

type edge struct {
	N1, N2 node
}

func domEdge(n1, n2 *w3cdom.W3CNode, w io.Writer, dict map[*dom.Node]string,
	gparams *graphParamsType) error {
	//
	name1 := dict[n1.DOMNode()]
	name2 := dict[n2.DOMNode()]
	return gparams.EdgeTmpl.Execute(w, edge{node{n1, name1}, node{n2, name2}})
}

func shortText(n w3cdom.Node) string {
	v := n.NodeValue()
	s := "\"\\\""
	if len(v) > 10 {
		s += v[:10] + "...\\\"\""
	} else {
		s += v + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .N.NodeName "#text" }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ label .N | printf "%q" }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
