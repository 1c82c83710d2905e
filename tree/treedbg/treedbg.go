/*
Package treedbg implements helpers to debug a widget tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package treedbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"testing"
	"text/template"

	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/tree"
	tp "github.com/xlab/treeprint"
)

// Prop is a key/value pair to be displayed together with a tree node.
type Prop struct {
	Key   string
	Value string
}

// Describer describes an entity for display: a label and an optional list
// of properties.
type Describer func(e ecs.Entity) (string, []Prop)

// EntityOnly is the default describer: it shows the entity number only.
func EntityOnly(e ecs.Entity) (string, []Prop) {
	return e.String(), nil
}

// Sprint renders the tree (including the overlay, if present) as indented
// text. Properties returned by describe are appended to the label.
func Sprint(t *tree.Tree, describe Describer) string {
	if describe == nil {
		describe = EntityOnly
	}
	printer := tp.New()
	printer.SetValue(label(t.Root(), describe))
	branches(t, t.Root(), printer, describe)
	s := printer.String()
	if ov, ok := t.Overlay(); ok {
		op := tp.New()
		op.SetValue(label(ov, describe) + " (overlay)")
		branches(t, ov, op, describe)
		s += op.String()
	}
	return s
}

func branches(t *tree.Tree, e ecs.Entity, printer tp.Tree, describe Describer) {
	for _, ch := range t.Children(e) {
		if t.ChildCount(ch) == 0 {
			printer.AddNode(label(ch, describe))
			continue
		}
		b := printer.AddBranch(label(ch, describe))
		branches(t, ch, b, describe)
	}
}

func label(e ecs.Entity, describe Describer) string {
	l, props := describe(e)
	for _, p := range props {
		l += fmt.Sprintf(" %s=%s", p.Key, p.Value)
	}
	return l
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

type node struct {
	Name  string
	Label string
	Props []Prop
}

type edge struct {
	N1, N2 string
}

// ToGraphViz outputs a diagram for a widget tree in GraphViz (DOT) format.
// Nodes are labeled through describe; properties are shown as a table
// attached to each node.
func ToGraphViz(t *tree.Tree, w io.Writer, describe Describer) error {
	if describe == nil {
		describe = EntityOnly
	}
	tmpl, err := template.New("tree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("treenode").Parse(treeNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("treeedge").Parse(treeEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	roots := []ecs.Entity{t.Root()}
	if ov, ok := t.Overlay(); ok {
		roots = append(roots, ov)
	}
	for _, r := range roots {
		if err = nodes(t, r, w, describe, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func nodes(t *tree.Tree, e ecs.Entity, w io.Writer, describe Describer, gparams *graphParamsType) error {
	l, props := describe(e)
	if err := gparams.NodeTmpl.Execute(w, node{nodeName(e), l, props}); err != nil {
		return err
	}
	for _, ch := range t.Children(e) {
		if err := nodes(t, ch, w, describe, gparams); err != nil {
			return err
		}
		if err := gparams.EdgeTmpl.Execute(w, edge{nodeName(e), nodeName(ch)}); err != nil {
			return err
		}
	}
	return nil
}

func nodeName(e ecs.Entity) string {
	return fmt.Sprintf("node%05d", uint32(e))
}

// Dotty is a helper for testing. Given a tree and a testing.T, it will
// create a GraphViz image of the tree and write it to a file in the current
// folder, choosing a unique file name. The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(tr *tree.Tree, describe Describer, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "tree.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing tree digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(tr, tmpfile, describe); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "TB"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const treeNodeTmpl = `{{ .Name }}	[ style="filled" penwidth=1 fillcolor="lightblue3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0">
      <tr><td align="center" colspan="2"><b>{{ .Label }}</b></td></tr>
      {{ range .Props }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const treeEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
