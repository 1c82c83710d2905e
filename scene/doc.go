/*
Package scene builds widget trees from declarative scene documents.

Scenes are written in TOML or YAML. A scene has a root node, which
describes the root widget of an application, and an optional list of
overlay nodes. Nodes nest through "children":

	[root]
	layout = "grid"
	columns = "auto, *, 50"

	[[root.children]]
	element = "text"
	id = "title"
	text = "Hello"
	column = 0

Every node becomes a widget with the standard components. The layout
object is selected by name ("grid", "stack", "padding", "fixed",
"absolute"); text nodes without a layout get a fixed-size layout. Nodes
with a background or a border are drawn as rectangles, nodes with text
draw their text.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scene

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'widgetry.scene'.
func tracer() tracing.Trace {
	return tracing.Select("widgetry.scene")
}
