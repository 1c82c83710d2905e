/*
Package tree implements the widget tree.

The tree is an arena: nodes are entities of package ecs, and parent/children
relationships are plain index maps. There is exactly one root. An optional
overlay entity acts as a second root for floating content, e.g. popups,
which has to be layed out and rendered above the main tree.

Insertion checks guard against cycles: no entity may become its own
ancestor, and neither the root nor the overlay may be attached as a child.

The tree is not safe for concurrent use.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'widgetry.tree'.
func tracer() tracing.Trace {
	return tracing.Select("widgetry.tree")
}
