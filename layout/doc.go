/*
Package layout implements the two-pass layout of widget trees.

Every widget has a layout object. The measure pass runs bottom-up and
computes the desired size of each widget; the arrange pass runs top-down
and places each widget into the space its parent grants, writing the
final (parent-relative) bounds.

Layout objects cache their desired size across frames in a
props.DirtySize. A widget whose cache is clean and whose own dirty flag is
not set skips the arrange pass entirely, together with its subtree.

Layout never fails with an error. Missing components which every widget
is guaranteed to carry (bounds, constraint) are programming errors and
cause a panic.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package layout

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'widgetry.layout'.
func tracer() tracing.Trace {
	return tracing.Select("widgetry.layout")
}
