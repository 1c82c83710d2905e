/*
Package widget is the façade application code uses to work with widgets.

A widget is an entity of the component store, placed in the widget tree,
with a standard set of components (bounds, constraint, margin, alignments,
visibility, selector, ...). Package widget wraps the bare entity into a
Container, which offers

  - typed property access, with change detection, dirty marking and change
    notification on writes
  - navigation of the tree by id and by index
  - appending and removing children, including into the overlay
  - re-application of theme properties (the theme cascade)

All state of an application lives in a Context. There is no global state;
several independent applications (or tests) may coexist.

Writes through Set compare the new value with the current one. Equal
values are not written, nothing is marked dirty and no event is posted.
Otherwise every entity sharing the storage of the property is marked dirty
and, subject to its "on_changed_filter", receives a ChangedEvent naming
the property by its local key.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package widget

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'widgetry.widget'.
func tracer() tracing.Trace {
	return tracing.Select("widgetry.widget")
}
