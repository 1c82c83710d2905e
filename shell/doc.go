/*
Package shell drives a widget application frame by frame.

A Shell owns all state of one application: component store, widget tree,
frame state, event queue and the systems working on them. RunFrame
executes one frame in a fixed order:

 1. drain the event queue, dispatching events to their handlers
 2. update widget states
 3. destroy widgets queued for removal
 4. re-style widgets with dirty selectors
 5. run the layout passes, if anything is dirty
 6. clear the dirty list
 7. update widget states after layout
 8. render

Platform windowing and rasterization are not part of this package; a
render.Canvas is handed in by the caller.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package shell

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'widgetry.shell'.
func tracer() tracing.Trace {
	return tracing.Select("widgetry.shell")
}
