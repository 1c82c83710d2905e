/*
Package event implements the event queue widgets and collaborators post to.

Events are pushed with a delivery strategy. BottomUp events start at their
source widget and bubble through its ancestors until a handler consumes
them. Direct events are delivered to exactly the source widget.

The queue is the only structure of the toolkit core which is safe for
concurrent use: any goroutine (an input pump, a render worker) may push
events, while the single frame goroutine drains them once per frame.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package event

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'widgetry.event'.
func tracer() tracing.Trace {
	return tracing.Select("widgetry.event")
}
