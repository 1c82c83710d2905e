/*
Package ecs implements an entity/component store for widgets.

Entities are opaque integer handles. All widget state lives in components,
which are addressed by an (entity, key) pair. A component is either owned by
its entity or shared: a shared binding redirects reads and writes to the
storage of another (entity, key) location, possibly under a different key.

Sharing is restricted to a single hop. A location which is itself a shared
binding can never serve as a source, and a location which already serves as
a source for others can not be turned into a binding. This keeps resolution
trivially terminating:

    owned  <--  shared
    owned  <--  shared  <--  shared     // rejected with ErrSharingChain

The store is not safe for concurrent use. It is accessed from the single
logical thread running a frame.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ecs

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'widgetry.ecs'.
func tracer() tracing.Trace {
	return tracing.Select("widgetry.ecs")
}
