/*
Gridlab is a headless workbench for widget layouts.

It loads a scene (TOML or YAML) and optionally a theme (CSS or TOML),
runs a single frame for a given window size and prints the resulting
widget tree with its bounds, either as indented text or in GraphViz DOT
format:

	gridlab layout --scene demo.toml --theme demo.css --width 640 --height 480
	gridlab layout --scene demo.yaml --dot | dot -Tsvg > demo.svg

Settings may also be given in a configuration file (see --config), using
the keys "window.width", "window.height", "theme.file" and "scene.file".
Tracing is configured with the keys "tracing" ("go" or "logrus") and
"tracelevel.root".

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'widgetry.gridlab'.
func tracer() tracing.Trace {
	return tracing.Select("widgetry.gridlab")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
