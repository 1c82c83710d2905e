package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/props"
	"github.com/npillmayer/widgetry/render"
	"github.com/npillmayer/widgetry/scene"
	"github.com/npillmayer/widgetry/shell"
	"github.com/npillmayer/widgetry/style"
	"github.com/npillmayer/widgetry/style/cssom"
	"github.com/npillmayer/widgetry/style/cssom/douceuradapter"
	"github.com/npillmayer/widgetry/style/tomltheme"
	"github.com/npillmayer/widgetry/tree/treedbg"
	"github.com/npillmayer/widgetry/widget"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newLayoutCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Lay out a scene and print the widget tree with bounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := initConfig(opts)
			if err != nil {
				return err
			}
			cfg, err := shellConfig(conf, opts)
			if err != nil {
				return err
			}
			return runLayout(cmd.Context(), cfg, opts.dot, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&opts.sceneFile, "scene", "s", "", "scene file (.toml, .yaml)")
	cmd.Flags().StringVarP(&opts.themeFile, "theme", "t", "", "theme file (.css, .toml)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "window width")
	cmd.Flags().IntVar(&opts.height, "height", 0, "window height")
	cmd.Flags().BoolVar(&opts.dot, "dot", false, "output GraphViz DOT instead of text")
	return cmd
}

// runLayout loads theme and scene, runs one frame and prints the tree.
func runLayout(ctx context.Context, cfg shell.Config, dot bool, w io.Writer) error {
	if cfg.SceneFile == "" {
		return errors.New("no scene given")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	var theme style.Theme
	var sc *scene.Scene
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		theme, err = loadTheme(cfg.ThemeFile)
		return
	})
	g.Go(func() (err error) {
		sc, err = scene.Load(cfg.SceneFile)
		return
	})
	if err := g.Wait(); err != nil {
		return err
	}
	sh := shell.New(cfg, theme, render.DefaultMeasurer)
	if err := sc.Install(sh.Builder()); err != nil {
		return err
	}
	rec := &render.Recorder{}
	st := sh.RunFrame(rec)
	tracer().Infof("frame rendered %d objects", st.Rendered)
	describe := describer(sh.Context())
	if dot {
		return treedbg.ToGraphViz(sh.Context().Tree(), w, describe)
	}
	_, err := io.WriteString(w, treedbg.Sprint(sh.Context().Tree(), describe))
	return err
}

// loadTheme selects a theme reader by file extension. An empty path
// yields no theme.
func loadTheme(path string) (style.Theme, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); {
	case path == "":
		return style.EmptyTheme, nil
	case ext == ".css":
		sheet, err := douceuradapter.Load(path)
		if err != nil {
			return nil, err
		}
		return cssom.NewTheme(sheet), nil
	case ext == ".toml":
		return tomltheme.Load(path)
	}
	return nil, fmt.Errorf("theme %s: unknown format", path)
}

// describer labels widgets with their selector and bounds.
func describer(ctx *widget.Context) treedbg.Describer {
	return func(e ecs.Entity) (string, []treedbg.Prop) {
		w := ctx.Widget(e)
		label := e.String()
		if sel, ok := w.Selector(); ok {
			label = sel.String()
		}
		var ps []treedbg.Prop
		if b, ok := widget.TryGet[props.Rectangle](w, props.KeyBounds); ok {
			ps = append(ps, treedbg.Prop{Key: "bounds", Value: b.String()})
		}
		if text, ok := widget.TryGet[string](w, props.KeyText); ok && text != "" {
			ps = append(ps, treedbg.Prop{Key: "text", Value: fmt.Sprintf("%q", text)})
		}
		return label, ps
	}
}
