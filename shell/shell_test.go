package shell

import (
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/event"
	"github.com/npillmayer/widgetry/layout"
	"github.com/npillmayer/widgetry/props"
	"github.com/npillmayer/widgetry/render"
	"github.com/npillmayer/widgetry/style"
	"github.com/npillmayer/widgetry/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFrom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.shell")
	defer teardown()
	//
	conf := testconfig.Conf{}
	conf.Set(KeyWindowWidth, "320")
	conf.Set(KeyThemeFile, "dark.css")
	cfg := ConfigFrom(conf)
	assert.Equal(t, 320.0, cfg.Width)
	assert.Equal(t, DefaultConfig.Height, cfg.Height)
	assert.Equal(t, "dark.css", cfg.ThemeFile)
	assert.Equal(t, "", cfg.SceneFile)
	assert.Equal(t, DefaultConfig, ConfigFrom(nil))
}

// buildScene creates
//
//	window
//	└── panel (padding 10, red)
//	    └── label "hi"
func buildScene(t *testing.T, sh *Shell) (panel, label ecs.Entity) {
	b := sh.Builder()
	panel = b.Widget("panel", "panel")
	widget.RegisterProperty(b, panel, props.KeyPadding, props.Uniform(10))
	widget.RegisterProperty(b, panel, props.KeyBackground, props.Brush{})
	b.RegisterLayout(panel, layout.NewPadding())
	b.RegisterRenderObject(panel, render.Rectangle)
	label = b.Widget("text", "label")
	widget.RegisterProperty(b, label, props.KeyText, "hi")
	widget.RegisterProperty(b, label, props.KeyFontSize, 10.0)
	widget.RegisterProperty(b, label, props.KeyForeground, props.Brush{})
	widget.RegisterProperty(b, label, props.KeyHAlign, props.Start)
	widget.RegisterProperty(b, label, props.KeyVAlign, props.Start)
	widget.RegisterProperty(b, label, props.KeyFilter, widget.FilterNothing())
	b.RegisterLayout(label, layout.NewFixedSize())
	b.RegisterRenderObject(label, render.Text)
	require.NoError(t, b.AppendChild(sh.Root().Entity(), panel))
	require.NoError(t, b.AppendChild(panel, label))
	return
}

func testTheme(t *testing.T) style.Theme {
	rs := &style.RuleSet{}
	require.NoError(t, rs.AddRaw("panel", style.KeyValue{Key: "background", Value: "red"}))
	require.NoError(t, rs.AddRaw("text", style.KeyValue{Key: "foreground", Value: "#0000ff"}))
	return rs
}

func TestRunFrame(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.shell")
	defer teardown()
	//
	sh := New(Config{Width: 200, Height: 100}, testTheme(t), nil)
	_, label := buildScene(t, sh)
	var got []event.Event
	sh.Dispatcher().Handle(label, func(e ecs.Entity, ev event.Event) bool {
		got = append(got, ev)
		return true
	})
	//
	rec := &render.Recorder{}
	st := sh.RunFrame(rec)
	assert.True(t, st.LaidOut)
	assert.Equal(t, 2, st.Rendered)
	t.Logf("calls = %v", rec.Calls)
	assert.Equal(t, []string{
		"fill [0,0 200×100] #ff0000",
		`text "hi" at (10,10) /10 #0000ff`,
	}, rec.Calls)
	assert.Equal(t, props.Rectangle{X: 10, Y: 10, Width: 10, Height: 12},
		widget.Get[props.Rectangle](sh.Context().Widget(label), props.KeyBounds))
	assert.Equal(t, 0, sh.Context().Frame().Len())
	//
	rec.Reset()
	st = sh.RunFrame(rec)
	assert.False(t, st.LaidOut, "nothing changed, expected layout to be skipped")
	assert.Empty(t, rec.Calls)
	//
	got = nil // theme changes in frame 1 have been notified
	widget.Set(sh.Context().Widget(label), props.KeyText, "hello")
	st = sh.RunFrame(rec)
	assert.Equal(t, 1, st.Events)
	assert.Equal(t, []event.Event{event.ChangedEvent{Entity: label, Key: props.KeyText}}, got)
	assert.True(t, st.LaidOut)
	assert.Equal(t, 25.0, widget.Get[props.Rectangle](sh.Context().Widget(label), props.KeyBounds).Width)
}

func TestResizeAndRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.shell")
	defer teardown()
	//
	sh := New(DefaultConfig, nil, nil)
	panel, label := buildScene(t, sh)
	sh.RunFrame(nil)
	sh.Resize(300, 200)
	st := sh.RunFrame(nil)
	assert.True(t, st.LaidOut)
	pw := sh.Context().Widget(panel)
	assert.Equal(t, props.Size{Width: 300, Height: 200}, widget.Get[props.Rectangle](pw, props.KeyBounds).Size())
	//
	pw.RemoveChild(label)
	st = sh.RunFrame(nil)
	assert.Equal(t, 1, st.Removed)
	assert.True(t, st.LaidOut)
	assert.False(t, sh.Context().Store().IsAlive(label))
	assert.Equal(t, 0, pw.ChildCount())
}

type removeOnUpdate struct {
	widget.BaseState
	victim string
}

func (s removeOnUpdate) Update(w widget.Container) {
	if ch, ok := w.TryChild(s.victim); ok {
		w.RemoveChild(ch.Entity())
	}
}

func TestStateDrivenRemoval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.shell")
	defer teardown()
	//
	sh := New(DefaultConfig, nil, nil)
	panel, label := buildScene(t, sh)
	sh.Builder().RegisterState(panel, removeOnUpdate{victim: "label"})
	st := sh.RunFrame(nil)
	assert.Equal(t, 1, st.Removed)
	assert.False(t, sh.Context().Tree().Contains(label))
}
