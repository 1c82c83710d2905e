package douceuradapter

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/widgetry/style"
	"github.com/npillmayer/widgetry/style/cssom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSS = `
@media print { button { color: black; } }
button {
	background: #808080;
	padding: 2px 4px;
	min-width: 40px !important;
}
button:focused, button.primary {
	background: #336699;
}
grid > button { color: red; }
`

func TestParseAndRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.style")
	defer teardown()
	//
	sheet, err := Parse(testCSS)
	require.NoError(t, err)
	assert.False(t, sheet.Empty())
	rules := sheet.Rules()
	require.Len(t, rules, 3)
	assert.Equal(t, "button", rules[0].Selector())
	assert.Equal(t, style.Property("#808080"), rules[0].Value("background"))
	assert.True(t, rules[0].IsImportant("min-width"))
	assert.False(t, rules[0].IsImportant("padding"))
	//
	other, err := Parse("label { color: white; }")
	require.NoError(t, err)
	sheet.AppendRules(other)
	assert.Len(t, sheet.Rules(), 4)
}

func TestCSSTheme(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.style")
	defer teardown()
	//
	sheet, err := Parse(testCSS)
	require.NoError(t, err)
	theme := cssom.NewTheme(sheet)
	assert.Equal(t, 3, theme.Len()) // combinator rule skipped
	sel := style.NewSelector("button")
	decls := theme.Properties(&sel)
	t.Logf("decls = %v", decls)
	values := map[string]style.Value{}
	for _, d := range decls {
		values[d.Key] = d.Value
	}
	assert.Equal(t, style.Raw("#808080"), values["background"])
	assert.Equal(t, style.Raw("2px"), values["padding_top"])
	assert.Equal(t, style.Raw("4px"), values["padding_left"])
	assert.Equal(t, style.Raw("40px"), values["min_width"])
	//
	sel.SetState(style.StateFocused, true)
	for _, d := range theme.Properties(&sel) {
		if d.Key == "background" {
			assert.Equal(t, style.Raw("#336699"), d.Value)
		}
	}
}
