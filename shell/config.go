package shell

import "github.com/npillmayer/schuko"

// Configuration keys read by ConfigFrom.
const (
	KeyWindowWidth  = "window.width"
	KeyWindowHeight = "window.height"
	KeyThemeFile    = "theme.file"
	KeySceneFile    = "scene.file"
)

// Config holds the settings of a shell.
type Config struct {
	Width, Height float64
	ThemeFile     string // CSS or TOML theme, may be empty
	SceneFile     string // TOML or YAML scene, may be empty
}

// DefaultConfig is used for keys not present in a configuration.
var DefaultConfig = Config{Width: 800, Height: 600}

// ConfigFrom reads a Config from an application configuration.
func ConfigFrom(conf schuko.Configuration) Config {
	cfg := DefaultConfig
	if conf == nil {
		return cfg
	}
	if conf.IsSet(KeyWindowWidth) {
		if w := conf.GetInt(KeyWindowWidth); w > 0 {
			cfg.Width = float64(w)
		}
	}
	if conf.IsSet(KeyWindowHeight) {
		if h := conf.GetInt(KeyWindowHeight); h > 0 {
			cfg.Height = float64(h)
		}
	}
	cfg.ThemeFile = conf.GetString(KeyThemeFile)
	cfg.SceneFile = conf.GetString(KeySceneFile)
	return cfg
}
