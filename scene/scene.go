package scene

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownLayout is returned for layout names not known to the builder.
var ErrUnknownLayout = errors.New("unknown layout")

// ErrFormat is returned for scene files of unknown format.
var ErrFormat = errors.New("unknown scene format")

// Scene is a declarative widget tree.
type Scene struct {
	Name    string `toml:"name" yaml:"name"`
	Root    Node   `toml:"root" yaml:"root"`
	Overlay []Node `toml:"overlay" yaml:"overlay"`
}

// Node describes a widget. Empty fields leave the widget's defaults
// untouched.
type Node struct {
	Element     string   `toml:"element" yaml:"element"`
	ID          string   `toml:"id" yaml:"id"`
	Classes     []string `toml:"classes" yaml:"classes"`
	Layout      string   `toml:"layout" yaml:"layout"`
	Columns     string   `toml:"columns" yaml:"columns"`
	Rows        string   `toml:"rows" yaml:"rows"`
	Column      *int     `toml:"column" yaml:"column"`
	Row         *int     `toml:"row" yaml:"row"`
	ColumnSpan  int      `toml:"column_span" yaml:"column_span"`
	RowSpan     int      `toml:"row_span" yaml:"row_span"`
	Width       float64  `toml:"width" yaml:"width"`
	Height      float64  `toml:"height" yaml:"height"`
	MinWidth    float64  `toml:"min_width" yaml:"min_width"`
	MinHeight   float64  `toml:"min_height" yaml:"min_height"`
	MaxWidth    float64  `toml:"max_width" yaml:"max_width"`
	MaxHeight   float64  `toml:"max_height" yaml:"max_height"`
	X           float64  `toml:"x" yaml:"x"`
	Y           float64  `toml:"y" yaml:"y"`
	Margin      string   `toml:"margin" yaml:"margin"`
	Padding     string   `toml:"padding" yaml:"padding"`
	HAlign      string   `toml:"horizontal_alignment" yaml:"horizontal_alignment"`
	VAlign      string   `toml:"vertical_alignment" yaml:"vertical_alignment"`
	Visibility  string   `toml:"visibility" yaml:"visibility"`
	Enabled     *bool    `toml:"enabled" yaml:"enabled"`
	Text        string   `toml:"text" yaml:"text"`
	Font        string   `toml:"font" yaml:"font"`
	FontSize    float64  `toml:"font_size" yaml:"font_size"`
	Background  string   `toml:"background" yaml:"background"`
	Foreground  string   `toml:"foreground" yaml:"foreground"`
	BorderBrush string   `toml:"border_brush" yaml:"border_brush"`
	BorderWidth string   `toml:"border_width" yaml:"border_width"`
	Spacing     float64  `toml:"spacing" yaml:"spacing"`
	Orientation string   `toml:"orientation" yaml:"orientation"`
	Children    []Node   `toml:"children" yaml:"children"`
}

// name is used in messages.
func (n *Node) name() string {
	if n.ID != "" {
		return n.element() + "#" + n.ID
	}
	return n.element()
}

func (n *Node) element() string {
	if n.Element == "" {
		return "widget"
	}
	return n.Element
}

// DecodeTOML reads a scene from a TOML document. Unknown keys are errors.
func DecodeTOML(data []byte) (*Scene, error) {
	sc := &Scene{}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(sc); err != nil {
		return nil, fmt.Errorf("decoding TOML scene: %w", err)
	}
	return sc, nil
}

// DecodeYAML reads a scene from a YAML document. Unknown keys are errors.
func DecodeYAML(data []byte) (*Scene, error) {
	sc := &Scene{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(sc); err != nil {
		return nil, fmt.Errorf("decoding YAML scene: %w", err)
	}
	return sc, nil
}

// Load reads a scene file. The format is selected by the file extension:
// ".toml", ".yaml" or ".yml".
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc *Scene
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		sc, err = DecodeTOML(data)
	case ".yaml", ".yml":
		sc, err = DecodeYAML(data)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Infof("scene %q loaded from %s", sc.Name, path)
	return sc, nil
}
