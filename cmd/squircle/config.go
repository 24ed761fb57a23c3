package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/squircle"
)

// config describes a batch of shapes to render.
//
// TOML:
//
//	output = "out"
//	policy = "deferred"
//	background = "#202020"
//
//	[[shapes]]
//	name = "badge"
//	variant = "complex"
//	width = 240
//	height = 120
//	curvature = 4
//	color = "#ff8800"
type config struct {
	Output     string                 `toml:"output" yaml:"output"`
	Backend    string                 `toml:"backend" yaml:"backend"`
	Points     int                    `toml:"points" yaml:"points"`
	Workers    int                    `toml:"workers" yaml:"workers"`
	Policy     squircle.ReleasePolicy `toml:"policy" yaml:"policy"`
	Background *squircle.Color        `toml:"background" yaml:"background"`
	Clamp      bool                   `toml:"clamp" yaml:"clamp"`
	Shapes     []shapeConfig          `toml:"shapes" yaml:"shapes"`
}

// shapeConfig is one shape. Unset fields take the squircle defaults.
type shapeConfig struct {
	Name      string            `toml:"name" yaml:"name"`
	Variant   *squircle.Variant `toml:"variant" yaml:"variant"`
	Width     *float64          `toml:"width" yaml:"width"`
	Height    *float64          `toml:"height" yaml:"height"`
	Curvature *float64          `toml:"curvature" yaml:"curvature"`
	Color     *squircle.Color   `toml:"color" yaml:"color"`
}

// params resolves the shape against the defaults.
func (s shapeConfig) params() squircle.Params {
	p := squircle.DefaultParams()
	if s.Variant != nil {
		p.Variant = *s.Variant
	}
	if s.Width != nil {
		p.Width = *s.Width
	}
	if s.Height != nil {
		p.Height = *s.Height
	}
	if s.Curvature != nil {
		p.Curvature = *s.Curvature
	}
	if s.Color != nil {
		p.Color = *s.Color
	}
	return p
}

// loadConfig decodes a TOML or YAML file, chosen by extension.
func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if len(cfg.Shapes) == 0 {
		return nil, fmt.Errorf("config %s: no shapes", path)
	}
	for i := range cfg.Shapes {
		if cfg.Shapes[i].Name == "" {
			cfg.Shapes[i].Name = fmt.Sprintf("shape%d", i)
		}
		if err := checkShapeName(cfg.Shapes[i].Name); err != nil {
			return nil, fmt.Errorf("config %s: shape %d: %w", path, i, err)
		}
	}
	return &cfg, nil
}

// checkShapeName rejects names that would place the output file outside
// the output directory.
func checkShapeName(name string) error {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("invalid shape name %q", name)
	}
	return nil
}
