// Command squircle renders squircle shapes to PNG files.
//
// A single shape is described with flags:
//
//	squircle -variant complex -width 240 -height 120 -curvature 4 -color '#ff8800' -o badge.png
//
// A batch is described by a TOML or YAML file; each shape is written to
// <output>/<name>.png:
//
//	squircle -config shapes.toml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/squircle"
	"github.com/gogpu/squircle/device"
	"github.com/gogpu/squircle/recording"
	"github.com/gogpu/squircle/recording/backends/raster"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("squircle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "TOML or YAML batch file")
		output     = fs.String("o", "squircle.png", "output file, or directory with -config")
		variant    = fs.String("variant", squircle.Superellipse.String(), "superellipse, complex or fernandez-guasti")
		width      = fs.Float64("width", squircle.DefaultWidth, "shape width")
		height     = fs.Float64("height", squircle.DefaultHeight, "shape height")
		curvature  = fs.Float64("curvature", squircle.DefaultCurvature, "curvature exponent or roundness")
		colorHex   = fs.String("color", squircle.White.Hex(), "fill color (#rgb, #rrggbb, #rrggbbaa)")
		background = fs.String("background", "", "background color; transparent when empty")
		points     = fs.Int("points", squircle.DefaultPointCount, "boundary samples per shape")
		workers    = fs.Int("workers", 1, "sampling workers per shape; 0 uses GOMAXPROCS")
		verbose    = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		squircle.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var cfg *config
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			return err
		}
	} else {
		v, err := squircle.ParseVariant(*variant)
		if err != nil {
			return err
		}
		c, err := squircle.Hex(*colorHex)
		if err != nil {
			return err
		}
		cfg = &config{
			Output:  *output,
			Points:  *points,
			Workers: *workers,
			Shapes: []shapeConfig{{
				Name:      v.String(),
				Variant:   &v,
				Width:     width,
				Height:    height,
				Curvature: curvature,
				Color:     &c,
			}},
		}
	}
	if *background != "" {
		bg, err := squircle.Hex(*background)
		if err != nil {
			return err
		}
		cfg.Background = &bg
	}
	if cfg.Output == "" {
		cfg.Output = *output
	}

	return render(cfg, *configPath != "")
}

// render draws every shape of cfg through one device.
func render(cfg *config, batch bool) error {
	dev := device.New()
	gen := squircle.NewGenerator(cfg.Points, cfg.Workers)
	defer gen.Close()
	polys := squircle.NewPolygonCache(0)

	if batch {
		if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
			return err
		}
	}

	var errs []error
	for _, shape := range cfg.Shapes {
		path := cfg.Output
		if batch {
			path = filepath.Join(cfg.Output, shape.Name+".png")
		}
		p := shape.params()
		if cfg.Clamp {
			p = p.Clamp()
		}
		if err := renderShape(dev, gen, polys, cfg, p, path); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", shape.Name, err))
			continue
		}
		squircle.Logger().Info("squircle: wrote", "file", path, "variant", p.Variant.String())
	}
	return errors.Join(errs...)
}

func renderShape(dev *device.Device, gen *squircle.Generator, polys *squircle.PolygonCache,
	cfg *config, p squircle.Params, path string) error {
	src := squircle.NewSource(dev, squircle.StaticParams(p),
		squircle.WithGenerator(gen),
		squircle.WithPolygonCache(polys),
		squircle.WithReleasePolicy(cfg.Policy),
	)
	defer src.Close()

	if err := src.Update(squircle.FrameInfo{}); err != nil {
		return err
	}

	b, err := newBackend(cfg)
	if err != nil {
		return err
	}
	if err := src.Render(b); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// newBackend returns the configured backend. The raster backend honours
// the background color; other registered backends must be able to write
// their output.
func newBackend(cfg *config) (recording.WriterBackend, error) {
	name := cfg.Backend
	if name == "" || name == "raster" {
		var opts []raster.Option
		if cfg.Background != nil {
			opts = append(opts, raster.WithBackground(*cfg.Background))
		}
		return raster.NewBackend(opts...), nil
	}

	b, err := recording.NewBackend(name)
	if err != nil {
		return nil, err
	}
	wb, ok := b.(recording.WriterBackend)
	if !ok {
		return nil, fmt.Errorf("backend %q cannot write output", name)
	}
	return wb, nil
}
