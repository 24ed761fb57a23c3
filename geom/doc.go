// Package geom provides the single-precision 2D primitives shared by the
// squircle packages: points, axis-aligned bounds, closed boundary polygons
// and line-only paths.
//
// Coordinates are float32 to match the precision of the device geometry and
// of the rasterizer. Shapes are centred on the origin; X increases right and
// Y increases down once a backend places the origin on a canvas.
package geom
