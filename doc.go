// Package squircle generates and renders rounded-square outlines for use as
// a vector shape primitive in a compositor.
//
// # Overview
//
// A squircle interpolates between a rectangle and an ellipse. Three sampling
// formulas are provided, selected by [Variant]:
//
//   - [Superellipse]: x = a·sgn(cos t)·|cos t|^(2/n), with a = width/2, b = height/2.
//   - [Complex]: the Superellipse formula on a unit extent, rescaled so the
//     largest |x| is exactly width/2 and the largest |y| exactly height/2.
//   - [FernandezGuasti]: x = a·sgn(cos t)·|cos t|^(4/(4+s)), with the full
//     width and height as extents.
//
// Every variant samples N points evenly spaced in angle over a full turn
// (N = [DefaultPointCount] unless configured) and returns them as a closed
// [geom.Polygon].
//
// # Quick Start
//
//	dev := device.New()
//	src := squircle.NewSource(dev, squircle.StaticParams(squircle.DefaultParams()))
//	defer src.Close()
//
//	if err := src.Update(squircle.FrameInfo{Frame: 0, FPS: 30}); err != nil {
//	    log.Fatal(err)
//	}
//	rec, err := src.Output() // immutable, replayable command list
//
// # Caching
//
// A [Source] keeps an immutable [Snapshot] of the parameters behind its
// current output. [ShouldRegenerate] compares the next parameters against it
// by exact bit equality; on a hit the previous command list is reused
// unchanged, on a miss the geometry, brush and command list are rebuilt.
//
// # Degenerate input
//
// Curvature 0 (Superellipse, Complex) and -4 (FernandezGuasti) make the
// exponent infinite. These values are not rejected: the points collapse onto
// the axes or become non-finite, exactly as the floating-point formula
// dictates.
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to enable structured
// logging through log/slog; the logger is shared with the device package.
package squircle
