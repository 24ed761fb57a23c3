// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package device

import (
	"fmt"

	"github.com/gogpu/squircle/geom"
)

// FigureBegin selects whether a figure contributes to fills.
type FigureBegin uint8

const (
	// FigureBeginFilled figures are filled by FillGeometry.
	FigureBeginFilled FigureBegin = iota
	// FigureBeginHollow figures are outline-only and never filled.
	FigureBeginHollow
)

// FigureEnd selects whether a figure is closed back to its start point.
type FigureEnd uint8

const (
	// FigureEndOpen leaves the figure open.
	FigureEndOpen FigureEnd = iota
	// FigureEndClosed closes the figure.
	FigureEndClosed
)

type geometryState uint8

const (
	geometryEmpty geometryState = iota
	geometryOpen
	geometryClosed
)

// PathGeometry is a device-backed path built once through a GeometrySink.
type PathGeometry struct {
	resource
	state   geometryState
	path    *geom.Path
	figures int
}

// CreatePathGeometry creates an empty path geometry.
func (d *Device) CreatePathGeometry() (*PathGeometry, error) {
	res, err := d.alloc("geometry")
	if err != nil {
		return nil, err
	}
	return &PathGeometry{resource: res}, nil
}

// Open returns the sink that populates the geometry. A geometry can be
// opened only once.
func (g *PathGeometry) Open() (*GeometrySink, error) {
	if err := g.usableBy(g.dev); err != nil {
		return nil, err
	}
	if g.state != geometryEmpty {
		return nil, ErrGeometryOpened
	}
	g.state = geometryOpen
	return &GeometrySink{geo: g, path: geom.NewPath()}, nil
}

// IsClosed reports whether the geometry's sink has been closed.
func (g *PathGeometry) IsClosed() bool {
	return g.state == geometryClosed
}

// Path returns the filled figures of a closed geometry, or nil before the
// sink is closed. The path must not be modified.
func (g *PathGeometry) Path() *geom.Path {
	if g.state != geometryClosed {
		return nil
	}
	return g.path
}

// FigureCount returns the number of filled figures.
func (g *PathGeometry) FigureCount() int {
	return g.figures
}

// Bounds returns the bounds of the filled figures.
func (g *PathGeometry) Bounds() geom.Rect {
	if g.path == nil {
		return geom.EmptyRect()
	}
	return g.path.Bounds()
}

// Release releases the geometry.
func (g *PathGeometry) Release() {
	if g.release() {
		g.path = nil
	}
}

// GeometrySink receives the figures of a PathGeometry.
// The first error is sticky and returned again by Close.
type GeometrySink struct {
	geo      *PathGeometry
	path     *geom.Path
	inFigure bool
	hollow   bool
	closed   bool
	figures  int
	err      error
}

func (s *GeometrySink) fail(err error) error {
	if s.err == nil {
		s.err = err
	}
	return err
}

func (s *GeometrySink) usable() error {
	if s.closed {
		return ErrSinkClosed
	}
	if err := s.geo.usableBy(s.geo.dev); err != nil {
		return s.fail(err)
	}
	return nil
}

// BeginFigure starts a figure at p.
func (s *GeometrySink) BeginFigure(p geom.Vec2, begin FigureBegin) error {
	if err := s.usable(); err != nil {
		return err
	}
	if s.inFigure {
		return s.fail(fmt.Errorf("%w: BeginFigure inside a figure", ErrFigureState))
	}
	s.inFigure = true
	s.hollow = begin == FigureBeginHollow
	if !s.hollow {
		s.path.MoveTo(p)
	}
	return nil
}

// AddLine adds a straight segment to the current figure.
func (s *GeometrySink) AddLine(p geom.Vec2) error {
	return s.AddLines([]geom.Vec2{p})
}

// AddLines adds straight segments through pts, in order.
func (s *GeometrySink) AddLines(pts []geom.Vec2) error {
	if err := s.usable(); err != nil {
		return err
	}
	if !s.inFigure {
		return s.fail(fmt.Errorf("%w: AddLines outside a figure", ErrFigureState))
	}
	if s.hollow {
		return nil
	}
	for _, p := range pts {
		s.path.LineTo(p)
	}
	return nil
}

// EndFigure ends the current figure.
func (s *GeometrySink) EndFigure(end FigureEnd) error {
	if err := s.usable(); err != nil {
		return err
	}
	if !s.inFigure {
		return s.fail(fmt.Errorf("%w: EndFigure outside a figure", ErrFigureState))
	}
	s.inFigure = false
	if s.hollow {
		return nil
	}
	if end == FigureEndClosed {
		s.path.Close()
	}
	s.figures++
	return nil
}

// Close finishes the geometry. It returns the first error reported by the
// sink, if any, in which case the geometry stays unusable for fills.
func (s *GeometrySink) Close() error {
	if s.closed {
		return ErrSinkClosed
	}
	if s.err == nil && s.inFigure {
		s.fail(fmt.Errorf("%w: Close inside a figure", ErrFigureState))
	}
	s.closed = true
	if s.err != nil {
		return s.err
	}
	if err := s.geo.usableBy(s.geo.dev); err != nil {
		return err
	}
	s.geo.path = s.path
	s.geo.figures = s.figures
	s.geo.state = geometryClosed
	return nil
}
