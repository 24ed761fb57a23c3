// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package squircle

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/squircle/device"
	"github.com/gogpu/squircle/geom"
	"github.com/gogpu/squircle/internal/dispose"
	"github.com/gogpu/squircle/recording"
)

// Devices creates the device resources a Source renders with.
// *device.Device implements it.
type Devices interface {
	CreatePathGeometry() (*device.PathGeometry, error)
	CreateSolidColorBrush(c gputypes.Color) (*device.SolidColorBrush, error)
	CreateCommandList() (*device.CommandList, error)
	Context() *device.DrawContext
}

var _ Devices = (*device.Device)(nil)

// Stats counts what a Source did with its updates.
type Stats struct {
	Updates  uint64 // Update and Apply calls that passed validation
	Hits     uint64 // updates that reused the current output
	Rebuilds uint64 // successful rebuilds
	Failures uint64 // failed rebuilds
}

// resourceSet is one geometry, brush and finalized command list.
type resourceSet struct {
	geometry *device.PathGeometry
	brush    *device.SolidColorBrush
	list     *device.CommandList
	rec      *recording.Recording
}

// Source renders a squircle into a replayable command list and rebuilds
// it only when the parameters change.
//
// Update, Apply, Close, Snapshot and Stats must be called from a single
// goroutine. Output and Render may be called from any goroutine; the
// recordings they observe are immutable once published.
type Source struct {
	dev      Devices
	params   ParamSource
	gen      *Generator
	ownsGen  bool
	polygons *PolygonCache
	policy   ReleasePolicy
	owned    dispose.Collector
	current  resourceSet
	snap     Snapshot
	stats    Stats
	output   atomic.Pointer[recording.Recording]
	closed   atomic.Bool
}

// NewSource creates a Source that renders with dev. params resolves the
// shape for each Update; nil means StaticParams(DefaultParams()).
// No device resources are created until the first update.
func NewSource(dev Devices, params ParamSource, opts ...Option) *Source {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if params == nil {
		params = StaticParams(DefaultParams())
	}

	s := &Source{
		dev:      dev,
		params:   params,
		gen:      o.generator,
		polygons: o.polygons,
		policy:   o.policy,
	}
	if s.gen == nil {
		s.gen = NewGenerator(o.points, o.workers)
		s.ownsGen = true
	}
	return s
}

// Update resolves the parameters for frame and applies them.
func (s *Source) Update(frame FrameInfo) error {
	if s.closed.Load() {
		return ErrClosed
	}
	return s.Apply(s.params.Resolve(frame))
}

// Apply renders p unless it matches the current output exactly.
//
// On a rebuild failure the error wraps the device error. With
// ReleaseDeferred the previous output stays available; with ReleaseEager
// Output returns ErrNotRendered until a later update succeeds.
func (s *Source) Apply(p Params) error {
	if s.closed.Load() {
		return ErrClosed
	}
	if !p.Variant.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownVariant, uint8(p.Variant))
	}
	s.stats.Updates++

	if !ShouldRegenerate(s.snap, s.current.geometry != nil, p) {
		s.stats.Hits++
		Logger().Debug("squircle: cache hit", "variant", p.Variant.String())
		return nil
	}

	poly := s.polygon(p)
	var err error
	if s.policy == ReleaseDeferred {
		err = s.rebuildDeferred(poly, p.Color)
	} else {
		err = s.rebuildEager(poly, p.Color)
	}
	if err != nil {
		s.stats.Failures++
		Logger().Warn("squircle: rebuild failed",
			"policy", s.policy.String(), "error", err)
		return fmt.Errorf("squircle: rebuild: %w", err)
	}

	s.snap = Snapshot{params: p, rendered: true}
	s.stats.Rebuilds++
	Logger().Debug("squircle: rebuilt",
		slog.String("variant", p.Variant.String()),
		slog.Int("points", len(poly)),
		slog.String("color", p.Color.Hex()))
	return nil
}

func (s *Source) polygon(p Params) geom.Polygon {
	if s.polygons != nil {
		return s.polygons.Get(s.gen, p)
	}
	return s.gen.Generate(p)
}

func (s *Source) rebuildEager(poly geom.Polygon, c Color) error {
	s.output.Store(nil)
	s.release(s.current)
	s.current = resourceSet{}

	set, err := s.build(poly, c)
	if err != nil {
		return err
	}
	s.current = set
	s.output.Store(set.rec)
	return nil
}

func (s *Source) rebuildDeferred(poly geom.Polygon, c Color) error {
	set, err := s.build(poly, c)
	if err != nil {
		return err
	}
	old := s.current
	s.current = set
	s.output.Store(set.rec)
	s.release(old)
	return nil
}

// release releases the members of set owned by the Source.
func (s *Source) release(set resourceSet) {
	if set.list != nil {
		s.owned.RemoveAndRelease(set.list)
	}
	if set.brush != nil {
		s.owned.RemoveAndRelease(set.brush)
	}
	if set.geometry != nil {
		s.owned.RemoveAndRelease(set.geometry)
	}
}

// build creates and finalizes a complete resource set. Every resource is
// owned by the Source as soon as it exists; on failure the partial set is
// released before returning.
func (s *Source) build(poly geom.Polygon, c Color) (set resourceSet, err error) {
	defer func() {
		if err != nil {
			s.release(set)
			set = resourceSet{}
		}
	}()

	if set.geometry, err = s.dev.CreatePathGeometry(); err != nil {
		return set, err
	}
	s.owned.Collect(set.geometry)
	if err = fillGeometry(set.geometry, poly); err != nil {
		return set, err
	}

	if set.brush, err = s.dev.CreateSolidColorBrush(c.GPU()); err != nil {
		return set, err
	}
	s.owned.Collect(set.brush)

	if set.list, err = s.dev.CreateCommandList(); err != nil {
		return set, err
	}
	s.owned.Collect(set.list)

	if err = s.record(&set); err != nil {
		return set, err
	}
	return set, nil
}

// fillGeometry writes poly into g as a single closed, filled figure.
func fillGeometry(g *device.PathGeometry, poly geom.Polygon) error {
	sink, err := g.Open()
	if err != nil {
		return err
	}
	if len(poly) > 0 {
		// Sink errors are sticky; Close reports the first one.
		_ = sink.BeginFigure(poly[0], device.FigureBeginFilled)
		_ = sink.AddLines(poly[1:])
		_ = sink.EndFigure(device.FigureEndClosed)
	}
	return sink.Close()
}

// record draws set into its command list, detaches the list, and
// finalizes it. The draw context's previous target is restored whether or
// not drawing succeeds.
func (s *Source) record(set *resourceSet) error {
	ctx := s.dev.Context()
	prev := ctx.Target()
	if err := ctx.SetTarget(set.list); err != nil {
		return err
	}
	if err := draw(ctx, set); err != nil {
		if ctx.IsDrawing() {
			_ = ctx.EndDraw()
		}
		_ = ctx.SetTarget(prev)
		return err
	}
	if err := ctx.SetTarget(prev); err != nil {
		return err
	}
	if err := set.list.Close(); err != nil {
		return err
	}
	rec, err := set.list.Recording()
	if err != nil {
		return err
	}
	set.rec = rec
	return nil
}

func draw(ctx *device.DrawContext, set *resourceSet) error {
	if err := ctx.BeginDraw(); err != nil {
		return err
	}
	if err := ctx.Clear(nil); err != nil {
		return err
	}
	if err := ctx.FillGeometry(set.geometry, set.brush); err != nil {
		return err
	}
	return ctx.EndDraw()
}

// Output returns the finalized command list of the last successful
// rebuild. It is immutable and may be replayed any number of times.
func (s *Source) Output() (*recording.Recording, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}
	rec := s.output.Load()
	if rec == nil {
		return nil, ErrNotRendered
	}
	return rec, nil
}

// Render replays the current output into b.
func (s *Source) Render(b recording.Backend) error {
	rec, err := s.Output()
	if err != nil {
		return err
	}
	return rec.Playback(b)
}

// Snapshot returns the parameters behind the current output.
func (s *Source) Snapshot() Snapshot {
	return s.snap
}

// Generator returns the generator used for boundaries.
func (s *Source) Generator() *Generator {
	return s.gen
}

// Stats returns the update counters.
func (s *Source) Stats() Stats {
	return s.stats
}

// Close releases every owned resource exactly once. It is idempotent.
// After Close, Update, Apply and Output return ErrClosed.
func (s *Source) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	s.output.Store(nil)
	s.owned.ReleaseAll()
	s.current = resourceSet{}
	s.snap = Snapshot{}
	if s.ownsGen {
		s.gen.Close()
	}
	return nil
}
