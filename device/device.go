// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package device

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Option configures a Device during creation.
type Option func(*options)

type options struct {
	provider gpucontext.DeviceProvider
	format   gputypes.TextureFormat
	limit    int
}

// WithProvider attaches the host GPU context. Command lists created by the
// device target the provider's surface format unless WithFormat overrides it.
func WithProvider(p gpucontext.DeviceProvider) Option {
	return func(o *options) {
		o.provider = p
	}
}

// WithFormat sets the texture format command lists are recorded for.
func WithFormat(f gputypes.TextureFormat) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithResourceLimit caps the number of live resources. Creating a resource
// beyond the cap fails with ErrResourceExhausted. Zero means unlimited.
func WithResourceLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// Stats reports resource accounting for a Device.
type Stats struct {
	Live     int // resources created and not yet released
	Created  int // resources created over the device lifetime
	Released int // resources released over the device lifetime
}

// Device creates resources and owns the single DrawContext that records
// into command lists.
type Device struct {
	provider gpucontext.DeviceProvider
	format   gputypes.TextureFormat
	limit    int
	nextID   uint64
	stats    Stats
	ctx      *DrawContext
}

// New creates a Device.
func New(opts ...Option) *Device {
	o := options{format: gputypes.TextureFormatUndefined}
	for _, opt := range opts {
		opt(&o)
	}

	format := o.format
	if format == gputypes.TextureFormatUndefined && o.provider != nil {
		format = o.provider.SurfaceFormat()
	}
	if format == gputypes.TextureFormatUndefined {
		format = gputypes.TextureFormatRGBA8Unorm
	}

	d := &Device{
		provider: o.provider,
		format:   format,
		limit:    o.limit,
	}
	d.ctx = &DrawContext{dev: d}

	attrs := []any{slog.String("format", format.String())}
	if o.provider != nil {
		info := o.provider.AdapterInfo()
		attrs = append(attrs, slog.String("adapter", info.Name))
	}
	Logger().Info("device: created", attrs...)
	return d
}

// Provider returns the host GPU context, or nil when running headless.
func (d *Device) Provider() gpucontext.DeviceProvider {
	return d.provider
}

// Format returns the texture format command lists are recorded for.
func (d *Device) Format() gputypes.TextureFormat {
	return d.format
}

// Context returns the device's draw context.
func (d *Device) Context() *DrawContext {
	return d.ctx
}

// Stats returns a snapshot of resource accounting.
func (d *Device) Stats() Stats {
	return d.stats
}

// alloc reserves a slot for a new resource of the given kind.
func (d *Device) alloc(kind string) (resource, error) {
	if d.limit > 0 && d.stats.Live >= d.limit {
		return resource{}, fmt.Errorf("%w: %s (limit %d)", ErrResourceExhausted, kind, d.limit)
	}
	d.nextID++
	d.stats.Live++
	d.stats.Created++
	return resource{dev: d, id: d.nextID, kind: kind}, nil
}

// resource is the bookkeeping shared by every device object.
type resource struct {
	dev      *Device
	id       uint64
	kind     string
	released bool
}

// ID returns the device-unique identifier of the resource.
func (r *resource) ID() uint64 {
	return r.id
}

// Released reports whether the resource has been released.
func (r *resource) Released() bool {
	return r.released
}

func (r *resource) usableBy(d *Device) error {
	if r.released {
		return fmt.Errorf("%w: %s #%d", ErrReleased, r.kind, r.id)
	}
	if r.dev != d {
		return fmt.Errorf("%w: %s #%d", ErrForeignResource, r.kind, r.id)
	}
	return nil
}

// release marks the resource released and reports whether this call did it.
func (r *resource) release() bool {
	if r.released {
		Logger().Warn("device: double release", slog.String("kind", r.kind), slog.Uint64("id", r.id))
		return false
	}
	r.released = true
	r.dev.stats.Live--
	r.dev.stats.Released++
	return true
}
