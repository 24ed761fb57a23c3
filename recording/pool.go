package recording

import "github.com/gogpu/squircle/geom"

// ResourcePool stores resources referenced by recording commands.
// Resources are stored in slices indexed by their reference types.
// Each Add operation clones mutable resources to ensure immutability.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths   []*geom.Path
	brushes []Brush
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths:   make([]*geom.Path, 0, 4),
		brushes: make([]Brush, 0, 4),
	}
}

// AddPath adds a path to the pool and returns its reference.
// The path is cloned to ensure immutability of the recording.
func (p *ResourcePool) AddPath(path *geom.Path) PathRef {
	var stored *geom.Path
	if path != nil {
		stored = path.Clone()
	}
	p.paths = append(p.paths, stored)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the path for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetPath(ref PathRef) *geom.Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}

// AddBrush adds a brush to the pool and returns its reference.
// Brushes are stored directly as they are immutable value types.
func (p *ResourcePool) AddBrush(brush Brush) BrushRef {
	p.brushes = append(p.brushes, brush)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return BrushRef(uint32(len(p.brushes) - 1))
}

// GetBrush returns the brush for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetBrush(ref BrushRef) Brush {
	if int(ref) >= len(p.brushes) {
		return nil
	}
	return p.brushes[ref]
}

// BrushCount returns the number of brushes in the pool.
func (p *ResourcePool) BrushCount() int {
	return len(p.brushes)
}
