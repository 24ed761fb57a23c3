package squircle

// Snapshot records the parameters behind a Source's current output.
// The zero Snapshot means nothing has been rendered yet.
type Snapshot struct {
	params   Params
	rendered bool
}

// Params returns the parameters of the last successful rebuild.
func (s Snapshot) Params() Params {
	return s.params
}

// Rendered reports whether a rebuild has ever succeeded.
func (s Snapshot) Rendered() bool {
	return s.rendered
}

// ShouldRegenerate reports whether next requires new geometry. It does when
// nothing has been rendered yet, when the geometry is currently absent, or
// when any field of next differs from prev bit-for-bit. It has no side
// effects.
func ShouldRegenerate(prev Snapshot, hasGeometry bool, next Params) bool {
	return !prev.rendered || !hasGeometry || !prev.params.Equal(next)
}
