package squircle

import "fmt"

// ReleasePolicy decides when a Source releases the resources it is
// replacing.
type ReleasePolicy uint8

const (
	// ReleaseEager releases the old geometry, brush and command list before
	// any replacement is created. If the rebuild then fails, the Source has
	// no output until the next successful update.
	ReleaseEager ReleasePolicy = iota

	// ReleaseDeferred builds and finalizes the replacement first and
	// releases the old set only on success. A failed rebuild releases the
	// partial replacement and keeps the previous output. Peak usage is two
	// resource sets.
	ReleaseDeferred
)

// String returns the policy name.
func (p ReleasePolicy) String() string {
	switch p {
	case ReleaseEager:
		return "eager"
	case ReleaseDeferred:
		return "deferred"
	default:
		return "unknown"
	}
}

// ParseReleasePolicy parses "eager" or "deferred".
func ParseReleasePolicy(s string) (ReleasePolicy, error) {
	switch normalizeName(s) {
	case "eager":
		return ReleaseEager, nil
	case "deferred":
		return ReleaseDeferred, nil
	}
	return 0, fmt.Errorf("squircle: unknown release policy %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p ReleasePolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *ReleasePolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseReleasePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Option configures a Source during creation.
//
// Example:
//
//	src := squircle.NewSource(dev, params,
//	    squircle.WithPointCount(500),
//	    squircle.WithReleasePolicy(squircle.ReleaseDeferred),
//	)
type Option func(*sourceOptions)

type sourceOptions struct {
	points    int
	workers   int
	generator *Generator
	policy    ReleasePolicy
	polygons  *PolygonCache
}

func defaultOptions() sourceOptions {
	return sourceOptions{
		points:  DefaultPointCount,
		workers: 1,
		policy:  ReleaseEager,
	}
}

// WithPointCount sets the number of boundary samples. Values below 3 select
// DefaultPointCount. Ignored when WithGenerator is given.
func WithPointCount(n int) Option {
	return func(o *sourceOptions) {
		o.points = n
	}
}

// WithParallelism sets how many workers sample each boundary. The default
// of 1 samples on the calling goroutine; n <= 0 uses GOMAXPROCS. Ignored
// when WithGenerator is given.
func WithParallelism(n int) Option {
	return func(o *sourceOptions) {
		o.workers = n
	}
}

// WithGenerator shares g instead of creating a private generator. The
// caller keeps ownership: Source.Close does not close g.
func WithGenerator(g *Generator) Option {
	return func(o *sourceOptions) {
		o.generator = g
	}
}

// WithReleasePolicy selects when replaced resources are released.
// The default is ReleaseEager.
func WithReleasePolicy(p ReleasePolicy) Option {
	return func(o *sourceOptions) {
		o.policy = p
	}
}

// WithPolygonCache shares generated boundaries through pc.
func WithPolygonCache(pc *PolygonCache) Option {
	return func(o *sourceOptions) {
		o.polygons = pc
	}
}
