package squircle

import (
	"math"

	"github.com/gogpu/squircle/cache"
	"github.com/gogpu/squircle/geom"
)

// polygonKey identifies a boundary by the exact bits of its inputs.
// Color does not affect geometry and is not part of the key.
type polygonKey struct {
	variant   Variant
	width     uint64
	height    uint64
	curvature uint64
	points    int
}

func newPolygonKey(p Params, n int) polygonKey {
	return polygonKey{
		variant:   p.Variant,
		width:     math.Float64bits(p.Width),
		height:    math.Float64bits(p.Height),
		curvature: math.Float64bits(p.Curvature),
		points:    n,
	}
}

// hashPolygonKey mixes the key with FNV-1a over its words.
func hashPolygonKey(k polygonKey) uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	for _, w := range [...]uint64{uint64(k.variant), k.width, k.height, k.curvature, uint64(k.points)} {
		h ^= w
		h *= prime
	}
	return h
}

// PolygonCache shares generated boundaries between Sources. Cached
// polygons are immutable and must not be modified by callers.
//
// PolygonCache is safe for concurrent use.
type PolygonCache struct {
	c *cache.ShardedCache[polygonKey, geom.Polygon]
}

// NewPolygonCache creates a cache holding up to capacity polygons per
// shard. capacity <= 0 selects cache.DefaultCapacity.
func NewPolygonCache(capacity int) *PolygonCache {
	return &PolygonCache{c: cache.NewSharded[polygonKey, geom.Polygon](capacity, hashPolygonKey)}
}

// Get returns the boundary of p sampled by g, generating it on a miss.
// Unknown variants are not cached and yield nil.
func (pc *PolygonCache) Get(g *Generator, p Params) geom.Polygon {
	if !p.Variant.Valid() {
		return nil
	}
	return pc.c.GetOrCreate(newPolygonKey(p, g.PointCount()), func() geom.Polygon {
		return g.Generate(p)
	})
}

// Len returns the number of cached polygons.
func (pc *PolygonCache) Len() int {
	return pc.c.Len()
}

// Stats returns hit, miss and eviction counters.
func (pc *PolygonCache) Stats() cache.Stats {
	return pc.c.Stats()
}

// Clear drops every cached polygon.
func (pc *PolygonCache) Clear() {
	pc.c.Clear()
}
