// Package dispose provides an owning registry of releasable resources.
//
// A Collector records every device-backed object a shape creates and
// releases them as a unit on teardown. Individual entries can be released
// early when they are replaced.
package dispose

// Releaser is a resource that must be released exactly once.
type Releaser interface {
	Release()
}

// Collector owns a set of releasable resources.
// It is not safe for concurrent use.
type Collector struct {
	items []Releaser
}

// Collect takes ownership of r. Nil values are ignored.
func (c *Collector) Collect(r Releaser) {
	if r == nil {
		return
	}
	c.items = append(c.items, r)
}

// Owns reports whether r is currently owned by the collector.
func (c *Collector) Owns(r Releaser) bool {
	return c.index(r) >= 0
}

// Remove gives up ownership of r without releasing it.
// It reports whether r was owned.
func (c *Collector) Remove(r Releaser) bool {
	i := c.index(r)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// RemoveAndRelease releases r if it is owned and drops it from the
// collector. Resources the collector does not own are left untouched, so
// a resource is never released twice through the same collector.
func (c *Collector) RemoveAndRelease(r Releaser) bool {
	if !c.Remove(r) {
		return false
	}
	r.Release()
	return true
}

// ReleaseAll releases every owned resource, most recently collected first,
// and empties the collector.
func (c *Collector) ReleaseAll() {
	for i := len(c.items) - 1; i >= 0; i-- {
		c.items[i].Release()
	}
	c.items = c.items[:0]
}

// Len returns the number of owned resources.
func (c *Collector) Len() int {
	return len(c.items)
}

func (c *Collector) index(r Releaser) int {
	if r == nil {
		return -1
	}
	for i, it := range c.items {
		if it == r {
			return i
		}
	}
	return -1
}
