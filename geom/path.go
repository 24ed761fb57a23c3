package geom

// Verb identifies the kind of a path element.
type Verb uint8

const (
	// VerbMoveTo starts a new figure.
	VerbMoveTo Verb = iota
	// VerbLineTo adds a straight segment to the current figure.
	VerbLineTo
	// VerbClose closes the current figure back to its start point.
	VerbClose
)

// String returns the verb name.
func (v Verb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// Element is a single path element. Point is unused for VerbClose.
type Element struct {
	Verb  Verb
	Point Vec2
}

// Path is a sequence of line-only figures.
type Path struct {
	elements []Element
	start    Vec2 // start of the current figure
	current  Vec2
	hasPoint bool
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return NewPathCap(16)
}

// NewPathCap creates a new empty path with room for n elements.
func NewPathCap(n int) *Path {
	return &Path{elements: make([]Element, 0, n)}
}

// MoveTo starts a new figure at p.
func (p *Path) MoveTo(pt Vec2) {
	p.elements = append(p.elements, Element{Verb: VerbMoveTo, Point: pt})
	p.start = pt
	p.current = pt
	p.hasPoint = true
}

// LineTo adds a straight segment from the current point to pt.
// Without a current point it behaves like MoveTo.
func (p *Path) LineTo(pt Vec2) {
	if !p.hasPoint {
		p.MoveTo(pt)
		return
	}
	p.elements = append(p.elements, Element{Verb: VerbLineTo, Point: pt})
	p.current = pt
}

// Close closes the current figure.
func (p *Path) Close() {
	if !p.hasPoint {
		return
	}
	p.elements = append(p.elements, Element{Verb: VerbClose})
	p.current = p.start
}

// Elements returns the path elements. The slice must not be modified.
func (p *Path) Elements() []Element {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Vec2 {
	return p.current
}

// Bounds returns the bounding box of all path points.
func (p *Path) Bounds() Rect {
	r := EmptyRect()
	for _, e := range p.elements {
		if e.Verb != VerbClose {
			r = r.Extend(e.Point)
		}
	}
	return r
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	out := &Path{
		elements: make([]Element, len(p.elements)),
		start:    p.start,
		current:  p.current,
		hasPoint: p.hasPoint,
	}
	copy(out.elements, p.elements)
	return out
}
