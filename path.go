package cardwall

import "math"

// Point represents a 2D point.
type Point struct {
	X, Y float64
}

// Pt creates a Point from x and y coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path built from move, line, quadratic curve and
// close operations.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty returns true if the path contains no elements.
// Shape helpers leave the path empty for degenerate geometry, so callers
// can skip the draw instead of failing.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Rectangle adds a rectangle to the path.
// Degenerate rectangles (w or h not positive) add nothing.
func (p *Path) Rectangle(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// RoundedRectangle adds a rectangle with rounded corners.
//
// The outline is a closed clockwise path starting on the top edge just past
// the top-left corner: four straight edges joined by quadratic arcs whose
// control points sit at the sharp rectangle corners.
// Degenerate rectangles (w or h not positive) add nothing.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	if w <= 0 || h <= 0 {
		return
	}

	// Clamp radius to half of the smaller dimension
	maxR := math.Min(w, h) / 2
	if r > maxR {
		r = maxR
	}
	if r < 0 {
		r = 0
	}

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.QuadraticTo(x+w, y, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.QuadraticTo(x+w, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.QuadraticTo(x, y+h, x, y+h-r)
	p.LineTo(x, y+r)
	p.QuadraticTo(x, y, x+r, y)
	p.Close()
}

// Circle adds a circle to the path using quadratic Bezier arcs.
//
// Eight 45-degree segments with control points at the tangent intersection,
// so the path model stays within move/line/quadratic/close.
// Non-positive radii add nothing.
func (p *Path) Circle(cx, cy, r float64) {
	if r <= 0 {
		return
	}

	const segments = 8
	const step = 2 * math.Pi / segments
	// Control point distance for a quadratic arc spanning `step` radians.
	cr := r / math.Cos(step/2)

	p.MoveTo(cx+r, cy)
	for i := 0; i < segments; i++ {
		a1 := float64(i) * step
		a2 := a1 + step
		mid := (a1 + a2) / 2
		p.QuadraticTo(
			cx+cr*math.Cos(mid), cy+cr*math.Sin(mid),
			cx+r*math.Cos(a2), cy+r*math.Sin(a2),
		)
	}
	p.Close()
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}
