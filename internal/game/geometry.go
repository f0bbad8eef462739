package game

// Rect is an axis-aligned rectangle in canvas units. X/Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// Overlaps reports whether a and b intersect. Rectangles that only share an
// edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.MaxX() > b.X && b.MaxX() > a.X && a.MaxY() > b.Y && b.MaxY() > a.Y
}
