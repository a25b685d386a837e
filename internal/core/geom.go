// Package core holds the small value types shared by the simulation and
// its front ends: rectangles, input frames, colors and the cell screen.
// It imports neither Bubble Tea nor Ebiten.
package core

// Rect is an axis-aligned box in world pixels. X and Y are the top-left
// corner.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the rect at (x, y) with size w by h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectF truncates a float position toward zero, which is how the
// simulation turns entity positions into hit boxes.
func RectF(x, y float64, w, h int) Rect {
	return Rect{X: int(x), Y: int(y), W: w, H: h}
}

// Right is the first column past the box.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row below the box.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the box covers no pixels. A wall of height 0 is
// empty.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports whether r and o share at least one pixel. Boxes that
// only touch along an edge do not intersect, and an empty box intersects
// nothing.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}
