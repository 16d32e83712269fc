package state

// Rect is the on-screen bounding rectangle of the drawing surface,
// in viewport coordinates.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// NewRect builds a Rect from its top-left corner and size.
func NewRect(origin Point, width, height float32) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: width, Height: height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Local converts a viewport position into surface-local coordinates by
// subtracting the rectangle's top-left corner.
func (r Rect) Local(viewport Point) Point {
	return viewport.Sub(r.Origin())
}

// Contains reports whether a surface-local point lies on the surface.
// The far edges are inclusive so a stroke may reach the last pixel row.
func (r Rect) Contains(local Point) bool {
	return local.X >= 0 && local.X <= r.Width &&
		local.Y >= 0 && local.Y <= r.Height
}

// Empty reports whether the rectangle has no drawable area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
