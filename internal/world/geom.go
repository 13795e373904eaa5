package world

// Vector2i is an integer screen-space coordinate.
type Vector2i struct {
	X int
	Y int
}

// Add returns v translated by d.
func (v Vector2i) Add(d Vector2i) Vector2i {
	return Vector2i{X: v.X + d.X, Y: v.Y + d.Y}
}

// DistSq returns the squared Euclidean distance between v and o.
// Comparing squared distances preserves the ordering of real distances.
func (v Vector2i) DistSq(o Vector2i) int {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

// BoundingBox is an axis-aligned rectangle used only for intersection tests.
type BoundingBox struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Intersects reports whether the interiors of b and o overlap.
// Rectangles that only share an edge do not intersect, and an empty box
// never intersects anything.
func (b BoundingBox) Intersects(o BoundingBox) bool {
	if b.Width <= 0 || b.Height <= 0 || o.Width <= 0 || o.Height <= 0 {
		return false
	}
	return b.X < o.X+o.Width &&
		o.X < b.X+b.Width &&
		b.Y < o.Y+o.Height &&
		o.Y < b.Y+b.Height
}
