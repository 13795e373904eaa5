package world

// Entity sizes in pixels.
const (
	ShipSize         = 20 // player and enemy are square
	ProjectileWidth  = 5
	ProjectileHeight = 10
)

// Entity is the shape every game object shares: a position, a fixed size and
// a visibility flag. Invisible entities are skipped by rendering, collision
// and projectile motion, and are eligible for removal from their collection.
type Entity struct {
	Pos     Vector2i
	Width   int
	Height  int
	Visible bool
}

func newEntity(x, y, w, h int) Entity {
	return Entity{Pos: Vector2i{X: x, Y: y}, Width: w, Height: h, Visible: true}
}

// Bounds returns the entity's bounding box at its current position.
func (e *Entity) Bounds() BoundingBox {
	return BoundingBox{X: e.Pos.X, Y: e.Pos.Y, Width: e.Width, Height: e.Height}
}

// Hits reports whether both entities are visible and their boxes overlap.
func (e *Entity) Hits(o *Entity) bool {
	return e.Visible && o.Visible && e.Bounds().Intersects(o.Bounds())
}
