package world

// Owner identifies who fired a projectile.
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerEnemy {
		return "enemy"
	}
	return "player"
}

// Projectile is a shot travelling straight up (player) or down (enemy) at a
// fixed per-tick speed.
type Projectile struct {
	Entity
	Owner Owner
	DY    int
}

// NewPlayerShot creates an upward shot at (x, y).
func NewPlayerShot(x, y, speed int) *Projectile {
	return &Projectile{
		Entity: newEntity(x, y, ProjectileWidth, ProjectileHeight),
		Owner:  OwnerPlayer,
		DY:     -speed,
	}
}

// NewEnemyShot creates a downward shot at (x, y).
func NewEnemyShot(x, y, speed int) *Projectile {
	return &Projectile{
		Entity: newEntity(x, y, ProjectileWidth, ProjectileHeight),
		Owner:  OwnerEnemy,
		DY:     speed,
	}
}

// Advance moves a visible shot one tick and hides it once it has left the
// vertical range [0, screenHeight]. Invisible shots do not move.
func (p *Projectile) Advance(screenHeight int) {
	if !p.Visible {
		return
	}
	p.Pos = p.Pos.Add(Vector2i{Y: p.DY})
	if p.Pos.Y < 0 || p.Pos.Y > screenHeight {
		p.Visible = false
	}
}

// Compact removes invisible shots in place, keeping the order of the rest.
func Compact(shots []*Projectile) []*Projectile {
	kept := shots[:0]
	for _, s := range shots {
		if s.Visible {
			kept = append(kept, s)
		}
	}
	for i := len(kept); i < len(shots); i++ {
		shots[i] = nil
	}
	return kept
}
