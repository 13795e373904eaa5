package world

import "time"

// Player is the ship under user control. Owned by the Session and recreated
// on restart. Accessed only from the game loop goroutine.
type Player struct {
	Entity
	Velocity Vector2i // only X is ever non-zero
	Lives    int

	speed     int
	shotSpeed int
	cooldown  time.Duration
	lastShot  time.Time
	hasShot   bool // false until the first successful shot
}

// NewPlayer places a fresh ship at the start position with full lives.
func NewPlayer(r Rules) *Player {
	return &Player{
		Entity:    newEntity(r.PlayerStartX, r.PlayerStartY, ShipSize, ShipSize),
		Lives:     r.PlayerLives,
		speed:     r.PlayerSpeed,
		shotSpeed: r.ProjectileSpeed,
		cooldown:  r.PlayerFireCooldown,
	}
}

// SetHorizontalIntent sets the horizontal velocity from a direction in
// {-1, 0, +1}. Out-of-range values are clamped to the nearest direction.
func (p *Player) SetHorizontalIntent(direction int) {
	switch {
	case direction < 0:
		direction = -1
	case direction > 0:
		direction = 1
	}
	p.Velocity.X = direction * p.speed
}

// Advance applies the velocity and keeps the ship inside [0, boundsWidth-width].
func (p *Player) Advance(boundsWidth int) {
	p.Pos = p.Pos.Add(p.Velocity)
	if p.Pos.X < 0 {
		p.Pos.X = 0
	}
	if limit := boundsWidth - p.Width; p.Pos.X > limit {
		p.Pos.X = limit
	}
}

// TryFire spawns a shot from the nose of the ship if the ship is visible and
// the cooldown has elapsed since the last successful shot. It returns nil
// otherwise; this is rate limiting, not an error.
func (p *Player) TryFire(now time.Time) *Projectile {
	if !p.Alive() {
		return nil
	}
	if p.hasShot && now.Sub(p.lastShot) < p.cooldown {
		return nil
	}
	p.lastShot, p.hasShot = now, true
	return NewPlayerShot(p.Pos.X+ShipSize/2, p.Pos.Y, p.shotSpeed)
}

// LoseLife removes one life. The ship disappears when no lives remain.
// Lives never drop below zero.
func (p *Player) LoseLife() {
	if p.Lives > 0 {
		p.Lives--
	}
	if p.Lives <= 0 {
		p.Visible = false
	}
}

// Alive reports whether the ship still takes part in the round.
func (p *Player) Alive() bool { return p.Visible }
