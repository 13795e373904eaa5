package world

import "time"

// StepResult describes what a formation step did.
type StepResult uint8

const (
	StepIdle    StepResult = iota // move interval not yet elapsed
	StepMoved                     // lockstep move, no wall contact
	StepBounced                   // lockstep move that touched a wall: direction flipped, rows dropped
)

// Formation moves the enemy block as one unit and picks the shooter for
// targeted fire. Enemies keep their spawn order for the whole session;
// that order breaks ties in shooter selection.
type Formation struct {
	Enemies   []*Enemy
	Direction int // -1 left, +1 right
	Speed     int

	boundsWidth  int
	dropStep     int
	shotSpeed    int
	moveInterval time.Duration
	fireInterval time.Duration
	lastMove     time.Time
	lastFire     time.Time
	hasMoved     bool
	hasFired     bool
}

// NewFormation builds the enemy block from a layout, heading right.
func NewFormation(r Rules, spawns []EnemySpawn) *Formation {
	enemies := make([]*Enemy, 0, len(spawns))
	for _, s := range spawns {
		enemies = append(enemies, &Enemy{
			Entity:  newEntity(s.X, s.Y, ShipSize, ShipSize),
			Variant: s.Variant,
		})
	}
	return &Formation{
		Enemies:      enemies,
		Direction:    1,
		Speed:        r.FormationSpeed,
		boundsWidth:  r.ScreenWidth,
		dropStep:     r.FormationDropStep,
		shotSpeed:    r.ProjectileSpeed,
		moveInterval: r.FormationMoveInterval,
		fireInterval: r.FormationFireInterval,
	}
}

// Step performs one lockstep horizontal move if the move interval has
// elapsed. When any visible enemy ends the move touching or past a side
// wall, the direction flips for the next move and every visible enemy
// drops in this same step.
func (f *Formation) Step(now time.Time) StepResult {
	if f.hasMoved && now.Sub(f.lastMove) < f.moveInterval {
		return StepIdle
	}
	f.lastMove, f.hasMoved = now, true

	dx := f.Direction * f.Speed
	wall := false
	for _, e := range f.Enemies {
		if !e.Visible {
			continue
		}
		e.Pos.X += dx
		if e.Pos.X <= 0 || e.Pos.X >= f.boundsWidth-ShipSize {
			wall = true
		}
	}
	if !wall {
		return StepMoved
	}

	f.Direction = -f.Direction
	for _, e := range f.Enemies {
		if e.Visible {
			e.Pos.Y += f.dropStep
		}
	}
	return StepBounced
}

// Nearest returns the visible enemy closest to target, or nil if none is
// visible. The first enemy in formation order wins a tie.
func (f *Formation) Nearest(target Vector2i) *Enemy {
	var best *Enemy
	bestDist := 0
	for _, e := range f.Enemies {
		if !e.Visible {
			continue
		}
		d := e.Pos.DistSq(target)
		if best == nil || d < bestDist {
			best = e
			bestDist = d
		}
	}
	return best
}

// TryFire lets the enemy nearest to target shoot if the fire interval has
// elapsed. The shot leaves from below the shooter's centre. It returns the
// shooter and its shot, or nils when nothing fired.
func (f *Formation) TryFire(now time.Time, target Vector2i) (*Enemy, *Projectile) {
	if f.hasFired && now.Sub(f.lastFire) < f.fireInterval {
		return nil, nil
	}
	f.lastFire, f.hasFired = now, true

	shooter := f.Nearest(target)
	if shooter == nil {
		return nil, nil
	}
	return shooter, NewEnemyShot(shooter.Pos.X+ShipSize/2, shooter.Pos.Y+ShipSize, f.shotSpeed)
}

// VisibleCount returns how many enemies are still in play.
func (f *Formation) VisibleCount() int {
	n := 0
	for _, e := range f.Enemies {
		if e.Visible {
			n++
		}
	}
	return n
}
