package event

import "github.com/galaxian/game/internal/world"

// SessionStarted is emitted when a round begins, including restarts.
type SessionStarted struct {
	Round   int
	Enemies int
}

// ShotFired is emitted when the player's fire succeeds.
type ShotFired struct {
	X, Y int
}

// EnemyFired is emitted when the formation's targeted fire spawns a shot.
type EnemyFired struct {
	ShooterX, ShooterY int
}

// FormationBounced is emitted when the formation touches a side wall.
type FormationBounced struct {
	Direction int // direction after the flip
}

// EnemyDestroyed is emitted for each enemy hit by a player shot.
type EnemyDestroyed struct {
	X, Y      int
	Variant   world.Variant
	Remaining int
}

// PlayerHit is emitted each time an enemy shot costs the player a life.
type PlayerHit struct {
	LivesLeft int
}

// GameOver is emitted once when the round ends.
type GameOver struct {
	Cause world.EndCause
	Lives int
}
