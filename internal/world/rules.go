package world

import "time"

// Rules holds every gameplay tunable. DefaultRules reproduces the reference
// build; all motion values are per tick, so a different tick rate changes
// gameplay speed.
type Rules struct {
	ScreenWidth  int
	ScreenHeight int

	PlayerStartX       int
	PlayerStartY       int
	PlayerLives        int
	PlayerSpeed        int           // px per tick while a direction key is held
	PlayerFireCooldown time.Duration // minimum gap between two player shots

	FormationSpeed        int           // px per lockstep move
	FormationMoveInterval time.Duration // minimum gap between lockstep moves
	FormationFireInterval time.Duration // minimum gap between enemy shots
	FormationDropStep     int           // px every visible enemy descends on a wall bounce

	ProjectileSpeed int // px per tick, both directions
}

func DefaultRules() Rules {
	return Rules{
		ScreenWidth:  800,
		ScreenHeight: 600,

		PlayerStartX:       400,
		PlayerStartY:       550,
		PlayerLives:        3,
		PlayerSpeed:        2,
		PlayerFireCooldown: 500 * time.Millisecond,

		FormationSpeed:        3,
		FormationMoveInterval: 100 * time.Millisecond,
		FormationFireInterval: 1000 * time.Millisecond,
		FormationDropStep:     20,

		ProjectileSpeed: 4,
	}
}
