package world

// SessionState is the round's top-level state.
type SessionState uint8

const (
	StateRunning SessionState = iota
	StateGameOver
)

func (s SessionState) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "running"
}

// EndCause records why a round ended.
type EndCause uint8

const (
	CauseNone     EndCause = iota
	CauseRammed            // an enemy touched the ship
	CauseShotDown          // the last life was lost to enemy fire
)

func (c EndCause) String() string {
	switch c {
	case CauseRammed:
		return "rammed"
	case CauseShotDown:
		return "shot_down"
	}
	return "none"
}

// Session is the whole mutable state of one round. Exactly one session is
// live at a time; a restart replaces it wholesale.
// Single-goroutine access only (game loop).
type Session struct {
	Rules      Rules
	State      SessionState
	Cause      EndCause
	Player     *Player
	Formation  *Formation
	Shots      []*Projectile // player shots, in firing order
	EnemyShots []*Projectile // enemy shots, in firing order
}

// NewSession builds a running round: fresh ship, full formation, no shots.
func NewSession(r Rules, spawns []EnemySpawn) *Session {
	return &Session{
		Rules:      r,
		State:      StateRunning,
		Player:     NewPlayer(r),
		Formation:  NewFormation(r, spawns),
		Shots:      make([]*Projectile, 0, 16),
		EnemyShots: make([]*Projectile, 0, 16),
	}
}

// Running reports whether gameplay updates still apply.
func (s *Session) Running() bool { return s.State == StateRunning }

// End moves the round to GAME_OVER. Only the first cause is kept; ending an
// already finished round is a no-op. Returns true if this call ended it.
func (s *Session) End(cause EndCause) bool {
	if s.State == StateGameOver {
		return false
	}
	s.State = StateGameOver
	s.Cause = cause
	return true
}
