package system

import (
	"time"

	"github.com/galaxian/game/internal/core/event"
	coresys "github.com/galaxian/game/internal/core/system"
	"github.com/galaxian/game/internal/world"
	"go.uber.org/zap"
)

// CollisionSystem resolves hits after all motion of the tick, in fixed order:
//
//  1. player shots against enemies
//  2. enemies against the ship (instant end of round)
//  3. enemy shots against the ship (one life each)
//  4. an invisible ship ends the round
//
// Visibility is mutated as pairs are found, so a shot spent on one enemy is
// skipped for every later enemy in the same pass, and a destroyed enemy is
// skipped for every later shot.
// Phase 2 (Collision).
type CollisionSystem struct {
	sess *world.Session
	bus  *event.Bus
	log  *zap.Logger
}

func NewCollisionSystem(sess *world.Session, bus *event.Bus, log *zap.Logger) *CollisionSystem {
	return &CollisionSystem{sess: sess, bus: bus, log: log}
}

func (s *CollisionSystem) Phase() coresys.Phase { return coresys.PhaseCollision }

func (s *CollisionSystem) Update(_ time.Time) {
	s.shotsVsEnemies()

	p := s.sess.Player
	for _, e := range s.sess.Formation.Enemies {
		if e.Hits(&p.Entity) {
			s.end(world.CauseRammed)
			break
		}
	}

	for _, shot := range s.sess.EnemyShots {
		if !shot.Hits(&p.Entity) {
			continue
		}
		shot.Visible = false
		p.LoseLife()
		event.Emit(s.bus, event.PlayerHit{LivesLeft: p.Lives})
		if p.Lives <= 0 {
			s.end(world.CauseShotDown)
		}
	}

	if !p.Alive() {
		s.end(world.CauseShotDown)
	}
}

func (s *CollisionSystem) shotsVsEnemies() {
	f := s.sess.Formation
	for _, shot := range s.sess.Shots {
		for _, e := range f.Enemies {
			if !shot.Hits(&e.Entity) {
				continue
			}
			shot.Visible = false
			e.Visible = false
			event.Emit(s.bus, event.EnemyDestroyed{
				X:         e.Pos.X,
				Y:         e.Pos.Y,
				Variant:   e.Variant,
				Remaining: f.VisibleCount(),
			})
		}
	}
}

func (s *CollisionSystem) end(cause world.EndCause) {
	if !s.sess.End(cause) {
		return
	}
	s.log.Debug("round ended", zap.Stringer("cause", cause))
	event.Emit(s.bus, event.GameOver{Cause: cause, Lives: s.sess.Player.Lives})
}
