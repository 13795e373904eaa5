package system

import (
	"time"

	"github.com/galaxian/game/internal/core/event"
	coresys "github.com/galaxian/game/internal/core/system"
	"github.com/galaxian/game/internal/world"
	"go.uber.org/zap"
)

// FormationSystem drives the enemy block: the lockstep move with wall bounce
// and the targeted fire. Both are gated by the formation's own timers, so
// most ticks do nothing. Phase 1 (Update).
type FormationSystem struct {
	sess *world.Session
	bus  *event.Bus
	log  *zap.Logger
}

func NewFormationSystem(sess *world.Session, bus *event.Bus, log *zap.Logger) *FormationSystem {
	return &FormationSystem{sess: sess, bus: bus, log: log}
}

func (s *FormationSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *FormationSystem) Update(now time.Time) {
	f := s.sess.Formation

	if f.Step(now) == world.StepBounced {
		event.Emit(s.bus, event.FormationBounced{Direction: f.Direction})
	}

	shooter, shot := f.TryFire(now, s.sess.Player.Pos)
	if shot == nil {
		return
	}
	s.sess.EnemyShots = append(s.sess.EnemyShots, shot)
	event.Emit(s.bus, event.EnemyFired{ShooterX: shooter.Pos.X, ShooterY: shooter.Pos.Y})
}
