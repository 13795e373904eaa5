package system

import (
	"time"

	"github.com/galaxian/game/internal/core/event"
	coresys "github.com/galaxian/game/internal/core/system"
	"github.com/galaxian/game/internal/input"
	"github.com/galaxian/game/internal/world"
	"go.uber.org/zap"
)

// InputSystem turns the key latch into player intent at the start of a tick.
// Phase 0 (Input).
type InputSystem struct {
	sess  *world.Session
	latch *input.Latch
	bus   *event.Bus
	log   *zap.Logger
}

func NewInputSystem(sess *world.Session, latch *input.Latch, bus *event.Bus, log *zap.Logger) *InputSystem {
	return &InputSystem{sess: sess, latch: latch, bus: bus, log: log}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Update(now time.Time) {
	p := s.sess.Player
	p.SetHorizontalIntent(s.latch.Direction())

	if !s.latch.TakeFire() {
		return
	}
	shot := p.TryFire(now)
	if shot == nil {
		s.log.Debug("fire rate limited")
		return
	}
	s.sess.Shots = append(s.sess.Shots, shot)
	event.Emit(s.bus, event.ShotFired{X: shot.Pos.X, Y: shot.Pos.Y})
}
