package system

import (
	"time"

	coresys "github.com/galaxian/game/internal/core/system"
	"github.com/galaxian/game/internal/world"
)

// ProjectileSystem advances one owner's shots. Two instances are registered:
// player shots first in the Update phase, enemy shots last.
// Phase 1 (Update).
type ProjectileSystem struct {
	sess  *world.Session
	owner world.Owner
}

func NewProjectileSystem(sess *world.Session, owner world.Owner) *ProjectileSystem {
	return &ProjectileSystem{sess: sess, owner: owner}
}

func (s *ProjectileSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *ProjectileSystem) Update(_ time.Time) {
	shots := s.sess.Shots
	if s.owner == world.OwnerEnemy {
		shots = s.sess.EnemyShots
	}
	h := s.sess.Rules.ScreenHeight
	for _, p := range shots {
		p.Advance(h)
	}
}

// PlayerSystem moves the ship by its current velocity. Phase 1 (Update).
type PlayerSystem struct {
	sess *world.Session
}

func NewPlayerSystem(sess *world.Session) *PlayerSystem {
	return &PlayerSystem{sess: sess}
}

func (s *PlayerSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *PlayerSystem) Update(_ time.Time) {
	s.sess.Player.Advance(s.sess.Rules.ScreenWidth)
}
