package system

import (
	"time"

	coresys "github.com/galaxian/game/internal/core/system"
	"github.com/galaxian/game/internal/world"
)

// CleanupSystem prunes invisible shots once the collision pass is done.
// Phase 3 (Cleanup).
type CleanupSystem struct {
	sess *world.Session
}

func NewCleanupSystem(sess *world.Session) *CleanupSystem {
	return &CleanupSystem{sess: sess}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Time) {
	s.sess.Shots = world.Compact(s.sess.Shots)
	s.sess.EnemyShots = world.Compact(s.sess.EnemyShots)
}
