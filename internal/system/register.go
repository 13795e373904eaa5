package system

import (
	"github.com/galaxian/game/internal/core/event"
	coresys "github.com/galaxian/game/internal/core/system"
	"github.com/galaxian/game/internal/input"
	"github.com/galaxian/game/internal/world"
	"go.uber.org/zap"
)

// RegisterAll wires the full per-tick pipeline for one session. Within the
// Update phase the registration order is the gameplay order: player shots,
// ship, formation, enemy shots.
func RegisterAll(r *coresys.Runner, sess *world.Session, latch *input.Latch, bus *event.Bus, log *zap.Logger) {
	r.Register(NewInputSystem(sess, latch, bus, log))
	r.Register(NewProjectileSystem(sess, world.OwnerPlayer))
	r.Register(NewPlayerSystem(sess))
	r.Register(NewFormationSystem(sess, bus, log))
	r.Register(NewProjectileSystem(sess, world.OwnerEnemy))
	r.Register(NewCollisionSystem(sess, bus, log))
	r.Register(NewCleanupSystem(sess))
}
