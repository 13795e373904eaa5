// Package game owns the live session and runs the fixed-tick loop: key
// events in, one render frame out per tick.
package game

import (
	"time"

	"github.com/galaxian/game/internal/core/event"
	coresys "github.com/galaxian/game/internal/core/system"
	"github.com/galaxian/game/internal/input"
	"github.com/galaxian/game/internal/render"
	"github.com/galaxian/game/internal/system"
	"github.com/galaxian/game/internal/world"
	"go.uber.org/zap"
)

// Stats are in-memory counters over the whole process lifetime. Nothing is
// persisted.
type Stats struct {
	Ticks      int // gameplay ticks (RUNNING only)
	Rounds     int
	Kills      int
	ShotsFired int
	EnemyShots int
	HitsTaken  int
	Bounces    int
}

// Game is the session state machine. It is not safe for concurrent use:
// adapters must deliver key events and ticks from one goroutine.
type Game struct {
	rules  world.Rules
	spawns []world.EnemySpawn
	log    *zap.Logger

	latch  input.Latch
	bus    *event.Bus
	sess   *world.Session
	runner *coresys.Runner
	stats  Stats
	frame  render.Frame

	roundTicks int
}

// New starts the first round. spawns is the formation layout used for every
// round; pass world.ClassicLayout() for the reference game.
func New(rules world.Rules, spawns []world.EnemySpawn, log *zap.Logger) *Game {
	g := &Game{
		rules:  rules,
		spawns: append([]world.EnemySpawn(nil), spawns...),
		log:    log,
		bus:    event.NewBus(),
	}
	g.subscribe()
	g.startRound()
	return g
}

// ReleaseKeys forgets every held key and unconsumed press. Adapters call it
// when they stop receiving key events, e.g. on focus loss.
func (g *Game) ReleaseKeys() { g.latch.ReleaseAll() }

// KeyDown records a key press for the next tick.
func (g *Game) KeyDown(k input.Key) { g.latch.KeyDown(k) }

// KeyUp records a key release for the next tick.
func (g *Game) KeyUp(k input.Key) { g.latch.KeyUp(k) }

// Tick advances the game by one tick and returns the frame to draw.
//
// Last tick's events are dispatched first. While RUNNING the full system
// pipeline runs; while GAME_OVER nothing moves and only a restart press is
// honoured, which replaces the session wholesale.
func (g *Game) Tick(now time.Time) render.Frame {
	g.bus.SwapBuffers()
	g.bus.DispatchAll()

	switch g.sess.State {
	case world.StateRunning:
		g.latch.TakeRestart() // restart only counts on the end screen
		g.runner.Tick(now)
		g.stats.Ticks++
		g.roundTicks++
	case world.StateGameOver:
		g.latch.TakeFire()
		if g.latch.TakeRestart() {
			g.startRound()
		}
	}

	g.frame = g.snapshot()
	return g.frame
}

// Flush delivers events emitted by the last tick without advancing the game.
// Callers that stop ticking use it so Stats include the final tick.
func (g *Game) Flush() {
	if g.bus.Pending() == 0 {
		return
	}
	g.bus.SwapBuffers()
	g.bus.DispatchAll()
}

// Frame returns the frame produced by the last tick.
func (g *Game) Frame() render.Frame { return g.frame }

// Session exposes the live session for read-only inspection.
func (g *Game) Session() *world.Session { return g.sess }

// Stats returns the counters as of the last dispatched events.
func (g *Game) Stats() Stats { return g.stats }

// Round returns the 1-based number of the current round.
func (g *Game) Round() int { return g.stats.Rounds }

func (g *Game) startRound() {
	g.sess = world.NewSession(g.rules, g.spawns)
	g.runner = coresys.NewRunner()
	system.RegisterAll(g.runner, g.sess, &g.latch, g.bus, g.log)
	g.stats.Rounds++
	g.roundTicks = 0
	event.Emit(g.bus, event.SessionStarted{Round: g.stats.Rounds, Enemies: len(g.sess.Formation.Enemies)})
	g.frame = g.snapshot()
}

func (g *Game) snapshot() render.Frame {
	f := g.sess.Formation
	return render.Snapshot(g.sess, len(f.Enemies)-f.VisibleCount())
}

func (g *Game) subscribe() {
	event.Subscribe(g.bus, func(e event.SessionStarted) {
		g.log.Info("round started", zap.Int("round", e.Round), zap.Int("enemies", e.Enemies))
	})
	event.Subscribe(g.bus, func(event.ShotFired) { g.stats.ShotsFired++ })
	event.Subscribe(g.bus, func(event.EnemyFired) { g.stats.EnemyShots++ })
	event.Subscribe(g.bus, func(e event.FormationBounced) {
		g.stats.Bounces++
		g.log.Debug("formation bounced", zap.Int("direction", e.Direction))
	})
	event.Subscribe(g.bus, func(e event.EnemyDestroyed) {
		g.stats.Kills++
		g.log.Debug("enemy destroyed",
			zap.Int("x", e.X),
			zap.Int("y", e.Y),
			zap.Stringer("variant", e.Variant),
			zap.Int("remaining", e.Remaining),
		)
	})
	event.Subscribe(g.bus, func(e event.PlayerHit) {
		g.stats.HitsTaken++
		g.log.Info("player hit", zap.Int("lives_left", e.LivesLeft))
	})
	event.Subscribe(g.bus, func(e event.GameOver) {
		g.log.Info("game over",
			zap.Stringer("cause", e.Cause),
			zap.Int("lives", e.Lives),
			zap.Int("round", g.stats.Rounds),
			zap.Int("round_ticks", g.roundTicks),
		)
	})
}
