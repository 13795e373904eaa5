// Package sim drives a game headlessly on a virtual clock with a scripted
// pilot standing in for the keyboard.
package sim

import (
	"context"
	"time"

	"github.com/galaxian/game/internal/game"
	"github.com/galaxian/game/internal/input"
	"github.com/galaxian/game/internal/scripting"
	"github.com/galaxian/game/internal/world"
	"go.uber.org/zap"
)

// Pilot decides the input for each tick.
type Pilot interface {
	Decide(scripting.View) scripting.Decision
}

// Options bound a run.
type Options struct {
	TickRate time.Duration
	MaxTicks int // hard stop; 0 means no limit
	Rounds   int // stop once this many rounds have ended; 0 means no limit
	Start    time.Time
}

// StopReason says why Run returned.
type StopReason string

const (
	StopRounds    StopReason = "rounds"
	StopMaxTicks  StopReason = "max_ticks"
	StopCleared   StopReason = "cleared"
	StopCancelled StopReason = "cancelled"
)

// Result summarises a run.
type Result struct {
	Ticks   int
	Ended   int // rounds that reached game over
	Reason  StopReason
	Stats   game.Stats
	Elapsed time.Duration // virtual time
}

// Run ticks g until a bound in opts is hit, the formation is wiped out or
// ctx is cancelled.
func Run(ctx context.Context, g *game.Game, pilot Pilot, opts Options, log *zap.Logger) Result {
	now := opts.Start
	start := now

	var (
		res     Result
		move    int
		wasOver bool
	)
	for {
		if err := ctx.Err(); err != nil {
			res.Reason = StopCancelled
			break
		}
		if opts.MaxTicks > 0 && res.Ticks >= opts.MaxTicks {
			res.Reason = StopMaxTicks
			break
		}

		sess := g.Session()
		if sess.Running() && sess.Formation.VisibleCount() == 0 {
			res.Reason = StopCleared
			break
		}

		d := pilot.Decide(viewOf(sess, res.Ticks))
		move = steer(g, move, d.Move)
		if d.Fire {
			g.KeyDown(input.KeyFire)
		}
		if d.Restart {
			g.KeyDown(input.KeyRestart)
		}

		now = now.Add(opts.TickRate)
		g.Tick(now)
		res.Ticks++

		over := !g.Session().Running()
		if over && !wasOver {
			res.Ended++
			log.Debug("sim round ended",
				zap.Int("round", g.Round()),
				zap.Stringer("cause", g.Session().Cause),
				zap.Int("tick", res.Ticks),
			)
			if opts.Rounds > 0 && res.Ended >= opts.Rounds {
				res.Reason = StopRounds
				break
			}
		}
		wasOver = over
	}

	g.Flush()
	res.Stats = g.Stats()
	res.Elapsed = now.Sub(start)
	return res
}

// steer moves the held direction key from cur to want.
func steer(g *game.Game, cur, want int) int {
	if cur == want {
		return cur
	}
	if k := dirKey(cur); k != input.KeyNone {
		g.KeyUp(k)
	}
	if k := dirKey(want); k != input.KeyNone {
		g.KeyDown(k)
	}
	return want
}

func dirKey(d int) input.Key {
	switch {
	case d < 0:
		return input.KeyLeft
	case d > 0:
		return input.KeyRight
	}
	return input.KeyNone
}

func viewOf(sess *world.Session, tick int) scripting.View {
	v := scripting.View{
		Tick:        tick,
		Running:     sess.Running(),
		Lives:       sess.Player.Lives,
		Player:      scripting.Point{X: sess.Player.Pos.X, Y: sess.Player.Pos.Y},
		ScreenWidth: sess.Rules.ScreenWidth,
	}
	for _, e := range sess.Formation.Enemies {
		if e.Visible {
			v.Enemies = append(v.Enemies, scripting.Point{X: e.Pos.X, Y: e.Pos.Y})
		}
	}
	for _, s := range sess.EnemyShots {
		if s.Visible {
			v.EnemyShots = append(v.EnemyShots, scripting.Point{X: s.Pos.X, Y: s.Pos.Y})
		}
	}
	return v
}
