package render

import "github.com/galaxian/game/internal/world"

// ColorTag tells the renderer how to paint a drawable. Adapters pick the
// actual colour.
type ColorTag uint8

const (
	ColorPlayer ColorTag = iota
	ColorEnemyA
	ColorEnemyB
	ColorPlayerShot
	ColorEnemyShot
)

func (c ColorTag) String() string {
	switch c {
	case ColorPlayer:
		return "player"
	case ColorEnemyA:
		return "enemy_a"
	case ColorEnemyB:
		return "enemy_b"
	case ColorPlayerShot:
		return "player_shot"
	case ColorEnemyShot:
		return "enemy_shot"
	}
	return "unknown"
}

// End-of-round screen text.
const (
	MessageGameOver = "Game Over"
	MessageRestart  = "Press R to Restart"
)

// Drawable is one filled rectangle.
type Drawable struct {
	X, Y          int
	Width, Height int
	Color         ColorTag
}

// Frame is the read-only snapshot handed to a renderer after each tick.
type Frame struct {
	Width, Height int // logical canvas
	State         world.SessionState
	Drawables     []Drawable
	Lives         int
	Kills         int
	Messages      []string // set only when the round is over
}

// GameOver reports whether the renderer should show the end screen.
func (f *Frame) GameOver() bool { return f.State == world.StateGameOver }

// Snapshot builds the frame for a session. While running it lists the ship,
// visible enemies, visible player shots and visible enemy shots, in that
// order. Once the round is over it carries only the end-screen messages.
func Snapshot(sess *world.Session, kills int) Frame {
	f := Frame{
		Width:  sess.Rules.ScreenWidth,
		Height: sess.Rules.ScreenHeight,
		State:  sess.State,
		Lives:  sess.Player.Lives,
		Kills:  kills,
	}
	if sess.State == world.StateGameOver {
		f.Messages = []string{MessageGameOver, MessageRestart}
		return f
	}

	f.Drawables = make([]Drawable, 0, 1+len(sess.Formation.Enemies)+len(sess.Shots)+len(sess.EnemyShots))
	if p := sess.Player; p.Visible {
		f.Drawables = append(f.Drawables, rect(&p.Entity, ColorPlayer))
	}
	for _, e := range sess.Formation.Enemies {
		if !e.Visible {
			continue
		}
		c := ColorEnemyA
		if e.Variant == world.VariantB {
			c = ColorEnemyB
		}
		f.Drawables = append(f.Drawables, rect(&e.Entity, c))
	}
	for _, s := range sess.Shots {
		if s.Visible {
			f.Drawables = append(f.Drawables, rect(&s.Entity, ColorPlayerShot))
		}
	}
	for _, s := range sess.EnemyShots {
		if s.Visible {
			f.Drawables = append(f.Drawables, rect(&s.Entity, ColorEnemyShot))
		}
	}
	return f
}

func rect(e *world.Entity, c ColorTag) Drawable {
	return Drawable{X: e.Pos.X, Y: e.Pos.Y, Width: e.Width, Height: e.Height, Color: c}
}
