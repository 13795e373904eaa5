package main

import (
	"github.com/galaxian/game/internal/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// keymap binds physical keys to game keys. Several physical keys may map to
// the same game key.
var keymap = []struct {
	phys ebiten.Key
	key  input.Key
}{
	{ebiten.KeyArrowLeft, input.KeyLeft},
	{ebiten.KeyA, input.KeyLeft},
	{ebiten.KeyArrowRight, input.KeyRight},
	{ebiten.KeyD, input.KeyRight},
	{ebiten.KeySpace, input.KeyFire},
	{ebiten.KeyR, input.KeyRestart},
}

// keySink receives game key transitions.
type keySink interface {
	KeyDown(input.Key)
	KeyUp(input.Key)
}

// keyboard is the per-frame physical key state. ebiten's inpututil and
// IsKeyPressed back it in the window; tests supply their own.
type keyboard struct {
	pressed      func(ebiten.Key) bool
	justPressed  func(ebiten.Key) bool
	justReleased func(ebiten.Key) bool
}

// translate forwards this frame's physical key edges. A game key is released
// only once none of its physical keys is still down.
func translate(sink keySink, kb keyboard) {
	for _, m := range keymap {
		if kb.justPressed(m.phys) {
			sink.KeyDown(m.key)
		}
		if kb.justReleased(m.phys) && !anyPressed(kb, m.key) {
			sink.KeyUp(m.key)
		}
	}
}

func anyPressed(kb keyboard, k input.Key) bool {
	for _, m := range keymap {
		if m.key == k && kb.pressed(m.phys) {
			return true
		}
	}
	return false
}
