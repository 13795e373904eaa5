package main

import (
	"time"

	"github.com/galaxian/game/internal/input"
)

// keySink receives key transitions.
type keySink interface {
	KeyDown(input.Key)
	KeyUp(input.Key)
}

// releaser turns a terminal's press/autorepeat stream into held-key state.
// A level key counts as held until no repeat has arrived for timeout.
type releaser struct {
	timeout time.Duration
	seen    map[input.Key]time.Time
}

func newReleaser(timeout time.Duration) *releaser {
	return &releaser{timeout: timeout, seen: make(map[input.Key]time.Time)}
}

// Press forwards a key press. Repeats of a held level key only refresh it.
func (r *releaser) Press(sink keySink, k input.Key, now time.Time) {
	if !k.Level() {
		sink.KeyDown(k)
		return
	}
	if !r.Held(k) {
		sink.KeyDown(k)
	}
	r.seen[k] = now
}

// Expire releases level keys whose last repeat is older than the timeout.
func (r *releaser) Expire(sink keySink, now time.Time) {
	for k, t := range r.seen {
		if now.Sub(t) >= r.timeout {
			delete(r.seen, k)
			sink.KeyUp(k)
		}
	}
}

// Held reports whether k is currently treated as held.
func (r *releaser) Held(k input.Key) bool {
	_, ok := r.seen[k]
	return ok
}
