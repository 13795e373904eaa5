package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput     Phase = iota // 0: apply held keys, consume fire edge
	PhaseUpdate                 // 1: motion, in registration order
	PhaseCollision              // 2: hit tests, lives, end of round
	PhaseCleanup                // 3: prune invisible shots
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseUpdate:
		return "update"
	case PhaseCollision:
		return "collision"
	case PhaseCleanup:
		return "cleanup"
	}
	return "unknown"
}

// System is one step of the per-tick pipeline. now is the tick's timestamp;
// systems with their own cooldowns compare against it instead of reading
// the wall clock.
type System interface {
	Phase() Phase
	Update(now time.Time)
}
