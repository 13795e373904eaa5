package input

// Key is a logical game key. Platform adapters map physical keys onto these.
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyFire
	KeyRestart
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyFire:
		return "fire"
	case KeyRestart:
		return "restart"
	}
	return "none"
}

// Level reports whether the key is level-triggered: held means the intent
// persists every tick until release. Fire and Restart are edge-triggered and
// act once per press.
func (k Key) Level() bool { return k == KeyLeft || k == KeyRight }

// Latch collects key events between ticks. Level keys keep per-key held
// state, edge keys are latched until the next tick consumes them. There is no
// queue: repeated presses before a tick collapse into one.
// Single-goroutine access only (game loop).
type Latch struct {
	leftHeld  bool
	rightHeld bool
	lastLevel Key // most recently pressed level key

	fire    bool
	restart bool
}

// KeyDown records a press. Unknown keys are ignored.
func (l *Latch) KeyDown(k Key) {
	switch k {
	case KeyLeft:
		l.leftHeld = true
		l.lastLevel = KeyLeft
	case KeyRight:
		l.rightHeld = true
		l.lastLevel = KeyRight
	case KeyFire:
		l.fire = true
	case KeyRestart:
		l.restart = true
	}
}

// KeyUp records a release. Only level keys have a release; others are ignored.
func (l *Latch) KeyUp(k Key) {
	switch k {
	case KeyLeft:
		l.leftHeld = false
	case KeyRight:
		l.rightHeld = false
	}
}

// Direction returns the horizontal intent in {-1, 0, +1}. When both keys are
// held the most recently pressed one wins.
func (l *Latch) Direction() int {
	switch {
	case l.leftHeld && l.rightHeld:
		if l.lastLevel == KeyLeft {
			return -1
		}
		return 1
	case l.leftHeld:
		return -1
	case l.rightHeld:
		return 1
	}
	return 0
}

// TakeFire reports and clears a pending fire press.
func (l *Latch) TakeFire() bool {
	f := l.fire
	l.fire = false
	return f
}

// TakeRestart reports and clears a pending restart press.
func (l *Latch) TakeRestart() bool {
	r := l.restart
	l.restart = false
	return r
}

// ReleaseAll drops every held key and pending press.
func (l *Latch) ReleaseAll() {
	*l = Latch{}
}
