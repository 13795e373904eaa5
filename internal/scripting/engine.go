package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM running a pilot script.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads the pilot script at path. An empty
// path gives an engine with no script, so every Decide uses DefaultDecision.
func NewEngine(path string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState()

	// Set API version global
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	if path == "" {
		return e, nil
	}
	if err := vm.DoFile(path); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load pilot script %s: %w", path, err)
	}
	log.Debug("loaded lua script", zap.String("file", path))
	return e, nil
}

// Point is a canvas position handed to the pilot.
type Point struct {
	X, Y int
}

// View is what the pilot sees of the game each tick.
type View struct {
	Tick        int
	Running     bool
	Lives       int
	Player      Point
	ScreenWidth int
	Enemies     []Point // visible enemies, formation order
	EnemyShots  []Point // live enemy shots
}

// Decision is the pilot's input for one tick.
type Decision struct {
	Move    int // -1 left, 0 none, +1 right
	Fire    bool
	Restart bool
}

// Decide calls the Lua decide(state) function. A missing function, a script
// error or a non-table result falls back to DefaultDecision.
func (e *Engine) Decide(v View) Decision {
	fn := e.vm.GetGlobal("decide")
	if fn == lua.LNil {
		return DefaultDecision(v)
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, e.viewTable(v)); err != nil {
		e.log.Error("lua decide error", zap.Error(err), zap.Int("tick", v.Tick))
		return DefaultDecision(v)
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua decide returned non-table", zap.String("type", result.Type().String()))
		return DefaultDecision(v)
	}

	return Decision{
		Move:    clampDir(lInt(rt, "move")),
		Fire:    lua.LVAsBool(rt.RawGetString("fire")),
		Restart: lua.LVAsBool(rt.RawGetString("restart")),
	}
}

func (e *Engine) viewTable(v View) *lua.LTable {
	t := e.vm.NewTable()
	t.RawSetString("tick", lua.LNumber(v.Tick))
	t.RawSetString("running", lua.LBool(v.Running))
	t.RawSetString("lives", lua.LNumber(v.Lives))
	t.RawSetString("width", lua.LNumber(v.ScreenWidth))
	t.RawSetString("player", e.pointTable(v.Player))

	enemies := e.vm.NewTable()
	for i, p := range v.Enemies {
		enemies.RawSetInt(i+1, e.pointTable(p))
	}
	t.RawSetString("enemies", enemies)

	shots := e.vm.NewTable()
	for i, p := range v.EnemyShots {
		shots.RawSetInt(i+1, e.pointTable(p))
	}
	t.RawSetString("enemy_shots", shots)
	return t
}

func (e *Engine) pointTable(p Point) *lua.LTable {
	t := e.vm.NewTable()
	t.RawSetString("x", lua.LNumber(p.X))
	t.RawSetString("y", lua.LNumber(p.Y))
	return t
}

// DefaultDecision is the built-in pilot: restart when the round is over,
// otherwise dodge the closest incoming shot or chase the nearest enemy
// column, firing all the time.
func DefaultDecision(v View) Decision {
	if !v.Running {
		return Decision{Restart: true}
	}
	d := Decision{Fire: true}

	for _, s := range v.EnemyShots {
		dx := s.X - (v.Player.X + 10)
		if s.Y < v.Player.Y && v.Player.Y-s.Y < 120 && dx > -25 && dx < 25 {
			if dx > 0 {
				d.Move = -1
			} else {
				d.Move = 1
			}
			return d
		}
	}

	best, bestDist := -1, 0
	for i, p := range v.Enemies {
		dist := abs(p.X - v.Player.X)
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best >= 0 {
		switch tx := v.Enemies[best].X; {
		case tx < v.Player.X-2:
			d.Move = -1
		case tx > v.Player.X+2:
			d.Move = 1
		}
	}
	return d
}

// --- Lua helpers ---

// lInt reads an integer field from a Lua table.
func lInt(t *lua.LTable, key string) int {
	return int(lua.LVAsNumber(t.RawGetString(key)))
}

func clampDir(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
