package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pilot.lua")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runningView() View {
	return View{
		Tick:        1,
		Running:     true,
		Lives:       3,
		Player:      Point{X: 400, Y: 550},
		ScreenWidth: 800,
		Enemies:     []Point{{X: 300, Y: 120}, {X: 600, Y: 120}},
	}
}

func TestDecideReadsScriptResult(t *testing.T) {
	path := writeScript(t, `
function decide(state)
  if state.player.x == 400 and #state.enemies == 2 and state.running then
    return { move = 5, fire = true }
  end
  return { move = 0 }
end
`)
	e, err := NewEngine(path, zap.NewNop())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	defer e.Close()

	got := e.Decide(runningView())
	if got != (Decision{Move: 1, Fire: true}) {
		t.Fatalf("decision = %+v, want move 1 (clamped) and fire", got)
	}
}

func TestDecideFallsBack(t *testing.T) {
	cases := map[string]string{
		"no function":   "x = 1\n",
		"runtime error": "function decide(state) error('boom') end\n",
		"non-table":     "function decide(state) return 7 end\n",
	}
	want := DefaultDecision(runningView())
	for name, body := range cases {
		core, logs := observer.New(zapcore.ErrorLevel)
		e, err := NewEngine(writeScript(t, body), zap.New(core))
		if err != nil {
			t.Fatalf("%s: new engine: %v", name, err)
		}
		if got := e.Decide(runningView()); got != want {
			t.Errorf("%s: decision = %+v, want fallback %+v", name, got, want)
		}
		if name != "no function" && logs.Len() != 1 {
			t.Errorf("%s: got %d error logs, want 1", name, logs.Len())
		}
		e.Close()
	}
}

func TestNewEngineErrors(t *testing.T) {
	if _, err := NewEngine(writeScript(t, "function ("), zap.NewNop()); err == nil {
		t.Fatalf("syntax error should fail to load")
	}
	if _, err := NewEngine(filepath.Join(t.TempDir(), "missing.lua"), zap.NewNop()); err == nil {
		t.Fatalf("missing script should fail to load")
	}
	e, err := NewEngine("", zap.NewNop())
	if err != nil {
		t.Fatalf("empty path: %v", err)
	}
	defer e.Close()
	if got := e.Decide(View{}); !got.Restart {
		t.Fatalf("scriptless engine should use the default pilot, got %+v", got)
	}
}

func TestDefaultDecision(t *testing.T) {
	v := runningView()
	if got := DefaultDecision(v); got != (Decision{Move: -1, Fire: true}) {
		t.Fatalf("chase = %+v, want left toward x=300", got)
	}

	v.EnemyShots = []Point{{X: 405, Y: 480}}
	if got := DefaultDecision(v); got.Move != 1 {
		t.Fatalf("dodge = %+v, want right away from a shot left of centre", got)
	}

	v.Running = false
	if got := DefaultDecision(v); got != (Decision{Restart: true}) {
		t.Fatalf("game over = %+v, want restart", got)
	}
}

func TestShippedPilotAgreesWithDefault(t *testing.T) {
	e, err := NewEngine(filepath.Join("..", "..", "scripts", "pilot.lua"), zap.NewNop())
	if err != nil {
		t.Fatalf("load shipped pilot: %v", err)
	}
	defer e.Close()

	views := []View{runningView(), {Running: false}}
	dodge := runningView()
	dodge.EnemyShots = []Point{{X: 425, Y: 500}}
	views = append(views, dodge)

	for i, v := range views {
		if got, want := e.Decide(v), DefaultDecision(v); got != want {
			t.Errorf("view %d: lua %+v, go %+v", i, got, want)
		}
	}
}
