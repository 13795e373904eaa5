package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/galaxian/game/internal/world"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultsMatchReferenceRules(t *testing.T) {
	cfg := Defaults()
	if got, want := cfg.Rules(), world.DefaultRules(); got != want {
		t.Fatalf("rules = %+v\nwant %+v", got, want)
	}
	if cfg.Game.TickRate.Duration != 10*time.Millisecond {
		t.Fatalf("tick rate = %s, want 10ms", cfg.Game.TickRate)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := writeConfig(t, `
[game]
tick_rate = "16ms"

[player]
lives = 5
fire_cooldown = "250ms"

[formation]
layout_file = "data/yaml/formation.yaml"

[logging]
level = "debug"
output = ["galaxian.log"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Game.TickRate.Duration != 16*time.Millisecond {
		t.Fatalf("tick rate = %s, want 16ms", cfg.Game.TickRate)
	}
	r := cfg.Rules()
	if r.PlayerLives != 5 || r.PlayerFireCooldown != 250*time.Millisecond {
		t.Fatalf("player rules = %d lives %s cooldown", r.PlayerLives, r.PlayerFireCooldown)
	}
	if r.ScreenWidth != 800 || r.FormationSpeed != 3 {
		t.Fatalf("untouched keys lost their defaults: %+v", r)
	}
	if cfg.Formation.LayoutFile != "data/yaml/formation.yaml" {
		t.Fatalf("layout file = %q", cfg.Formation.LayoutFile)
	}
	if cfg.Logging.Level != "debug" || len(cfg.Logging.Output) != 1 {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"bad duration": "[game]\ntick_rate = \"soon\"\n",
		"zero tick":    "[game]\ntick_rate = \"0s\"\n",
		"no lives":     "[player]\nlives = 0\n",
		"bad toml":     "[game\n",
		"still shots":  "[projectile]\nspeed = 0\n",
		"back shots":   "[projectile]\nspeed = -4\n",
		"player speed": "[player]\nspeed = -2\n",
		"enemy speed":  "[formation]\nspeed = -3\n",
		"drop step":    "[formation]\ndrop_step = -20\n",
		"start left":   "[player]\nstart_x = -1\n",
		"start below":  "[player]\nstart_y = 590\n",
	}
	for name, body := range cases {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults: %v", err)
	}
	if cfg.Player.Lives != 3 {
		t.Fatalf("lives = %d, want 3", cfg.Player.Lives)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("Load should report a missing file")
	}
}
