package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/galaxian/game/internal/config"
	"github.com/galaxian/game/internal/world"
)

func TestConfigPathPrecedence(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv(ConfigEnv, "")
	if got, _ := ConfigPath(""); got != DefaultConfigPath {
		t.Fatalf("default path = %q, want %q", got, DefaultConfigPath)
	}

	t.Setenv(ConfigEnv, "from-env.toml")
	if got, _ := ConfigPath(""); got != "from-env.toml" {
		t.Fatalf("env path = %q, want from-env.toml", got)
	}
	if got, _ := ConfigPath("from-flag.toml"); got != "from-flag.toml" {
		t.Fatalf("flag path = %q, want from-flag.toml", got)
	}
}

func TestConfigPathFromDotEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(ConfigEnv, "")
	os.Unsetenv(ConfigEnv)
	if err := os.WriteFile(".env", []byte(ConfigEnv+"=dotenv.toml\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ConfigPath("")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if got != "dotenv.toml" {
		t.Fatalf("path = %q, want dotenv.toml", got)
	}
}

func TestSetupWithoutConfigFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(ConfigEnv, "")

	env, err := Setup("")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer env.Log.Sync()
	if len(env.Layout) != len(world.ClassicLayout()) {
		t.Fatalf("layout has %d enemies, want the classic layout", len(env.Layout))
	}
	if env.Config.Player.Lives != 3 {
		t.Fatalf("lives = %d, want default 3", env.Config.Player.Lives)
	}

	if _, err := Setup("missing.toml"); err == nil {
		t.Fatalf("an explicit missing config should fail")
	}
}

func TestLayoutFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte("rows:\n  - { x: 0, y: 0, count: 2, spacing: 40 }\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	spawns, err := Layout(config.FormationConfig{LayoutFile: path})
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if len(spawns) != 2 {
		t.Fatalf("got %d spawns, want 2", len(spawns))
	}
	if _, err := Layout(config.FormationConfig{LayoutFile: path + ".nope"}); err == nil {
		t.Fatalf("missing layout file should fail")
	}
}

func TestNewLoggerWritesToOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galaxian.log")
	log, err := NewLogger(config.LoggingConfig{Level: "warn", Format: "json", Output: []string{path}})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	log.Info("dropped")
	log.Warn("kept")
	_ = log.Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(raw)
	if strings.Contains(out, "dropped") || !strings.Contains(out, "kept") {
		t.Fatalf("log file = %q", out)
	}
}

func TestWithLogFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(ConfigEnv, "")

	env, err := Setup("", WithLogFile("tty.log"))
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	_ = env.Log.Sync()
	if got := env.Config.Logging.Output; len(got) != 1 || got[0] != "tty.log" {
		t.Fatalf("outputs = %v, want [tty.log]", got)
	}
	if _, err := os.Stat("tty.log"); err != nil {
		t.Fatalf("log file not created: %v", err)
	}

	cfg := config.Defaults()
	cfg.Logging.Output = []string{"stderr"}
	WithLogFile("tty.log")(cfg)
	if cfg.Logging.Output[0] != "stderr" {
		t.Fatalf("configured outputs were overridden: %v", cfg.Logging.Output)
	}
}

// chdir changes the working directory for the duration of the test, like
// testing.T.Chdir (Go 1.24+), which the local toolchain does not provide.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
