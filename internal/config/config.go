package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/galaxian/game/internal/world"
)

type Config struct {
	Game       GameConfig       `toml:"game"`
	Player     PlayerConfig     `toml:"player"`
	Formation  FormationConfig  `toml:"formation"`
	Projectile ProjectileConfig `toml:"projectile"`
	Window     WindowConfig     `toml:"window"`
	Terminal   TerminalConfig   `toml:"terminal"`
	Pilot      PilotConfig      `toml:"pilot"`
	Logging    LoggingConfig    `toml:"logging"`
}

type GameConfig struct {
	TickRate     Duration `toml:"tick_rate"` // gameplay speed is per tick
	ScreenWidth  int      `toml:"screen_width"`
	ScreenHeight int      `toml:"screen_height"`
}

type PlayerConfig struct {
	StartX       int      `toml:"start_x"`
	StartY       int      `toml:"start_y"`
	Lives        int      `toml:"lives"`
	Speed        int      `toml:"speed"` // px per tick
	FireCooldown Duration `toml:"fire_cooldown"`
}

type FormationConfig struct {
	Speed        int      `toml:"speed"` // px per lockstep move
	MoveInterval Duration `toml:"move_interval"`
	FireInterval Duration `toml:"fire_interval"`
	DropStep     int      `toml:"drop_step"`
	LayoutFile   string   `toml:"layout_file"` // empty = built-in classic layout
}

type ProjectileConfig struct {
	Speed int `toml:"speed"` // px per tick
}

type WindowConfig struct {
	Title string  `toml:"title"`
	Scale float64 `toml:"scale"`
}

type TerminalConfig struct {
	CellWidth  int      `toml:"cell_width"`  // canvas px per terminal column
	CellHeight int      `toml:"cell_height"` // canvas px per terminal row
	KeyRelease Duration `toml:"key_release"` // synthesized key-up after this long without a repeat
}

type PilotConfig struct {
	Script   string `toml:"script"`
	MaxTicks int    `toml:"max_ticks"`
	Rounds   int    `toml:"rounds"`
}

type LoggingConfig struct {
	Level  string   `toml:"level"`
	Format string   `toml:"format"` // "json" or "console"
	Output []string `toml:"output"` // zap output paths; empty = stderr
}

// Duration decodes TOML strings such as "10ms" or "1s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Load reads a TOML file over the built-in defaults. Keys missing from the
// file keep their default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	return cfg, err
}

// Validate rejects values the game loop cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Game.TickRate.Duration <= 0:
		return errors.New("game.tick_rate must be positive")
	case c.Game.ScreenWidth <= world.ShipSize || c.Game.ScreenHeight <= world.ShipSize:
		return fmt.Errorf("screen %dx%d is too small", c.Game.ScreenWidth, c.Game.ScreenHeight)
	case c.Player.Lives <= 0:
		return errors.New("player.lives must be positive")
	case c.Player.StartX < 0 || c.Player.StartX > c.Game.ScreenWidth-world.ShipSize ||
		c.Player.StartY < 0 || c.Player.StartY > c.Game.ScreenHeight-world.ShipSize:
		return fmt.Errorf("player start (%d,%d) is off the canvas", c.Player.StartX, c.Player.StartY)
	case c.Projectile.Speed <= 0:
		return errors.New("projectile.speed must be positive")
	case c.Player.Speed < 0 || c.Formation.Speed < 0 || c.Formation.DropStep < 0:
		return errors.New("speeds and drop_step must not be negative")
	case c.Formation.MoveInterval.Duration < 0 || c.Formation.FireInterval.Duration < 0 || c.Player.FireCooldown.Duration < 0:
		return errors.New("intervals must not be negative")
	case c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0:
		return errors.New("terminal cell size must be positive")
	case c.Window.Scale <= 0:
		return errors.New("window.scale must be positive")
	}
	return nil
}

// Rules converts the gameplay sections into world rules.
func (c *Config) Rules() world.Rules {
	return world.Rules{
		ScreenWidth:  c.Game.ScreenWidth,
		ScreenHeight: c.Game.ScreenHeight,

		PlayerStartX:       c.Player.StartX,
		PlayerStartY:       c.Player.StartY,
		PlayerLives:        c.Player.Lives,
		PlayerSpeed:        c.Player.Speed,
		PlayerFireCooldown: c.Player.FireCooldown.Duration,

		FormationSpeed:        c.Formation.Speed,
		FormationMoveInterval: c.Formation.MoveInterval.Duration,
		FormationFireInterval: c.Formation.FireInterval.Duration,
		FormationDropStep:     c.Formation.DropStep,

		ProjectileSpeed: c.Projectile.Speed,
	}
}

// Defaults returns the reference configuration.
func Defaults() *Config {
	r := world.DefaultRules()
	return &Config{
		Game: GameConfig{
			TickRate:     Duration{10 * time.Millisecond},
			ScreenWidth:  r.ScreenWidth,
			ScreenHeight: r.ScreenHeight,
		},
		Player: PlayerConfig{
			StartX:       r.PlayerStartX,
			StartY:       r.PlayerStartY,
			Lives:        r.PlayerLives,
			Speed:        r.PlayerSpeed,
			FireCooldown: Duration{r.PlayerFireCooldown},
		},
		Formation: FormationConfig{
			Speed:        r.FormationSpeed,
			MoveInterval: Duration{r.FormationMoveInterval},
			FireInterval: Duration{r.FormationFireInterval},
			DropStep:     r.FormationDropStep,
		},
		Projectile: ProjectileConfig{
			Speed: r.ProjectileSpeed,
		},
		Window: WindowConfig{
			Title: "Galaxian",
			Scale: 1,
		},
		Terminal: TerminalConfig{
			CellWidth:  10,
			CellHeight: 20,
			KeyRelease: Duration{250 * time.Millisecond},
		},
		Pilot: PilotConfig{
			MaxTicks: 60_000, // 10 minutes at the reference tick rate
			Rounds:   3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
