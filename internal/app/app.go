// Package app holds the startup steps shared by every galaxian binary:
// locating and loading config, building the logger and choosing the
// formation layout.
package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/galaxian/game/internal/config"
	"github.com/galaxian/game/internal/data"
	"github.com/galaxian/game/internal/world"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultConfigPath = "config/game.toml"
	ConfigEnv         = "GALAXIAN_CONFIG"
)

// Env is everything a binary needs before it can build a game.
type Env struct {
	Config *config.Config
	Log    *zap.Logger
	Layout []world.EnemySpawn
}

// ConfigPath picks the config file: an explicit flag value first, then
// $GALAXIAN_CONFIG (which a .env file in the working directory may set), then
// config/game.toml.
func ConfigPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("load .env: %w", err)
	}
	if p := os.Getenv(ConfigEnv); p != "" {
		return p, nil
	}
	return DefaultConfigPath, nil
}

// Option adjusts config after it is loaded and before the logger is built.
type Option func(*config.Config)

// WithLogFile sends logs to path unless the config names its own outputs.
// Full-screen terminal binaries use it to keep logs off the screen.
func WithLogFile(path string) Option {
	return func(c *config.Config) {
		if len(c.Logging.Output) == 0 {
			c.Logging.Output = []string{path}
		}
	}
}

// Setup loads config, builds the logger and resolves the formation layout.
// The default config path may be absent; an explicitly named one may not.
func Setup(flagValue string, opts ...Option) (*Env, error) {
	path, err := ConfigPath(flagValue)
	if err != nil {
		return nil, err
	}

	var cfg *config.Config
	if path == DefaultConfigPath {
		cfg, err = config.LoadOrDefault(path)
	} else {
		cfg, err = config.Load(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	for _, opt := range opts {
		opt(cfg)
	}

	log, err := NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	layout, err := Layout(cfg.Formation)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}
	log.Info("config loaded",
		zap.String("path", path),
		zap.Duration("tick_rate", cfg.Game.TickRate.Duration),
		zap.Int("enemies", len(layout)),
	)
	return &Env{Config: cfg, Log: log, Layout: layout}, nil
}

// Layout returns the configured formation layout, or the classic one when no
// layout file is set.
func Layout(cfg config.FormationConfig) ([]world.EnemySpawn, error) {
	if cfg.LayoutFile == "" {
		return world.ClassicLayout(), nil
	}
	spawns, err := data.LoadFormationLayout(cfg.LayoutFile)
	if err != nil {
		return nil, fmt.Errorf("load formation layout: %w", err)
	}
	return spawns, nil
}

func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if len(cfg.Output) > 0 {
		zapCfg.OutputPaths = cfg.Output
		zapCfg.ErrorOutputPaths = cfg.Output
		// colour codes only make sense on a terminal
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	return zapCfg.Build()
}
