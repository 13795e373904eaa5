package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/galaxian/game/internal/app"
	"github.com/galaxian/game/internal/game"
	"github.com/galaxian/game/internal/scripting"
	"github.com/galaxian/game/internal/sim"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to game.toml (default $"+app.ConfigEnv+" or "+app.DefaultConfigPath+")")
	script := flag.String("script", "", "pilot script (overrides pilot.script)")
	rounds := flag.Int("rounds", -1, "rounds to play (overrides pilot.rounds, 0 = unlimited)")
	flag.Parse()

	env, err := app.Setup(*configPath)
	if err != nil {
		return err
	}
	log := env.Log
	defer log.Sync()
	cfg := env.Config

	if *script != "" {
		cfg.Pilot.Script = *script
	}
	if *rounds >= 0 {
		cfg.Pilot.Rounds = *rounds
	}

	pilot, err := scripting.NewEngine(cfg.Pilot.Script, log)
	if err != nil {
		return fmt.Errorf("pilot: %w", err)
	}
	defer pilot.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g := game.New(cfg.Rules(), env.Layout, log)
	res := sim.Run(ctx, g, pilot, sim.Options{
		TickRate: cfg.Game.TickRate.Duration,
		MaxTicks: cfg.Pilot.MaxTicks,
		Rounds:   cfg.Pilot.Rounds,
	}, log)

	log.Info("simulation finished",
		zap.String("reason", string(res.Reason)),
		zap.Int("ticks", res.Ticks),
		zap.Duration("virtual_time", res.Elapsed),
		zap.Int("rounds_ended", res.Ended),
		zap.Int("kills", res.Stats.Kills),
		zap.Int("shots_fired", res.Stats.ShotsFired),
		zap.Int("enemy_shots", res.Stats.EnemyShots),
		zap.Int("hits_taken", res.Stats.HitsTaken),
		zap.Int("bounces", res.Stats.Bounces),
	)
	return nil
}
