package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/galaxian/game/internal/app"
	"github.com/galaxian/game/internal/game"
	"github.com/galaxian/game/internal/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

type window struct {
	game    *game.Game
	frame   render.Frame
	focused bool
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	// releases that happen while unfocused are never reported
	focused := ebiten.IsFocused()
	if w.focused && !focused {
		w.game.ReleaseKeys()
	}
	w.focused = focused

	translate(w.game, keyboard{
		pressed:      ebiten.IsKeyPressed,
		justPressed:  inpututil.IsKeyJustPressed,
		justReleased: inpututil.IsKeyJustReleased,
	})
	w.frame = w.game.Tick(time.Now())
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	f := &w.frame

	if f.GameOver() {
		for i, msg := range f.Messages {
			// debug font glyphs are 6px wide
			x := (f.Width - len(msg)*6) / 2
			ebitenutil.DebugPrintAt(screen, msg, x, render.MessageY(f.Height, i))
		}
		return
	}

	for _, d := range f.Drawables {
		vector.DrawFilledRect(screen,
			float32(d.X), float32(d.Y), float32(d.Width), float32(d.Height),
			d.Color.RGBA(), false)
	}
	ebitenutil.DebugPrintAt(screen, render.HUD(f), 4, 4)
}

func (w *window) Layout(_, _ int) (int, int) {
	return w.frame.Width, w.frame.Height
}

func run() error {
	configPath := flag.String("config", "", "path to game.toml (default $"+app.ConfigEnv+" or "+app.DefaultConfigPath+")")
	flag.Parse()

	env, err := app.Setup(*configPath)
	if err != nil {
		return err
	}
	log := env.Log
	defer log.Sync()
	cfg := env.Config

	g := game.New(cfg.Rules(), env.Layout, log)
	w := &window{game: g, frame: g.Frame(), focused: true}

	tps := int(time.Second / cfg.Game.TickRate.Duration)
	ebiten.SetTPS(tps)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(int(float64(cfg.Game.ScreenWidth)*cfg.Window.Scale), int(float64(cfg.Game.ScreenHeight)*cfg.Window.Scale))

	log.Info("window starting", zap.Int("tps", tps), zap.Float64("scale", cfg.Window.Scale))
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}

	st := g.Stats()
	log.Info("window closed",
		zap.Int("rounds", st.Rounds),
		zap.Int("kills", st.Kills),
		zap.Int("ticks", st.Ticks),
	)
	return nil
}
