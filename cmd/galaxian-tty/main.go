package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/galaxian/game/internal/app"
	"github.com/galaxian/game/internal/config"
	"github.com/galaxian/game/internal/game"
	"github.com/galaxian/game/internal/input"
	"github.com/galaxian/game/internal/render"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// mapKey translates a terminal key event. ok is false for keys the game
// ignores; quit is true for keys that end the program.
func mapKey(ev *tcell.EventKey) (k input.Key, ok, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.KeyNone, false, true
	case tcell.KeyLeft:
		return input.KeyLeft, true, false
	case tcell.KeyRight:
		return input.KeyRight, true, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return input.KeyLeft, true, false
		case 'd', 'D':
			return input.KeyRight, true, false
		case ' ':
			return input.KeyFire, true, false
		case 'r', 'R':
			return input.KeyRestart, true, false
		case 'q', 'Q':
			return input.KeyNone, false, true
		}
	}
	return input.KeyNone, false, false
}

type terminal struct {
	screen tcell.Screen
	cellW  int
	cellH  int
	styles map[render.ColorTag]tcell.Style
}

func newTerminal(screen tcell.Screen, cfg config.TerminalConfig) *terminal {
	t := &terminal{
		screen: screen,
		cellW:  cfg.CellWidth,
		cellH:  cfg.CellHeight,
		styles: make(map[render.ColorTag]tcell.Style),
	}
	for _, c := range []render.ColorTag{
		render.ColorPlayer, render.ColorEnemyA, render.ColorEnemyB,
		render.ColorPlayerShot, render.ColorEnemyShot,
	} {
		rgba := c.RGBA()
		t.styles[c] = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B)))
	}
	return t
}

func (t *terminal) draw(f *render.Frame) {
	t.screen.Clear()
	cols, rows := f.Width/t.cellW, f.Height/t.cellH

	if f.GameOver() {
		for i, msg := range f.Messages {
			t.text((cols-len(msg))/2, render.MessageY(f.Height, i)/t.cellH, msg, tcell.StyleDefault.Bold(true))
		}
		t.screen.Show()
		return
	}

	for _, d := range f.Drawables {
		c0, r0, c1, r1 := render.CellSpan(d, t.cellW, t.cellH)
		style := t.styles[d.Color]
		for r := max(r0, 0); r < min(r1, rows); r++ {
			for c := max(c0, 0); c < min(c1, cols); c++ {
				t.screen.SetContent(c, r, '█', nil, style)
			}
		}
	}
	// status line under the playfield
	t.text(0, rows, render.HUD(f), tcell.StyleDefault)
	t.screen.Show()
}

func (t *terminal) text(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to game.toml (default $"+app.ConfigEnv+" or "+app.DefaultConfigPath+")")
	flag.Parse()

	env, err := app.Setup(*configPath, app.WithLogFile("galaxian-tty.log"))
	if err != nil {
		return err
	}
	log := env.Log
	defer log.Sync()
	cfg := env.Config

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.HideCursor()
	screen.Clear()

	term := newTerminal(screen, cfg.Terminal)
	g := game.New(cfg.Rules(), env.Layout, log)
	keys := newReleaser(cfg.Terminal.KeyRelease.Duration)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Game.TickRate.Duration)
	defer ticker.Stop()

	log.Info("terminal starting",
		zap.Duration("tick_rate", cfg.Game.TickRate.Duration),
		zap.Int("cols", cfg.Game.ScreenWidth/cfg.Terminal.CellWidth),
		zap.Int("rows", cfg.Game.ScreenHeight/cfg.Terminal.CellHeight),
	)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				k, ok, quit := mapKey(ev)
				if quit {
					logStats(log, g)
					return nil
				}
				if ok {
					keys.Press(g, k, time.Now())
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			keys.Expire(g, now)
			f := g.Tick(now)
			term.draw(&f)
		case sig := <-shutdownCh:
			log.Info("signal received", zap.String("signal", sig.String()))
			logStats(log, g)
			return nil
		}
	}
}

func logStats(log *zap.Logger, g *game.Game) {
	st := g.Stats()
	log.Info("terminal closed",
		zap.Int("rounds", st.Rounds),
		zap.Int("kills", st.Kills),
		zap.Int("ticks", st.Ticks),
	)
}
