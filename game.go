package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/mariusz/common"
	"github.com/milk9111/mariusz/event"
	"github.com/milk9111/mariusz/game"
	"github.com/milk9111/mariusz/level"
	"github.com/milk9111/mariusz/prefabs"
	"github.com/milk9111/mariusz/render"
)

// maxStep caps one update's dt so a stalled frame cannot tunnel bodies
// through tiles.
const maxStep = 3.0

type Game struct {
	frames int
	debug  bool
	last   time.Time

	input      *Input
	controller *game.Controller
	watcher    *prefabs.Watcher
	levelDir   string
	log        *log.Logger
}

func NewGame(ctrl *game.Controller, watcher *prefabs.Watcher, levelDir string, debug bool, logger *log.Logger) *Game {
	return &Game{
		debug:      debug,
		input:      NewInput(),
		controller: ctrl,
		watcher:    watcher,
		levelDir:   levelDir,
		log:        logger,
	}
}

// levelSource picks the on-disk level directory when one was given.
func levelSource(dir string, opts level.Options) game.LevelSource {
	if dir == "" {
		return game.EmbeddedLevels{Options: opts}
	}
	return game.FSLevels{FS: os.DirFS(dir), Options: opts}
}

// reload rereads the tuning spec. Changes apply from the next level load.
func (g *Game) reload() {
	cfg, err := prefabs.LoadConfig()
	if err != nil {
		g.log.Error("could not reload tuning", "error", err)
		return
	}
	g.controller.Reconfigure(cfg, levelSource(g.levelDir, cfg.Level))
	g.log.Info("tuning reloaded")
}

func (g *Game) step() float64 {
	now := time.Now()
	if g.last.IsZero() {
		g.last = now
		return common.TargetRate / float64(ebiten.TPS())
	}
	dt := now.Sub(g.last).Seconds() * common.TargetRate
	g.last = now
	return min(dt, maxStep)
}

func (g *Game) Update() error {
	g.frames++
	g.input.Update()
	if g.input.QuitPressed {
		return ebiten.Termination
	}
	if g.input.DebugPressed {
		g.debug = !g.debug
	}

	if g.watcher != nil {
		if names := g.watcher.Poll(); len(names) > 0 {
			g.log.Debug("files changed", "names", names)
			g.reload()
		}
	}
	if g.input.ReloadPressed {
		g.reload()
	}

	dt := g.step()
	if g.input.StartPressed {
		switch g.controller.Mode() {
		case event.ModeMenu:
			g.controller.Start()
		case event.ModeLevel:
			g.controller.TogglePause()
		}
	}
	g.controller.Update(g.input.Controls, dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	render.Frame(screen, g.controller)
	if !g.debug {
		return
	}

	msg := fmt.Sprintf("FPS: %.1f  mode: %s", ebiten.ActualFPS(), g.controller.Mode())
	if p := g.controller.Player(); p != nil && g.controller.Mode() == event.ModeLevel {
		pos := p.Body().Pos
		msg += fmt.Sprintf("\n%s %s (%.0f,%.0f) scroll %.0f", p.Size(), p.State(), pos.X, pos.Y, g.controller.Scroll())
	}
	ebitenutil.DebugPrintAt(screen, msg, 2, common.DisplayHeight-30)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.DisplayWidth, common.DisplayHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
