// levelview previews a level file without playing it. Arrow keys pan, Shift
// pans faster, and the file is rebuilt whenever it changes on disk.
//
// Usage:
//
//	levelview levels/1.yaml
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/mariusz/common"
	"github.com/milk9111/mariusz/level"
	"github.com/milk9111/mariusz/levels"
	"github.com/milk9111/mariusz/prefabs"
	"github.com/milk9111/mariusz/render"
)

type viewer struct {
	path    string
	lvl     *level.Level
	scroll  float64
	err     error
	watcher *prefabs.Watcher
	log     *log.Logger
}

func (v *viewer) load() {
	data, err := os.ReadFile(v.path)
	if err == nil {
		var src *levels.Level
		if src, err = levels.Parse(filepath.Base(v.path), data); err == nil {
			v.lvl, err = level.Build(src, level.DefaultOptions())
		}
	}
	v.err = err
	if err != nil {
		v.log.Error("could not load level", "path", v.path, "error", err)
		return
	}
	v.scroll = min(v.scroll, v.lvl.MaxScroll)
	v.log.Info("level loaded",
		"world", v.lvl.World,
		"tiles", len(v.lvl.Tiles),
		"enemies", len(v.lvl.Enemies),
		"coins", len(v.lvl.Coins),
		"portals", len(v.lvl.Portals),
	)
}

func (v *viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, name := range v.watcher.Poll() {
		if name == filepath.Base(v.path) {
			v.load()
		}
	}
	if v.lvl == nil {
		return nil
	}

	speed := 4.0
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) {
		speed = 16
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		v.scroll -= speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		v.scroll += speed
	}
	v.scroll = common.Clamp(v.scroll, 0, v.lvl.MaxScroll)
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.lvl != nil {
		render.Level(screen, v.lvl, v.scroll)
	}
	msg := fmt.Sprintf("%s  x=%.0f", filepath.Base(v.path), v.scroll)
	if v.err != nil {
		msg = v.err.Error()
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.DisplayWidth, common.DisplayHeight
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "levelview"})
	if len(os.Args) != 2 {
		logger.Fatal("usage: levelview <level.yaml>")
	}
	path := os.Args[1]

	watcher, err := prefabs.NewWatcher(filepath.Dir(path))
	if err != nil {
		logger.Fatal("could not watch level directory", "error", err)
	}
	defer watcher.Close()

	v := &viewer{path: path, watcher: watcher, log: logger}
	v.load()

	ebiten.SetWindowSize(common.DisplayWidth*3, common.DisplayHeight*3)
	ebiten.SetWindowTitle("levelview - " + filepath.Base(path))
	if err := ebiten.RunGame(v); err != nil && err != ebiten.Termination {
		logger.Fatal("viewer stopped", "error", err)
	}
}
