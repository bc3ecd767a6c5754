package game

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariusz/player"
)

// Progress is the state that survives level loads.
type Progress struct {
	Lives     int
	Coins     int
	Points    int
	World     float64
	HighScore int
	// Size is carried into the next level load.
	Size player.Size
	// Resume, when set, replaces the level's spawn point on the next load.
	Resume *cp.Vector
}

func newProgress(cfg Config, high int) Progress {
	return Progress{Lives: cfg.Lives, World: cfg.StartWorld, HighScore: high}
}

// addCoin counts a coin and reports whether it completed a life.
func (p *Progress) addCoin(perLife, points int) bool {
	p.Coins++
	p.Points += points
	if perLife > 0 && p.Coins >= perLife {
		p.Coins -= perLife
		p.Lives++
		return true
	}
	return false
}

// WorldLabel formats a world number the way the HUD shows it: four levels
// per world, so world 5 is "2-1". Segments show their parent level.
func WorldLabel(world float64) string {
	w := int(math.Floor(world))
	if w < 1 {
		return "1-1"
	}
	minor := w % 4
	if minor == 0 {
		minor = 4
	}
	major := int(math.Ceil(float64(w) / 4))
	return fmt.Sprintf("%d-%d", major, minor)
}
