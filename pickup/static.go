package pickup

import (
	"github.com/milk9111/mariusz/common"
	"github.com/milk9111/mariusz/physics"
)

// Static is a pickup that stays where it was placed: level coins and fire
// flowers.
type Static struct {
	item
	step   float64
	frames int
}

// NewCoin creates a level coin.
func NewCoin(x, y float64) *Static {
	return &Static{
		item:   item{kind: Coin, body: physics.NewBody(x, y, common.TileSize, common.TileSize)},
		step:   0.15,
		frames: 3,
	}
}

// NewFireFlower creates a fire flower.
func NewFireFlower(x, y float64) *Static {
	return &Static{
		item:   item{kind: FireFlower, body: physics.NewBody(x, y, common.TileSize, common.TileSize)},
		step:   0.05,
		frames: 4,
	}
}

func (s *Static) Update(env *Env, dt float64) {
	if s.removed {
		return
	}
	s.cycle(dt, s.step, s.frames)
}
