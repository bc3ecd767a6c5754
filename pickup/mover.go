package pickup

import (
	"github.com/milk9111/mariusz/common"
	"github.com/milk9111/mariusz/physics"
)

// MoverSpeed is the horizontal speed of mushrooms.
const MoverSpeed = 1.5

// Mover is a mushroom that slides along the ground, turning at walls and
// falling off ledges. Both the growth mushroom and the 1-UP use it.
type Mover struct {
	item
	phys  physics.Config
	floor float64
}

// NewMushroom creates a growth mushroom.
func NewMushroom(x, y float64, phys physics.Config) *Mover {
	return newMover(Mushroom, x, y, phys)
}

// NewOneUp creates a 1-UP mushroom.
func NewOneUp(x, y float64, phys physics.Config) *Mover {
	return newMover(OneUp, x, y, phys)
}

func newMover(k Kind, x, y float64, phys physics.Config) *Mover {
	m := &Mover{
		item:  item{kind: k, body: physics.NewBody(x, y, common.TileSize, common.TileSize)},
		phys:  phys,
		floor: common.LevelFloor,
	}
	m.body.Vel.X = MoverSpeed
	return m
}

// Body exposes the mover's body.
func (m *Mover) Body() *physics.Body { return &m.body }

func (m *Mover) Update(env *Env, dt float64) {
	if m.removed {
		return
	}
	m.body.MoveX(dt)
	physics.ResolveX(&m.body, env.Tiles, notSolid, physics.Reflect)

	m.phys.ApplyGravity(&m.body, dt)
	m.body.MoveY(dt)
	if m.body.Vel.Y > 0 {
		physics.ResolveY(&m.body, env.Tiles, notSolid)
	}

	if m.body.Pos.Y > m.floor {
		m.removed = true
	}
}
