package pickup

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariusz/common"
	"github.com/milk9111/mariusz/enemy"
	"github.com/milk9111/mariusz/event"
	"github.com/milk9111/mariusz/physics"
)

const (
	FireballSpeed  = 6
	FireballBounce = -4
	FireballSize   = 8
)

// Fireball bounces along the floor and burns out on walls, ceilings and the
// first enemy it touches.
type Fireball struct {
	body    physics.Body
	phys    physics.Config
	removed bool
	anim    common.Timer
	frame   int
}

// NewFireball launches a fireball from pos in direction dir (-1 or 1).
func NewFireball(pos cp.Vector, dir int, phys physics.Config) *Fireball {
	f := &Fireball{body: physics.NewBody(pos.X, pos.Y, FireballSize, FireballSize), phys: phys}
	f.body.Vel.X = FireballSpeed
	if dir < 0 {
		f.body.Vel.X = -FireballSpeed
	}
	return f
}

func (f *Fireball) Bounds() cp.BB { return f.body.Bounds() }
func (f *Fireball) Pos() cp.Vector { return f.body.Pos }
func (f *Fireball) Removed() bool { return f.removed }
func (f *Fireball) Frame() int { return f.frame }

func (f *Fireball) burnOut(q *event.Queue) {
	f.removed = true
	q.Play(event.CueKick)
}

func (f *Fireball) Update(env *Env, dt float64) {
	if f.removed {
		return
	}
	f.anim.Advance(dt)
	if n := f.anim.Every(0.1); n > 0 {
		f.frame = (f.frame + n) % 4
	}

	f.phys.ApplyGravity(&f.body, dt)
	f.body.MoveY(dt)
	if c := physics.ResolveY(&f.body, env.Tiles, notSolid); c.Hit() {
		if c.Side != physics.SideFloor {
			f.burnOut(env.Events)
			return
		}
		f.body.Vel.Y = FireballBounce
	}

	f.body.MoveX(dt)
	if _, hit := physics.FirstOverlap(f.body.Bounds(), env.Tiles, notSolid); hit {
		f.burnOut(env.Events)
		return
	}

	bb := f.body.Bounds()
	for _, e := range env.Enemies {
		if e.Removed() || !e.Alive() || !physics.Overlaps(bb, e.Bounds()) {
			continue
		}
		f.removed = true
		e.Defeat(env.Events, enemy.Points(e.Kind()))
		return
	}

	if x := f.body.Pos.X - env.Scroll; x < -FireballSize || x > common.DisplayWidth || f.body.Pos.Y > common.LevelFloor {
		f.removed = true
	}
}

// SweepFireballs drops burnt-out fireballs in place.
func SweepFireballs(list []*Fireball) []*Fireball {
	out := list[:0]
	for _, f := range list {
		if f != nil && !f.removed {
			out = append(out, f)
		}
	}
	for i := len(out); i < len(list); i++ {
		list[i] = nil
	}
	return out
}
