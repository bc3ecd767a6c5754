package enemy

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariusz/common"
	"github.com/milk9111/mariusz/event"
	"github.com/milk9111/mariusz/physics"
	"github.com/milk9111/mariusz/tile"
)

// walker is the body and bookkeeping shared by ground enemies.
type walker struct {
	kind    Kind
	body    physics.Body
	state   State
	timer   common.Timer
	anim    common.Timer
	frame   int
	removed bool
	cfg     Config

	// Theme selects the palette, e.g. "red" or "blue".
	Theme string
}

func newWalker(k Kind, x, y float64, cfg Config) walker {
	w := walker{kind: k, body: physics.NewBody(x, y, common.TileSize, common.TileSize), cfg: cfg, Theme: "red"}
	w.body.Vel.X = -cfg.WalkSpeed
	return w
}

func (w *walker) Kind() Kind { return w.kind }
func (w *walker) State() State { return w.state }
func (w *walker) Body() *physics.Body { return &w.body }
func (w *walker) Bounds() cp.BB { return w.body.Bounds() }
func (w *walker) Removed() bool { return w.removed }

// Frame is the current walk animation frame (0 or 1).
func (w *walker) Frame() int { return w.frame }

func (w *walker) Expire(scroll float64) bool {
	if w.removed {
		return false
	}
	if w.body.Pos.Y > w.cfg.Floor || w.body.Pos.X-scroll < -w.cfg.TrailBehind {
		w.removed = true
		return true
	}
	return false
}

// dormant reports whether the enemy is still too far ahead to simulate.
func (w *walker) dormant(scroll float64) bool {
	return w.body.Pos.X-scroll > w.cfg.ActiveAhead
}

func (w *walker) defeat(self Enemy, q *event.Queue, points int) {
	if w.removed {
		return
	}
	w.removed = true
	q.Play(event.CueKick)
	q.Push(defeatedEvent(self, points))
}

func (w *walker) animate(dt float64) {
	w.anim.Advance(dt)
	if n := w.anim.Every(w.cfg.WalkAnimStep); n%2 == 1 {
		w.frame = 1 - w.frame
	}
}

func notSolid(t tile.Tile) bool {
	return !t.Solid(false)
}

// step runs one frame of walking physics: horizontal move and resolve,
// gravity, vertical move and resolve, then contact with other enemies. It
// returns false when the enemy was knocked out along the way.
func (w *walker) step(self Enemy, env *Env, dt float64) bool {
	w.body.MoveX(dt)
	if w.lifted(env.Tiles) {
		w.defeat(self, env.Events, Points(w.kind))
		return false
	}
	physics.ResolveX(&w.body, env.Tiles, notSolid, physics.Reflect)

	w.cfg.Physics.ApplyGravity(&w.body, dt)
	w.body.MoveY(dt)
	if w.lifted(env.Tiles) {
		w.defeat(self, env.Events, Points(w.kind))
		return false
	}
	if w.body.Vel.Y > 0 {
		physics.ResolveY(&w.body, env.Tiles, notSolid)
	}

	return w.collideEnemies(self, env)
}

func (w *walker) lifted(tiles []tile.Tile) bool {
	bb := w.body.Bounds()
	for _, t := range tiles {
		if tile.Lifts(t, bb) {
			return true
		}
	}
	return false
}

// collideEnemies handles the first overlapping sibling. Spinning shells knock
// out whatever they touch; anything else bounces apart.
func (w *walker) collideEnemies(self Enemy, env *Env) bool {
	bb := w.body.Bounds()
	for _, other := range env.Enemies {
		if other == self || other.Removed() || !other.Alive() {
			continue
		}
		ob := other.Bounds()
		if !physics.Overlaps(bb, ob) {
			continue
		}
		if IsSpinning(self) {
			other.Defeat(env.Events, Points(other.Kind()))
			return true
		}
		if IsSpinning(other) {
			w.defeat(self, env.Events, Points(w.kind))
			return false
		}
		if w.body.Vel.X > 0 {
			w.body.SetRight(ob.L)
		} else {
			w.body.SetLeft(ob.R)
		}
		w.body.Vel.X = -w.body.Vel.X
		ov := other.Body()
		ov.Vel.X = -ov.Vel.X
		return true
	}
	return true
}
