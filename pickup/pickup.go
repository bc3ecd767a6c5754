// Package pickup implements collectible items and the player's fireballs.
package pickup

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariusz/common"
	"github.com/milk9111/mariusz/enemy"
	"github.com/milk9111/mariusz/event"
	"github.com/milk9111/mariusz/physics"
	"github.com/milk9111/mariusz/tile"
)

// Kind tags a pickup variant.
type Kind int

const (
	Coin Kind = iota
	Mushroom
	OneUp
	FireFlower
)

func (k Kind) String() string {
	switch k {
	case Coin:
		return "coin"
	case Mushroom:
		return "mushroom"
	case OneUp:
		return "1up"
	case FireFlower:
		return "fire_flower"
	}
	return "unknown"
}

// Env is what pickups and fireballs read during their update.
type Env struct {
	Tiles   []tile.Tile
	Enemies []enemy.Enemy
	Scroll  float64
	Events  *event.Queue
}

// Pickup is an item the player collects by touching it.
type Pickup interface {
	physics.Shape
	Kind() Kind
	Pos() cp.Vector
	// Take marks the pickup collected. It reports false if it already was.
	Take() bool
	Removed() bool
	Update(env *Env, dt float64)
}

// Sweep drops removed pickups in place.
func Sweep(items []Pickup) []Pickup {
	out := items[:0]
	for _, p := range items {
		if p != nil && !p.Removed() {
			out = append(out, p)
		}
	}
	for i := len(out); i < len(items); i++ {
		items[i] = nil
	}
	return out
}

// item is the bookkeeping shared by every pickup.
type item struct {
	kind    Kind
	body    physics.Body
	removed bool
	anim    common.Timer
	frame   int
}

func (it *item) Kind() Kind { return it.kind }
func (it *item) Pos() cp.Vector { return it.body.Pos }
func (it *item) Bounds() cp.BB { return it.body.Bounds() }
func (it *item) Removed() bool { return it.removed }

// Frame is the current animation frame.
func (it *item) Frame() int { return it.frame }

func (it *item) Take() bool {
	if it.removed {
		return false
	}
	it.removed = true
	return true
}

func (it *item) cycle(dt, step float64, frames int) {
	it.anim.Advance(dt)
	if n := it.anim.Every(step); n > 0 {
		it.frame = (it.frame + n) % frames
	}
}

func notSolid(t tile.Tile) bool {
	return !t.Solid(false)
}
