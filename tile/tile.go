// Package tile implements the level's collidable geometry and the bump,
// break and reward state machines of interactive blocks.
package tile

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariusz/common"
	"github.com/milk9111/mariusz/event"
	"github.com/milk9111/mariusz/physics"
)

// Kind tags a tile variant.
type Kind int

const (
	Rock Kind = iota + 1
	SolidBlock
	Brick
	Plate
	CoinBrick
	Hidden
	Question
	PowerupQuestion
	Pipe
)

func (k Kind) String() string {
	switch k {
	case Rock:
		return "rock"
	case SolidBlock:
		return "block"
	case Brick:
		return "brick"
	case Plate:
		return "plate"
	case CoinBrick:
		return "coin_brick"
	case Hidden:
		return "hidden"
	case Question:
		return "question"
	case PowerupQuestion:
		return "powerup_question"
	case Pipe:
		return "pipe"
	}
	return "unknown"
}

// Tile is one cell of level geometry.
type Tile interface {
	physics.Shape
	Kind() Kind
	// Solid reports whether the tile blocks movement. rising is set for a
	// player moving upward, the only contact that hidden blocks respond to.
	Solid(rising bool) bool
	// Strike reacts to a player's head hitting the tile from below. big is
	// set when the player is large enough to break bricks.
	Strike(q *event.Queue, big bool)
	// Bumping reports whether the tile is mid-bob and lifts whatever stands on it.
	Bumping() bool
	// Offset is the current visual displacement in pixels (negative is up).
	Offset() float64
	// Broken reports whether the tile was destroyed and awaits removal.
	Broken() bool
	Update(dt float64, q *event.Queue)
}

// New creates a non-interactive tile of kind k at (x, y).
func New(k Kind, x, y float64) *Static {
	return &Static{kind: k, bb: physics.Box(x, y, common.TileSize, common.TileSize)}
}

// Static is plain geometry: rock, solid blocks, plates and pipe segments.
type Static struct {
	kind Kind
	bb   cp.BB
	// Part is the pipe segment code for Pipe tiles.
	Part int
}

func (s *Static) Bounds() cp.BB { return s.bb }
func (s *Static) Kind() Kind { return s.kind }
func (s *Static) Solid(bool) bool { return true }
func (s *Static) Strike(q *event.Queue, big bool) {}
func (s *Static) Bumping() bool { return false }
func (s *Static) Offset() float64 { return 0 }
func (s *Static) Broken() bool { return false }
func (s *Static) Update(dt float64, q *event.Queue) {}

// Lifts reports whether bb stands on t while t is bumping.
func Lifts(t Tile, bb cp.BB) bool {
	if t == nil || !t.Bumping() {
		return false
	}
	tb := t.Bounds()
	strip := physics.Box(tb.L, physics.Top(tb)-2, tb.R-tb.L, 2)
	return physics.Overlaps(bb, strip)
}

// Sweep drops broken tiles in place, preserving order.
func Sweep(tiles []Tile) []Tile {
	out := tiles[:0]
	for _, t := range tiles {
		if t != nil && !t.Broken() {
			out = append(out, t)
		}
	}
	for i := len(out); i < len(tiles); i++ {
		tiles[i] = nil
	}
	return out
}

func above(bb cp.BB) cp.Vector {
	return cp.Vector{X: bb.L, Y: physics.Top(bb) - common.TileSize}
}

func center(bb cp.BB) cp.Vector {
	return cp.Vector{X: (bb.L + bb.R) / 2, Y: (bb.B + bb.T) / 2}
}
