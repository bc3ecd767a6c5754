package tile

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariusz/common"
	"github.com/milk9111/mariusz/event"
	"github.com/milk9111/mariusz/physics"
)

// BreakPoints is awarded, without floating text, for each destroyed brick.
const BreakPoints = 50

// BrickState is the state of a breakable brick.
type BrickState int

const (
	BrickIdle BrickState = iota
	BrickBumping
	BrickDestroyed
)

// BrickTile is a breakable brick: small players bump it, larger ones break it.
type BrickTile struct {
	bb    cp.BB
	state BrickState
	bob   bob
	// Dark selects the underground palette.
	Dark bool
}

func NewBrick(x, y float64) *BrickTile {
	return &BrickTile{bb: physics.Box(x, y, common.TileSize, common.TileSize)}
}

func (b *BrickTile) Bounds() cp.BB { return b.bb }
func (b *BrickTile) Kind() Kind { return Brick }
func (b *BrickTile) Solid(bool) bool { return b.state != BrickDestroyed }
func (b *BrickTile) Bumping() bool { return b.state == BrickBumping }
func (b *BrickTile) Offset() float64 { return b.bob.offset() }
func (b *BrickTile) Broken() bool { return b.state == BrickDestroyed }
func (b *BrickTile) State() BrickState { return b.state }

func (b *BrickTile) Strike(q *event.Queue, big bool) {
	switch b.state {
	case BrickDestroyed:
		return
	case BrickBumping:
		if !big {
			return
		}
	}
	if big {
		b.destroy(q)
		return
	}
	b.state = BrickBumping
	b.bob.start()
	q.Play(event.CueBump)
}

func (b *BrickTile) destroy(q *event.Queue) {
	b.state = BrickDestroyed
	q.Play(event.CueBreak)
	q.Push(event.Event{Kind: event.Debris, Pos: center(b.bb)})
	q.Points(BreakPoints, false, center(b.bb))
}

func (b *BrickTile) Update(dt float64, q *event.Queue) {
	if b.state != BrickBumping {
		return
	}
	if _, done := b.bob.advance(dt); done {
		b.state = BrickIdle
	}
}
