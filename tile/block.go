package tile

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariusz/common"
	"github.com/milk9111/mariusz/event"
	"github.com/milk9111/mariusz/physics"
)

// Reward selects what a block yields when bumped.
type Reward int

const (
	RewardCoin Reward = iota
	RewardPowerup
	RewardOneUp
)

// BlockState is the state of a reward block.
type BlockState int

const (
	BlockIdle BlockState = iota
	BlockBumped
	BlockSettled
)

// Block is a question block, limited coin brick or hidden block. Each bump
// yields its reward once, at the top of the bob.
type Block struct {
	kind   Kind
	bb     cp.BB
	reward Reward
	supply int
	state  BlockState
	bob    bob
	shown  bool
}

// NewQuestion creates a question block yielding a coin or a power-up.
func NewQuestion(x, y float64, powerup bool) *Block {
	b := &Block{kind: Question, reward: RewardCoin, supply: 1, shown: true}
	if powerup {
		b.kind = PowerupQuestion
		b.reward = RewardPowerup
	}
	b.bb = physics.Box(x, y, common.TileSize, common.TileSize)
	return b
}

// NewCoinBrick creates a brick-looking block that yields coins coins before
// turning into a plate.
func NewCoinBrick(x, y float64, coins int) *Block {
	return &Block{
		kind:   CoinBrick,
		bb:     physics.Box(x, y, common.TileSize, common.TileSize),
		reward: RewardCoin,
		supply: max(coins, 1),
		shown:  true,
	}
}

// NewHidden creates an invisible block holding a 1-UP.
func NewHidden(x, y float64) *Block {
	return &Block{
		kind:   Hidden,
		bb:     physics.Box(x, y, common.TileSize, common.TileSize),
		reward: RewardOneUp,
		supply: 1,
	}
}

func (b *Block) Bounds() cp.BB { return b.bb }
func (b *Block) Kind() Kind { return b.kind }
func (b *Block) Bumping() bool { return b.state == BlockBumped }
func (b *Block) Offset() float64 { return b.bob.offset() }
func (b *Block) Broken() bool { return false }
func (b *Block) State() BlockState { return b.state }
func (b *Block) Visible() bool { return b.shown }
func (b *Block) Supply() int { return b.supply }

// Solid hides unrevealed blocks from everything but a rising player.
func (b *Block) Solid(rising bool) bool {
	return b.shown || rising
}

func (b *Block) Strike(q *event.Queue, big bool) {
	if b.state != BlockIdle {
		q.Play(event.CueBump)
		return
	}
	b.shown = true
	b.state = BlockBumped
	b.bob.start()
	q.Play(event.CueBump)
}

func (b *Block) Update(dt float64, q *event.Queue) {
	if b.state != BlockBumped {
		return
	}
	peaked, done := b.bob.advance(dt)
	if peaked {
		b.yield(q)
	}
	if !done {
		return
	}
	if b.supply > 0 {
		b.state = BlockIdle
		return
	}
	b.state = BlockSettled
}

func (b *Block) yield(q *event.Queue) {
	if b.supply <= 0 {
		return
	}
	b.supply--
	pos := above(b.bb)
	switch b.reward {
	case RewardCoin:
		q.Push(event.Event{Kind: event.AddCoin, Pos: pos})
		q.Push(event.Event{Kind: event.SpinningCoin, Pos: pos})
	case RewardPowerup:
		q.Push(event.Event{Kind: event.Powerup, Pos: pos})
		q.Play(event.CueAppear)
	case RewardOneUp:
		q.Push(event.Event{Kind: event.Powerup, Pos: pos, OneUp: true})
		q.Play(event.CueAppear)
	}
}
