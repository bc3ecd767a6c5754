// Package player implements the player character: locomotion, size tiers,
// enemy and item contact, death, and the pipe and flagpole exits.
package player

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariusz/common"
	"github.com/milk9111/mariusz/enemy"
	"github.com/milk9111/mariusz/event"
	"github.com/milk9111/mariusz/physics"
	"github.com/milk9111/mariusz/pickup"
	"github.com/milk9111/mariusz/tile"
)

// Size is the player's power-up tier.
type Size int

const (
	Small Size = iota
	Big
	Fire
)

func (s Size) String() string {
	switch s {
	case Small:
		return "small"
	case Big:
		return "big"
	case Fire:
		return "fire"
	}
	return "unknown"
}

// State is the player's visible state.
type State int

const (
	Idle State = iota
	Run
	Brake
	Crouch
	Jump
	Die
	Upgrading
	Downgrading
	PipeTransit
	Sliding
	Sitting
	WalkingToGoal
)

var stateNames = [...]string{
	Idle:          "idle",
	Run:           "run",
	Brake:         "brake",
	Crouch:        "crouch",
	Jump:          "jump",
	Die:           "die",
	Upgrading:     "upgrading",
	Downgrading:   "downgrading",
	PipeTransit:   "pipe_transit",
	Sliding:       "sliding",
	Sitting:       "sitting",
	WalkingToGoal: "walking_to_goal",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Input is one frame of player controls. JumpPressed and Fire are edges;
// Jump is the held state.
type Input struct {
	Left        bool
	Right       bool
	Run         bool
	Down        bool
	Jump        bool
	JumpPressed bool
	Fire        bool
}

// World is everything the player reads during its update.
type World struct {
	Tiles     []tile.Tile
	Enemies   []enemy.Enemy
	Coins     []pickup.Pickup
	Powerups  []pickup.Pickup
	Portals   []Portal
	Flagpole  *Flagpole
	Fireballs int
	Scroll    float64
	Events    *event.Queue
}

const (
	smallHeight = common.TileSize
	bigHeight   = 2 * common.TileSize
)

// Sequence is the frame order of the grow animation; shrinking plays it
// backwards.
var Sequence = [...]int{0, 1, 0, 1, 0, 1, 2, 0, 1, 2}

// Player is the player character.
type Player struct {
	body       physics.Body
	cfg        Config
	size       Size
	loco       State
	phase      phase
	facingLeft bool
	alive      bool
	hidden     bool

	inAir       bool
	jumped      bool
	crouching   bool
	jumpLatched bool
	holdingJump bool
	holdTimer   common.Timer

	invulnerable bool
	invTimer     common.Timer

	shootTimer common.Timer
	shotReady  bool

	phaseTimer common.Timer
	seqIndex   int
	runFrame   float64

	portal    Portal
	flag      Flagpole
	signalled bool
}

// New creates a small player with its top-left corner at (x, y).
func New(x, y float64, cfg Config) *Player {
	p := &Player{
		body:      physics.NewBody(x, y, common.TileSize, smallHeight),
		cfg:       cfg,
		alive:     true,
		shotReady: true,
		phase:     phaseNormal,
	}
	return p
}

// NewSized creates a player already at size s, standing with its bottom
// where a small player spawned at (x, y) would stand.
func NewSized(x, y float64, s Size, cfg Config) *Player {
	p := New(x, y, cfg)
	if s != Small {
		p.grow()
		p.size = s
	}
	return p
}

func (p *Player) Body() *physics.Body { return &p.body }
func (p *Player) Bounds() cp.BB { return p.body.Bounds() }
func (p *Player) Size() Size { return p.size }
func (p *Player) Alive() bool { return p.alive }
func (p *Player) Hidden() bool { return p.hidden }
func (p *Player) FacingLeft() bool { return p.facingLeft }
func (p *Player) Invulnerable() bool { return p.invulnerable }
func (p *Player) InAir() bool { return p.inAir }

// State returns the exit or transition state when one is active, and the
// locomotion state otherwise.
func (p *Player) State() State {
	if s, ok := p.phase.State(); ok {
		return s
	}
	return p.loco
}

// Frozen reports whether the rest of the world should pause while the
// player plays a tier change or death.
func (p *Player) Frozen() bool {
	switch p.phase {
	case phaseUpgrade, phaseDowngrade, phaseDie:
		return true
	}
	return false
}

// Controllable reports whether input currently drives the player. Pipe
// transits, the flagpole run and the freezes all take control away.
func (p *Player) Controllable() bool { return p.phase == phaseNormal }

// SequenceFrame is the current frame of the grow animation.
func (p *Player) SequenceFrame() int {
	i := min(max(p.seqIndex, 0), len(Sequence)-1)
	return Sequence[i]
}

// RunFrame is the current run cycle frame.
func (p *Player) RunFrame() int { return int(p.runFrame) }

// Upgrade moves the player one tier up. It reports false at the top tier.
func (p *Player) Upgrade(q *event.Queue) bool {
	q.Play(event.CuePowerup)
	switch p.size {
	case Small:
		p.grow()
		p.size = Big
	case Big:
		p.size = Fire
	default:
		return false
	}
	p.setPhase(phaseUpgrade)
	return true
}

// Downgrade drops the player to small with temporary invulnerability. A
// small player dies instead.
func (p *Player) Downgrade(q *event.Queue) {
	if p.size == Small {
		p.Kill(q)
		return
	}
	q.Play(event.CuePipe)
	p.invulnerable = true
	p.invTimer.Reset()
	p.setPhase(phaseDowngrade)
}

// Kill starts the death sequence. Killing a dead player does nothing.
func (p *Player) Kill(q *event.Queue) {
	if !p.alive {
		return
	}
	p.alive = false
	q.Push(event.Event{Kind: event.RemoveLife})
	q.Play(event.CueDie)
	if p.size != Small {
		p.shrink()
	}
	p.size = Small
	p.body.Vel = cp.Vector{X: 0, Y: -p.cfg.DeathLaunch}
	p.setPhase(phaseDie)
}

func (p *Player) grow() {
	if p.body.H >= bigHeight {
		return
	}
	bottom := p.body.Bottom()
	p.body.H = bigHeight
	p.body.SetBottom(bottom)
}

func (p *Player) shrink() {
	if p.body.H <= smallHeight {
		return
	}
	bottom := p.body.Bottom()
	p.body.H = smallHeight
	p.body.SetBottom(bottom)
}

// Update advances the player by one frame.
func (p *Player) Update(w *World, in Input, dt float64) {
	if p == nil || w == nil {
		return
	}
	if p.invulnerable {
		p.invTimer.Advance(dt)
		if p.invTimer.Elapsed() >= p.cfg.Invulnerable {
			p.invulnerable = false
		}
	}
	p.phase.Update(&phaseContext{p: p, w: w, in: in, dt: dt})
}

func (p *Player) setPhase(next phase) {
	if p.phase == next {
		return
	}
	ctx := &phaseContext{p: p}
	p.phase.Exit(ctx)
	p.phase = next
	p.phase.Enter(ctx)
}

func (p *Player) setLoco(s State) {
	if p.loco != s {
		p.loco = s
		p.runFrame = 0
	}
}
