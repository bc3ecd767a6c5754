// Package effect holds cosmetic entities: they move on their own schedule,
// never collide, and expire after a fixed lifetime or once off-screen.
package effect

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariusz/common"
	"github.com/milk9111/mariusz/event"
	"github.com/milk9111/mariusz/physics"
)

// Kind tags an effect variant.
type Kind int

const (
	FloatingPoints Kind = iota
	SpinningCoin
	DebrisShard
	DefeatedEnemy
)

// Effect is a transient, non-colliding entity.
type Effect interface {
	Kind() Kind
	Pos() cp.Vector
	Update(dt float64, q *event.Queue)
	Done() bool
}

// Sweep drops finished effects in place.
func Sweep(effects []Effect) []Effect {
	out := effects[:0]
	for _, e := range effects {
		if e != nil && !e.Done() {
			out = append(out, e)
		}
	}
	for i := len(out); i < len(effects); i++ {
		effects[i] = nil
	}
	return out
}

// Points is a score label drifting upward for a second.
type Points struct {
	pos    cp.Vector
	Amount int
	timer  common.Timer
	done   bool
}

const (
	pointsLifetime = 1.0
	pointsRise     = 1.0
)

func NewPoints(pos cp.Vector, amount int) *Points {
	return &Points{pos: pos, Amount: amount}
}

func (p *Points) Kind() Kind { return FloatingPoints }
func (p *Points) Pos() cp.Vector { return p.pos }
func (p *Points) Done() bool { return p.done }

func (p *Points) Update(dt float64, q *event.Queue) {
	if p.done {
		return
	}
	p.pos.Y -= pointsRise * dt
	p.timer.Advance(dt)
	if p.timer.Elapsed() >= pointsLifetime {
		p.done = true
	}
}

// Coin is the coin popping out of a block. When it falls back to where it
// started it turns into a floating score.
type Coin struct {
	body    physics.Body
	startY  float64
	phys    physics.Config
	done    bool
	rotated float64
}

const (
	coinLaunch = -8
	coinPoints = 200
)

func NewCoin(pos cp.Vector, phys physics.Config) *Coin {
	c := &Coin{body: physics.NewBody(pos.X, pos.Y, common.TileSize, common.TileSize), startY: pos.Y, phys: phys}
	c.body.Vel.Y = coinLaunch
	return c
}

func (c *Coin) Kind() Kind { return SpinningCoin }
func (c *Coin) Pos() cp.Vector { return c.body.Pos }
func (c *Coin) Done() bool { return c.done }

// Spin is the rotation phase in [0, 1) for drawing.
func (c *Coin) Spin() float64 { return c.rotated }

func (c *Coin) Update(dt float64, q *event.Queue) {
	if c.done {
		return
	}
	c.phys.ApplyGravity(&c.body, dt)
	c.body.MoveY(dt)
	c.rotated += 0.25 * dt
	c.rotated -= float64(int(c.rotated))
	if c.body.Vel.Y > 0 && c.body.Pos.Y >= c.startY {
		c.done = true
		q.Push(event.Event{Kind: event.FloatingPoints, Pos: cp.Vector{X: c.body.Pos.X, Y: c.startY}, Amount: coinPoints})
	}
}

// Debris is one brick fragment arcing down until it leaves the screen.
type Debris struct {
	body    physics.Body
	phys    physics.Config
	floor   float64
	Flipped bool
	flip    common.Timer
	done    bool
}

// NewDebris creates the four fragments of a broken brick centered on pos.
func NewDebris(pos cp.Vector, phys physics.Config) []*Debris {
	specs := []struct {
		dx, dy float64
		vel    cp.Vector
		flip   bool
	}{
		{-8, -8, cp.Vector{X: -1, Y: -12}, false},
		{8, -8, cp.Vector{X: 1, Y: -12}, true},
		{-8, 8, cp.Vector{X: -1, Y: -10}, false},
		{8, 8, cp.Vector{X: 1, Y: -10}, true},
	}
	out := make([]*Debris, 0, len(specs))
	for _, s := range specs {
		d := &Debris{
			body:    physics.NewBody(pos.X+s.dx-4, pos.Y+s.dy-4, 8, 8),
			phys:    phys,
			floor:   common.LevelFloor,
			Flipped: s.flip,
		}
		d.body.Vel = s.vel
		out = append(out, d)
	}
	return out
}

func (d *Debris) Kind() Kind { return DebrisShard }
func (d *Debris) Pos() cp.Vector { return d.body.Pos }
func (d *Debris) Done() bool { return d.done }

func (d *Debris) Update(dt float64, q *event.Queue) {
	if d.done {
		return
	}
	d.flip.Advance(dt)
	if d.flip.Every(0.1)%2 == 1 {
		d.Flipped = !d.Flipped
	}
	d.phys.ApplyGravity(&d.body, dt)
	d.body.MoveX(dt)
	d.body.MoveY(dt)
	if d.body.Pos.Y > d.floor {
		d.done = true
	}
}

// Enemy is a knocked-out enemy falling upside down off the screen.
type Enemy struct {
	body    physics.Body
	phys    physics.Config
	floor   float64
	done    bool
	Variant int
}

const enemyLaunch = -4

func NewEnemy(pos cp.Vector, variant int, phys physics.Config) *Enemy {
	e := &Enemy{
		body:    physics.NewBody(pos.X, pos.Y, common.TileSize, common.TileSize),
		phys:    phys,
		floor:   common.LevelFloor,
		Variant: variant,
	}
	e.body.Vel.Y = enemyLaunch
	return e
}

func (e *Enemy) Kind() Kind { return DefeatedEnemy }
func (e *Enemy) Pos() cp.Vector { return e.body.Pos }
func (e *Enemy) Done() bool { return e.done }

func (e *Enemy) Update(dt float64, q *event.Queue) {
	if e.done {
		return
	}
	if e.body.Pos.Y >= e.floor {
		e.done = true
		return
	}
	e.body.MoveY(dt)
	e.phys.ApplyGravity(&e.body, dt)
}
