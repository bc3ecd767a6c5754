package player

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariusz/event"
	"github.com/milk9111/mariusz/physics"
	"github.com/milk9111/mariusz/pickup"
	"github.com/milk9111/mariusz/tile"
)

func notSolid(t tile.Tile) bool {
	return !t.Solid(false)
}

func notSolidRising(t tile.Tile) bool {
	return !t.Solid(true)
}

// step is one frame of normal play. The order matters: movement is resolved
// on each axis before any contact checks run.
func (p *Player) step(w *World, in Input, dt float64) {
	p.shoot(w, in, dt)
	if in.JumpPressed && !p.inAir {
		p.jumpLatched = true
		p.holdingJump = true
		p.holdTimer.Reset()
	}
	if !in.Jump {
		p.holdingJump = false
	}

	p.moveHorizontally(in, w.Scroll, dt)
	if c := physics.ResolveX(&p.body, w.Tiles, notSolid, physics.Stop); c.Side == physics.SideRight {
		p.setLoco(Idle)
	}

	p.moveVertically(w.Events, dt)
	if !p.alive {
		return
	}
	p.resolveVertically(w)

	p.collectCoins(w)
	if p.checkEnemies(w) {
		return
	}
	if p.collectPowerups(w) {
		return
	}
	if p.checkPortals(w, in) {
		return
	}
	if p.checkFlagpole(w) {
		return
	}
	p.animate(dt)
}

func (p *Player) moveHorizontally(in Input, scroll, dt float64) {
	maxSpeed, brake := p.cfg.WalkSpeed, p.cfg.Brake
	if in.Run {
		maxSpeed, brake = p.cfg.RunSpeed, p.cfg.RunBrake
	}

	p.crouching = in.Down && !p.inAir
	if p.crouching && p.size != Small {
		p.setLoco(Crouch)
	}

	vx := &p.body.Vel.X
	if in.Left && !p.crouching {
		if *vx > 0 {
			p.setLoco(Brake)
			*vx = max(*vx-brake*dt, -maxSpeed)
		} else {
			p.setLoco(Run)
			*vx = max(*vx-p.cfg.Accel*dt, -maxSpeed)
		}
		p.facingLeft = true
	}
	if in.Right && !p.crouching {
		if *vx < 0 {
			p.setLoco(Brake)
			*vx = min(*vx+brake*dt, maxSpeed)
		} else {
			p.setLoco(Run)
			*vx = min(*vx+p.cfg.Accel*dt, maxSpeed)
		}
		p.facingLeft = false
	}

	if !p.inAir && (in.Left == in.Right || p.crouching) {
		decel := p.cfg.Decel
		if p.crouching {
			decel = p.cfg.CrouchDecel
		}
		switch {
		case *vx > p.cfg.StopSpeed:
			*vx -= decel * dt
			p.landRunning()
		case *vx < -p.cfg.StopSpeed:
			*vx += decel * dt
			p.landRunning()
		default:
			*vx = 0
			if !p.crouching || p.size == Small {
				p.setLoco(Idle)
			}
		}
	}

	p.body.MoveX(dt)
	if p.body.Pos.X < scroll {
		p.body.Pos.X = scroll
		*vx = 0
	}
}

func (p *Player) landRunning() {
	if p.loco == Jump {
		p.setLoco(Run)
	}
}

func (p *Player) moveVertically(q *event.Queue, dt float64) {
	p.cfg.Physics.ApplyGravity(&p.body, dt)

	if p.jumpLatched {
		if p.size == Small {
			q.Play(event.CueJump)
		} else {
			q.Play(event.CueJumpBig)
		}
		p.body.Vel.Y = -p.cfg.JumpSpeed
		p.inAir = true
		p.jumped = true
		p.jumpLatched = false
	}

	if p.holdingJump && p.body.Vel.Y < 0 {
		p.holdTimer.Advance(dt)
		if p.holdTimer.Elapsed() <= p.cfg.JumpHold {
			p.body.Vel.Y = -p.cfg.JumpSpeed
		}
	}

	p.body.MoveY(dt)
	if p.body.Pos.Y > p.cfg.Floor {
		p.Kill(q)
	}
}

func (p *Player) resolveVertically(w *World) {
	skip := notSolid
	if p.body.Vel.Y < 0 {
		skip = notSolidRising
	}
	c := physics.ResolveY(&p.body, w.Tiles, skip)
	switch c.Side {
	case physics.SideFloor:
		p.inAir = false
		p.jumped = false
		return
	case physics.SideCeiling:
		w.Tiles[c.Index].Strike(w.Events, p.size != Small)
		return
	}
	if c.Hit() {
		return
	}
	if math.Abs(p.body.Vel.Y) > p.cfg.AirborneSpeed {
		p.inAir = true
		p.setLoco(Jump)
	} else if p.jumped {
		p.setLoco(Jump)
	}
}

func (p *Player) shoot(w *World, in Input, dt float64) {
	p.shootTimer.Advance(dt)
	if p.shootTimer.Elapsed() >= p.cfg.ShootCooldown {
		p.shotReady = true
	}
	if !in.Fire || p.size != Fire || !p.shotReady || w.Fireballs >= p.cfg.MaxFireballs {
		return
	}
	p.shotReady = false
	p.shootTimer.Reset()

	c := p.body.Center()
	evt := event.Event{Kind: event.Fireball, Pos: cp.Vector{X: p.body.Right(), Y: c.Y}, Dir: 1}
	if p.facingLeft {
		evt.Pos.X = p.body.Left() - pickup.FireballSize
		evt.Dir = -1
	}
	w.Events.Push(evt)
}

func (p *Player) animate(dt float64) {
	if p.loco == Run {
		p.animateRun(dt)
	}
}

func (p *Player) animateRun(dt float64) {
	p.runFrame += 0.25 * math.Abs(p.body.Vel.X) * dt
	if p.runFrame >= 3 {
		p.runFrame = 0
	}
}
