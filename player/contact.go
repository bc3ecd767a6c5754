package player

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariusz/enemy"
	"github.com/milk9111/mariusz/event"
	"github.com/milk9111/mariusz/physics"
	"github.com/milk9111/mariusz/pickup"
)

const (
	KickPoints    = 400
	StompPoints   = 100
	PowerupPoints = 1000
)

func (p *Player) collectCoins(w *World) {
	bb := p.body.Bounds()
	for _, c := range w.Coins {
		if c.Removed() || !physics.Overlaps(bb, c.Bounds()) {
			continue
		}
		if c.Take() {
			w.Events.Push(event.Event{Kind: event.AddCoin, Pos: c.Pos()})
		}
	}
}

// checkEnemies applies the first enemy contact of the frame. It reports
// whether the contact took the player out of normal play.
func (p *Player) checkEnemies(w *World) bool {
	if p.invulnerable {
		return false
	}
	q := w.Events
	for _, e := range w.Enemies {
		if e.Removed() || !e.Alive() {
			continue
		}
		eb := e.Bounds()
		if !physics.Overlaps(p.body.Bounds(), eb) {
			continue
		}

		if s, ok := e.(enemy.Shell); ok && s.State() != enemy.Walk && !s.Spinning() {
			p.kick(s, q)
			return false
		}

		bottom := p.body.Bottom()
		if physics.Top(eb) < bottom && bottom < (eb.B+eb.T)/2 && p.body.Vel.Y >= 0 {
			p.bounceOff(eb)
			if s, ok := e.(enemy.Shell); ok && s.Spinning() {
				q.Play(event.CueKick)
				s.StopSpinning()
				return false
			}
			q.Play(event.CueStomp)
			q.Points(StompPoints, true, e.Body().Pos)
			e.Stomp()
			return false
		}

		p.Downgrade(q)
		return true
	}
	return false
}

func (p *Player) kick(s enemy.Shell, q *event.Queue) {
	q.Play(event.CueKick)
	eb := s.Bounds()
	if p.inAir {
		p.bounceOff(eb)
	} else if p.body.Vel.X > 0 {
		p.body.SetRight(eb.L)
	} else {
		p.body.SetLeft(eb.R)
	}
	q.Points(KickPoints, true, s.Body().Pos)
	s.Spin(p.body.Center().X <= (eb.L+eb.R)/2)
}

func (p *Player) bounceOff(eb cp.BB) {
	p.body.Vel.Y = -p.cfg.StompBounce
	p.body.SetBottom(physics.Top(eb))
}

// collectPowerups applies touched power-ups. It reports whether one started
// a tier change.
func (p *Player) collectPowerups(w *World) bool {
	bb := p.body.Bounds()
	for _, it := range w.Powerups {
		if it.Removed() || !physics.Overlaps(bb, it.Bounds()) || !it.Take() {
			continue
		}
		switch it.Kind() {
		case pickup.OneUp:
			w.Events.Push(event.Event{Kind: event.AddLife, Pos: it.Pos()})
		case pickup.Mushroom, pickup.FireFlower:
			upgraded := p.Upgrade(w.Events)
			w.Events.Points(PowerupPoints, true, it.Pos())
			if upgraded {
				return true
			}
		}
	}
	return false
}
