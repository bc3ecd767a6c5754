package enemy

import "github.com/milk9111/mariusz/event"

// GoombaEnemy walks until stomped, shows a squashed frame briefly and is removed.
type GoombaEnemy struct {
	walker
}

func NewGoomba(x, y float64, cfg Config) *GoombaEnemy {
	return &GoombaEnemy{walker: newWalker(Goomba, x, y, cfg)}
}

func (g *GoombaEnemy) Alive() bool {
	return !g.removed && g.state == Walk
}

func (g *GoombaEnemy) Stomp() {
	if g.state != Walk {
		return
	}
	g.state = Dead
	g.timer.Reset()
}

func (g *GoombaEnemy) Defeat(q *event.Queue, points int) {
	g.defeat(g, q, points)
}

func (g *GoombaEnemy) Update(env *Env, dt float64) {
	if g.removed || g.dormant(env.Scroll) {
		return
	}
	if g.Expire(env.Scroll) {
		return
	}
	if g.state == Dead {
		g.timer.Advance(dt)
		if g.timer.Elapsed() >= g.cfg.SquashTime {
			g.removed = true
		}
		return
	}
	g.animate(dt)
	g.step(g, env, dt)
}
