package enemy

import (
	"github.com/milk9111/mariusz/common"
	"github.com/milk9111/mariusz/event"
)

// KoopaEnemy retreats into its shell when stomped, revives after a while, and
// can be kicked into a spinning shell that knocks out other enemies.
type KoopaEnemy struct {
	walker
}

func NewKoopa(x, y float64, cfg Config) *KoopaEnemy {
	return &KoopaEnemy{walker: newWalker(Koopa, x, y, cfg)}
}

// Alive stays true while the shell is in play so the player can kick it.
func (k *KoopaEnemy) Alive() bool {
	return !k.removed
}

// FacingRight reports the walk direction.
func (k *KoopaEnemy) FacingRight() bool {
	return k.body.Vel.X > 0
}

func (k *KoopaEnemy) Spinning() bool {
	return k.state == Spinning
}

func (k *KoopaEnemy) Stomp() {
	if k.state != Walk {
		return
	}
	k.state = Dead
	k.timer.Reset()
}

func (k *KoopaEnemy) Spin(toRight bool) {
	k.state = Spinning
	k.body.Vel.X = -k.cfg.ShellSpeed
	if toRight {
		k.body.Vel.X = k.cfg.ShellSpeed
	}
}

func (k *KoopaEnemy) StopSpinning() {
	if k.state != Spinning {
		return
	}
	k.state = Dead
	k.body.Vel.X = common.Sign(k.body.Vel.X) * k.cfg.WalkSpeed
	k.timer.Reset()
}

func (k *KoopaEnemy) Defeat(q *event.Queue, points int) {
	k.defeat(k, q, points)
}

func (k *KoopaEnemy) Update(env *Env, dt float64) {
	if k.removed || k.dormant(env.Scroll) {
		return
	}
	if k.Expire(env.Scroll) {
		return
	}

	switch k.state {
	case Walk:
		k.animate(dt)
	case Dead, Reviving:
		k.timer.Advance(dt)
		switch t := k.timer.Elapsed(); {
		case t >= k.cfg.ReviveTime:
			k.state = Walk
			k.timer.Reset()
		case t >= k.cfg.ReviveWarn:
			k.state = Reviving
		}
		if k.state != Walk {
			return
		}
	}

	k.step(k, env, dt)
}
