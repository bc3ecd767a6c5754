// Package enemy implements the walking enemies and their state machines.
package enemy

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariusz/event"
	"github.com/milk9111/mariusz/physics"
	"github.com/milk9111/mariusz/tile"
)

// Kind tags an enemy variant.
type Kind int

const (
	Goomba Kind = iota
	Koopa
)

func (k Kind) String() string {
	switch k {
	case Goomba:
		return "goomba"
	case Koopa:
		return "koopa"
	}
	return "unknown"
}

// Points is the award for defeating an enemy of kind k with a projectile.
func Points(k Kind) int {
	if k == Koopa {
		return 200
	}
	return 100
}

// State is an enemy's behavior state.
type State int

const (
	Walk State = iota
	Dead
	Reviving
	Spinning
)

func (s State) String() string {
	switch s {
	case Walk:
		return "walk"
	case Dead:
		return "dead"
	case Reviving:
		return "reviving"
	case Spinning:
		return "spinning"
	}
	return "unknown"
}

// Env is what an enemy may read during its update. Only the enemy being
// updated mutates its own body; siblings are touched solely through the
// collision reactions below.
type Env struct {
	Tiles   []tile.Tile
	Enemies []Enemy
	Scroll  float64
	Events  *event.Queue
}

// Enemy is the contract every enemy kind implements.
type Enemy interface {
	physics.Shape
	Kind() Kind
	State() State
	Body() *physics.Body
	// Alive reports whether the enemy still interacts with the player.
	Alive() bool
	// Removed reports whether the enemy is scheduled for removal.
	Removed() bool
	// Stomp reacts to the player landing on top.
	Stomp()
	// Defeat knocks the enemy out of the level, emitting one EnemyDefeated
	// event worth points. Defeating a removed enemy does nothing.
	Defeat(q *event.Queue, points int)
	// Expire removes the enemy without events when it has left the play area.
	// It reports whether this call removed it.
	Expire(scroll float64) bool
	Update(env *Env, dt float64)
}

// Shell is implemented by enemies that can be kicked into a spinning shell.
type Shell interface {
	Enemy
	Spinning() bool
	Spin(toRight bool)
	StopSpinning()
}

// IsSpinning reports whether e is a shell in projectile mode.
func IsSpinning(e Enemy) bool {
	s, ok := e.(Shell)
	return ok && s.Spinning()
}

// Sweep drops removed enemies in place, preserving order.
func Sweep(enemies []Enemy) []Enemy {
	out := enemies[:0]
	for _, e := range enemies {
		if e != nil && !e.Removed() {
			out = append(out, e)
		}
	}
	for i := len(out); i < len(enemies); i++ {
		enemies[i] = nil
	}
	return out
}

func defeatedEvent(e Enemy, points int) event.Event {
	b := e.Body()
	return event.Event{
		Kind:    event.EnemyDefeated,
		Pos:     cp.Vector{X: b.Pos.X, Y: b.Pos.Y},
		Amount:  points,
		Variant: int(e.Kind()),
		Flip:    true,
	}
}
