package pickup

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariusz/enemy"
	"github.com/milk9111/mariusz/event"
	"github.com/milk9111/mariusz/physics"
	"github.com/milk9111/mariusz/tile"
)

func floor(from, to int, y float64) []tile.Tile {
	var out []tile.Tile
	for x := from; x < to; x += 16 {
		out = append(out, tile.New(tile.Rock, float64(x), y))
	}
	return out
}

func TestMushroomTurnsAtWalls(t *testing.T) {
	tiles := append(floor(0, 128, 208), tile.New(tile.Rock, 64, 192))
	m := NewMushroom(16, 192, physics.DefaultConfig())
	env := &Env{Tiles: tiles, Events: &event.Queue{}}

	for i := 0; i < 40; i++ {
		m.Update(env, 1)
	}
	if m.Body().Vel.X != -MoverSpeed {
		t.Fatalf("expected mushroom to reverse, vx=%v", m.Body().Vel.X)
	}
	if m.Body().Bottom() != 208 {
		t.Fatalf("expected mushroom to stay on the floor, bottom=%v", m.Body().Bottom())
	}
	if m.Body().Right() > 64 {
		t.Fatalf("mushroom went through the wall: right=%v", m.Body().Right())
	}
}

func TestMushroomFallsOutOfLevel(t *testing.T) {
	m := NewOneUp(16, 100, physics.DefaultConfig())
	env := &Env{Events: &event.Queue{}}
	for i := 0; i < 60 && !m.Removed(); i++ {
		m.Update(env, 1)
	}
	if !m.Removed() {
		t.Fatalf("expected 1-UP to be removed below the floor")
	}
}

func TestFireball(t *testing.T) {
	phys := physics.DefaultConfig()

	t.Run("bounces_off_floor", func(t *testing.T) {
		f := NewFireball(cp.Vector{X: 0, Y: 200}, 1, phys)
		env := &Env{Tiles: floor(0, 64, 208), Events: &event.Queue{}}
		f.Update(env, 1)
		if f.Removed() {
			t.Fatalf("fireball should survive a floor hit")
		}
		if f.body.Vel.Y != FireballBounce || f.body.Bottom() != 208 {
			t.Fatalf("expected bounce from floor, vy=%v bottom=%v", f.body.Vel.Y, f.body.Bottom())
		}
		if f.Pos().X != FireballSpeed {
			t.Fatalf("expected fireball to advance, x=%v", f.Pos().X)
		}
	})

	t.Run("burns_out_on_wall", func(t *testing.T) {
		f := NewFireball(cp.Vector{X: 2, Y: 196}, 1, phys)
		var q event.Queue
		env := &Env{Tiles: []tile.Tile{tile.New(tile.Rock, 16, 192)}, Events: &q}
		f.Update(env, 1)
		if f.Removed() {
			t.Fatalf("touching edges should not count as a hit")
		}
		f.Update(env, 1)
		if !f.Removed() {
			t.Fatalf("expected fireball to burn out on the wall")
		}
		if q.Count(event.Sound) != 1 {
			t.Fatalf("expected one sound event, got %d", q.Count(event.Sound))
		}
	})

	t.Run("defeats_one_enemy", func(t *testing.T) {
		cfg := enemy.DefaultConfig()
		a := enemy.NewGoomba(24, 96, cfg)
		b := enemy.NewGoomba(24, 96, cfg)
		var q event.Queue
		f := NewFireball(cp.Vector{X: 20, Y: 100}, 1, phys)
		f.Update(&Env{Enemies: []enemy.Enemy{a, b}, Events: &q}, 1)

		if !f.Removed() {
			t.Fatalf("fireball should be spent")
		}
		if !a.Removed() || b.Removed() {
			t.Fatalf("expected only the first enemy to be defeated")
		}
		evts := q.Drain()
		n := 0
		for _, e := range evts {
			if e.Kind == event.EnemyDefeated {
				n++
				if e.Amount != 100 {
					t.Fatalf("goomba should be worth 100, got %d", e.Amount)
				}
			}
		}
		if n != 1 {
			t.Fatalf("expected one defeat event, got %d", n)
		}
	})

	t.Run("leaves_screen", func(t *testing.T) {
		f := NewFireball(cp.Vector{X: 252, Y: 50}, 1, phys)
		f.Update(&Env{Events: &event.Queue{}}, 1)
		if !f.Removed() {
			t.Fatalf("expected off-screen fireball to be removed")
		}
	})
}

func TestTakeAndSweep(t *testing.T) {
	c := NewCoin(0, 0)
	flower := NewFireFlower(16, 0)
	if !c.Take() {
		t.Fatalf("first take should succeed")
	}
	if c.Take() {
		t.Fatalf("second take should report already collected")
	}
	list := Sweep([]Pickup{c, flower})
	if len(list) != 1 || list[0].Kind() != FireFlower {
		t.Fatalf("unexpected pickups after sweep: %v", list)
	}
}
