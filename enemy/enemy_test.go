package enemy

import (
	"testing"

	"github.com/milk9111/mariusz/event"
	"github.com/milk9111/mariusz/tile"
)

func floor(n int) []tile.Tile {
	tiles := make([]tile.Tile, 0, n)
	for i := 0; i < n; i++ {
		tiles = append(tiles, tile.New(tile.Rock, float64(i*16), 200))
	}
	return tiles
}

func newEnv(tiles []tile.Tile, enemies ...Enemy) *Env {
	return &Env{Tiles: tiles, Enemies: enemies, Events: &event.Queue{}}
}

func TestSpinningShellKnocksOutWalkers(t *testing.T) {
	cases := []struct {
		name       string
		shellFirst bool
	}{
		{"shell_updates_first", true},
		{"goomba_updates_first", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			shell := NewKoopa(0, 184, cfg)
			shell.Stomp()
			shell.Spin(true)
			goomba := NewGoomba(10, 184, cfg)

			env := newEnv(floor(4), shell, goomba)
			if c.shellFirst {
				shell.Update(env, 1)
			} else {
				goomba.Update(env, 1)
			}

			if !goomba.Removed() {
				t.Fatalf("expected goomba to be knocked out")
			}
			if shell.Body().Vel.X != cfg.ShellSpeed {
				t.Fatalf("shell velocity changed to %v", shell.Body().Vel.X)
			}
			if n := env.Events.Count(event.EnemyDefeated); n != 1 {
				t.Fatalf("expected one defeat event, got %d", n)
			}
		})
	}
}

func TestWalkersBounceApart(t *testing.T) {
	cfg := DefaultConfig()
	a := NewGoomba(20, 184, cfg)
	b := NewGoomba(5, 184, cfg)
	env := newEnv(floor(4), a, b)

	a.Update(env, 1)

	if a.Body().Vel.X != cfg.WalkSpeed || b.Body().Vel.X != cfg.WalkSpeed {
		t.Fatalf("expected both walkers reversed, got %v and %v", a.Body().Vel.X, b.Body().Vel.X)
	}
	if a.Body().Left() != b.Body().Right() {
		t.Fatalf("expected walkers separated, got a.left=%v b.right=%v", a.Body().Left(), b.Body().Right())
	}
	if a.Body().Vel.Y != 0 || a.Body().Bottom() != 200 {
		t.Fatalf("expected walker resting on the floor")
	}
}

func TestWalkerReflectsOffWalls(t *testing.T) {
	cfg := DefaultConfig()
	tiles := append(floor(4), tile.New(tile.SolidBlock, 0, 184))
	g := NewGoomba(16.5, 184, cfg)
	env := newEnv(tiles, g)

	g.Update(env, 1)

	if g.Body().Left() != 16 || g.Body().Vel.X != cfg.WalkSpeed {
		t.Fatalf("expected reflection off the wall, got x=%v vx=%v", g.Body().Left(), g.Body().Vel.X)
	}
}

func TestKoopaShellLifecycle(t *testing.T) {
	cfg := DefaultConfig()
	k := NewKoopa(100, 184, cfg)
	env := newEnv(floor(10), k)

	k.Stomp()
	steps := []State{Dead, Dead, Dead, Reviving, Walk}
	for i, want := range steps {
		k.Update(env, 30) // one second
		if k.State() != want {
			t.Fatalf("after %ds expected %v, got %v", i+1, want, k.State())
		}
	}
}

func TestKoopaStopSpinning(t *testing.T) {
	cfg := DefaultConfig()
	k := NewKoopa(100, 184, cfg)
	k.Stomp()
	k.Spin(false)
	if !k.Spinning() || k.Body().Vel.X != -cfg.ShellSpeed {
		t.Fatalf("expected shell spinning left")
	}
	k.StopSpinning()
	if k.State() != Dead || k.Body().Vel.X != -cfg.WalkSpeed {
		t.Fatalf("expected idle shell keeping a walk direction, got %v %v", k.State(), k.Body().Vel.X)
	}
}

func TestGoombaSquashTimer(t *testing.T) {
	cfg := DefaultConfig()
	g := NewGoomba(100, 184, cfg)
	env := newEnv(floor(10), g)

	g.Stomp()
	if g.Alive() {
		t.Fatalf("stomped goomba should not interact")
	}
	g.Update(env, 6) // 0.2s
	if g.Removed() {
		t.Fatalf("goomba removed before the squash time")
	}
	g.Update(env, 6)
	if !g.Removed() {
		t.Fatalf("goomba should be removed after the squash time")
	}
	if env.Events.Len() != 0 {
		t.Fatalf("squash removal should not emit events")
	}
}

func TestExpireIsIdempotent(t *testing.T) {
	cases := []struct {
		name   string
		x, y   float64
		scroll float64
	}{
		{"fell_below_floor", 100, 230, 0},
		{"left_behind", 10, 184, 100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := NewGoomba(c.x, c.y, DefaultConfig())
			env := newEnv(nil, g)
			env.Scroll = c.scroll

			if !g.Expire(c.scroll) {
				t.Fatalf("expected first check to remove the enemy")
			}
			if g.Expire(c.scroll) {
				t.Fatalf("second check should not report a new removal")
			}
			g.Update(env, 1)
			g.Defeat(env.Events, 100)
			if env.Events.Len() != 0 {
				t.Fatalf("removed enemy emitted %d events", env.Events.Len())
			}
		})
	}
}

func TestDormantAheadOfScroll(t *testing.T) {
	g := NewGoomba(400, 100, DefaultConfig())
	env := newEnv(nil, g)
	g.Update(env, 1)
	if g.Body().Left() != 400 || g.Body().Top() != 100 {
		t.Fatalf("dormant enemy moved")
	}
}

func TestBumpedTileKnocksOutWalker(t *testing.T) {
	brick := tile.NewBrick(96, 200)
	tiles := []tile.Tile{tile.New(tile.Rock, 80, 200), brick, tile.New(tile.Rock, 112, 200)}
	g := NewGoomba(100, 184, DefaultConfig())
	env := newEnv(tiles, g)

	brick.Strike(env.Events, false)
	env.Events.Drain()
	g.Update(env, 1)

	if !g.Removed() {
		t.Fatalf("expected goomba knocked out by the bump")
	}
	evts := env.Events.Drain()
	found := false
	for _, evt := range evts {
		if evt.Kind == event.EnemyDefeated {
			found = evt.Amount == Points(Goomba) && evt.Flip
		}
	}
	if !found {
		t.Fatalf("expected a flipped defeat event, got %+v", evts)
	}
}

func TestSweep(t *testing.T) {
	cfg := DefaultConfig()
	a, b := NewGoomba(0, 0, cfg), NewGoomba(20, 0, cfg)
	b.Expire(100)
	list := Sweep([]Enemy{a, b})
	if len(list) != 1 || list[0] != a {
		t.Fatalf("expected only the live enemy to remain")
	}
}
