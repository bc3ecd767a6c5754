package physics

import (
	"testing"

	"github.com/jakecoffman/cp"
)

type box cp.BB

func (b box) Bounds() cp.BB { return cp.BB(b) }

func tileAt(x, y float64) box {
	return box(Box(x, y, 16, 16))
}

func TestResolveYFloorIsExact(t *testing.T) {
	cases := []struct {
		name string
		y    float64
		vy   float64
	}{
		{"shallow", 185.5, 1},
		{"deep", 191.75, 8},
		{"fractional_dt", 184.0001, 0.3},
	}
	tiles := []box{tileAt(0, 200), tileAt(16, 200)}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBody(4, c.y, 16, 16)
			b.Vel = cp.Vector{X: 0, Y: c.vy}
			got := ResolveY(&b, tiles, nil)
			if got.Side != SideFloor {
				t.Fatalf("expected floor contact, got %+v", got)
			}
			if b.Vel.Y != 0 {
				t.Fatalf("expected vy == 0, got %v", b.Vel.Y)
			}
			if b.Bottom() != Top(tiles[got.Index].Bounds()) {
				t.Fatalf("expected bottom %v, got %v", Top(tiles[got.Index].Bounds()), b.Bottom())
			}
		})
	}
}

func TestResolveYCeilingPicksWidestOverlap(t *testing.T) {
	tiles := []box{tileAt(0, 100), tileAt(16, 100)}
	b := NewBody(10, 110, 16, 16) // 6px under the first tile, 10px under the second
	b.Vel.Y = -3

	got := ResolveY(&b, tiles, nil)
	if got.Side != SideCeiling || got.Index != 1 {
		t.Fatalf("expected ceiling contact with tile 1, got %+v", got)
	}
	if b.Top() != 116 || b.Vel.Y != 0 {
		t.Fatalf("expected top 116 and vy 0, got top %v vy %v", b.Top(), b.Vel.Y)
	}
}

func TestResolveX(t *testing.T) {
	wall := []box{tileAt(32, 100)}
	cases := []struct {
		name   string
		x, vx  float64
		resp   Response
		wantX  float64
		wantVX float64
		hit    bool
	}{
		{"moving_right_stops", 18, 2, Stop, 16, 0, true},
		{"moving_left_reflects", 46, -1, Reflect, 48, 1, true},
		{"still_no_correction", 18, 0, Stop, 18, 0, false},
		{"touching_is_not_overlap", 16, 2, Stop, 16, 2, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBody(c.x, 100, 16, 16)
			b.Vel.X = c.vx
			got := ResolveX(&b, wall, nil, c.resp)
			if got.Hit() != c.hit {
				t.Fatalf("expected hit=%v, got %+v", c.hit, got)
			}
			if b.Pos.X != c.wantX || b.Vel.X != c.wantVX {
				t.Fatalf("expected x=%v vx=%v, got x=%v vx=%v", c.wantX, c.wantVX, b.Pos.X, b.Vel.X)
			}
		})
	}
}

func TestResolveSkipsFilteredShapes(t *testing.T) {
	tiles := []box{tileAt(0, 200), tileAt(0, 200)}
	b := NewBody(0, 190, 16, 16)
	b.Vel.Y = 2
	skipped := 0
	got := ResolveY(&b, tiles, func(box) bool {
		skipped++
		return skipped == 1
	})
	if got.Index != 1 {
		t.Fatalf("expected the second tile after skipping the first, got %+v", got)
	}
}

func TestApplyGravityCapsAtTerminal(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBody(0, 0, 16, 16)
	for i := 0; i < 20; i++ {
		cfg.ApplyGravity(&b, 1)
	}
	if b.Vel.Y != cfg.Terminal {
		t.Fatalf("expected terminal velocity %v, got %v", cfg.Terminal, b.Vel.Y)
	}
	b.Vel.Y = -6
	cfg.ApplyGravity(&b, 0.5)
	if b.Vel.Y != -5.5 {
		t.Fatalf("expected -5.5 after half a frame, got %v", b.Vel.Y)
	}
}
