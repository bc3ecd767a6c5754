package player

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariusz/event"
	"github.com/milk9111/mariusz/physics"
)

// Direction is the axis a pipe is entered along.
type Direction int

const (
	Down Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "down"
}

// Portal is a pipe mouth leading to another level segment.
type Portal struct {
	// Area is the pipe mouth: the top face for Down, the left face for Right.
	Area   cp.BB
	Dir    Direction
	World  float64
	Resume cp.Vector
}

func (pt Portal) enterable(bb cp.BB, in Input, grounded bool) bool {
	if !grounded {
		return false
	}
	switch pt.Dir {
	case Right:
		return in.Right &&
			bb.R >= pt.Area.L && bb.L < pt.Area.L &&
			physics.Top(bb) >= physics.Top(pt.Area) && physics.Bottom(bb) <= physics.Bottom(pt.Area)
	default:
		return in.Down &&
			physics.Bottom(bb) == physics.Top(pt.Area) &&
			bb.L >= pt.Area.L && bb.R <= pt.Area.R
	}
}

// Flagpole is the end-of-level pole. X is the pole's column, Top and Base its
// vertical extent, GoalX where the player disappears.
type Flagpole struct {
	X     float64
	Top   float64
	Base  float64
	GoalX float64
}

var flagTiers = []struct {
	above  float64
	points int
}{
	{128, 5000},
	{96, 2000},
	{64, 800},
	{32, 400},
}

// FlagPoints is the award for grabbing the pole height pixels above its base.
func FlagPoints(height float64) int {
	for _, t := range flagTiers {
		if height >= t.above {
			return t.points
		}
	}
	return 200
}

func (p *Player) checkPortals(w *World, in Input) bool {
	bb := p.body.Bounds()
	for _, pt := range w.Portals {
		if !pt.enterable(bb, in, !p.inAir) {
			continue
		}
		p.portal = pt
		w.Events.Play(event.CuePipe)
		p.setPhase(phasePipe)
		return true
	}
	return false
}

func (p *Player) checkFlagpole(w *World) bool {
	if w.Flagpole == nil || p.body.Right() < w.Flagpole.X {
		return false
	}
	p.flag = *w.Flagpole
	points := FlagPoints(p.flag.Base - p.body.Bottom())
	w.Events.Play(event.CueFlagpole)
	w.Events.Points(points, true, p.body.Pos)
	p.setPhase(phaseSlide)
	return true
}
