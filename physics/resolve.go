package physics

import "github.com/jakecoffman/cp"

// Shape is anything with a bounding box that can block a body.
type Shape interface {
	Bounds() cp.BB
}

// Response selects what happens to velocity after a horizontal correction.
type Response int

const (
	// Stop zeroes the corrected velocity component.
	Stop Response = iota
	// Reflect reverses it.
	Reflect
)

// Side is the face of a shape a body came to rest against.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideFloor
	SideCeiling
)

// Contact describes the outcome of a resolution pass. Index is -1 when
// nothing overlapped.
type Contact struct {
	Index int
	Side  Side
}

// Hit reports whether any shape overlapped.
func (c Contact) Hit() bool {
	return c.Index >= 0
}

var noContact = Contact{Index: -1}

// FirstOverlap returns the index of the first shape in slice order that
// overlaps bb. skip may be nil.
func FirstOverlap[S Shape](bb cp.BB, shapes []S, skip func(S) bool) (int, bool) {
	for i, s := range shapes {
		if skip != nil && skip(s) {
			continue
		}
		if Overlaps(bb, s.Bounds()) {
			return i, true
		}
	}
	return -1, false
}

// ResolveX pushes b out of the first shape it overlaps along x, based on the
// direction it was moving. At most one correction is made per call.
func ResolveX[S Shape](b *Body, shapes []S, skip func(S) bool, resp Response) Contact {
	if b.Vel.X == 0 {
		return noContact
	}
	i, ok := FirstOverlap(b.Bounds(), shapes, skip)
	if !ok {
		return noContact
	}
	bb := shapes[i].Bounds()
	side := SideLeft
	if b.Vel.X < 0 {
		b.SetLeft(bb.R)
		side = SideRight
	} else {
		b.SetRight(bb.L)
	}
	switch resp {
	case Reflect:
		b.Vel.X = -b.Vel.X
	default:
		b.Vel.X = 0
	}
	return Contact{Index: i, Side: side}
}

// ResolveY pushes b out of an overlapping shape along y. Falling bodies land
// on the first overlapping shape; rising bodies stop against the overlapping
// shape with the widest horizontal overlap, which is the block the body's
// head is mostly under. An overlap while vy == 0 is reported with SideNone.
func ResolveY[S Shape](b *Body, shapes []S, skip func(S) bool) Contact {
	bb := b.Bounds()
	i, ok := FirstOverlap(bb, shapes, skip)
	if !ok {
		return noContact
	}
	switch {
	case b.Vel.Y > 0:
		b.SetBottom(Top(shapes[i].Bounds()))
		b.Vel.Y = 0
		return Contact{Index: i, Side: SideFloor}
	case b.Vel.Y < 0:
		i = widestOverlap(bb, shapes, skip, i)
		b.SetTop(Bottom(shapes[i].Bounds()))
		b.Vel.Y = 0
		return Contact{Index: i, Side: SideCeiling}
	}
	return Contact{Index: i, Side: SideNone}
}

func widestOverlap[S Shape](bb cp.BB, shapes []S, skip func(S) bool, first int) int {
	best, bestW := first, OverlapX(bb, shapes[first].Bounds())
	for i := first + 1; i < len(shapes); i++ {
		s := shapes[i]
		if skip != nil && skip(s) {
			continue
		}
		sb := s.Bounds()
		if !Overlaps(bb, sb) {
			continue
		}
		if w := OverlapX(bb, sb); w > bestW {
			best, bestW = i, w
		}
	}
	return best
}
