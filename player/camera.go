package player

// Camera tracks the horizontal scroll. It only ever moves right.
type Camera struct {
	Scroll float64
	// Max caps the scroll at the end of the level. Zero means unbounded.
	Max  float64
	Lead float64
}

func NewCamera(lead, max float64) *Camera {
	return &Camera{Lead: lead, Max: max}
}

// Follow moves the scroll so that x stays at most Lead pixels from the left
// edge and returns the new scroll.
func (c *Camera) Follow(x float64) float64 {
	if c == nil {
		return 0
	}
	c.Scroll = max(c.Scroll, x-c.Lead)
	if c.Max > 0 {
		c.Scroll = min(c.Scroll, c.Max)
	}
	return c.Scroll
}
