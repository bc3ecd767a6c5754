package tile

// bobFrames is the length of a bump in nominal frames: five up, five down.
const bobFrames = 10

// bob drives the 1px-per-frame up-and-down motion of a struck block.
type bob struct {
	active bool
	frames float64
}

func (b *bob) start() {
	b.active = true
	b.frames = 0
}

// advance moves the bob forward. peaked is true on the call that crosses the
// top of the bob, done on the call that finishes it.
func (b *bob) advance(dt float64) (peaked, done bool) {
	if !b.active {
		return false, false
	}
	before := b.frames
	b.frames += dt
	half := float64(bobFrames) / 2
	peaked = before < half && b.frames >= half
	if b.frames >= bobFrames {
		b.active = false
		b.frames = 0
		done = true
	}
	return peaked, done
}

func (b *bob) offset() float64 {
	if !b.active {
		return 0
	}
	return -min(b.frames, bobFrames-b.frames)
}
