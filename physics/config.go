package physics

// Config holds the world constants in units per nominal frame.
type Config struct {
	Gravity  float64
	Terminal float64
}

func DefaultConfig() Config {
	return Config{Gravity: 1, Terminal: 8}
}

// ApplyGravity accelerates b downward, capped at the terminal velocity.
func (c Config) ApplyGravity(b *Body, dt float64) {
	b.Vel.Y = min(b.Vel.Y+c.Gravity*dt, c.Terminal)
}
