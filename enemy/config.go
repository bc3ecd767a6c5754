package enemy

import (
	"github.com/milk9111/mariusz/common"
	"github.com/milk9111/mariusz/physics"
)

// Config tunes enemy behavior. Speeds are per nominal frame, times in seconds,
// distances in pixels relative to the scroll offset.
type Config struct {
	WalkSpeed    float64
	ShellSpeed   float64
	SquashTime   float64
	ReviveWarn   float64
	ReviveTime   float64
	WalkAnimStep float64
	ActiveAhead  float64
	TrailBehind  float64
	Floor        float64
	Physics      physics.Config
}

func DefaultConfig() Config {
	return Config{
		WalkSpeed:    1,
		ShellSpeed:   6,
		SquashTime:   0.4,
		ReviveWarn:   4,
		ReviveTime:   5,
		WalkAnimStep: 0.15,
		ActiveAhead:  304,
		TrailBehind:  48,
		Floor:        common.LevelFloor,
		Physics:      physics.DefaultConfig(),
	}
}
