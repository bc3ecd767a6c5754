package game

import (
	"github.com/milk9111/mariusz/level"
	"github.com/milk9111/mariusz/physics"
	"github.com/milk9111/mariusz/player"
)

// Config tunes the controller and carries the per-entity configs used when
// a level is built. Times are in seconds.
type Config struct {
	Lives        int
	StartWorld   float64
	LevelTime    int
	TimeTick     float64
	HurryAt      int
	LoadingTime  float64
	GameOverTime float64
	CoinsPerLife int
	CoinPoints   int

	Level   level.Options
	Player  player.Config
	Physics physics.Config
}

func DefaultConfig() Config {
	return Config{
		Lives:        3,
		StartWorld:   1,
		LevelTime:    400,
		TimeTick:     0.4,
		HurryAt:      100,
		LoadingTime:  3,
		GameOverTime: 7,
		CoinsPerLife: 100,
		CoinPoints:   200,

		Level:   level.DefaultOptions(),
		Player:  player.DefaultConfig(),
		Physics: physics.DefaultConfig(),
	}
}
