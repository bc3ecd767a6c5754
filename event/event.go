package event

import "github.com/jakecoffman/cp"

// Kind identifies a world event.
type Kind int

const (
	AddCoin Kind = iota + 1
	AddPoints
	FloatingPoints
	SpinningCoin
	Debris
	Fireball
	Powerup
	RemoveLife
	AddLife
	SwitchMode
	EnemyDefeated
	Sound
	SegmentChange
	LevelComplete
)

var kindNames = map[Kind]string{
	AddCoin:        "add_coin",
	AddPoints:      "add_points",
	FloatingPoints: "floating_points",
	SpinningCoin:   "spinning_coin",
	Debris:         "debris",
	Fireball:       "fireball",
	Powerup:        "powerup",
	RemoveLife:     "remove_life",
	AddLife:        "add_life",
	SwitchMode:     "switch_mode",
	EnemyDefeated:  "enemy_defeated",
	Sound:          "sound",
	SegmentChange:  "segment_change",
	LevelComplete:  "level_complete",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Mode is a top-level game phase.
type Mode int

const (
	ModeMenu Mode = iota
	ModeLoading
	ModeLevel
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeLoading:
		return "loading"
	case ModeLevel:
		return "level"
	case ModeGameOver:
		return "game_over"
	}
	return "unknown"
}

// Event is a notable occurrence produced by an entity during a frame. Only
// the fields relevant to Kind are set.
type Event struct {
	Kind Kind
	Pos  cp.Vector

	// Amount is the point value for AddPoints, FloatingPoints and EnemyDefeated.
	Amount int
	// ShowText asks AddPoints to also spawn floating points at Pos.
	ShowText bool
	// Dir is -1 or 1 for Fireball.
	Dir int
	// OneUp selects a 1-UP mushroom for Powerup.
	OneUp bool
	// Mode is the requested mode for SwitchMode.
	Mode Mode
	// Cue names the sound for Sound.
	Cue Cue
	// World is the target world for SegmentChange.
	World float64
	// Variant carries the defeated enemy kind for EnemyDefeated.
	Variant int
	// Flip is set when a defeated enemy should fall upside down.
	Flip bool
}
