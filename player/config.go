package player

import (
	"github.com/milk9111/mariusz/common"
	"github.com/milk9111/mariusz/physics"
)

// Config tunes the player. Speeds and accelerations are per nominal frame,
// times are in seconds.
type Config struct {
	WalkSpeed     float64
	RunSpeed      float64
	Accel         float64
	Brake         float64
	RunBrake      float64
	Decel         float64
	CrouchDecel   float64
	StopSpeed     float64
	JumpSpeed     float64
	JumpHold      float64
	AirborneSpeed float64
	StompBounce   float64

	DeathLaunch  float64
	DeathPause   float64
	DeathRestart float64

	Invulnerable  float64
	SequenceStep  float64
	ShootCooldown float64
	MaxFireballs  int

	CameraLead    float64
	SlideSpeed    float64
	SitTime       float64
	GoalWalkSpeed float64
	CompleteDelay float64
	PipeTime      float64
	PipeSpeed     float64

	Floor   float64
	Physics physics.Config
}

func DefaultConfig() Config {
	return Config{
		WalkSpeed:     2,
		RunSpeed:      4,
		Accel:         0.2,
		Brake:         0.2,
		RunBrake:      0.3,
		Decel:         0.075,
		CrouchDecel:   0.15,
		StopSpeed:     0.2,
		JumpSpeed:     6,
		JumpHold:      0.30,
		AirborneSpeed: 1.5,
		StompBounce:   6,

		DeathLaunch:  10,
		DeathPause:   0.4,
		DeathRestart: 3.4,

		Invulnerable:  4,
		SequenceStep:  0.1,
		ShootCooldown: 0.4,
		MaxFireballs:  2,

		CameraLead:    128,
		SlideSpeed:    4,
		SitTime:       0.5,
		GoalWalkSpeed: 1.5,
		CompleteDelay: 1,
		PipeTime:      1,
		PipeSpeed:     0.5,

		Floor:   common.LevelFloor,
		Physics: physics.DefaultConfig(),
	}
}
