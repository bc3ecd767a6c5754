package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TuningFile is the spec holding all gameplay tuning.
const TuningFile = "tuning.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type TuningSpec struct {
	Name    string      `yaml:"name"`
	Physics PhysicsSpec `yaml:"physics"`
	Player  PlayerSpec  `yaml:"player"`
	Enemy   EnemySpec   `yaml:"enemy"`
	Game    GameSpec    `yaml:"game"`
}

func LoadTuningSpec() (*TuningSpec, error) {
	spec, err := LoadSpec[TuningSpec](TuningFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PhysicsSpec struct {
	Gravity  float64 `yaml:"gravity"`
	Terminal float64 `yaml:"terminal"`
}

type PlayerSpec struct {
	WalkSpeed     float64 `yaml:"walk_speed"`
	RunSpeed      float64 `yaml:"run_speed"`
	Accel         float64 `yaml:"accel"`
	Brake         float64 `yaml:"brake"`
	RunBrake      float64 `yaml:"run_brake"`
	Decel         float64 `yaml:"decel"`
	CrouchDecel   float64 `yaml:"crouch_decel"`
	StopSpeed     float64 `yaml:"stop_speed"`
	JumpSpeed     float64 `yaml:"jump_speed"`
	JumpHold      float64 `yaml:"jump_hold"`
	AirborneSpeed float64 `yaml:"airborne_speed"`
	StompBounce   float64 `yaml:"stomp_bounce"`
	DeathLaunch   float64 `yaml:"death_launch"`
	DeathPause    float64 `yaml:"death_pause"`
	DeathRestart  float64 `yaml:"death_restart"`
	Invulnerable  float64 `yaml:"invulnerable"`
	SequenceStep  float64 `yaml:"sequence_step"`
	ShootCooldown float64 `yaml:"shoot_cooldown"`
	MaxFireballs  int     `yaml:"max_fireballs"`
	CameraLead    float64 `yaml:"camera_lead"`
	SlideSpeed    float64 `yaml:"slide_speed"`
	SitTime       float64 `yaml:"sit_time"`
	GoalWalkSpeed float64 `yaml:"goal_walk_speed"`
	CompleteDelay float64 `yaml:"complete_delay"`
	PipeTime      float64 `yaml:"pipe_time"`
	PipeSpeed     float64 `yaml:"pipe_speed"`
}

type EnemySpec struct {
	WalkSpeed    float64 `yaml:"walk_speed"`
	ShellSpeed   float64 `yaml:"shell_speed"`
	SquashTime   float64 `yaml:"squash_time"`
	ReviveWarn   float64 `yaml:"revive_warn"`
	ReviveTime   float64 `yaml:"revive_time"`
	WalkAnimStep float64 `yaml:"walk_anim_step"`
	ActiveAhead  float64 `yaml:"active_ahead"`
	TrailBehind  float64 `yaml:"trail_behind"`
}

type GameSpec struct {
	Lives        int     `yaml:"lives"`
	StartWorld   float64 `yaml:"start_world"`
	LevelTime    int     `yaml:"level_time"`
	TimeTick     float64 `yaml:"time_tick"`
	HurryAt      int     `yaml:"hurry_at"`
	LoadingTime  float64 `yaml:"loading_time"`
	GameOverTime float64 `yaml:"game_over_time"`
	CoinsPerLife int     `yaml:"coins_per_life"`
	CoinPoints   int     `yaml:"coin_points"`
	CoinSupply   int     `yaml:"coin_supply"`
}
