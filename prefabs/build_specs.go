package prefabs

import (
	"github.com/milk9111/mariusz/enemy"
	"github.com/milk9111/mariusz/game"
	"github.com/milk9111/mariusz/physics"
	"github.com/milk9111/mariusz/player"
)

// BuildConfig turns the tuning spec into a game config. Zero fields keep the
// built-in defaults, so a spec only needs to name what it changes.
func (s *TuningSpec) BuildConfig() game.Config {
	cfg := game.DefaultConfig()
	if s == nil {
		return cfg
	}

	phys := s.Physics.build(cfg.Physics)
	cfg.Physics = phys
	cfg.Player = s.Player.build(cfg.Player)
	cfg.Player.Physics = phys
	cfg.Level.Enemy = s.Enemy.build(cfg.Level.Enemy)
	cfg.Level.Enemy.Physics = phys
	s.Game.apply(&cfg)
	return cfg
}

func (s PhysicsSpec) build(cfg physics.Config) physics.Config {
	setF(&cfg.Gravity, s.Gravity)
	setF(&cfg.Terminal, s.Terminal)
	return cfg
}

func (s PlayerSpec) build(cfg player.Config) player.Config {
	setF(&cfg.WalkSpeed, s.WalkSpeed)
	setF(&cfg.RunSpeed, s.RunSpeed)
	setF(&cfg.Accel, s.Accel)
	setF(&cfg.Brake, s.Brake)
	setF(&cfg.RunBrake, s.RunBrake)
	setF(&cfg.Decel, s.Decel)
	setF(&cfg.CrouchDecel, s.CrouchDecel)
	setF(&cfg.StopSpeed, s.StopSpeed)
	setF(&cfg.JumpSpeed, s.JumpSpeed)
	setF(&cfg.JumpHold, s.JumpHold)
	setF(&cfg.AirborneSpeed, s.AirborneSpeed)
	setF(&cfg.StompBounce, s.StompBounce)
	setF(&cfg.DeathLaunch, s.DeathLaunch)
	setF(&cfg.DeathPause, s.DeathPause)
	setF(&cfg.DeathRestart, s.DeathRestart)
	setF(&cfg.Invulnerable, s.Invulnerable)
	setF(&cfg.SequenceStep, s.SequenceStep)
	setF(&cfg.ShootCooldown, s.ShootCooldown)
	setI(&cfg.MaxFireballs, s.MaxFireballs)
	setF(&cfg.CameraLead, s.CameraLead)
	setF(&cfg.SlideSpeed, s.SlideSpeed)
	setF(&cfg.SitTime, s.SitTime)
	setF(&cfg.GoalWalkSpeed, s.GoalWalkSpeed)
	setF(&cfg.CompleteDelay, s.CompleteDelay)
	setF(&cfg.PipeTime, s.PipeTime)
	setF(&cfg.PipeSpeed, s.PipeSpeed)
	return cfg
}

func (s EnemySpec) build(cfg enemy.Config) enemy.Config {
	setF(&cfg.WalkSpeed, s.WalkSpeed)
	setF(&cfg.ShellSpeed, s.ShellSpeed)
	setF(&cfg.SquashTime, s.SquashTime)
	setF(&cfg.ReviveWarn, s.ReviveWarn)
	setF(&cfg.ReviveTime, s.ReviveTime)
	setF(&cfg.WalkAnimStep, s.WalkAnimStep)
	setF(&cfg.ActiveAhead, s.ActiveAhead)
	setF(&cfg.TrailBehind, s.TrailBehind)
	return cfg
}

func (s GameSpec) apply(cfg *game.Config) {
	setI(&cfg.Lives, s.Lives)
	setF(&cfg.StartWorld, s.StartWorld)
	setI(&cfg.LevelTime, s.LevelTime)
	setF(&cfg.TimeTick, s.TimeTick)
	setI(&cfg.HurryAt, s.HurryAt)
	setF(&cfg.LoadingTime, s.LoadingTime)
	setF(&cfg.GameOverTime, s.GameOverTime)
	setI(&cfg.CoinsPerLife, s.CoinsPerLife)
	setI(&cfg.CoinPoints, s.CoinPoints)
	setI(&cfg.Level.CoinSupply, s.CoinSupply)
}

func setF(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func setI(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

// LoadConfig reads the tuning spec and builds the game config from it.
func LoadConfig() (game.Config, error) {
	spec, err := LoadTuningSpec()
	if err != nil {
		return game.DefaultConfig(), err
	}
	return spec.BuildConfig(), nil
}
