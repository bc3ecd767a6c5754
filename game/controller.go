// Package game holds the mode controller: it sequences menu, loading, level
// and game over, owns the player's progress, and applies the events entities
// raise during a frame.
package game

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/milk9111/mariusz/common"
	"github.com/milk9111/mariusz/effect"
	"github.com/milk9111/mariusz/event"
	"github.com/milk9111/mariusz/level"
	"github.com/milk9111/mariusz/pickup"
	"github.com/milk9111/mariusz/player"
)

// Controller is the top-level game state machine.
type Controller struct {
	cfg    Config
	levels LevelSource
	scores ScoreStore
	audio  Audio
	log    *log.Logger

	mode      event.Mode
	modeTimer common.Timer
	progress  Progress
	paused    bool
	music     event.Cue

	level     *level.Level
	player    *player.Player
	camera    *player.Camera
	powerups  []pickup.Pickup
	fireballs []*pickup.Fireball
	effects   []effect.Effect
	events    event.Queue

	clock    common.Timer
	timeLeft int
	hurried  bool
}

// New creates a controller in menu mode. Nil collaborators fall back to
// silent audio, an in-memory score store and a discarding logger.
func New(cfg Config, levels LevelSource, scores ScoreStore, audio Audio, logger *log.Logger) *Controller {
	if levels == nil {
		levels = EmbeddedLevels{Options: cfg.Level}
	}
	if scores == nil {
		scores = &memoryScores{}
	}
	if audio == nil {
		audio = silentAudio{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Controller{cfg: cfg, levels: levels, scores: scores, audio: audio, log: logger}
	high, err := scores.HighScore()
	if err != nil {
		c.log.Warn("could not read high score", "error", err)
		high = 0
	}
	c.progress = newProgress(cfg, high)
	c.mode = event.ModeMenu
	return c
}

func (c *Controller) Mode() event.Mode { return c.mode }
func (c *Controller) Progress() Progress { return c.progress }
func (c *Controller) Level() *level.Level { return c.level }
func (c *Controller) Player() *player.Player { return c.player }
func (c *Controller) Powerups() []pickup.Pickup { return c.powerups }
func (c *Controller) Fireballs() []*pickup.Fireball { return c.fireballs }
func (c *Controller) Effects() []effect.Effect { return c.effects }
func (c *Controller) TimeLeft() int { return c.timeLeft }
func (c *Controller) Paused() bool { return c.paused }

// ModeElapsed is the time spent in the current mode, in seconds.
func (c *Controller) ModeElapsed() float64 { return c.modeTimer.Elapsed() }

// Scroll is the camera offset.
func (c *Controller) Scroll() float64 {
	if c.camera == nil {
		return 0
	}
	return c.camera.Scroll
}

// Reconfigure swaps the tuning and level source. Changes apply from the next
// level load.
func (c *Controller) Reconfigure(cfg Config, levels LevelSource) {
	c.cfg = cfg
	if levels != nil {
		c.levels = levels
	}
}

// Start leaves the menu.
func (c *Controller) Start() {
	if c.mode == event.ModeMenu {
		c.SwitchMode(event.ModeLoading)
	}
}

// TogglePause freezes or resumes the level.
func (c *Controller) TogglePause() {
	if c.mode != event.ModeLevel {
		return
	}
	c.paused = !c.paused
	c.audio.Play(event.CuePause)
	if c.paused {
		c.audio.PauseMusic()
	} else if c.music != "" {
		c.audio.PlayMusic(c.music, true)
	}
}

// SwitchMode changes the game phase. With no lives left anything but the
// menu turns into game over.
func (c *Controller) SwitchMode(m event.Mode) {
	if c.progress.Lives <= 0 && m != event.ModeMenu {
		m = event.ModeGameOver
	}
	c.log.Info("switch mode", "from", c.mode, "to", m, "world", c.progress.World, "lives", c.progress.Lives)
	c.mode = m
	c.modeTimer.Reset()
	c.paused = false

	switch m {
	case event.ModeLoading:
		c.audio.PauseMusic()
		c.timeLeft = c.cfg.LevelTime
		c.hurried = false
		c.clock.Reset()
	case event.ModeLevel:
		if err := c.enterLevel(); err != nil {
			c.log.Error("could not load level", "world", c.progress.World, "error", err)
			c.SwitchMode(event.ModeMenu)
			return
		}
	case event.ModeGameOver:
		c.playMusic(event.CueGameOver, false)
		c.saveScore()
	case event.ModeMenu:
		c.progress = newProgress(c.cfg, c.progress.HighScore)
		c.level, c.player, c.camera = nil, nil, nil
	}
}

// Update advances the current mode by dt.
func (c *Controller) Update(in player.Input, dt float64) {
	switch c.mode {
	case event.ModeLoading:
		c.modeTimer.Advance(dt)
		if c.modeTimer.Elapsed() >= c.cfg.LoadingTime {
			c.SwitchMode(event.ModeLevel)
		}
	case event.ModeLevel:
		if c.paused {
			return
		}
		c.modeTimer.Advance(dt)
		c.updateLevel(in, dt)
	case event.ModeGameOver:
		c.modeTimer.Advance(dt)
		if c.modeTimer.Elapsed() >= c.cfg.GameOverTime {
			c.SwitchMode(event.ModeMenu)
		}
	}
}

func (c *Controller) enterLevel() error {
	lvl, err := c.levels.Load(c.progress.World)
	if err != nil {
		return err
	}

	spawn := lvl.Spawn
	if c.progress.Resume != nil {
		spawn = *c.progress.Resume
		c.progress.Resume = nil
	}

	c.level = lvl
	c.player = player.NewSized(spawn.X, spawn.Y, c.progress.Size, c.cfg.Player)
	c.camera = player.NewCamera(c.cfg.Player.CameraLead, lvl.MaxScroll)
	c.camera.Scroll = 0
	c.camera.Follow(spawn.X)
	c.powerups = nil
	c.fireballs = nil
	c.effects = nil
	c.events.Drain()

	track := event.CueOverworld
	if lvl.Theme == "underground" {
		track = event.CueUnderground
	}
	c.playMusic(track, true)
	c.log.Info("level loaded", "world", lvl.World, "tiles", len(lvl.Tiles), "enemies", len(lvl.Enemies))
	return nil
}

func (c *Controller) playMusic(track event.Cue, loop bool) {
	c.music = ""
	if loop {
		c.music = track
	}
	c.audio.PlayMusic(track, loop)
}

func (c *Controller) saveScore() {
	points := c.progress.Points
	if rec, ok := c.scores.(RunRecorder); ok && points > 0 {
		if err := rec.RecordRun(points, c.progress.World); err != nil {
			c.log.Error("could not record run", "error", err)
		}
	}
	if points <= c.progress.HighScore {
		return
	}
	c.progress.HighScore = points
	if err := c.scores.SaveHighScore(points); err != nil {
		c.log.Error("could not save high score", "score", points, "error", err)
		return
	}
	c.log.Info("new high score", "score", points)
}

// restartWorld is where a death sends the player: segments fall back to the
// level they belong to.
func restartWorld(world float64) float64 {
	return math.Floor(world)
}
