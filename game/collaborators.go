package game

import (
	"io/fs"

	"github.com/milk9111/mariusz/event"
	"github.com/milk9111/mariusz/level"
	"github.com/milk9111/mariusz/levels"
)

// LevelSource builds the level for a world.
type LevelSource interface {
	Load(world float64) (*level.Level, error)
}

// ScoreStore persists the high score. A missing value reads as 0.
type ScoreStore interface {
	HighScore() (int, error)
	SaveHighScore(score int) error
}

// RunRecorder is optionally implemented by a ScoreStore that keeps a history
// of finished games.
type RunRecorder interface {
	RecordRun(score int, world float64) error
}

// Audio plays sound effects and music.
type Audio interface {
	Play(cue event.Cue)
	PlayMusic(track event.Cue, loop bool)
	PauseMusic()
}

// EmbeddedLevels loads the levels shipped with the binary.
type EmbeddedLevels struct {
	Options level.Options
}

func (e EmbeddedLevels) Load(world float64) (*level.Level, error) {
	return level.Load(world, e.Options)
}

// FSLevels loads level files from a file system, typically an on-disk
// directory being edited while the game runs.
type FSLevels struct {
	FS      fs.FS
	Options level.Options
}

func (f FSLevels) Load(world float64) (*level.Level, error) {
	src, err := levels.LoadFromFS(f.FS, world)
	if err != nil {
		return nil, err
	}
	return level.Build(src, f.Options)
}

type silentAudio struct{}

func (silentAudio) Play(event.Cue) {}
func (silentAudio) PlayMusic(event.Cue, bool) {}
func (silentAudio) PauseMusic() {}

type memoryScores struct {
	high int
}

func (m *memoryScores) HighScore() (int, error) { return m.high, nil }
func (m *memoryScores) SaveHighScore(score int) error {
	m.high = max(m.high, score)
	return nil
}
