package sound

import (
	"bytes"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/mariusz/event"
)

var (
	contextOnce sync.Once
	context     *audio.Context
)

// sharedContext returns the process-wide audio context; ebiten allows only one.
func sharedContext() *audio.Context {
	contextOnce.Do(func() {
		context = audio.NewContext(int(SampleRate))
	})
	return context
}

// Player plays cues through ebiten's audio context. A muted player only logs
// the cues it would have played.
type Player struct {
	ctx    *audio.Context
	log    *log.Logger
	volume float64

	cache map[event.Cue][]byte
	music *audio.Player
	track event.Cue
}

// New creates a player. When muted no audio device is opened.
func New(logger *log.Logger, muted bool, volume float64) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{log: logger, volume: volume, cache: make(map[event.Cue][]byte)}
	if !muted {
		p.ctx = sharedContext()
	}
	return p
}

func (p *Player) pcm(cue event.Cue) ([]byte, bool) {
	if buf, ok := p.cache[cue]; ok {
		return buf, true
	}
	notes, ok := effects[cue]
	if !ok {
		notes, ok = tracks[cue]
	}
	if !ok {
		return nil, false
	}
	buf, err := Synthesize(notes, SampleRate, p.volume)
	if err != nil {
		p.log.Error("could not synthesize cue", "cue", cue, "error", err)
		return nil, false
	}
	p.cache[cue] = buf
	return buf, true
}

// Play starts a one-shot sound effect.
func (p *Player) Play(cue event.Cue) {
	p.log.Debug("sound", "cue", cue)
	if p.ctx == nil {
		return
	}
	buf, ok := p.pcm(cue)
	if !ok {
		p.log.Warn("unknown sound cue", "cue", cue)
		return
	}
	p.ctx.NewPlayerFromBytes(buf).Play()
}

// PlayMusic switches the background track. Asking for the current looping
// track again resumes it instead of restarting.
func (p *Player) PlayMusic(track event.Cue, loop bool) {
	p.log.Debug("music", "track", track, "loop", loop)
	if p.ctx == nil {
		return
	}
	if p.music != nil && p.track == track && loop {
		if !p.music.IsPlaying() {
			p.music.Play()
		}
		return
	}
	p.stopMusic()

	buf, ok := p.pcm(track)
	if !ok {
		p.log.Warn("unknown music track", "track", track)
		return
	}
	var src io.Reader = bytes.NewReader(buf)
	if loop {
		src = audio.NewInfiniteLoop(bytes.NewReader(buf), int64(len(buf)))
	}
	music, err := p.ctx.NewPlayer(src)
	if err != nil {
		p.log.Error("could not start music", "track", track, "error", err)
		return
	}
	p.music, p.track = music, track
	music.Play()
}

// PauseMusic halts the background track where it is.
func (p *Player) PauseMusic() {
	if p.music != nil {
		p.music.Pause()
	}
}

func (p *Player) stopMusic() {
	if p.music == nil {
		return
	}
	if err := p.music.Close(); err != nil {
		p.log.Warn("could not close music player", "error", err)
	}
	p.music, p.track = nil, ""
}

// Close releases the music player.
func (p *Player) Close() {
	p.stopMusic()
}
