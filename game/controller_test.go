package game

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariusz/event"
	"github.com/milk9111/mariusz/level"
	"github.com/milk9111/mariusz/levels"
	"github.com/milk9111/mariusz/pickup"
	"github.com/milk9111/mariusz/player"
)

// Flat floor two rows deep, spawn on the ground at column 2.
const flat = `
world: 1
theme: overworld
next: 2
grid:
  - [0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]
  - [0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]
  - [0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]
  - [0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]
  - [0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]
  - [0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]
  - [0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]
  - [0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]
  - [0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]
  - [0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]
  - [0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]
  - [0, 0, 20, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]
  - [1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1]
  - [1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1]
`

type fixtureLevels struct {
	next  float64
	err   error
	loads []float64
}

func (f *fixtureLevels) Load(world float64) (*level.Level, error) {
	f.loads = append(f.loads, world)
	if f.err != nil {
		return nil, f.err
	}
	src, err := levels.Parse("flat.yaml", []byte(flat))
	if err != nil {
		return nil, err
	}
	src.World = world
	src.Next = f.next
	return level.Build(src, level.DefaultOptions())
}

type recordingStore struct {
	high  int
	saved []int
	runs  []int
}

func (s *recordingStore) HighScore() (int, error) { return s.high, nil }

func (s *recordingStore) SaveHighScore(score int) error {
	s.saved = append(s.saved, score)
	s.high = score
	return nil
}

func (s *recordingStore) RecordRun(score int, world float64) error {
	s.runs = append(s.runs, score)
	return nil
}

type recordingAudio struct {
	cues   []event.Cue
	music  []event.Cue
	paused int
}

func (a *recordingAudio) Play(cue event.Cue) { a.cues = append(a.cues, cue) }
func (a *recordingAudio) PlayMusic(track event.Cue, loop bool) { a.music = append(a.music, track) }
func (a *recordingAudio) PauseMusic() { a.paused++ }

func (a *recordingAudio) played(cue event.Cue) int {
	n := 0
	for _, c := range a.cues {
		if c == cue {
			n++
		}
	}
	return n
}

type harness struct {
	c      *Controller
	levels *fixtureLevels
	store  *recordingStore
	audio  *recordingAudio
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		levels: &fixtureLevels{next: 2},
		store:  &recordingStore{high: 1000},
		audio:  &recordingAudio{},
	}
	h.c = New(DefaultConfig(), h.levels, h.store, h.audio, nil)
	return h
}

// enterLevel starts a game and waits out the loading screen.
func (h *harness) enterLevel(t *testing.T) {
	t.Helper()
	h.c.Start()
	for i := 0; i < 3; i++ {
		h.c.Update(player.Input{}, 30)
	}
	if h.c.Mode() != event.ModeLevel {
		t.Fatalf("expected level mode after loading, got %v", h.c.Mode())
	}
}

func TestNewStartsInMenu(t *testing.T) {
	h := newHarness(t)
	p := h.c.Progress()
	if h.c.Mode() != event.ModeMenu {
		t.Fatalf("expected menu, got %v", h.c.Mode())
	}
	if p.Lives != 3 || p.Points != 0 || p.Coins != 0 || p.World != 1 || p.HighScore != 1000 {
		t.Fatalf("unexpected initial progress %+v", p)
	}
}

func TestLoadingThenLevel(t *testing.T) {
	h := newHarness(t)
	h.c.Start()
	if h.c.Mode() != event.ModeLoading {
		t.Fatalf("expected loading, got %v", h.c.Mode())
	}
	h.c.Update(player.Input{}, 30)
	h.c.Update(player.Input{}, 30)
	if h.c.Mode() != event.ModeLoading {
		t.Fatalf("loading should last 3s, left after 2s")
	}
	h.c.Update(player.Input{}, 30)
	if h.c.Mode() != event.ModeLevel {
		t.Fatalf("expected level after 3s, got %v", h.c.Mode())
	}

	pos := h.c.Player().Body().Pos
	if pos != (cp.Vector{X: 32, Y: 184}) {
		t.Fatalf("expected player at spawn, got %v", pos)
	}
	if h.c.TimeLeft() != 400 {
		t.Fatalf("expected 400 time units, got %d", h.c.TimeLeft())
	}
	if len(h.audio.music) == 0 || h.audio.music[len(h.audio.music)-1] != event.CueOverworld {
		t.Fatalf("expected overworld music, got %v", h.audio.music)
	}
}

func TestLoadFailureReturnsToMenu(t *testing.T) {
	h := newHarness(t)
	h.levels.err = errors.New("missing")
	h.c.Start()
	for i := 0; i < 3; i++ {
		h.c.Update(player.Input{}, 30)
	}
	if h.c.Mode() != event.ModeMenu {
		t.Fatalf("expected menu after failed load, got %v", h.c.Mode())
	}
}

func TestHundredCoinsGiveLife(t *testing.T) {
	h := newHarness(t)
	h.enterLevel(t)

	for i := 0; i < 100; i++ {
		h.c.events.Push(event.Event{Kind: event.AddCoin})
	}
	h.c.applyEvents()

	p := h.c.Progress()
	if p.Lives != 4 || p.Coins != 0 {
		t.Fatalf("expected 4 lives and 0 coins, got lives=%d coins=%d", p.Lives, p.Coins)
	}
	if p.Points != 100*200 {
		t.Fatalf("expected %d points, got %d", 100*200, p.Points)
	}
	if h.audio.played(event.CueOneUp) != 1 || h.audio.played(event.CueCoin) != 99 {
		t.Fatalf("expected 99 coin cues and one 1-UP cue, got %v", h.audio.cues)
	}
}

func TestNoLivesMeansGameOver(t *testing.T) {
	h := newHarness(t)
	h.enterLevel(t)
	h.c.progress.Lives = 0
	h.c.progress.Points = 5000

	h.c.SwitchMode(event.ModeLoading)
	if h.c.Mode() != event.ModeGameOver {
		t.Fatalf("expected game over, got %v", h.c.Mode())
	}
	if len(h.store.saved) != 1 || h.store.saved[0] != 5000 {
		t.Fatalf("expected high score 5000 saved once, got %v", h.store.saved)
	}
	if len(h.store.runs) != 1 {
		t.Fatalf("expected one recorded run, got %v", h.store.runs)
	}

	for i := 0; i < 6; i++ {
		h.c.Update(player.Input{}, 30)
	}
	if h.c.Mode() != event.ModeGameOver {
		t.Fatalf("game over should last 7s")
	}
	h.c.Update(player.Input{}, 30)
	if h.c.Mode() != event.ModeMenu {
		t.Fatalf("expected menu after 7s, got %v", h.c.Mode())
	}
	p := h.c.Progress()
	if p.Lives != 3 || p.Points != 0 || p.HighScore != 5000 {
		t.Fatalf("expected fresh progress keeping the high score, got %+v", p)
	}
}

func TestLowScoreNotSaved(t *testing.T) {
	h := newHarness(t)
	h.enterLevel(t)
	h.c.progress.Lives = 0
	h.c.progress.Points = 300
	h.c.SwitchMode(event.ModeGameOver)
	if len(h.store.saved) != 0 {
		t.Fatalf("score below the high score should not be saved, got %v", h.store.saved)
	}
}

func TestMenuAllowedWithoutLives(t *testing.T) {
	h := newHarness(t)
	h.c.progress.Lives = 0
	h.c.SwitchMode(event.ModeMenu)
	if h.c.Mode() != event.ModeMenu {
		t.Fatalf("expected menu, got %v", h.c.Mode())
	}
}

func TestClockHurryAndTimeUp(t *testing.T) {
	h := newHarness(t)
	h.enterLevel(t)

	h.c.timeLeft = 101
	h.c.tickClock(15)
	if h.c.TimeLeft() != 100 {
		t.Fatalf("expected one tick, got %d left", h.c.TimeLeft())
	}
	if last := h.audio.music[len(h.audio.music)-1]; last != event.CueHurry {
		t.Fatalf("expected hurry music, got %v", last)
	}

	h.c.timeLeft = 1
	h.c.tickClock(15)
	if h.c.TimeLeft() != 0 || h.c.Player().Alive() {
		t.Fatalf("expected time up to kill the player")
	}
	h.c.applyEvents()
	if h.c.Progress().Lives != 2 {
		t.Fatalf("expected a life lost, got %d", h.c.Progress().Lives)
	}
}

func TestDeathRestartsParentLevel(t *testing.T) {
	h := newHarness(t)
	h.enterLevel(t)
	h.c.progress.World = 1.5
	h.c.progress.Size = player.Big

	h.c.Player().Kill(&h.c.events)
	for i := 0; i < 400 && h.c.Mode() == event.ModeLevel; i++ {
		h.c.Update(player.Input{}, 3)
	}

	if h.c.Mode() != event.ModeLoading {
		t.Fatalf("expected loading after death, got %v", h.c.Mode())
	}
	p := h.c.Progress()
	if p.Lives != 2 || p.World != 1 || p.Size != player.Small || p.Resume != nil {
		t.Fatalf("unexpected progress after death %+v", p)
	}
}

func TestLastDeathEndsGame(t *testing.T) {
	h := newHarness(t)
	h.enterLevel(t)
	h.c.progress.Lives = 1

	h.c.Player().Kill(&h.c.events)
	for i := 0; i < 400 && h.c.Mode() == event.ModeLevel; i++ {
		h.c.Update(player.Input{}, 3)
	}
	if h.c.Mode() != event.ModeGameOver {
		t.Fatalf("expected game over, got %v", h.c.Mode())
	}
	if last := h.audio.music[len(h.audio.music)-1]; last != event.CueGameOver {
		t.Fatalf("expected game over music, got %v", last)
	}
}

func TestSegmentChangeCarriesSizeAndResume(t *testing.T) {
	h := newHarness(t)
	h.enterLevel(t)
	h.c.Player().Upgrade(&h.c.events)

	resume := cp.Vector{X: 80, Y: 40}
	h.c.events.Push(event.Event{Kind: event.SegmentChange, World: 1.5, Pos: resume})
	h.c.applyEvents()
	if h.c.Mode() != event.ModeLoading {
		t.Fatalf("expected loading, got %v", h.c.Mode())
	}

	for i := 0; i < 3; i++ {
		h.c.Update(player.Input{}, 30)
	}
	if got := h.levels.loads[len(h.levels.loads)-1]; got != 1.5 {
		t.Fatalf("expected world 1.5 loaded, got %v", got)
	}
	p := h.c.Player()
	if p.Size() != player.Big {
		t.Fatalf("expected big player carried over, got %v", p.Size())
	}
	if p.Body().Pos.X != resume.X || p.Body().Bottom() != resume.Y+16 {
		t.Fatalf("expected player at resume point, got %v", p.Body().Pos)
	}
	if h.c.Progress().Resume != nil {
		t.Fatalf("resume point should be consumed by the load")
	}
}

func TestLevelComplete(t *testing.T) {
	cases := []struct {
		name  string
		next  float64
		mode  event.Mode
		world float64
	}{
		{"next_world", 2, event.ModeLoading, 2},
		{"last_world", 0, event.ModeGameOver, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(t)
			h.levels.next = c.next
			h.enterLevel(t)

			h.c.events.Push(event.Event{Kind: event.LevelComplete})
			h.c.applyEvents()
			if h.c.Mode() != c.mode || h.c.Progress().World != c.world {
				t.Fatalf("expected %v at world %v, got %v at %v", c.mode, c.world, h.c.Mode(), h.c.Progress().World)
			}
		})
	}
}

func TestPowerupChoice(t *testing.T) {
	h := newHarness(t)
	h.enterLevel(t)

	h.c.events.Push(event.Event{Kind: event.Powerup})
	h.c.events.Push(event.Event{Kind: event.Powerup, OneUp: true})
	h.c.applyEvents()
	h.c.Player().Upgrade(&h.c.events)
	h.c.events.Push(event.Event{Kind: event.Powerup})
	h.c.applyEvents()

	got := h.c.Powerups()
	want := []pickup.Kind{pickup.Mushroom, pickup.OneUp, pickup.FireFlower}
	if len(got) != len(want) {
		t.Fatalf("expected %d powerups, got %d", len(want), len(got))
	}
	for i, k := range want {
		if got[i].Kind() != k {
			t.Fatalf("powerup %d: expected %v, got %v", i, k, got[i].Kind())
		}
	}
}

func TestFireballLimit(t *testing.T) {
	h := newHarness(t)
	h.enterLevel(t)
	for i := 0; i < 3; i++ {
		h.c.events.Push(event.Event{Kind: event.Fireball, Pos: cp.Vector{X: 48, Y: 190}, Dir: 1})
	}
	h.c.applyEvents()
	if n := len(h.c.Fireballs()); n != 2 {
		t.Fatalf("expected 2 fireballs, got %d", n)
	}
	if h.audio.played(event.CueFireball) != 2 {
		t.Fatalf("expected 2 fireball cues, got %v", h.audio.cues)
	}
}

func TestEnemyDefeatedAwardsPoints(t *testing.T) {
	h := newHarness(t)
	h.enterLevel(t)
	h.c.events.Push(event.Event{Kind: event.EnemyDefeated, Amount: 100, Pos: cp.Vector{X: 60, Y: 100}})
	h.c.applyEvents()
	if h.c.Progress().Points != 100 {
		t.Fatalf("expected 100 points, got %d", h.c.Progress().Points)
	}
	if len(h.c.Effects()) != 2 {
		t.Fatalf("expected floating points and a falling enemy, got %d effects", len(h.c.Effects()))
	}
}

func TestPauseFreezesLevel(t *testing.T) {
	h := newHarness(t)
	h.enterLevel(t)

	h.c.TogglePause()
	before := h.c.ModeElapsed()
	h.c.Update(player.Input{Right: true}, 30)
	if h.c.ModeElapsed() != before || !h.c.Paused() {
		t.Fatalf("paused level should not advance")
	}
	if h.audio.paused == 0 || h.audio.played(event.CuePause) != 1 {
		t.Fatalf("expected pause cue and paused music")
	}

	h.c.TogglePause()
	h.c.Update(player.Input{}, 3)
	if h.c.ModeElapsed() == before {
		t.Fatalf("resumed level should advance")
	}
}

func TestWorldLabel(t *testing.T) {
	cases := []struct {
		world float64
		want  string
	}{
		{1, "1-1"},
		{1.5, "1-1"},
		{4, "1-4"},
		{5, "2-1"},
		{8, "2-4"},
		{0, "1-1"},
	}
	for _, c := range cases {
		if got := WorldLabel(c.world); got != c.want {
			t.Fatalf("WorldLabel(%v): expected %q, got %q", c.world, c.want, got)
		}
	}
}
