package sound

import (
	"encoding/binary"
	"testing"

	"github.com/milk9111/mariusz/event"
)

func synth(t *testing.T, notes []Note, volume float64) []byte {
	t.Helper()
	buf, err := Synthesize(notes, SampleRate, volume)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	return buf
}

func TestSynthesizeLength(t *testing.T) {
	cases := []struct {
		name  string
		notes []Note
		want  int
	}{
		{"single", []Note{{Freq: 440, Dur: 0.5}}, 22050 * 4},
		{"with_rest", []Note{{Freq: 440, Dur: 0.1}, {Dur: 0.1}}, 2 * 4410 * 4},
		{"empty", nil, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := len(synth(t, c.notes, 0.5)); got != c.want {
				t.Fatalf("expected %d bytes, got %d", c.want, got)
			}
		})
	}
}

func TestSynthesizeSquareWave(t *testing.T) {
	buf := synth(t, []Note{{Freq: 441, Dur: 1}}, 1)
	sample := func(i int) int16 { return int16(binary.LittleEndian.Uint16(buf[i*4:])) }
	n := len(buf) / 4

	// Count rising edges over the unfaded part of the note.
	body := int(float64(n) * (1 - fade))
	rises, peak := 0, int16(0)
	for i := 1; i < body; i++ {
		if sample(i-1) < 0 && sample(i) >= 0 {
			rises++
		}
		if s := sample(i); s > peak {
			peak = s
		}
	}
	cycles := 441.0
	want := int(cycles * (1 - fade))
	if rises < want-2 || rises > want+2 {
		t.Fatalf("expected about %d cycles, got %d", want, rises)
	}
	if peak < 30000 {
		t.Fatalf("full volume square wave should peak near max, got %d", peak)
	}

	left, right := binary.LittleEndian.Uint16(buf[0:]), binary.LittleEndian.Uint16(buf[2:])
	if left != right {
		t.Fatalf("channels should match, got %d and %d", left, right)
	}
	if s := sample(n - 1); s > 200 || s < -200 {
		t.Fatalf("note should fade to silence, last sample %d", s)
	}
}

func TestRestIsSilent(t *testing.T) {
	for i, b := range synth(t, []Note{{Dur: 0.01}}, 1) {
		if b != 0 {
			t.Fatalf("byte %d of a rest is %d", i, b)
		}
	}
}

func TestEveryCueHasSound(t *testing.T) {
	cues := []event.Cue{
		event.CueJump, event.CueJumpBig, event.CueStomp, event.CueKick, event.CueBump,
		event.CueBreak, event.CueCoin, event.CueOneUp, event.CuePowerup, event.CueAppear,
		event.CuePipe, event.CueFireball, event.CuePause, event.CueFlagpole, event.CueDie,
		event.CueGameOver, event.CueHurry, event.CueOverworld, event.CueUnderground, event.CueClear,
	}
	p := New(nil, true, 0.3)
	for _, cue := range cues {
		buf, ok := p.pcm(cue)
		if !ok || len(buf) == 0 {
			t.Fatalf("cue %q has no sound", cue)
		}
	}
}

func TestMutedPlayerIsSafe(t *testing.T) {
	p := New(nil, true, 0.3)
	p.Play(event.CueCoin)
	p.PlayMusic(event.CueOverworld, true)
	p.PauseMusic()
	p.Close()
}
