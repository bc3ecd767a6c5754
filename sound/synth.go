// Package sound plays the game's cues as synthesized square-wave chirps and
// loops, so the binary needs no audio files. Tones are built as beep
// streamers and rendered to PCM for ebiten's audio context.
package sound

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the rate every buffer is rendered at.
const SampleRate beep.SampleRate = 44100

// Note is one tone; a zero Freq is a rest. Dur is in seconds.
type Note struct {
	Freq float64
	Dur  float64
}

const (
	c4 = 261.63
	d4 = 293.66
	e4 = 329.63
	f4 = 349.23
	g4 = 392.00
	a4 = 440.00
	b4 = 493.88
	c5 = 523.25
	e5 = 659.25
	g5 = 783.99
	c6 = 1046.50
)

// fade is the share of each note that ramps down to silence, avoiding
// clicks between tones.
const fade = 0.2

// stream turns one note into a finite streamer of n samples.
func (n Note) stream(rate beep.SampleRate) (beep.Streamer, int, error) {
	count := rate.N(secs(n.Dur))
	if n.Freq <= 0 {
		return beep.Silence(count), count, nil
	}
	tone, err := generators.SquareTone(rate, n.Freq)
	if err != nil {
		return nil, 0, fmt.Errorf("sound: tone %.1fHz: %w", n.Freq, err)
	}
	return beep.Take(count, tone), count, nil
}

// Synthesize renders notes as 16-bit little-endian stereo PCM at rate.
func Synthesize(notes []Note, rate beep.SampleRate, volume float64) ([]byte, error) {
	amp := math.Min(math.Max(volume, 0), 1) * math.MaxInt16
	var out []byte
	buf := make([][2]float64, 512)

	for _, n := range notes {
		s, count, err := n.stream(rate)
		if err != nil {
			return nil, err
		}
		ramp := int(float64(count) * fade)
		done := 0
		for {
			got, ok := s.Stream(buf)
			for i := 0; i < got; i++ {
				gain := amp
				if left := count - done; ramp > 0 && left < ramp {
					gain *= float64(left) / float64(ramp)
				}
				l := uint16(int16(buf[i][0] * gain))
				r := uint16(int16(buf[i][1] * gain))
				out = binary.LittleEndian.AppendUint16(out, l)
				out = binary.LittleEndian.AppendUint16(out, r)
				done++
			}
			if !ok || got == 0 {
				break
			}
		}
	}
	return out, nil
}

func secs(d float64) time.Duration {
	return time.Duration(d * float64(time.Second))
}

func sweep(from, to float64, steps int, dur float64) []Note {
	out := make([]Note, steps)
	for i := range out {
		t := float64(i) / float64(max(steps-1, 1))
		out[i] = Note{Freq: from + (to-from)*t, Dur: dur / float64(steps)}
	}
	return out
}
