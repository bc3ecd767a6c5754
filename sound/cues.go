package sound

import "github.com/milk9111/mariusz/event"

var rest = Note{Dur: 0.06}

// effects maps each sound cue to its chirp.
var effects = map[event.Cue][]Note{
	event.CueJump:     sweep(c5, c6, 6, 0.15),
	event.CueJumpBig:  sweep(g4, c5, 6, 0.18),
	event.CueStomp:    sweep(c5, c4, 4, 0.08),
	event.CueKick:     {{Freq: g4, Dur: 0.04}, {Freq: c5, Dur: 0.05}},
	event.CueBump:     {{Freq: 110, Dur: 0.08}},
	event.CueBreak:    sweep(220, 80, 8, 0.2),
	event.CueCoin:     {{Freq: b4 * 2, Dur: 0.06}, {Freq: e5 * 2, Dur: 0.25}},
	event.CueOneUp:    {{Freq: e5, Dur: 0.08}, {Freq: g5, Dur: 0.08}, {Freq: e5 * 2, Dur: 0.08}, {Freq: c6, Dur: 0.08}, {Freq: d4 * 4, Dur: 0.08}, {Freq: g5 * 2, Dur: 0.12}},
	event.CuePowerup:  sweep(c4, c6, 12, 0.6),
	event.CueAppear:   sweep(g4, g5, 8, 0.4),
	event.CuePipe:     {{Freq: 110, Dur: 0.08}, rest, {Freq: 110, Dur: 0.08}, rest, {Freq: 110, Dur: 0.08}},
	event.CueFireball: sweep(c6, g5, 3, 0.06),
	event.CuePause:    {{Freq: e5, Dur: 0.08}, {Freq: c5, Dur: 0.08}, {Freq: e5, Dur: 0.08}, {Freq: c5, Dur: 0.12}},
	event.CueFlagpole: sweep(c6, c4, 16, 1),
	event.CueDie:      {{Freq: b4, Dur: 0.1}, {Freq: f4 * 2, Dur: 0.2}, rest, {Freq: f4 * 2, Dur: 0.1}, {Freq: e5, Dur: 0.1}, {Freq: d4 * 2, Dur: 0.1}, {Freq: c5, Dur: 0.3}},
}

// tracks maps each music cue to one pass of its loop.
var tracks = map[event.Cue][]Note{
	event.CueOverworld: {
		{Freq: e5, Dur: 0.12}, {Freq: e5, Dur: 0.12}, rest, {Freq: e5, Dur: 0.12}, rest,
		{Freq: c5, Dur: 0.12}, {Freq: e5, Dur: 0.24}, {Freq: g5, Dur: 0.24}, {Dur: 0.24},
		{Freq: g4, Dur: 0.24}, {Dur: 0.24},
	},
	event.CueUnderground: {
		{Freq: c4, Dur: 0.12}, {Freq: c5, Dur: 0.12}, {Freq: a4 / 2, Dur: 0.12}, {Freq: a4, Dur: 0.12},
		{Freq: 233.08, Dur: 0.12}, {Freq: 466.16, Dur: 0.12}, {Dur: 0.6},
	},
	event.CueHurry: {
		{Freq: e5 * 1.25, Dur: 0.09}, {Freq: e5 * 1.25, Dur: 0.09}, rest, {Freq: e5 * 1.25, Dur: 0.09}, rest,
		{Freq: c5 * 1.25, Dur: 0.09}, {Freq: e5 * 1.25, Dur: 0.18}, {Freq: g5 * 1.25, Dur: 0.18}, {Dur: 0.18},
	},
	event.CueGameOver: {{Freq: c5, Dur: 0.3}, {Freq: g4, Dur: 0.3}, {Freq: e4, Dur: 0.3}, {Freq: a4, Dur: 0.2}, {Freq: b4, Dur: 0.2}, {Freq: a4, Dur: 0.2}, {Freq: g4, Dur: 0.6}},
	event.CueClear:    {{Freq: g4, Dur: 0.12}, {Freq: c5, Dur: 0.12}, {Freq: e5, Dur: 0.12}, {Freq: g5, Dur: 0.12}, {Freq: c6, Dur: 0.12}, {Freq: e5 * 2, Dur: 0.12}, {Freq: g5 * 2, Dur: 0.5}},
}
