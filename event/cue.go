package event

// Cue names a sound effect or music track.
type Cue string

const (
	CueJump        Cue = "jump"
	CueJumpBig     Cue = "jump_big"
	CueStomp       Cue = "stomp"
	CueKick        Cue = "kick"
	CueBump        Cue = "bump"
	CueBreak       Cue = "break"
	CueCoin        Cue = "coin"
	CueOneUp       Cue = "1up"
	CuePowerup     Cue = "powerup"
	CueAppear      Cue = "powerup_appears"
	CuePipe        Cue = "pipe"
	CueFireball    Cue = "fireball"
	CuePause       Cue = "pause"
	CueFlagpole    Cue = "flagpole"
	CueDie         Cue = "die"
	CueGameOver    Cue = "game_over"
	CueHurry       Cue = "hurry"
	CueOverworld   Cue = "overworld"
	CueUnderground Cue = "underground"
	CueClear       Cue = "stage_clear"
)
