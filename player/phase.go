package player

import (
	"github.com/milk9111/mariusz/event"
	"github.com/milk9111/mariusz/physics"
)

// phase is one node of the player's top-level state machine. Locomotion
// (idle, run, brake, crouch, jump) lives inside the normal phase; the other
// phases take over the player for a transition or an exit.
type phase interface {
	Name() string
	State() (State, bool)
	Enter(ctx *phaseContext)
	Exit(ctx *phaseContext)
	Update(ctx *phaseContext)
}

// phaseContext is what a phase sees during a call. w is nil for Enter and
// Exit.
type phaseContext struct {
	p  *Player
	w  *World
	in Input
	dt float64
}

// Phase singletons (avoid allocations on transitions).
var (
	phaseNormal    phase = &normalPhase{}
	phaseUpgrade   phase = &upgradePhase{}
	phaseDowngrade phase = &downgradePhase{}
	phaseDie       phase = &diePhase{}
	phasePipe      phase = &pipePhase{}
	phaseInPipe    phase = &inPipePhase{}
	phaseSlide     phase = &slidePhase{}
	phaseSit       phase = &sitPhase{}
	phaseGoal      phase = &goalPhase{}
	phaseComplete  phase = &completePhase{}
)

type normalPhase struct{}

type upgradePhase struct{}

type downgradePhase struct{}

type diePhase struct{}

type pipePhase struct{}

type inPipePhase struct{}

type slidePhase struct{}

type sitPhase struct{}

type goalPhase struct{}

type completePhase struct{}

func (normalPhase) Name() string { return "normal" }
func (normalPhase) State() (State, bool) { return 0, false }
func (normalPhase) Enter(ctx *phaseContext) {}
func (normalPhase) Exit(ctx *phaseContext) {}
func (normalPhase) Update(ctx *phaseContext) {
	ctx.p.step(ctx.w, ctx.in, ctx.dt)
}

func (upgradePhase) Name() string { return "upgrade" }
func (upgradePhase) State() (State, bool) { return Upgrading, true }
func (upgradePhase) Enter(ctx *phaseContext) {
	ctx.p.seqIndex = 0
	ctx.p.phaseTimer.Reset()
}
func (upgradePhase) Exit(ctx *phaseContext) {}
func (upgradePhase) Update(ctx *phaseContext) {
	p := ctx.p
	p.phaseTimer.Advance(ctx.dt)
	p.seqIndex += p.phaseTimer.Every(p.cfg.SequenceStep)
	if p.seqIndex >= len(Sequence) {
		p.seqIndex = len(Sequence) - 1
		p.setPhase(phaseNormal)
	}
}

func (downgradePhase) Name() string { return "downgrade" }
func (downgradePhase) State() (State, bool) { return Downgrading, true }
func (downgradePhase) Enter(ctx *phaseContext) {
	ctx.p.seqIndex = len(Sequence)
	ctx.p.phaseTimer.Reset()
}
func (downgradePhase) Exit(ctx *phaseContext) {
	p := ctx.p
	p.shrink()
	p.size = Small
	p.seqIndex = 0
}
func (downgradePhase) Update(ctx *phaseContext) {
	p := ctx.p
	p.phaseTimer.Advance(ctx.dt)
	p.seqIndex -= p.phaseTimer.Every(p.cfg.SequenceStep)
	if p.seqIndex < 0 {
		p.setPhase(phaseNormal)
	}
}

func (diePhase) Name() string { return "die" }
func (diePhase) State() (State, bool) { return Die, true }
func (diePhase) Enter(ctx *phaseContext) {
	ctx.p.phaseTimer.Reset()
	ctx.p.signalled = false
}
func (diePhase) Exit(ctx *phaseContext) {}
func (diePhase) Update(ctx *phaseContext) {
	p := ctx.p
	p.phaseTimer.Advance(ctx.dt)
	t := p.phaseTimer.Elapsed()
	if t >= p.cfg.DeathPause && p.body.Pos.Y <= p.cfg.Floor {
		p.cfg.Physics.ApplyGravity(&p.body, ctx.dt)
		p.body.MoveY(ctx.dt)
	}
	if t >= p.cfg.DeathRestart && !p.signalled {
		p.signalled = true
		ctx.w.Events.Push(event.Event{Kind: event.SwitchMode, Mode: event.ModeLoading})
	}
}

func (pipePhase) Name() string { return "pipe" }
func (pipePhase) State() (State, bool) { return PipeTransit, true }
func (pipePhase) Enter(ctx *phaseContext) {
	ctx.p.body.Vel.X, ctx.p.body.Vel.Y = 0, 0
	ctx.p.phaseTimer.Reset()
	ctx.p.signalled = false
}
func (pipePhase) Exit(ctx *phaseContext) {}
func (pipePhase) Update(ctx *phaseContext) {
	p := ctx.p
	p.phaseTimer.Advance(ctx.dt)
	switch p.portal.Dir {
	case Right:
		p.body.Pos.X += p.cfg.PipeSpeed * ctx.dt
	default:
		p.body.Pos.Y += p.cfg.PipeSpeed * ctx.dt
	}
	if p.phaseTimer.Elapsed() >= p.cfg.PipeTime && !p.signalled {
		p.signalled = true
		p.hidden = true
		ctx.w.Events.Push(event.Event{Kind: event.SegmentChange, World: p.portal.World, Pos: p.portal.Resume})
		p.setPhase(phaseInPipe)
	}
}

func (inPipePhase) Name() string { return "in_pipe" }
func (inPipePhase) State() (State, bool) { return PipeTransit, true }
func (inPipePhase) Enter(ctx *phaseContext) {}
func (inPipePhase) Exit(ctx *phaseContext) {}
func (inPipePhase) Update(ctx *phaseContext) {}

func (slidePhase) Name() string { return "slide" }
func (slidePhase) State() (State, bool) { return Sliding, true }
func (slidePhase) Enter(ctx *phaseContext) {
	p := ctx.p
	p.body.Vel.X, p.body.Vel.Y = 0, 0
	p.body.SetRight(p.flag.X)
	p.facingLeft = false
}
func (slidePhase) Exit(ctx *phaseContext) {}
func (slidePhase) Update(ctx *phaseContext) {
	p := ctx.p
	p.body.Pos.Y += p.cfg.SlideSpeed * ctx.dt
	if p.body.Bottom() >= p.flag.Base {
		p.body.SetBottom(p.flag.Base)
		p.setPhase(phaseSit)
	}
}

func (sitPhase) Name() string { return "sit" }
func (sitPhase) State() (State, bool) { return Sitting, true }
func (sitPhase) Enter(ctx *phaseContext) {
	ctx.p.phaseTimer.Reset()
}
func (sitPhase) Exit(ctx *phaseContext) {}
func (sitPhase) Update(ctx *phaseContext) {
	p := ctx.p
	p.phaseTimer.Advance(ctx.dt)
	if p.phaseTimer.Elapsed() >= p.cfg.SitTime {
		ctx.w.Events.Play(event.CueClear)
		p.setPhase(phaseGoal)
	}
}

func (goalPhase) Name() string { return "goal" }
func (goalPhase) State() (State, bool) { return WalkingToGoal, true }
func (goalPhase) Enter(ctx *phaseContext) {
	ctx.p.body.Vel.X = ctx.p.cfg.GoalWalkSpeed
	ctx.p.facingLeft = false
}
func (goalPhase) Exit(ctx *phaseContext) {}
func (goalPhase) Update(ctx *phaseContext) {
	p := ctx.p
	p.body.MoveX(ctx.dt)
	p.cfg.Physics.ApplyGravity(&p.body, ctx.dt)
	p.body.MoveY(ctx.dt)
	if p.body.Vel.Y > 0 {
		physics.ResolveY(&p.body, ctx.w.Tiles, notSolid)
	}
	p.animateRun(ctx.dt)
	if p.body.Pos.X >= p.flag.GoalX {
		p.hidden = true
		p.setPhase(phaseComplete)
	}
}

func (completePhase) Name() string { return "complete" }
func (completePhase) State() (State, bool) { return WalkingToGoal, true }
func (completePhase) Enter(ctx *phaseContext) {
	ctx.p.body.Vel.X, ctx.p.body.Vel.Y = 0, 0
	ctx.p.phaseTimer.Reset()
	ctx.p.signalled = false
}
func (completePhase) Exit(ctx *phaseContext) {}
func (completePhase) Update(ctx *phaseContext) {
	p := ctx.p
	p.phaseTimer.Advance(ctx.dt)
	if p.phaseTimer.Elapsed() >= p.cfg.CompleteDelay && !p.signalled {
		p.signalled = true
		ctx.w.Events.Push(event.Event{Kind: event.LevelComplete})
	}
}
