package game

import (
	"github.com/milk9111/mariusz/effect"
	"github.com/milk9111/mariusz/enemy"
	"github.com/milk9111/mariusz/event"
	"github.com/milk9111/mariusz/pickup"
	"github.com/milk9111/mariusz/player"
	"github.com/milk9111/mariusz/tile"
)

// updateLevel runs one level frame. While the player is frozen by a size
// change or death only the player, tiles and effects advance.
func (c *Controller) updateLevel(in player.Input, dt float64) {
	lvl := c.level
	scroll := c.Scroll()
	q := &c.events

	for _, fx := range c.effects {
		fx.Update(dt, q)
	}

	if !c.player.Frozen() {
		env := &pickup.Env{Tiles: lvl.Tiles, Enemies: lvl.Enemies, Scroll: scroll, Events: q}
		for _, it := range c.powerups {
			it.Update(env, dt)
		}
		for _, f := range c.fireballs {
			f.Update(env, dt)
		}
		for _, e := range lvl.Enemies {
			if e.Removed() {
				continue
			}
			e.Update(&enemy.Env{Tiles: lvl.Tiles, Enemies: lvl.Enemies, Scroll: scroll, Events: q}, dt)
		}
	}

	c.player.Update(&player.World{
		Tiles:     lvl.Tiles,
		Enemies:   lvl.Enemies,
		Coins:     lvl.Coins,
		Powerups:  c.powerups,
		Portals:   lvl.Portals,
		Flagpole:  lvl.Flagpole,
		Fireballs: len(c.fireballs),
		Scroll:    scroll,
		Events:    q,
	}, in, dt)

	if c.player.Controllable() {
		c.tickClock(dt)
	}

	for _, t := range lvl.Tiles {
		t.Update(dt, q)
	}

	c.camera.Follow(c.player.Body().Pos.X)
	c.applyEvents()
	if c.level == nil {
		return
	}

	lvl.Tiles = tile.Sweep(lvl.Tiles)
	lvl.Enemies = enemy.Sweep(lvl.Enemies)
	lvl.Coins = pickup.Sweep(lvl.Coins)
	c.powerups = pickup.Sweep(c.powerups)
	c.fireballs = pickup.SweepFireballs(c.fireballs)
	c.effects = effect.Sweep(c.effects)
}

// tickClock counts the level time down. Running out kills the player.
func (c *Controller) tickClock(dt float64) {
	if c.timeLeft <= 0 {
		return
	}
	c.clock.Advance(dt)
	for n := c.clock.Every(c.cfg.TimeTick); n > 0 && c.timeLeft > 0; n-- {
		c.timeLeft--
		if !c.hurried && c.timeLeft <= c.cfg.HurryAt {
			c.hurried = true
			c.playMusic(event.CueHurry, true)
		}
		if c.timeLeft == 0 {
			c.log.Info("time up", "world", c.progress.World)
			c.player.Kill(&c.events)
		}
	}
}

// applyEvents drains the frame's events in order. A requested mode change
// is applied after the whole batch, the last request winning.
func (c *Controller) applyEvents() {
	var next *event.Mode
	request := func(m event.Mode) { next = &m }

	for batch := c.events.Drain(); len(batch) > 0; batch = c.events.Drain() {
		for _, evt := range batch {
			if m, ok := c.apply(evt); ok {
				request(m)
			}
		}
	}

	if next != nil {
		c.SwitchMode(*next)
	}
}

// apply handles one event and reports a requested mode change.
func (c *Controller) apply(evt event.Event) (event.Mode, bool) {
	phys := c.cfg.Physics
	switch evt.Kind {
	case event.AddCoin:
		if c.progress.addCoin(c.cfg.CoinsPerLife, c.cfg.CoinPoints) {
			c.audio.Play(event.CueOneUp)
		} else {
			c.audio.Play(event.CueCoin)
		}
	case event.AddPoints:
		c.progress.Points += evt.Amount
		if evt.ShowText {
			c.effects = append(c.effects, effect.NewPoints(evt.Pos, evt.Amount))
		}
	case event.FloatingPoints:
		c.effects = append(c.effects, effect.NewPoints(evt.Pos, evt.Amount))
	case event.SpinningCoin:
		c.effects = append(c.effects, effect.NewCoin(evt.Pos, phys))
	case event.Debris:
		for _, d := range effect.NewDebris(evt.Pos, phys) {
			c.effects = append(c.effects, d)
		}
	case event.Fireball:
		if len(c.fireballs) < c.cfg.Player.MaxFireballs {
			c.fireballs = append(c.fireballs, pickup.NewFireball(evt.Pos, evt.Dir, phys))
			c.audio.Play(event.CueFireball)
		}
	case event.Powerup:
		c.powerups = append(c.powerups, c.spawnPowerup(evt))
	case event.RemoveLife:
		c.progress.Lives--
	case event.AddLife:
		c.progress.Lives++
		c.audio.Play(event.CueOneUp)
	case event.Sound:
		c.audio.Play(evt.Cue)
	case event.EnemyDefeated:
		c.progress.Points += evt.Amount
		c.effects = append(c.effects,
			effect.NewPoints(evt.Pos, evt.Amount),
			effect.NewEnemy(evt.Pos, evt.Variant, phys))
	case event.SegmentChange:
		resume := evt.Pos
		c.progress.World = evt.World
		c.progress.Resume = &resume
		c.progress.Size = c.player.Size()
		return event.ModeLoading, true
	case event.LevelComplete:
		c.progress.Size = c.player.Size()
		c.progress.Resume = nil
		if c.level.Next <= 0 {
			c.log.Info("all worlds cleared", "points", c.progress.Points)
			return event.ModeGameOver, true
		}
		c.progress.World = c.level.Next
		return event.ModeLoading, true
	case event.SwitchMode:
		if evt.Mode == event.ModeLoading {
			// A death restarts the parent level from its spawn as small.
			c.progress.World = restartWorld(c.progress.World)
			c.progress.Resume = nil
			c.progress.Size = player.Small
		}
		return evt.Mode, true
	default:
		c.log.Debug("unhandled event", "kind", evt.Kind)
	}
	return 0, false
}

// spawnPowerup picks the item a block releases: a 1-UP when asked for,
// otherwise a mushroom for a small player and a fire flower for a big one.
func (c *Controller) spawnPowerup(evt event.Event) pickup.Pickup {
	x, y := evt.Pos.X, evt.Pos.Y
	switch {
	case evt.OneUp:
		return pickup.NewOneUp(x, y, c.cfg.Physics)
	case c.player.Size() == player.Small:
		return pickup.NewMushroom(x, y, c.cfg.Physics)
	}
	return pickup.NewFireFlower(x, y)
}
