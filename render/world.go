// Package render draws the game with flat colored shapes and the built-in
// bitmap font. It reads the controller and never mutates it.
package render

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariusz/common"
	"github.com/milk9111/mariusz/effect"
	"github.com/milk9111/mariusz/enemy"
	"github.com/milk9111/mariusz/game"
	"github.com/milk9111/mariusz/level"
	"github.com/milk9111/mariusz/pickup"
	"github.com/milk9111/mariusz/player"
	"github.com/milk9111/mariusz/tile"
)

// view translates world coordinates into screen coordinates.
type view struct {
	dst    *ebiten.Image
	scroll float64
}

func (v view) rect(x, y, w, h float64, clr color.Color) {
	sx := x - v.scroll
	if sx+w < 0 || sx > common.DisplayWidth {
		return
	}
	vector.FillRect(v.dst, float32(sx), float32(y), float32(w), float32(h), clr, false)
}

func (v view) box(bb cp.BB, dy float64, clr color.Color) {
	v.rect(bb.L, bb.B+dy, bb.R-bb.L, bb.T-bb.B, clr)
}

// World draws the level, its entities and the player.
func World(dst *ebiten.Image, c *game.Controller) {
	lvl := c.Level()
	if lvl == nil {
		return
	}
	Level(dst, lvl, c.Scroll())
	v := view{dst: dst, scroll: c.Scroll()}

	for _, it := range c.Powerups() {
		drawPickup(v, it)
	}
	for _, e := range lvl.Enemies {
		drawEnemy(v, e)
	}
	for _, f := range c.Fireballs() {
		v.box(f.Bounds(), 0, fireballColor)
	}
	if p := c.Player(); p != nil {
		drawPlayer(v, p, c.ModeElapsed())
	}
	for _, fx := range c.Effects() {
		drawEffect(v, fx)
	}
}

// Level draws the static parts of a level: sky, scenery, tiles, coins and
// the flagpole.
func Level(dst *ebiten.Image, lvl *level.Level, scroll float64) {
	if lvl.Theme == "underground" {
		dst.Fill(skyUnderground)
	} else {
		dst.Fill(skyOverworld)
	}
	v := view{dst: dst, scroll: scroll}

	for _, d := range lvl.Decorations {
		h := float64(common.TileSize) / 2
		v.rect(d.Pos.X, d.Pos.Y+common.TileSize-h, common.TileSize, h, decorColor)
	}
	if f := lvl.Flagpole; f != nil {
		v.rect(f.X-1, f.Top, 2, f.Base-f.Top+common.TileSize, poleColor)
		v.rect(f.X-common.TileSize, f.Top+4, common.TileSize, 10, flagColor)
	}
	for _, t := range lvl.Tiles {
		drawTile(v, t)
	}
	for _, coin := range lvl.Coins {
		bb := coin.Bounds()
		v.rect(bb.L+4, bb.B+2, 8, 12, coinColor)
	}
}

func drawTile(v view, t tile.Tile) {
	if t.Broken() {
		return
	}
	clr, ok := tileColor(t)
	if !ok {
		return
	}
	bb := t.Bounds()
	v.box(bb, t.Offset(), clr)
	if s, ok := t.(*tile.Static); ok && s.Kind() == tile.Pipe && (s.Part == level.CodePipeFirst || s.Part == level.CodePipeFirst+1) {
		v.rect(bb.L, bb.B, bb.R-bb.L, 3, pipeRim)
	}
}

func drawEnemy(v view, e enemy.Enemy) {
	if e.Removed() {
		return
	}
	bb := e.Bounds()
	switch e.Kind() {
	case enemy.Goomba:
		clr := goombaRed
		if g, ok := e.(*enemy.GoombaEnemy); ok && g.Theme == "blue" {
			clr = goombaBlue
		}
		if e.State() == enemy.Dead {
			v.rect(bb.L, bb.T-common.TileSize/2, bb.R-bb.L, common.TileSize/2, clr)
			return
		}
		v.box(bb, 0, clr)
	case enemy.Koopa:
		if e.State() == enemy.Walk {
			v.box(bb, 0, koopaGreen)
			return
		}
		clr := shellColor
		if e.State() == enemy.Reviving {
			clr = koopaGreen
		}
		v.rect(bb.L, bb.T-common.TileSize, bb.R-bb.L, common.TileSize, clr)
	}
}

func drawPickup(v view, it pickup.Pickup) {
	if it.Removed() {
		return
	}
	var clr color.Color
	switch it.Kind() {
	case pickup.Mushroom:
		clr = mushroomColor
	case pickup.OneUp:
		clr = oneUpColor
	case pickup.FireFlower:
		clr = flowerColor
	default:
		clr = coinColor
	}
	v.box(it.Bounds(), 0, clr)
}

func drawPlayer(v view, p *player.Player, elapsed float64) {
	if p.Hidden() {
		return
	}
	if p.Invulnerable() && int(elapsed*15)%2 == 1 {
		return
	}
	bb := p.Bounds()
	top := smallColor
	if p.Size() == player.Fire {
		top = fireColor
	}
	half := (bb.T - bb.B) / 2
	v.rect(bb.L, bb.B, bb.R-bb.L, half, top)
	v.rect(bb.L, bb.B+half, bb.R-bb.L, half, overalls)
}

func drawEffect(v view, fx effect.Effect) {
	pos := fx.Pos()
	switch e := fx.(type) {
	case *effect.Points:
		v.text(strconv.Itoa(e.Amount), pos.X, pos.Y)
	case *effect.Coin:
		w := 8 * math.Abs(math.Cos(e.Spin()*2*math.Pi))
		v.rect(pos.X+8-w/2, pos.Y, max(w, 1), 14, coinColor)
	case *effect.Debris:
		v.rect(pos.X, pos.Y, 8, 8, debrisColor)
	case *effect.Enemy:
		clr := goombaRed
		if enemy.Kind(e.Variant) == enemy.Koopa {
			clr = shellColor
		}
		v.rect(pos.X, pos.Y, common.TileSize, common.TileSize, clr)
	}
}
