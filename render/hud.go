package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/mariusz/common"
	"github.com/milk9111/mariusz/event"
	"github.com/milk9111/mariusz/game"
	"golang.org/x/image/font/basicfont"
)

var face text.Face = text.NewGoXFace(basicfont.Face7x13)

func (v view) text(s string, x, y float64) {
	drawText(v.dst, s, x-v.scroll, y, text.AlignStart)
}

func drawText(dst *ebiten.Image, s string, x, y float64, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	op.PrimaryAlign = align
	text.Draw(dst, s, face, op)
}

func centered(dst *ebiten.Image, s string, y float64) {
	drawText(dst, s, common.DisplayWidth/2, y, text.AlignCenter)
}

// HUD draws the status strip: points, coins, world and time left.
func HUD(dst *ebiten.Image, c *game.Controller) {
	p := c.Progress()
	drawText(dst, "MARIO", 16, 2, text.AlignStart)
	drawText(dst, fmt.Sprintf("%06d", p.Points), 16, 14, text.AlignStart)
	drawText(dst, fmt.Sprintf("x%02d", p.Coins), 88, 14, text.AlignStart)
	drawText(dst, "WORLD", 136, 2, text.AlignStart)
	drawText(dst, game.WorldLabel(p.World), 144, 14, text.AlignStart)
	drawText(dst, "TIME", 200, 2, text.AlignStart)
	if c.Mode() == event.ModeLevel {
		drawText(dst, fmt.Sprintf("%03d", c.TimeLeft()), 204, 14, text.AlignStart)
	}
}

// Frame draws whatever the current mode shows.
func Frame(dst *ebiten.Image, c *game.Controller) {
	p := c.Progress()
	switch c.Mode() {
	case event.ModeMenu:
		dst.Fill(skyOverworld)
		centered(dst, "SUPER MARIUSZ", 72)
		centered(dst, "PRESS ENTER", 120)
		centered(dst, fmt.Sprintf("TOP- %06d", p.HighScore), 160)
	case event.ModeLoading:
		dst.Fill(skyUnderground)
		centered(dst, "WORLD "+game.WorldLabel(p.World), 96)
		centered(dst, fmt.Sprintf("MARIO x %d", p.Lives), 120)
	case event.ModeLevel:
		World(dst, c)
		if c.Paused() {
			vector.FillRect(dst, 0, 0, common.DisplayWidth, common.DisplayHeight, shade, false)
			centered(dst, "PAUSED", 104)
		}
	case event.ModeGameOver:
		dst.Fill(skyUnderground)
		centered(dst, "GAME OVER", 104)
	}
	HUD(dst, c)
}
