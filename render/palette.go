package render

import (
	"image/color"

	"github.com/milk9111/mariusz/tile"
	"golang.org/x/image/colornames"
)

var (
	skyOverworld   = color.RGBA{R: 0x5c, G: 0x94, B: 0xfc, A: 0xff}
	skyUnderground = colornames.Black

	rockColor     = color.RGBA{R: 0xc8, G: 0x4c, B: 0x0c, A: 0xff}
	brickColor    = color.RGBA{R: 0xb4, G: 0x34, B: 0x00, A: 0xff}
	darkBrick     = color.RGBA{R: 0x00, G: 0x6c, B: 0x9c, A: 0xff}
	questionColor = color.RGBA{R: 0xfc, G: 0x98, B: 0x38, A: 0xff}
	emptyBlock    = color.RGBA{R: 0x88, G: 0x58, B: 0x18, A: 0xff}
	pipeColor     = colornames.Limegreen
	pipeRim       = colornames.Darkgreen

	coinColor  = colornames.Gold
	flagColor  = colornames.White
	poleColor  = colornames.Lightgreen
	decorColor = color.RGBA{R: 0x80, G: 0xd0, B: 0x10, A: 0xff}

	smallColor = colornames.Red
	fireColor  = colornames.White
	overalls   = color.RGBA{R: 0x6a, G: 0x6b, B: 0x04, A: 0xff}

	goombaRed  = color.RGBA{R: 0x99, G: 0x4e, B: 0x00, A: 0xff}
	goombaBlue = color.RGBA{R: 0x00, G: 0x50, B: 0x80, A: 0xff}
	koopaGreen = colornames.Green
	shellColor = colornames.Darkolivegreen

	mushroomColor = colornames.Orangered
	oneUpColor    = colornames.Limegreen
	flowerColor   = colornames.Orange
	fireballColor = colornames.Orangered
	debrisColor   = brickColor

	textColor = colornames.White
	shade     = color.RGBA{A: 0xa0}
)

// tileColor picks the fill for a tile; the second result is false when the
// tile is invisible.
func tileColor(t tile.Tile) (color.Color, bool) {
	switch v := t.(type) {
	case *tile.BrickTile:
		if v.Dark {
			return darkBrick, true
		}
		return brickColor, true
	case *tile.Block:
		if !v.Visible() {
			return nil, false
		}
		if v.Supply() <= 0 && v.State() != tile.BlockBumped {
			return emptyBlock, true
		}
		if v.Kind() == tile.CoinBrick {
			return brickColor, true
		}
		return questionColor, true
	}
	switch t.Kind() {
	case tile.Rock:
		return rockColor, true
	case tile.SolidBlock:
		return emptyBlock, true
	case tile.Plate:
		return colornames.Tan, true
	case tile.Pipe:
		return pipeColor, true
	}
	return colornames.Magenta, true
}
