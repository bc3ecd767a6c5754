// Package level assembles a playable level from grid data: tiles, enemy and
// coin rosters, decorations, portals, the flagpole and the spawn point.
package level

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariusz/common"
	"github.com/milk9111/mariusz/enemy"
	"github.com/milk9111/mariusz/levels"
	"github.com/milk9111/mariusz/physics"
	"github.com/milk9111/mariusz/pickup"
	"github.com/milk9111/mariusz/player"
	"github.com/milk9111/mariusz/tile"
)

// Grid codes.
const (
	CodeEmpty        = 0
	CodeRock         = 1
	CodeBlock        = 2
	CodeBrick        = 3
	CodeDarkBrick    = 4
	CodePlate        = 5
	CodeCoinBrick    = 6
	CodeHidden       = 7
	CodeQuestion     = 10
	CodePowerupBlock = 11
	CodeCoin         = 12
	CodePipeFirst    = 13
	CodePipeLast     = 17
	CodeSpawn        = 20
	CodeGoomba       = 21
	CodeKoopa        = 22
	CodeDarkGoomba   = 23
	CodeDecorFirst   = 30
	CodeDecorLast    = 39
)

// DefaultSpawn is used when the grid has no spawn cell.
var DefaultSpawn = cp.Vector{X: 32, Y: 64}

// Decoration is scenery drawn behind everything else.
type Decoration struct {
	Code int
	Pos  cp.Vector
}

// Level is a built level. Its structure is fixed after Build; interactive
// tiles and entities mutate only their own state.
type Level struct {
	World       float64
	Theme       string
	Next        float64
	Tiles       []tile.Tile
	Enemies     []enemy.Enemy
	Coins       []pickup.Pickup
	Decorations []Decoration
	Portals     []player.Portal
	Flagpole    *player.Flagpole
	Spawn       cp.Vector
	Width       float64
	MaxScroll   float64
}

// Options carries the tuning used to construct entities.
type Options struct {
	Enemy enemy.Config
	// CoinSupply overrides the level's limited coin brick supply when positive.
	CoinSupply int
}

func DefaultOptions() Options {
	return Options{Enemy: enemy.DefaultConfig()}
}

// Cell returns the top-left world position of a grid cell.
func Cell(col, row int) cp.Vector {
	return cp.Vector{X: float64(col * common.TileSize), Y: float64(row*common.TileSize + common.TileOffsetY)}
}

// Build turns level data into entities.
func Build(src *levels.Level, opts Options) (*Level, error) {
	if src == nil {
		return nil, fmt.Errorf("level: build: nil level data")
	}
	supply := src.CoinSupply
	if opts.CoinSupply > 0 {
		supply = opts.CoinSupply
	}
	dark := src.Theme == "underground"

	lvl := &Level{
		World: src.World,
		Theme: src.Theme,
		Next:  src.Next,
		Spawn: DefaultSpawn,
		Width: float64(src.Width() * common.TileSize),
	}
	lvl.MaxScroll = max(lvl.Width-common.DisplayWidth, 0)

	for row, cells := range src.Grid {
		for col, code := range cells {
			if err := lvl.place(code, col, row, supply, dark, opts); err != nil {
				return nil, fmt.Errorf("level: build world %v: %w", src.World, err)
			}
		}
	}

	for _, p := range src.Portals {
		portal, err := buildPortal(p)
		if err != nil {
			return nil, fmt.Errorf("level: build world %v: %w", src.World, err)
		}
		lvl.Portals = append(lvl.Portals, portal)
	}

	if f := src.Flagpole; f != nil {
		top, base := Cell(f.Col, f.TopRow), Cell(f.Col, f.BaseRow)
		lvl.Flagpole = &player.Flagpole{
			X:     top.X + common.TileSize/2,
			Top:   top.Y,
			Base:  base.Y,
			GoalX: Cell(f.GoalCol, 0).X,
		}
	}

	return lvl, nil
}

func (l *Level) place(code, col, row, supply int, dark bool, opts Options) error {
	pos := Cell(col, row)
	x, y := pos.X, pos.Y
	switch {
	case code == CodeEmpty:
	case code == CodeRock:
		l.Tiles = append(l.Tiles, tile.New(tile.Rock, x, y))
	case code == CodeBlock:
		l.Tiles = append(l.Tiles, tile.New(tile.SolidBlock, x, y))
	case code == CodeBrick, code == CodeDarkBrick:
		b := tile.NewBrick(x, y)
		b.Dark = dark || code == CodeDarkBrick
		l.Tiles = append(l.Tiles, b)
	case code == CodePlate:
		l.Tiles = append(l.Tiles, tile.New(tile.Plate, x, y))
	case code == CodeCoinBrick:
		l.Tiles = append(l.Tiles, tile.NewCoinBrick(x, y, supply))
	case code == CodeHidden:
		l.Tiles = append(l.Tiles, tile.NewHidden(x, y))
	case code == CodeQuestion:
		l.Tiles = append(l.Tiles, tile.NewQuestion(x, y, false))
	case code == CodePowerupBlock:
		l.Tiles = append(l.Tiles, tile.NewQuestion(x, y, true))
	case code == CodeCoin:
		l.Coins = append(l.Coins, pickup.NewCoin(x, y))
	case code >= CodePipeFirst && code <= CodePipeLast:
		t := tile.New(tile.Pipe, x, y)
		t.Part = code
		l.Tiles = append(l.Tiles, t)
	case code == CodeSpawn:
		l.Spawn = pos
	case code == CodeGoomba:
		l.Enemies = append(l.Enemies, enemy.NewGoomba(x, y, opts.Enemy))
	case code == CodeDarkGoomba:
		g := enemy.NewGoomba(x, y, opts.Enemy)
		g.Theme = "blue"
		l.Enemies = append(l.Enemies, g)
	case code == CodeKoopa:
		l.Enemies = append(l.Enemies, enemy.NewKoopa(x, y, opts.Enemy))
	case code >= CodeDecorFirst && code <= CodeDecorLast:
		l.Decorations = append(l.Decorations, Decoration{Code: code, Pos: pos})
	default:
		return fmt.Errorf("unknown code %d at row %d col %d", code, row, col)
	}
	return nil
}

func buildPortal(p levels.Portal) (player.Portal, error) {
	pos := Cell(p.Col, p.Row)
	out := player.Portal{World: p.World, Resume: Cell(p.ResumeCol, p.ResumeRow)}
	switch p.Dir {
	case "", "down":
		out.Dir = player.Down
		out.Area = physics.Box(pos.X, pos.Y, 2*common.TileSize, common.TileSize)
	case "right":
		out.Dir = player.Right
		out.Area = physics.Box(pos.X, pos.Y, common.TileSize, 2*common.TileSize)
	default:
		return player.Portal{}, fmt.Errorf("portal at row %d col %d: unknown direction %q", p.Row, p.Col, p.Dir)
	}
	return out, nil
}

// Load reads and builds the embedded level for world.
func Load(world float64, opts Options) (*Level, error) {
	src, err := levels.Load(world)
	if err != nil {
		return nil, err
	}
	return Build(src, opts)
}
