// Package levels holds the embedded level data: one YAML file per world
// with the tile grid and the metadata the grid cannot express.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// ErrUnknownWorld is returned when no level file exists for a world.
var ErrUnknownWorld = errors.New("levels: unknown world")

type Level struct {
	World      float64   `yaml:"world"`
	Theme      string    `yaml:"theme"`
	Next       float64   `yaml:"next"`
	CoinSupply int       `yaml:"coin_supply"`
	Grid       [][]int   `yaml:"grid"`
	Portals    []Portal  `yaml:"portals,omitempty"`
	Flagpole   *Flagpole `yaml:"flagpole,omitempty"`
}

// Portal is a pipe entrance. Col and Row locate the pipe's top-left cell.
type Portal struct {
	Col       int     `yaml:"col"`
	Row       int     `yaml:"row"`
	Dir       string  `yaml:"dir"`
	World     float64 `yaml:"world"`
	ResumeCol int     `yaml:"resume_col"`
	ResumeRow int     `yaml:"resume_row"`
}

type Flagpole struct {
	Col     int `yaml:"col"`
	TopRow  int `yaml:"top_row"`
	BaseRow int `yaml:"base_row"`
	GoalCol int `yaml:"goal_col"`
}

// Width returns the number of grid columns.
func (l *Level) Width() int {
	w := 0
	for _, row := range l.Grid {
		w = max(w, len(row))
	}
	return w
}

// FileName maps a world number to its level file, e.g. 1.5 to "1.5.yaml".
func FileName(world float64) string {
	return strconv.FormatFloat(world, 'f', -1, 64) + ".yaml"
}

// Load reads the embedded level for world.
func Load(world float64) (*Level, error) {
	return LoadFromFS(LevelsFS, world)
}

// LoadFromFS reads the level for world from fsys.
func LoadFromFS(fsys fs.FS, world float64) (*Level, error) {
	name := FileName(world)
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownWorld, world)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return Parse(name, data)
}

// Parse decodes a level file.
func Parse(name string, data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if len(lvl.Grid) == 0 {
		return nil, fmt.Errorf("levels: %s: empty grid", name)
	}
	return &lvl, nil
}
