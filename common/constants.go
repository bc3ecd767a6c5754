package common

const (
	// TileSize is the edge length of one grid cell in world pixels.
	TileSize = 16
	// TileOffsetY shifts the whole grid down to leave room for the HUD strip.
	TileOffsetY = 8

	DisplayWidth  = 256
	DisplayHeight = 224

	// LevelFloor is the y coordinate below which anything is considered fallen.
	LevelFloor = DisplayHeight

	// TargetRate is the nominal simulation rate. dt passed to every update is
	// elapsed wall seconds multiplied by this value, so dt == 1 is one nominal frame.
	TargetRate = 30.0
)

// Seconds converts a frame-scale dt into seconds.
func Seconds(dt float64) float64 {
	return dt / TargetRate
}
