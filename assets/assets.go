package assets

import "embed"

//go:embed all:levels
var levelFS embed.FS

// TourPath is the embedded Tiled map describing the demo world: its bounds
// and the named camera bookmarks.
const TourPath = "levels/tour.tmx"

// LevelFS exposes the embedded level data for the go-tiled loader.
func LevelFS() embed.FS {
	return levelFS
}
