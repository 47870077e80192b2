// Package leveldata parses the demo world definition out of a Tiled TMX map:
// world bounds from the map dimensions and camera bookmarks from the
// "Bookmarks" object group.
package leveldata

import (
	"fmt"
	"io/fs"
	"sort"
	"strconv"

	"github.com/lafriks/go-tiled"
)

// Bookmark is a named region of the world the camera can jump to.
type Bookmark struct {
	Name  string
	X, Y  float64 // center of the region, world coordinates
	W, H  float64 // clickable extent
	Ratio float64 // target zoom scale; 0 means keep the current ratio
	Angle float64 // target rotation in radians
	Order int     // presentation order, from the Tiled "order" property
}

// Tour is the parsed world definition.
type Tour struct {
	WorldWidth  float64
	WorldHeight float64
	Bookmarks   []Bookmark
}

// LoadTour parses a TMX file into a Tour. It takes an fs.FS so callers can
// pass embed.FS or a test filesystem.
func LoadTour(fsys fs.FS, tmxPath string) (*Tour, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tour := &Tour{
		WorldWidth:  float64(m.Width * m.TileWidth),
		WorldHeight: float64(m.Height * m.TileHeight),
	}

	for _, og := range m.ObjectGroups {
		if og.Name != "Bookmarks" {
			continue
		}
		for _, o := range og.Objects {
			b := Bookmark{
				Name:  o.Name,
				X:     o.X + o.Width/2,
				Y:     o.Y + o.Height/2,
				W:     o.Width,
				H:     o.Height,
				Order: o.Properties.GetInt("order"),
			}
			// Ratio and angle arrive as plain string properties from Tiled.
			if s := o.Properties.GetString("ratio"); s != "" {
				if v, err := strconv.ParseFloat(s, 64); err == nil {
					b.Ratio = v
				}
			}
			if s := o.Properties.GetString("angle"); s != "" {
				if v, err := strconv.ParseFloat(s, 64); err == nil {
					b.Angle = v
				}
			}
			tour.Bookmarks = append(tour.Bookmarks, b)
		}
		break
	}

	// Stable presentation order for number-key shortcuts
	sort.Slice(tour.Bookmarks, func(i, j int) bool {
		return tour.Bookmarks[i].Order < tour.Bookmarks[j].Order
	})

	return tour, nil
}
