package systems

import (
	"image/color"
	"math"

	"github.com/automoto/camera2d/camera"
	"github.com/automoto/camera2d/components"
	cfg "github.com/automoto/camera2d/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawWorld renders the world grid and the bookmark regions through the
// camera transform. Everything is drawn as lines projected point by point so
// rotation and zoom fall out of the same WorldToScreen used for input.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Grid.BackColor)

	viewerEntry, ok := components.Viewer.First(e.World)
	if !ok {
		return
	}
	v := components.Viewer.Get(viewerEntry)
	state := v.Snapshot

	w, h := cfg.C.Width, cfg.C.Height

	// Visible world bounds: project the four screen corners back and take
	// the envelope, with a margin so rotated lines reach the edges.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, corner := range [4][2]float64{{0, 0}, {float64(w), 0}, {0, float64(h)}, {float64(w), float64(h)}} {
		wx, wy := ScreenToWorld(state, w, h, corner[0], corner[1])
		minX, maxX = math.Min(minX, wx), math.Max(maxX, wx)
		minY, maxY = math.Min(minY, wy), math.Max(maxY, wy)
	}

	cell := cfg.Grid.CellSize
	for x := math.Floor(minX/cell) * cell; x <= maxX; x += cell {
		c := cfg.Grid.LineColor
		if x == 0 {
			c = cfg.Grid.AxisColor
		}
		strokeWorldLine(screen, state, x, minY, x, maxY, c)
	}
	for y := math.Floor(minY/cell) * cell; y <= maxY; y += cell {
		c := cfg.Grid.LineColor
		if y == 0 {
			c = cfg.Grid.AxisColor
		}
		strokeWorldLine(screen, state, minX, y, maxX, y, c)
	}

	// World border
	strokeWorldRect(screen, state, 0, 0, v.Tour.WorldWidth, v.Tour.WorldHeight, cfg.Grid.AxisColor)

	// Bookmark regions, the active one highlighted
	components.Bookmark.Each(e.World, func(entry *donburi.Entry) {
		bm := components.Bookmark.Get(entry)
		c := cfg.HUD.BookmarkColor
		if bm.Index == v.ActiveBookmark {
			c = cfg.HUD.FocusColor
		}
		strokeWorldRect(screen, state, bm.X-bm.W/2, bm.Y-bm.H/2, bm.W, bm.H, c)
	})
}

func strokeWorldLine(screen *ebiten.Image, state camera.State, x0, y0, x1, y1 float64, c color.RGBA) {
	sx0, sy0 := WorldToScreen(state, cfg.C.Width, cfg.C.Height, x0, y0)
	sx1, sy1 := WorldToScreen(state, cfg.C.Width, cfg.C.Height, x1, y1)
	vector.StrokeLine(screen, float32(sx0), float32(sy0), float32(sx1), float32(sy1), 1, c, false)
}

func strokeWorldRect(screen *ebiten.Image, state camera.State, x, y, w, h float64, c color.RGBA) {
	strokeWorldLine(screen, state, x, y, x+w, y, c)
	strokeWorldLine(screen, state, x+w, y, x+w, y+h, c)
	strokeWorldLine(screen, state, x+w, y+h, x, y+h, c)
	strokeWorldLine(screen, state, x, y+h, x, y, c)
}
