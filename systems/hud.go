package systems

import (
	"fmt"
	"math"

	"github.com/automoto/camera2d/components"
	cfg "github.com/automoto/camera2d/config"
	"github.com/automoto/camera2d/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the live state readout in the top-left corner and the key
// help line along the bottom edge.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	viewerEntry, ok := components.Viewer.First(e.World)
	if !ok {
		return
	}
	v := components.Viewer.Get(viewerEntry)
	s := v.Snapshot

	status := "idle"
	if v.Camera.IsAnimated() {
		status = "animating"
	}
	readout := fmt.Sprintf("x %.1f  y %.1f  angle %.1f°  ratio %.3f  [%s]",
		s.X, s.Y, s.Angle*180/math.Pi, s.Ratio, status)
	drawShadowed(screen, readout, fonts.HUD, int(cfg.HUD.Margin), 16)

	if v.ActiveBookmark >= 0 && v.ActiveBookmark < len(v.Tour.Bookmarks) {
		name := v.Tour.Bookmarks[v.ActiveBookmark].Name
		drawShadowed(screen, "bookmark: "+name, fonts.HUDSmall, int(cfg.HUD.Margin), 32)
	}

	help := "arrows pan  +/- wheel zoom  Q/E rotate  1-9/click bookmarks  R reset  S save"
	drawShadowed(screen, help, fonts.HUDSmall, int(cfg.HUD.Margin), cfg.C.Height-int(cfg.HUD.Margin))
}

func drawShadowed(screen *ebiten.Image, str string, name fonts.FontName, x, y int) {
	face := name.Get()
	text.Draw(screen, str, face, x+1, y+1, cfg.HUD.ShadowColor)
	text.Draw(screen, str, face, x, y, cfg.HUD.TextColor)
}
