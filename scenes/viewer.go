package scenes

import (
	"sync"

	"github.com/automoto/camera2d/archetypes"
	"github.com/automoto/camera2d/assets"
	"github.com/automoto/camera2d/camera"
	"github.com/automoto/camera2d/components"
	cfg "github.com/automoto/camera2d/config"
	"github.com/automoto/camera2d/frame"
	"github.com/automoto/camera2d/leveldata"
	"github.com/automoto/camera2d/systems"
	"github.com/automoto/camera2d/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ViewerScene wires the camera, its frame loop and the demo world together.
type ViewerScene struct {
	ecs      *ecs.ECS
	controls *ui.ControlsUI
	once     sync.Once
}

func NewViewerScene() *ViewerScene {
	return &ViewerScene{}
}

func (vs *ViewerScene) Update() {
	vs.once.Do(vs.configure)
	vs.controls.Update()
	vs.ecs.Update()
}

func (vs *ViewerScene) Draw(screen *ebiten.Image) {
	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)
	vs.controls.Draw(screen)
}

func (vs *ViewerScene) configure() {
	tour, err := leveldata.LoadTour(assets.LevelFS(), assets.TourPath)
	if err != nil {
		panic("failed to load tour map: " + err.Error())
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Frame pump first so animation frames land before input reacts to them
	e.AddSystem(systems.UpdateFrames)
	e.AddSystem(systems.UpdateViewer)
	e.AddSystem(systems.UpdateBookmarks)

	e.AddRenderer(cfg.LayerDefault, systems.DrawWorld)
	e.AddRenderer(cfg.LayerHUD, systems.DrawHUD)

	loop := frame.NewLoop()
	cam := camera.New(loop, frame.SystemClock{})

	viewerEntry := archetypes.Viewer.Spawn(e)
	components.Viewer.SetValue(viewerEntry, components.ViewerData{
		Camera:         cam,
		Loop:           loop,
		Tour:           tour,
		Snapshot:       cam.GetState(),
		ActiveBookmark: -1,
	})

	// Mirror every emission into the viewer component so render systems see
	// one coherent snapshot per frame.
	cam.OnUpdated(func(_ donburi.World, s camera.State) {
		if entry, ok := components.Viewer.First(e.World); ok {
			components.Viewer.Get(entry).Snapshot = s
		}
	})

	systems.SetupBookmarks(e, tour)

	if saved, err := systems.LoadViewport(); err == nil && saved != nil {
		systems.ApplySavedViewport(cam, saved)
	}

	vs.controls = ui.NewControlsUI(
		func() { withViewer(e, func(v *components.ViewerData) { systems.ZoomStep(v, cfg.Viewer.ZoomFactor) }) },
		func() { withViewer(e, func(v *components.ViewerData) { systems.ZoomStep(v, 1/cfg.Viewer.ZoomFactor) }) },
		func() { withViewer(e, systems.ResetViewport) },
		func() { _ = systems.SaveViewport(cam.GetState()) },
	)

	vs.ecs = e
}

func withViewer(e *ecs.ECS, fn func(*components.ViewerData)) {
	if entry, ok := components.Viewer.First(e.World); ok {
		fn(components.Viewer.Get(entry))
	}
}
