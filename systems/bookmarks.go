package systems

import (
	"github.com/automoto/camera2d/archetypes"
	"github.com/automoto/camera2d/components"
	cfg "github.com/automoto/camera2d/config"
	"github.com/automoto/camera2d/leveldata"
	"github.com/automoto/camera2d/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SetupBookmarks spawns one entity per bookmark and registers its hit region
// in a resolv space so cursor clicks can be resolved in world coordinates.
func SetupBookmarks(e *ecs.ECS, tour *leveldata.Tour) {
	space := resolv.NewSpace(int(tour.WorldWidth), int(tour.WorldHeight), 32, 32)
	spaceEntry := archetypes.Space.Spawn(e)
	components.Space.SetValue(spaceEntry, components.SpaceData{Space: space})

	for i, b := range tour.Bookmarks {
		entry := archetypes.Bookmark.Spawn(e)
		obj := resolv.NewObject(b.X-b.W/2, b.Y-b.H/2, b.W, b.H, tags.ResolvBookmark)
		obj.Data = entry
		space.Add(obj)
		components.Bookmark.SetValue(entry, components.BookmarkData{
			Bookmark: b,
			Index:    i,
			Object:   obj,
		})
	}
}

// UpdateBookmarks maps left clicks back into world space and, when one lands
// on a bookmark region, animates the camera there.
func UpdateBookmarks(e *ecs.ECS) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}

	viewerEntry, ok := components.Viewer.First(e.World)
	if !ok {
		return
	}
	v := components.Viewer.Get(viewerEntry)

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry).Space

	mx, my := ebiten.CursorPosition()
	wx, wy := ScreenToWorld(v.Camera.GetState(), cfg.C.Width, cfg.C.Height, float64(mx), float64(my))

	probe := resolv.NewObject(wx-1, wy-1, 2, 2)
	space.Add(probe)
	if check := probe.Check(0, 0, tags.ResolvBookmark); check != nil {
		if entry, ok := check.Objects[0].Data.(*donburi.Entry); ok {
			bm := components.Bookmark.Get(entry)
			JumpToBookmark(v, bm.Index, bm.Bookmark)
		}
	}
	space.Remove(probe)
}
