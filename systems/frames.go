package systems

import (
	"github.com/automoto/camera2d/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFrames pumps the viewer's frame loop, running any camera animation
// frame scheduled for this tick. Must run BEFORE the input systems so a
// superseding transition started this tick waits a full frame.
func UpdateFrames(e *ecs.ECS) {
	entry, ok := components.Viewer.First(e.World)
	if !ok {
		return
	}
	components.Viewer.Get(entry).Loop.Tick()
}
