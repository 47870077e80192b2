package components

import (
	"github.com/automoto/camera2d/camera"
	"github.com/automoto/camera2d/frame"
	"github.com/automoto/camera2d/leveldata"
	"github.com/yohamta/donburi"
)

// ViewerData owns the camera and the frame loop that drives its transitions.
// Snapshot mirrors the latest Updated emission so render systems read one
// coherent state per frame without re-querying mid-draw.
type ViewerData struct {
	Camera *camera.Camera
	Loop   *frame.Loop
	Tour   *leveldata.Tour

	Snapshot camera.State

	// ActiveBookmark is the index of the bookmark last jumped to, -1 when
	// the camera is free-roaming.
	ActiveBookmark int

	// Wheel accumulates fractional scroll input until a full zoom notch.
	Wheel float64
}

var Viewer = donburi.NewComponentType[ViewerData]()
