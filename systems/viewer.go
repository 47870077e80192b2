package systems

import (
	"math"

	"github.com/automoto/camera2d/camera"
	"github.com/automoto/camera2d/components"
	cfg "github.com/automoto/camera2d/config"
	"github.com/automoto/camera2d/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

var bookmarkKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// UpdateViewer polls keyboard input and drives the camera: arrow keys pan
// along the screen axes, +/- and the wheel zoom, Q/E rotate, number keys
// jump to bookmarks, R resets, S saves the viewport.
func UpdateViewer(e *ecs.ECS) {
	entry, ok := components.Viewer.First(e.World)
	if !ok {
		return
	}
	v := components.Viewer.Get(entry)
	state := v.Camera.GetState()

	// Pan along screen axes; the step is rotated into world space and scaled
	// by the ratio so the on-screen distance stays constant at any zoom.
	var sdx, sdy float64
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		sdx += cfg.Viewer.PanStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		sdx -= cfg.Viewer.PanStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		sdy += cfg.Viewer.PanStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		sdy -= cfg.Viewer.PanStep
	}
	if sdx != 0 || sdy != 0 {
		sin, cos := math.Sincos(state.Angle)
		wdx := (sdx*cos + sdy*sin) * state.Ratio
		wdy := (-sdx*sin + sdy*cos) * state.Ratio
		// Pan moves the camera opposite to its deltas; negate so the view
		// travels in the pressed direction.
		v.Camera.Pan(-wdx, -wdy, &camera.Options{Duration: cfg.Viewer.PanDuration}, nil)
		v.ActiveBookmark = -1
	}

	// Zoom
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		ZoomStep(v, cfg.Viewer.ZoomFactor)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		ZoomStep(v, 1/cfg.Viewer.ZoomFactor)
	}
	_, wheelY := ebiten.Wheel()
	v.Wheel += wheelY
	for v.Wheel >= cfg.Viewer.WheelStepSize {
		v.Wheel -= cfg.Viewer.WheelStepSize
		ZoomStep(v, cfg.Viewer.ZoomFactor)
	}
	for v.Wheel <= -cfg.Viewer.WheelStepSize {
		v.Wheel += cfg.Viewer.WheelStepSize
		ZoomStep(v, 1/cfg.Viewer.ZoomFactor)
	}

	// Rotate
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		rotateStep(v, -cfg.Viewer.RotateStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		rotateStep(v, cfg.Viewer.RotateStep)
	}

	// Bookmarks on number keys, in tour order
	for i, key := range bookmarkKeys {
		if i >= len(v.Tour.Bookmarks) {
			break
		}
		if inpututil.IsKeyJustPressed(key) {
			JumpToBookmark(v, i, v.Tour.Bookmarks[i])
		}
	}

	// Reset to the default viewport
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ResetViewport(v)
	}

	// Save the current viewport
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		_ = SaveViewport(v.Camera.GetState())
	}
}

// ZoomStep applies one zoom notch, clamping the resulting ratio to the
// configured range.
func ZoomStep(v *components.ViewerData, factor float64) {
	v.ActiveBookmark = -1
	opts := &camera.Options{Duration: cfg.Viewer.ZoomDuration}

	target := v.Camera.GetState().Ratio / factor
	clamped := math.Min(math.Max(target, cfg.Viewer.MinRatio), cfg.Viewer.MaxRatio)
	if clamped == target {
		v.Camera.Zoom(factor, opts, nil)
		return
	}
	v.Camera.Animate(camera.Partial{Ratio: camera.Float64(clamped)}, opts, nil)
}

func rotateStep(v *components.ViewerData, delta float64) {
	v.ActiveBookmark = -1
	angle := v.Camera.GetState().Angle + delta
	v.Camera.Animate(
		camera.Partial{Angle: camera.Float64(angle)},
		&camera.Options{Duration: cfg.Viewer.RotateDuration},
		nil,
	)
}

// JumpToBookmark animates the camera to a bookmark's center, ratio and
// angle, and persists the viewport once the transition lands.
func JumpToBookmark(v *components.ViewerData, index int, b leveldata.Bookmark) {
	target := camera.Partial{
		X:     camera.Float64(b.X),
		Y:     camera.Float64(b.Y),
		Angle: camera.Float64(b.Angle),
	}
	if b.Ratio > 0 {
		target.Ratio = camera.Float64(b.Ratio)
	}
	v.ActiveBookmark = index
	cam := v.Camera
	cam.Animate(target, &camera.Options{Duration: cfg.Viewer.BookmarkDuration}, func() {
		_ = SaveViewport(cam.GetState())
	})
}

// ResetViewport animates back to the default camera state.
func ResetViewport(v *components.ViewerData) {
	def := camera.DefaultState()
	v.ActiveBookmark = -1
	v.Camera.Animate(camera.Partial{
		X:     camera.Float64(def.X),
		Y:     camera.Float64(def.Y),
		Angle: camera.Float64(def.Angle),
		Ratio: camera.Float64(def.Ratio),
	}, &camera.Options{Duration: cfg.Viewer.ResetDuration}, nil)
}
