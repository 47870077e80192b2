package systems

import (
	"math"

	"github.com/automoto/camera2d/camera"
)

// WorldToScreen projects a world point through the camera state onto a
// screen of the given size: translate by the camera position, rotate by the
// camera angle, divide by the zoom ratio, then center.
func WorldToScreen(s camera.State, width, height int, wx, wy float64) (float64, float64) {
	sin, cos := math.Sincos(s.Angle)
	dx := wx - s.X
	dy := wy - s.Y
	rx := dx*cos - dy*sin
	ry := dx*sin + dy*cos
	return rx/s.Ratio + float64(width)/2, ry/s.Ratio + float64(height)/2
}

// ScreenToWorld is the inverse projection, used to map cursor positions back
// into world space.
func ScreenToWorld(s camera.State, width, height int, sx, sy float64) (float64, float64) {
	sin, cos := math.Sincos(s.Angle)
	rx := (sx - float64(width)/2) * s.Ratio
	ry := (sy - float64(height)/2) * s.Ratio
	dx := rx*cos + ry*sin
	dy := -rx*sin + ry*cos
	return dx + s.X, dy + s.Y
}
