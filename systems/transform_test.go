package systems

import (
	"math"
	"testing"

	"github.com/automoto/camera2d/camera"
)

func TestWorldToScreenCentersOnCamera(t *testing.T) {
	s := camera.State{X: 100, Y: -40, Angle: 0.7, Ratio: 2}

	sx, sy := WorldToScreen(s, 800, 600, 100, -40)

	if sx != 400 || sy != 300 {
		t.Errorf("Expected the camera position to project to screen center (400, 300), got (%v, %v)", sx, sy)
	}
}

func TestWorldToScreenRatioScales(t *testing.T) {
	s := camera.State{Ratio: 2}

	sx, sy := WorldToScreen(s, 800, 600, 100, 0)

	// At ratio 2 the world is drawn at half size.
	if sx != 450 || sy != 300 {
		t.Errorf("Expected (450, 300) for world (100, 0) at ratio 2, got (%v, %v)", sx, sy)
	}
}

func TestScreenToWorldRoundTrip(t *testing.T) {
	states := []camera.State{
		{X: 0, Y: 0, Angle: 0, Ratio: 1},
		{X: 320, Y: -200, Angle: 0, Ratio: 0.5},
		{X: -15.5, Y: 48.25, Angle: math.Pi / 3, Ratio: 3},
		{X: 1000, Y: 1000, Angle: -1.2, Ratio: 0.125},
	}
	points := [][2]float64{{0, 0}, {123.5, -77}, {-400, 12}, {1e4, -1e4}}

	for _, s := range states {
		for _, p := range points {
			sx, sy := WorldToScreen(s, 960, 540, p[0], p[1])
			wx, wy := ScreenToWorld(s, 960, 540, sx, sy)
			if math.Abs(wx-p[0]) > 1e-6 || math.Abs(wy-p[1]) > 1e-6 {
				t.Errorf("Round trip for %v through %+v drifted: got (%v, %v)", p, s, wx, wy)
			}
		}
	}
}

func TestScreenToWorldCursorAtCenter(t *testing.T) {
	s := camera.State{X: 55, Y: 66, Angle: 1.1, Ratio: 4}

	wx, wy := ScreenToWorld(s, 640, 480, 320, 240)

	if math.Abs(wx-55) > 1e-9 || math.Abs(wy-66) > 1e-9 {
		t.Errorf("Expected screen center to map to the camera position (55, 66), got (%v, %v)", wx, wy)
	}
}
