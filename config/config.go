package config

import (
	"image/color"
	"math"
	"time"
)

// Config contains global application configuration values
type Config struct {
	Width  int
	Height int
	Title  string
}

// ViewerConfig contains viewer input and transition configuration
type ViewerConfig struct {
	// Pan
	PanStep     float64       // World units moved per pan keypress at ratio 1
	PanDuration time.Duration // Transition time for keyboard pans

	// Zoom
	ZoomFactor    float64       // Factor applied per zoom keypress / wheel notch
	ZoomDuration  time.Duration // Transition time for zoom steps
	MinRatio      float64       // Closest allowed zoom scale
	MaxRatio      float64       // Farthest allowed zoom scale
	WheelStepSize float64       // Wheel units that make up one zoom notch

	// Rotation
	RotateStep     float64       // Radians per rotate keypress
	RotateDuration time.Duration // Transition time for rotate steps

	// Bookmarks
	BookmarkDuration time.Duration // Transition time when jumping to a bookmark
	ResetDuration    time.Duration // Transition time for the reset shortcut
}

// GridConfig contains world grid rendering configuration
type GridConfig struct {
	CellSize  float64 // World units per grid cell
	LineColor color.RGBA
	AxisColor color.RGBA
	BackColor color.RGBA
}

// HUDConfig contains state readout configuration
type HUDConfig struct {
	TextColor     color.RGBA
	ShadowColor   color.RGBA
	Margin        float64 // Distance from the screen edges in pixels
	BookmarkColor color.RGBA
	FocusColor    color.RGBA
}

var C *Config
var Viewer ViewerConfig
var Grid GridConfig
var HUD HUDConfig

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "camera2d viewer",
	}

	Viewer = ViewerConfig{
		PanStep:     96.0,
		PanDuration: 150 * time.Millisecond,

		ZoomFactor:    1.5,
		ZoomDuration:  150 * time.Millisecond,
		MinRatio:      0.05,
		MaxRatio:      20.0,
		WheelStepSize: 1.0,

		RotateStep:     15.0 * math.Pi / 180.0,
		RotateDuration: 200 * time.Millisecond,

		BookmarkDuration: 450 * time.Millisecond,
		ResetDuration:    300 * time.Millisecond,
	}

	Grid = GridConfig{
		CellSize:  64.0,
		LineColor: color.RGBA{60, 64, 72, 255},
		AxisColor: color.RGBA{110, 120, 140, 255},
		BackColor: color.RGBA{24, 26, 32, 255},
	}

	HUD = HUDConfig{
		TextColor:     color.RGBA{230, 232, 236, 255},
		ShadowColor:   color.RGBA{0, 0, 0, 180},
		Margin:        8.0,
		BookmarkColor: color.RGBA{80, 160, 220, 255},
		FocusColor:    color.RGBA{230, 180, 60, 255},
	}
}
