package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/camera2d/camera"
	"github.com/quasilyte/gdata"
)

// SavedViewport is the camera state stored on disk between sessions.
type SavedViewport struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
	Ratio float64 `json:"ratio"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for viewport storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "camera2d",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadViewport loads the last saved viewport from disk. Returns nil with no
// error when nothing has been saved yet.
func LoadViewport() (*SavedViewport, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("viewport")
	if err != nil {
		log.Printf("Warning: Could not load viewport: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var saved SavedViewport
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved viewport: %v", err)
		return nil, err
	}

	return &saved, nil
}

// SaveViewport saves the camera state to disk.
func SaveViewport(s camera.State) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(SavedViewport{X: s.X, Y: s.Y, Angle: s.Angle, Ratio: s.Ratio})
	if err != nil {
		log.Printf("Warning: Could not serialize viewport: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("viewport", data); err != nil {
		log.Printf("Warning: Could not save viewport: %v", err)
		return err
	}
	return nil
}

// ApplySavedViewport restores a saved viewport onto the camera without a
// transition.
func ApplySavedViewport(cam *camera.Camera, saved *SavedViewport) {
	if saved == nil {
		return
	}
	cam.SetState(camera.Partial{
		X:     camera.Float64(saved.X),
		Y:     camera.Float64(saved.Y),
		Angle: camera.Float64(saved.Angle),
		Ratio: camera.Float64(saved.Ratio),
	})
}
