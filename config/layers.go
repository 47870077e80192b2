package config

import "github.com/yohamta/donburi/ecs"

const (
	LayerDefault ecs.LayerID = iota
	LayerHUD
)
