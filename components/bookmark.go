package components

import (
	"github.com/automoto/camera2d/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BookmarkData is one clickable camera destination in world space.
type BookmarkData struct {
	leveldata.Bookmark
	Index  int            // position in the tour's number-key order
	Object *resolv.Object // hit region registered in the bookmark space
}

var Bookmark = donburi.NewComponentType[BookmarkData]()

// SpaceData wraps the resolv space used for bookmark hit-testing.
type SpaceData struct {
	Space *resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
