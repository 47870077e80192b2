package tags

import "github.com/yohamta/donburi"

var (
	Viewer   = donburi.NewTag().SetName("Viewer")
	Bookmark = donburi.NewTag().SetName("Bookmark")
)

// Resolv tags for bookmark hit-testing
const (
	ResolvBookmark = "bookmark"
)
