package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Tree   = donburi.NewTag().SetName("Tree")
	Stump  = donburi.NewTag().SetName("Stump")
	Trunk  = donburi.NewTag().SetName("Trunk")
	Logs   = donburi.NewTag().SetName("Logs")
)

// Resolv tags for the spatial index
const (
	// ResolvCuttable is the category the cutter scans for
	ResolvCuttable = "cuttable"
	ResolvTree     = "tree"
)
