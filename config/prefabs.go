package config

// PrefabID names an entry in the prefab catalog
type PrefabID string

const (
	PrefabNone           PrefabID = ""
	PrefabFruitTree      PrefabID = "fruit_tree_01"
	PrefabFruitTreeStump PrefabID = "fruit_tree_01_stump"
	PrefabFruitTreeCut   PrefabID = "fruit_tree_01_cut"
	PrefabFruitTreeLogs  PrefabID = "fruit_tree_01_logs"
)

// PrefabKind tells the spawner which byproduct role a prefab plays
type PrefabKind int

const (
	PrefabKindTree PrefabKind = iota
	PrefabKindStump
	PrefabKindTrunk
	PrefabKindLogs
)

// PrefabConfig is one catalog entry. Model is the asset key a renderer
// would resolve; the core never loads it.
type PrefabConfig struct {
	Kind  PrefabKind
	Model string
}

// Prefabs is the prefab catalog used by the spawners
var Prefabs map[PrefabID]PrefabConfig

func init() {
	Prefabs = map[PrefabID]PrefabConfig{
		PrefabFruitTree:      {Kind: PrefabKindTree, Model: "trees/PT_Fruit_Tree_01_green"},
		PrefabFruitTreeStump: {Kind: PrefabKindStump, Model: "trees/PT_Fruit_Tree_01_stump"},
		PrefabFruitTreeCut:   {Kind: PrefabKindTrunk, Model: "trees/PT_Fruit_Tree_01_green_cut"},
		PrefabFruitTreeLogs:  {Kind: PrefabKindLogs, Model: "trees/PT_Fruit_Tree_01_logs"},
	}
}
