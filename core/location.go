// This file declares the output side of the model: Location, LocationPath,
// and CollapsedLogic, together with the location type tags.
package core

// Location type tags, as they appear in the location data file.
const (
	TypeBinoculars       = "binoculars"
	TypeCar              = "car"
	TypeCassette         = "cassette"
	TypeCheckpoint       = "checkpoint"
	TypeClutter          = "clutter"
	TypeCrystalHeart     = "crystal_heart"
	TypeGem              = "gem"
	TypeKey              = "key"
	TypeLevelClear       = "level_clear"
	TypeGoldenStrawberry = "golden_strawberry"
	TypeRoomEnter        = "room_enter"
	TypeStrawberry       = "strawberry"
)

// LocationData is the root of the location data file.
type LocationData struct {
	Locations []*Location `json:"locations"`
}

// Location is one point of interest whose reachability is being computed:
// where it lives, its intrinsic requirement rule, and every traversal path
// discovered for it.
type Location struct {
	LevelName        string `json:"level_name"`
	LevelDisplayName string `json:"level_display_name"`
	RoomName         string `json:"room_name"`
	RegionName       string `json:"region_name"`
	Name             string `json:"location_name"`
	DisplayName      string `json:"location_display_name"`
	Type             string `json:"location_type"`

	// Rule is the location's own requirement, independent of any path.
	Rule Rule `json:"location_rule"`

	// Paths holds every traversal from the level entry to this location.
	Paths []LocationPath `json:"region_paths_to_location"`
}

// LocationPath is one concrete traversal from the level entry to a
// location.
//
// Regions lists the regions visited in order, each qualified by its room
// ("room-region") to disambiguate regions sharing a local name across
// rooms. Rules lists, in the same order, the non-empty requirement rules
// of the hops along the way; hops with no requirement are omitted, so
// Rules is usually shorter than Regions.
type LocationPath struct {
	Regions []string `json:"regions"`
	Rules   []Rule   `json:"rules"`
}

// LogicData is the root of the collapsed logic data file.
type LogicData struct {
	LocationLogic []CollapsedLogic `json:"locationLogic"`
}

// CollapsedLogic is the final persisted form of a location's reachability:
// its identity plus the minimal sum-of-products requirement expression.
//
// Rule here is already flattened: each inner slice is one AND-term of the
// overall OR, with no nesting left.
type CollapsedLogic struct {
	LevelDisplayName    string     `json:"level_display_name"`
	RoomName            string     `json:"room_name"`
	LocationDisplayName string     `json:"location_display_name"`
	LocationType        string     `json:"location_type"`
	Rule                [][]string `json:"logic_rule"`
}
