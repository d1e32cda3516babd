// This file declares the level-side data model: LevelData, Level, Room,
// Region, Connection, Door, RoomConnection, sentinel errors, and the
// name-index plumbing.
package core

import "errors"

// Sentinel errors for model lookups.
var (
	// ErrLevelNotFound indicates a lookup referenced a non-existent level.
	ErrLevelNotFound = errors.New("core: level not found")

	// ErrNoRooms indicates a level has no defined rooms.
	ErrNoRooms = errors.New("core: level has no defined rooms")

	// ErrRoomNotFound indicates a lookup referenced a non-existent room.
	ErrRoomNotFound = errors.New("core: room not found")

	// ErrRegionNotFound indicates a lookup referenced a non-existent region.
	ErrRegionNotFound = errors.New("core: region not found")
)

// LevelData is the root of the level data file: every level of the game.
type LevelData struct {
	Levels []*Level `json:"levels"`

	byName map[string]*Level
}

// Level is one self-contained game area composed of rooms joined by
// directed door connections.
type Level struct {
	Name            string           `json:"name"`
	DisplayName     string           `json:"display_name"`
	Rooms           []*Room          `json:"rooms"`
	RoomConnections []RoomConnection `json:"room_connections"`

	byName map[string]*Room
}

// Room is a navigable unit within a level, subdivided into regions that
// form a directed graph among themselves.
type Room struct {
	Name             string    `json:"name"`
	Regions          []*Region `json:"regions"`
	Doors            []Door    `json:"doors"`
	Checkpoint       string    `json:"checkpoint"`
	CheckpointRegion string    `json:"checkpoint_region"`

	byName map[string]*Region
}

// Region is a sub-area within a room with its own outgoing connections
// and, optionally, locations of interest.
type Region struct {
	Name        string        `json:"name"`
	Connections []Connection  `json:"connections"`
	Locations   []RawLocation `json:"locations,omitempty"`

	ruleTo map[string]Rule
}

// Connection links a region to another region in the same room, gated by
// a requirement rule.
type Connection struct {
	Dest string `json:"dest"`
	Rule Rule   `json:"rule"`
}

// Door describes a physical doorway of a room. Doors share names with the
// regions they open from; the name is the join key against RoomConnection.
type Door struct {
	Name         string `json:"name"`
	Direction    string `json:"direction"`
	Blocked      bool   `json:"blocked"`
	ClosesBehind bool   `json:"closes_behind"`
}

// RawLocation is a location as it appears inline in the level data file,
// before extraction into a full Location record.
type RawLocation struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Type        string `json:"type"`
	Rule        Rule   `json:"rule"`
}

// RoomConnection is a directed door link between a region in one room and
// a region in another. Its identity is the full 4-tuple, so the zero-cost
// struct comparison doubles as the de-duplication and revisit key.
type RoomConnection struct {
	SourceRoom string `json:"source_room"`
	SourceDoor string `json:"source_door"`
	DestRoom   string `json:"dest_room"`
	DestDoor   string `json:"dest_door"`
}

// Reverse returns the connection traversed in the opposite direction.
func (c RoomConnection) Reverse() RoomConnection {
	return RoomConnection{
		SourceRoom: c.DestRoom,
		SourceDoor: c.DestDoor,
		DestRoom:   c.SourceRoom,
		DestDoor:   c.SourceDoor,
	}
}

// Index builds the name lookup tables for every level, room, and region in
// the data set. Call once after construction or decoding; the model is
// read-only afterwards.
//
// Complexity: O(levels + rooms + regions + connections)
func (d *LevelData) Index() {
	d.byName = make(map[string]*Level, len(d.Levels))
	for _, lvl := range d.Levels {
		d.byName[lvl.Name] = lvl
		lvl.Index()
	}
}

// Level returns the level with the given name, or ErrLevelNotFound.
func (d *LevelData) Level(name string) (*Level, error) {
	if d.byName != nil {
		if lvl, ok := d.byName[name]; ok {
			return lvl, nil
		}
		return nil, ErrLevelNotFound
	}
	for _, lvl := range d.Levels {
		if lvl.Name == name {
			return lvl, nil
		}
	}
	return nil, ErrLevelNotFound
}

// Index builds the level's room and region lookup tables. LevelData.Index
// calls it for every level; call it directly when assembling a level by
// hand (e.g. a sub-level carved out of a larger one).
func (l *Level) Index() {
	l.byName = make(map[string]*Room, len(l.Rooms))
	for _, room := range l.Rooms {
		l.byName[room.Name] = room
		room.index()
	}
}

// Room returns the room with the given name, or ErrRoomNotFound.
func (l *Level) Room(name string) (*Room, error) {
	if l.byName != nil {
		if room, ok := l.byName[name]; ok {
			return room, nil
		}
		return nil, ErrRoomNotFound
	}
	for _, room := range l.Rooms {
		if room.Name == name {
			return room, nil
		}
	}
	return nil, ErrRoomNotFound
}

func (r *Room) index() {
	r.byName = make(map[string]*Region, len(r.Regions))
	for _, region := range r.Regions {
		r.byName[region.Name] = region
	}
}

// Region returns the region with the given name, or ErrRegionNotFound.
func (r *Room) Region(name string) (*Region, error) {
	if r.byName != nil {
		if region, ok := r.byName[name]; ok {
			return region, nil
		}
		return nil, ErrRegionNotFound
	}
	for _, region := range r.Regions {
		if region.Name == name {
			return region, nil
		}
	}
	return nil, ErrRegionNotFound
}

// RuleTo returns the requirement rule on the connection from this region
// to dest, or nil when no such connection exists. Multiple connections to
// the same destination reduce to the first one declared.
//
// Complexity: O(1) after the first call per region.
func (r *Region) RuleTo(dest string) Rule {
	if r.ruleTo == nil {
		r.ruleTo = make(map[string]Rule, len(r.Connections))
		for _, conn := range r.Connections {
			if _, seen := r.ruleTo[conn.Dest]; !seen {
				r.ruleTo[conn.Dest] = conn.Rule
			}
		}
	}
	return r.ruleTo[dest]
}
