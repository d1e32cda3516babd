package datafile

import (
	"sort"

	"github.com/ashlyng/summitpath/core"
)

// DoorIssue flags a door whose name matches no region of its room, or a
// region used by a room connection with no door declared for it.
type DoorIssue struct {
	Level  string
	Room   string
	Door   string
	Reason string
}

// Door issue reasons.
const (
	ReasonNoRegion = "no matching region"
	ReasonNoDoor   = "connection references undeclared door"
)

// CheckDoors reports doors that do not line up with the rooms and
// connections around them. A clean data set returns an empty slice.
func CheckDoors(data *core.LevelData) []DoorIssue {
	var issues []DoorIssue
	for _, lvl := range data.Levels {
		for _, room := range lvl.Rooms {
			declared := make(map[string]bool, len(room.Doors))
			for _, door := range room.Doors {
				declared[door.Name] = true
				if _, err := room.Region(door.Name); err != nil {
					issues = append(issues, DoorIssue{
						Level:  lvl.Name,
						Room:   room.Name,
						Door:   door.Name,
						Reason: ReasonNoRegion,
					})
				}
			}
			for _, conn := range lvl.RoomConnections {
				if conn.SourceRoom == room.Name && !declared[conn.SourceDoor] {
					issues = append(issues, DoorIssue{
						Level:  lvl.Name,
						Room:   room.Name,
						Door:   conn.SourceDoor,
						Reason: ReasonNoDoor,
					})
				}
			}
		}
	}
	return issues
}

// OneWayConnections returns, per level, the room connections whose exact
// reverse is absent from the data. Most doors go both ways; the rest are
// worth a look before a run.
func OneWayConnections(data *core.LevelData) map[string][]core.RoomConnection {
	oneWay := make(map[string][]core.RoomConnection)
	for _, lvl := range data.Levels {
		present := make(map[core.RoomConnection]bool, len(lvl.RoomConnections))
		for _, conn := range lvl.RoomConnections {
			present[conn] = true
		}
		for _, conn := range lvl.RoomConnections {
			if !present[conn.Reverse()] {
				oneWay[lvl.Name] = append(oneWay[lvl.Name], conn)
			}
		}
	}
	return oneWay
}

// MaxPathLength pairs a level with the longest region path found for any
// of its locations.
type MaxPathLength struct {
	Level  string
	Length int
}

// MaxPathLengths reports, per level, the maximum number of regions on any
// single path to any location. Sorted by level name.
func MaxPathLengths(data *core.LocationData) []MaxPathLength {
	byLevel := make(map[string]int)
	for _, loc := range data.Locations {
		for _, path := range loc.Paths {
			if len(path.Regions) > byLevel[loc.LevelName] {
				byLevel[loc.LevelName] = len(path.Regions)
			}
		}
	}
	names := make([]string, 0, len(byLevel))
	for name := range byLevel {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]MaxPathLength, 0, len(names))
	for _, name := range names {
		out = append(out, MaxPathLength{Level: name, Length: byLevel[name]})
	}
	return out
}

// MissingLogic returns the collapsed logic records that carry no rule at
// all: locations the synthesizer judged unreachable or unconstrained.
func MissingLogic(data *core.LogicData) []core.CollapsedLogic {
	var missing []core.CollapsedLogic
	for _, logic := range data.LocationLogic {
		if len(logic.Rule) == 0 {
			missing = append(missing, logic)
		}
	}
	return missing
}
