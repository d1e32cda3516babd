package datafile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashlyng/summitpath/core"
	"github.com/ashlyng/summitpath/datafile"
)

func TestCheckDoors_CleanData(t *testing.T) {
	data := &core.LevelData{Levels: []*core.Level{{
		Name: "1a",
		Rooms: []*core.Room{{
			Name: "A",
			Regions: []*core.Region{
				{Name: "main"},
				{Name: "east"},
			},
			Doors: []core.Door{{Name: "east", Direction: "right"}},
		}},
		RoomConnections: []core.RoomConnection{
			{SourceRoom: "A", SourceDoor: "east", DestRoom: "B", DestDoor: "west"},
		},
	}}}
	data.Index()

	assert.Empty(t, datafile.CheckDoors(data))
}

func TestCheckDoors_FlagsMismatches(t *testing.T) {
	data := &core.LevelData{Levels: []*core.Level{{
		Name: "1a",
		Rooms: []*core.Room{{
			Name:    "A",
			Regions: []*core.Region{{Name: "main"}},
			Doors:   []core.Door{{Name: "east"}},
		}},
		RoomConnections: []core.RoomConnection{
			{SourceRoom: "A", SourceDoor: "north", DestRoom: "B", DestDoor: "south"},
		},
	}}}
	data.Index()

	issues := datafile.CheckDoors(data)
	require.Len(t, issues, 2)
	assert.Equal(t, datafile.ReasonNoRegion, issues[0].Reason)
	assert.Equal(t, "east", issues[0].Door)
	assert.Equal(t, datafile.ReasonNoDoor, issues[1].Reason)
	assert.Equal(t, "north", issues[1].Door)
}

func TestOneWayConnections(t *testing.T) {
	forward := core.RoomConnection{SourceRoom: "A", SourceDoor: "east", DestRoom: "B", DestDoor: "west"}
	lone := core.RoomConnection{SourceRoom: "B", SourceDoor: "north", DestRoom: "C", DestDoor: "south"}

	data := &core.LevelData{Levels: []*core.Level{{
		Name:            "1a",
		RoomConnections: []core.RoomConnection{forward, forward.Reverse(), lone},
	}}}

	oneWay := datafile.OneWayConnections(data)
	assert.Equal(t, []core.RoomConnection{lone}, oneWay["1a"])
}

func TestMaxPathLengths(t *testing.T) {
	data := &core.LocationData{Locations: []*core.Location{
		{LevelName: "1a", Paths: []core.LocationPath{
			{Regions: []string{"A-main", "A-east"}},
			{Regions: []string{"A-main", "B-west", "B-main"}},
		}},
		{LevelName: "2a", Paths: []core.LocationPath{
			{Regions: []string{"S-main"}},
		}},
	}}

	assert.Equal(t, []datafile.MaxPathLength{
		{Level: "1a", Length: 3},
		{Level: "2a", Length: 1},
	}, datafile.MaxPathLengths(data))
}

func TestMissingLogic(t *testing.T) {
	data := &core.LogicData{LocationLogic: []core.CollapsedLogic{
		{LocationDisplayName: "Gated", Rule: [][]string{{"dash"}}},
		{LocationDisplayName: "Orphan"},
	}}

	missing := datafile.MissingLogic(data)
	require.Len(t, missing, 1)
	assert.Equal(t, "Orphan", missing[0].LocationDisplayName)
}
