package generate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashlyng/summitpath/core"
	"github.com/ashlyng/summitpath/generate"
	"github.com/ashlyng/summitpath/roompath"
)

// twoRoomData is the reference end-to-end scenario: room A (main → east,
// gated by dash) joined by a door to room B (west → main, ungated) with
// a strawberry in B's main region gated intrinsically by key.
func twoRoomData() *core.LevelData {
	data := &core.LevelData{
		Levels: []*core.Level{
			{
				Name:        "1a",
				DisplayName: "Forsaken City A",
				Rooms: []*core.Room{
					{
						Name: "A",
						Regions: []*core.Region{
							{Name: "main", Connections: []core.Connection{
								{Dest: "east", Rule: core.Rule{{"dash"}}},
							}},
							{Name: "east"},
						},
					},
					{
						Name:             "B",
						Checkpoint:       "Crossing",
						CheckpointRegion: "main",
						Regions: []*core.Region{
							{Name: "west", Connections: []core.Connection{{Dest: "main"}}},
							{Name: "main", Locations: []core.RawLocation{
								{
									Name:        "strawberry",
									DisplayName: "1st Strawberry",
									Type:        core.TypeStrawberry,
									Rule:        core.Rule{{"key"}},
								},
							}},
						},
					},
				},
				RoomConnections: []core.RoomConnection{
					{SourceRoom: "A", SourceDoor: "east", DestRoom: "B", DestDoor: "west"},
				},
			},
		},
	}
	data.Index()
	return data
}

func sources() map[string]roompath.RoomRef {
	return map[string]roompath.RoomRef{
		"1a": {Room: "A", Region: "main"},
	}
}

func TestLocations_Extraction(t *testing.T) {
	locs := generate.Locations(twoRoomData())
	require.Len(t, locs, 2)

	checkpoint := locs[0]
	assert.Equal(t, core.TypeCheckpoint, checkpoint.Type)
	assert.Equal(t, "Crossing", checkpoint.Name)
	assert.Equal(t, "main", checkpoint.RegionName)
	assert.True(t, checkpoint.Rule.Empty())

	berry := locs[1]
	assert.Equal(t, core.TypeStrawberry, berry.Type)
	assert.Equal(t, "1st Strawberry", berry.DisplayName)
	assert.Equal(t, core.Rule{{"key"}}, berry.Rule)
}

func TestPaths_EndToEndScenario(t *testing.T) {
	data := twoRoomData()
	locs := generate.Locations(data)

	err := generate.Paths(data, locs, sources())
	require.NoError(t, err)

	var berry *core.Location
	for _, loc := range locs {
		if loc.Type == core.TypeStrawberry {
			berry = loc
		}
	}
	require.NotNil(t, berry)
	require.Len(t, berry.Paths, 1)
	assert.Equal(t, []string{"A-main", "A-east", "B-west", "B-main"}, berry.Paths[0].Regions)
	assert.Equal(t, []core.Rule{{{"dash"}}}, berry.Paths[0].Rules)

	collapsed := generate.Logic(locs)
	var berryLogic *core.CollapsedLogic
	for i := range collapsed {
		if collapsed[i].LocationType == core.TypeStrawberry {
			berryLogic = &collapsed[i]
		}
	}
	require.NotNil(t, berryLogic)
	assert.Equal(t, [][]string{{"dash", "key"}}, berryLogic.Rule)
	assert.Equal(t, "Forsaken City A", berryLogic.LevelDisplayName)
}

func TestPaths_MissingSource(t *testing.T) {
	data := twoRoomData()
	locs := generate.Locations(data)
	err := generate.Paths(data, locs, map[string]roompath.RoomRef{})
	assert.ErrorContains(t, err, "no entry source")
}

func TestPaths_MissingLevel(t *testing.T) {
	data := twoRoomData()
	locs := []*core.Location{{LevelName: "9z", Name: "ghost"}}
	err := generate.Paths(data, locs, sources())
	assert.ErrorIs(t, err, core.ErrLevelNotFound)
}

func TestPaths_BadEntryRoom(t *testing.T) {
	data := twoRoomData()
	locs := generate.Locations(data)
	err := generate.Paths(data, locs, map[string]roompath.RoomRef{
		"1a": {Room: "ghost", Region: "main"},
	})
	assert.ErrorIs(t, err, core.ErrRoomNotFound)
}

func TestLogic_EmptyLocationsKeepRecord(t *testing.T) {
	locs := []*core.Location{
		{
			LevelDisplayName: "Old Site A",
			RoomName:         "start",
			DisplayName:      "Entry",
			Type:             core.TypeRoomEnter,
		},
	}
	collapsed := generate.Logic(locs)
	require.Len(t, collapsed, 1)
	assert.Empty(t, collapsed[0].Rule, "absent gating data flags for review, never errors")
}
