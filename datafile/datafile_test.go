package datafile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashlyng/summitpath/core"
	"github.com/ashlyng/summitpath/datafile"
)

func TestReadLevelData_IndexesTheModel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.json")

	raw := `{
  "levels": [
    {
      "name": "1a",
      "display_name": "Forsaken City A",
      "rooms": [
        {
          "name": "A",
          "regions": [
            {"name": "main", "connections": [{"dest": "east", "rule": [["dash"]]}]},
            {"name": "east", "connections": []}
          ],
          "doors": [{"name": "east", "direction": "right"}]
        }
      ],
      "room_connections": []
    }
  ]
}`
	require.NoError(t, osWriteFile(path, raw))

	data, err := datafile.ReadLevelData(path)
	require.NoError(t, err)

	lvl, err := data.Level("1a")
	require.NoError(t, err)
	room, err := lvl.Room("A")
	require.NoError(t, err)
	region, err := room.Region("main")
	require.NoError(t, err)
	assert.Equal(t, core.Rule{{"dash"}}, region.RuleTo("east"))
}

func TestReadLevelData_MissingFile(t *testing.T) {
	_, err := datafile.ReadLevelData(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestReadLevelData_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.json")
	require.NoError(t, osWriteFile(path, "{not json"))

	_, err := datafile.ReadLevelData(path)
	assert.Error(t, err)
}

func TestLocationData_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.json")

	in := &core.LocationData{Locations: []*core.Location{
		{
			LevelName:        "1a",
			LevelDisplayName: "Forsaken City A",
			RoomName:         "B",
			RegionName:       "main",
			Name:             "berry_1",
			DisplayName:      "First Berry",
			Type:             core.TypeStrawberry,
			Rule:             core.Rule{{"key"}},
			Paths: []core.LocationPath{
				{
					Regions: []string{"A-main", "A-east", "B-west", "B-main"},
					Rules:   []core.Rule{{{"dash"}}},
				},
			},
		},
	}}
	require.NoError(t, datafile.WriteLocationData(path, in))

	out, err := datafile.ReadLocationData(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLogicData_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logic.json")

	in := &core.LogicData{LocationLogic: []core.CollapsedLogic{
		{
			LevelDisplayName:    "Forsaken City A",
			RoomName:            "B",
			LocationDisplayName: "First Berry",
			LocationType:        core.TypeStrawberry,
			Rule:                [][]string{{"dash", "key"}},
		},
	}}
	require.NoError(t, datafile.WriteLogicData(path, in))

	out, err := datafile.ReadLogicData(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func osWriteFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
