package tracker_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashlyng/summitpath/core"
	"github.com/ashlyng/summitpath/tracker"
)

const packFile = `[
  {
    "name": "Forsaken City A",
    "children": [
      {
        "name": "Start",
        "sections": [
          {"name": "Room B First Berry", "access_rules": ["stale"]},
          {"name": "Crossing", "access_rules": []}
        ]
      }
    ]
  },
  {
    "name": "Forsaken City B",
    "sections": [
      {"name": "Level Clear", "access_rules": []}
    ]
  }
]`

func writePack(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "forsaken_city.json")
	require.NoError(t, os.WriteFile(path, []byte(packFile), 0644))
	return dir
}

func readPack(t *testing.T, dir string) []map[string]any {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(dir, "forsaken_city.json"))
	require.NoError(t, err)
	var data []map[string]any
	require.NoError(t, json.Unmarshal(raw, &data))
	return data
}

func sectionRules(t *testing.T, data []map[string]any, level, section string) []any {
	t.Helper()
	for _, lvl := range data {
		if lvl["name"] != level {
			continue
		}
		var nodes []map[string]any
		if children, ok := lvl["children"].([]any); ok && len(children) > 0 {
			for _, child := range children {
				nodes = append(nodes, child.(map[string]any))
			}
		} else {
			nodes = append(nodes, lvl)
		}
		for _, node := range nodes {
			for _, raw := range node["sections"].([]any) {
				sec := raw.(map[string]any)
				if sec["name"] == section {
					return sec["access_rules"].([]any)
				}
			}
		}
	}
	t.Fatalf("section %q not found in level %q", section, level)
	return nil
}

func TestInject_RewritesNestedAndFlatSections(t *testing.T) {
	dir := writePack(t)
	in := tracker.New(dir)

	sum, err := in.Inject(&core.LogicData{LocationLogic: []core.CollapsedLogic{
		{
			LevelDisplayName:    "Forsaken City A",
			RoomName:            "B",
			LocationDisplayName: "First Berry",
			LocationType:        core.TypeStrawberry,
			Rule:                [][]string{{"dash", "key"}, {"winged"}},
		},
		{
			LevelDisplayName:    "Forsaken City B",
			LocationDisplayName: "Level Clear",
			LocationType:        core.TypeLevelClear,
			Rule:                [][]string{{"dash"}},
		},
	}})
	require.NoError(t, err)
	assert.Equal(t, tracker.Summary{Updated: 2, Files: 1}, sum)

	data := readPack(t, dir)
	assert.Equal(t, []any{"dash,key", "winged"},
		sectionRules(t, data, "Forsaken City A", "Room B First Berry"))
	assert.Equal(t, []any{"dash"},
		sectionRules(t, data, "Forsaken City B", "Level Clear"))
}

func TestInject_IgnoredTypesAndMissingSections(t *testing.T) {
	dir := writePack(t)
	in := tracker.New(dir, tracker.WithIgnoredTypes(core.TypeCheckpoint))

	sum, err := in.Inject(&core.LogicData{LocationLogic: []core.CollapsedLogic{
		{
			LevelDisplayName:    "Forsaken City A",
			LocationDisplayName: "Crossing",
			LocationType:        core.TypeCheckpoint,
			Rule:                [][]string{{"dash"}},
		},
		{
			LevelDisplayName:    "Forsaken City A",
			LocationDisplayName: "Nowhere",
			LocationType:        core.TypeCassette,
		},
	}})
	require.NoError(t, err)
	assert.Equal(t, tracker.Summary{Ignored: 1, MissingSection: 1}, sum)

	// Nothing matched, so the file keeps its original content.
	data := readPack(t, dir)
	assert.Equal(t, []any{"stale"},
		sectionRules(t, data, "Forsaken City A", "Room B First Berry"))
}

func TestInject_DryRunLeavesFilesUntouched(t *testing.T) {
	dir := writePack(t)
	in := tracker.New(dir, tracker.WithDryRun())

	sum, err := in.Inject(&core.LogicData{LocationLogic: []core.CollapsedLogic{
		{
			LevelDisplayName:    "Forsaken City B",
			LocationDisplayName: "Level Clear",
			LocationType:        core.TypeLevelClear,
			Rule:                [][]string{{"dash"}},
		},
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Updated)

	data := readPack(t, dir)
	assert.Empty(t, sectionRules(t, data, "Forsaken City B", "Level Clear"))
}

func TestInject_UnmappedLevel(t *testing.T) {
	in := tracker.New(writePack(t), tracker.WithLevelFiles(map[string]string{}))

	_, err := in.Inject(&core.LogicData{LocationLogic: []core.CollapsedLogic{
		{LevelDisplayName: "Forsaken City A", LocationType: core.TypeStrawberry},
	}})
	assert.ErrorIs(t, err, tracker.ErrUnmappedLevel)
}

func TestInject_NoDirectory(t *testing.T) {
	in := tracker.New("")
	_, err := in.Inject(&core.LogicData{})
	assert.ErrorIs(t, err, tracker.ErrNoDirectory)
}

func TestSectionName(t *testing.T) {
	assert.Equal(t, "Room 5 Winged Gold", tracker.SectionName(core.CollapsedLogic{
		RoomName:            "5",
		LocationDisplayName: "Winged Gold",
		LocationType:        core.TypeStrawberry,
	}))
	assert.Equal(t, "Crossing", tracker.SectionName(core.CollapsedLogic{
		LocationDisplayName: "Crossing",
		LocationType:        core.TypeCheckpoint,
	}))
}
