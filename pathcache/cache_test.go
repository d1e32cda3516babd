package pathcache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashlyng/summitpath/core"
	"github.com/ashlyng/summitpath/pathcache"
)

// chainLevel builds a → b → c → d with one door between each pair, plus a
// detached room "island".
func chainLevel() *core.Level {
	rooms := []string{"a", "b", "c", "d", "island"}
	lvl := &core.Level{Name: "test"}
	for _, name := range rooms {
		lvl.Rooms = append(lvl.Rooms, &core.Room{
			Name: name,
			Regions: []*core.Region{
				{Name: "west", Connections: []core.Connection{{Dest: "east"}}},
				{Name: "east"},
			},
		})
	}
	for i := 0; i < 3; i++ {
		lvl.RoomConnections = append(lvl.RoomConnections, core.RoomConnection{
			SourceRoom: rooms[i], SourceDoor: "east",
			DestRoom: rooms[i+1], DestDoor: "west",
		})
	}
	return lvl
}

func TestCache_RegionPathsMemoized(t *testing.T) {
	cache := pathcache.New()
	lvl := chainLevel()

	first, err := cache.RegionPaths(lvl, "a", "west", "east")
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := cache.RegionPaths(lvl, "a", "west", "east")
	require.NoError(t, err)
	// Same backing slice: the second call must be a cache hit.
	assert.Equal(t, &first[0], &second[0])
}

func TestCache_RegionPathsMissingRoom(t *testing.T) {
	cache := pathcache.New()
	_, err := cache.RegionPaths(chainLevel(), "nowhere", "west", "east")
	assert.ErrorIs(t, err, core.ErrRoomNotFound)
}

func TestCache_ForwardReverse(t *testing.T) {
	cache := pathcache.New()
	lvl := chainLevel()

	forward := cache.Forward(lvl)
	assert.Len(t, forward["a"], 1)
	assert.Equal(t, "b", forward["a"][0].DestRoom)
	assert.Empty(t, forward["d"])

	reverse := cache.Reverse(lvl)
	assert.Len(t, reverse["d"], 1)
	assert.Equal(t, "c", reverse["d"][0].SourceRoom)
	assert.Empty(t, reverse["a"])
}

func TestCache_ReachableTo(t *testing.T) {
	cache := pathcache.New()
	lvl := chainLevel()

	set := cache.ReachableTo(lvl, "c")
	assert.True(t, set["a"])
	assert.True(t, set["b"])
	assert.True(t, set["c"], "destination is always reachable from itself")
	assert.False(t, set["d"], "downstream rooms cannot reach the destination")
	assert.False(t, set["island"])
}

func TestCache_SegmentPaths(t *testing.T) {
	cache := pathcache.New()
	lvl := chainLevel()

	_, ok := cache.SegmentPaths(lvl, 0)
	assert.False(t, ok)

	paths := [][]core.RoomConnection{{lvl.RoomConnections[0]}}
	cache.StoreSegmentPaths(lvl, 0, paths)

	got, ok := cache.SegmentPaths(lvl, 0)
	assert.True(t, ok)
	assert.Equal(t, paths, got)
}
