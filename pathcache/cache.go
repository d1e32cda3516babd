package pathcache

import (
	"fmt"

	"github.com/ashlyng/summitpath/core"
	"github.com/ashlyng/summitpath/regionpath"
)

// regionKey identifies one cached region path set.
type regionKey struct {
	level  string
	room   string
	source string
	dest   string
}

// reachKey identifies one cached reachability set.
type reachKey struct {
	level    string
	destRoom string
}

// segmentKey identifies one cached chained-sublevel path set.
type segmentKey struct {
	level   string
	segment int
}

// Cache memoizes the expensive intermediate results of one batch run.
// The zero value is not usable; call New.
type Cache struct {
	regionPaths map[regionKey][][]*core.Region
	forward     map[string]map[string][]core.RoomConnection
	reverse     map[string]map[string][]core.RoomConnection
	reachable   map[reachKey]map[string]bool
	segments    map[segmentKey][][]core.RoomConnection
}

// New returns an empty Cache ready for one run.
func New() *Cache {
	return &Cache{
		regionPaths: make(map[regionKey][][]*core.Region),
		forward:     make(map[string]map[string][]core.RoomConnection),
		reverse:     make(map[string]map[string][]core.RoomConnection),
		reachable:   make(map[reachKey]map[string]bool),
		segments:    make(map[segmentKey][][]core.RoomConnection),
	}
}

// RegionPaths returns all region paths through the named room between two
// regions, computing them via regionpath.Through on first use.
// Errors are not cached; a failed lookup is retried on the next call.
func (c *Cache) RegionPaths(level *core.Level, roomName, source, dest string) ([][]*core.Region, error) {
	key := regionKey{level: level.Name, room: roomName, source: source, dest: dest}
	if paths, ok := c.regionPaths[key]; ok {
		return paths, nil
	}

	room, err := level.Room(roomName)
	if err != nil {
		return nil, fmt.Errorf("pathcache: room %q in level %q: %w", roomName, level.Name, err)
	}
	paths, err := regionpath.Through(room, source, dest)
	if err != nil {
		return nil, err
	}

	c.regionPaths[key] = paths
	return paths, nil
}

// Forward returns the level's forward room graph: source room name → the
// room connections leaving it.
func (c *Cache) Forward(level *core.Level) map[string][]core.RoomConnection {
	if graph, ok := c.forward[level.Name]; ok {
		return graph
	}
	graph := make(map[string][]core.RoomConnection)
	for _, conn := range level.RoomConnections {
		graph[conn.SourceRoom] = append(graph[conn.SourceRoom], conn)
	}
	c.forward[level.Name] = graph
	return graph
}

// Reverse returns the level's reverse room graph: destination room name →
// the room connections entering it, each kept in its original orientation.
func (c *Cache) Reverse(level *core.Level) map[string][]core.RoomConnection {
	if graph, ok := c.reverse[level.Name]; ok {
		return graph
	}
	graph := make(map[string][]core.RoomConnection)
	for _, conn := range level.RoomConnections {
		graph[conn.DestRoom] = append(graph[conn.DestRoom], conn)
	}
	c.reverse[level.Name] = graph
	return graph
}

// ReachableTo returns the set of rooms from which destRoom can be reached
// at all, computed by breadth-first traversal of the reverse room graph.
// destRoom itself is always a member. The result bounds the forward search
// over cyclic room graphs.
//
// Complexity: O(rooms + connections) on first use, O(1) after.
func (c *Cache) ReachableTo(level *core.Level, destRoom string) map[string]bool {
	key := reachKey{level: level.Name, destRoom: destRoom}
	if set, ok := c.reachable[key]; ok {
		return set
	}

	reverse := c.Reverse(level)
	set := map[string]bool{destRoom: true}
	queue := []string{destRoom}

	var current string
	for len(queue) > 0 {
		current, queue = queue[0], queue[1:]
		for _, conn := range reverse[current] {
			if set[conn.SourceRoom] {
				continue
			}
			set[conn.SourceRoom] = true
			queue = append(queue, conn.SourceRoom)
		}
	}

	c.reachable[key] = set
	return set
}

// SegmentPaths returns the cached entry→exit path set of one chained
// sublevel, if present.
func (c *Cache) SegmentPaths(level *core.Level, segment int) ([][]core.RoomConnection, bool) {
	paths, ok := c.segments[segmentKey{level: level.Name, segment: segment}]
	return paths, ok
}

// StoreSegmentPaths records the entry→exit path set of one chained
// sublevel for reuse across every location within that sublevel's chain.
func (c *Cache) StoreSegmentPaths(level *core.Level, segment int, paths [][]core.RoomConnection) {
	c.segments[segmentKey{level: level.Name, segment: segment}] = paths
}
