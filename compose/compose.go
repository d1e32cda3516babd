package compose

import (
	"errors"
	"fmt"

	"github.com/ashlyng/summitpath/core"
	"github.com/ashlyng/summitpath/pathcache"
)

// ErrNoRouteThroughRoom indicates a room on an already-validated room
// path turned out to have no internal region path for one of its hops.
// The room path finder is supposed to have thrown such paths out; seeing
// this error means a pruning or validation bug upstream.
var ErrNoRouteThroughRoom = errors.New("compose: no route through validated room")

// node is one step of a concrete traversal: a region together with the
// room it belongs to. The room qualifier keeps regions with the same
// local name in different rooms apart.
type node struct {
	room   string
	region *core.Region
}

// LocationPaths expands one room path into every concrete location path.
//
// srcRegion is where the traversal starts inside the first room; dstRoom
// and dstRegion name the true destination. An empty roomPath composes the
// destination room's internal segment only.
func LocationPaths(
	level *core.Level,
	roomPath []core.RoomConnection,
	srcRegion, dstRoom, dstRegion string,
	cache *pathcache.Cache,
) ([]core.LocationPath, error) {
	var partial [][]node

	// Walk the hops: each room between source and destination contributes
	// its region paths from the branch's entry door to the hop's own
	// source door.
	entry := srcRegion
	for _, hop := range roomPath {
		segments, err := roomSegments(level, hop.SourceRoom, entry, hop.SourceDoor, cache)
		if err != nil {
			return nil, err
		}
		partial = combine(partial, segments)
		entry = hop.DestDoor
	}

	// Destination room: one more internal segment from the final entry
	// door to the true destination region.
	segments, err := roomSegments(level, dstRoom, entry, dstRegion, cache)
	if err != nil {
		return nil, err
	}
	partial = combine(partial, segments)

	out := make([]core.LocationPath, len(partial))
	for i, nodes := range partial {
		out[i] = flatten(nodes)
	}
	return out, nil
}

// roomSegments returns the traversal options through one room as node
// sequences. Matching entry and exit regions contribute the single region
// the traversal already stands in.
func roomSegments(level *core.Level, roomName, from, to string, cache *pathcache.Cache) ([][]node, error) {
	if from == to {
		room, err := level.Room(roomName)
		if err != nil {
			return nil, fmt.Errorf("compose: room %q in level %q: %w", roomName, level.Name, err)
		}
		region, err := room.Region(from)
		if err != nil {
			return nil, fmt.Errorf("compose: region %q in room %q: %w", from, roomName, err)
		}
		return [][]node{{{room: roomName, region: region}}}, nil
	}

	regionPaths, err := cache.RegionPaths(level, roomName, from, to)
	if err != nil {
		return nil, err
	}
	if len(regionPaths) == 0 {
		return nil, fmt.Errorf("compose: %s_%s-%s-%s: %w", level.Name, roomName, from, to, ErrNoRouteThroughRoom)
	}

	segments := make([][]node, len(regionPaths))
	for i, path := range regionPaths {
		seg := make([]node, len(path))
		for j, region := range path {
			seg[j] = node{room: roomName, region: region}
		}
		segments[i] = seg
	}
	return segments, nil
}

// combine extends every accumulated traversal with every option for the
// next room: the Cartesian product that multiplies path counts by the
// branching factor of each room along the way.
func combine(acc, segments [][]node) [][]node {
	if len(acc) == 0 {
		out := make([][]node, len(segments))
		for i, seg := range segments {
			out[i] = append([]node(nil), seg...)
		}
		return out
	}

	out := make([][]node, 0, len(acc)*len(segments))
	for _, prefix := range acc {
		for _, seg := range segments {
			joined := make([]node, 0, len(prefix)+len(seg))
			joined = append(joined, prefix...)
			joined = append(joined, seg...)
			out = append(out, joined)
		}
	}
	return out
}

// flatten converts a node sequence into the storage form: room-qualified
// region names, plus the non-empty rules of the hops between consecutive
// regions. Crossing between rooms carries no rule (doors gate nothing by
// themselves), and empty same-room rules are dropped from the rule list
// while their regions stay in the region list.
func flatten(nodes []node) core.LocationPath {
	path := core.LocationPath{
		Regions: make([]string, len(nodes)),
	}
	for i, n := range nodes {
		path.Regions[i] = n.room + "-" + n.region.Name

		if i+1 >= len(nodes) || nodes[i+1].room != n.room {
			continue
		}
		if rule := n.region.RuleTo(nodes[i+1].region.Name); !rule.Empty() {
			path.Rules = append(path.Rules, rule)
		}
	}
	return path
}
