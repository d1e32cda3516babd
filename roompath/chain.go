// Chained-sublevel decomposition: a level declared as an ordered chain of
// segments is searched one segment at a time, and the per-segment path
// sets are joined by ordered Cartesian product. This keeps a chain of
// seven internally complex sublevels from being searched as one huge
// unconstrained graph.
package roompath

import (
	"fmt"

	"github.com/ashlyng/summitpath/core"
)

// chained resolves a search over a chained level: locate the segment
// holding the destination, search each segment up to it inside its own
// subgraph, and multiply the per-segment path sets together.
func (f *Finder) chained(dstRoom, dstRegion string) ([][]core.RoomConnection, error) {
	segments := f.opts.Chain

	// 1. Derive each segment's room set in order until the destination's
	//    segment is found.
	destIdx := -1
	roomSets := make([]map[string]bool, len(segments))
	for i, seg := range segments {
		roomSets[i] = f.segmentRooms(seg)
		if roomSets[i][dstRoom] {
			destIdx = i
			break
		}
	}
	if destIdx < 0 {
		return nil, fmt.Errorf("roompath: room %q in level %q: %w", dstRoom, f.level.Name, ErrSegmentGap)
	}

	// 2. Collect one path set per segment: entry→exit (cached, crossing
	//    connection appended) for every segment before the destination's,
	//    entry→destination for the last.
	sets := make([][][]core.RoomConnection, 0, destIdx+1)
	for i := 0; i <= destIdx; i++ {
		seg := segments[i]

		if i == destIdx {
			paths, err := f.search(f.subLevel(i, roomSets[i]), seg.Entry.Room, seg.Entry.Region, dstRoom, dstRegion)
			if err != nil {
				return nil, err
			}
			sets = append(sets, paths)
			continue
		}

		if cached, ok := f.cache.SegmentPaths(f.level, i); ok {
			sets = append(sets, cached)
			continue
		}

		paths, err := f.search(f.subLevel(i, roomSets[i]), seg.Entry.Room, seg.Entry.Region, seg.Exit.Room, seg.Exit.Region)
		if err != nil {
			return nil, err
		}
		crossing, err := f.crossing(seg, segments[i+1])
		if err != nil {
			return nil, err
		}
		for j := range paths {
			paths[j] = append(paths[j], crossing)
		}

		f.cache.StoreSegmentPaths(f.level, i, paths)
		sets = append(sets, paths)
	}

	// 3. Ordered Cartesian product across segments. Any segment with no
	//    paths empties the whole product: the chain cannot be crossed.
	product := [][]core.RoomConnection{nil}
	for _, set := range sets {
		if len(set) == 0 {
			return nil, nil
		}
		next := make([][]core.RoomConnection, 0, len(product)*len(set))
		for _, acc := range product {
			for _, tail := range set {
				joined := make([]core.RoomConnection, 0, len(acc)+len(tail))
				joined = append(joined, acc...)
				joined = append(joined, tail...)
				next = append(next, joined)
			}
		}
		product = next
	}

	return product, nil
}

// segmentRooms derives a segment's room set: forward BFS from its entry
// room that never expands past its exit room. For the final segment the
// exit is unset and the walk covers the remainder of the chain.
func (f *Finder) segmentRooms(seg Segment) map[string]bool {
	forward := f.cache.Forward(f.level)
	set := map[string]bool{seg.Entry.Room: true}
	queue := []string{seg.Entry.Room}

	var current string
	for len(queue) > 0 {
		current, queue = queue[0], queue[1:]
		if current == seg.Exit.Room {
			continue
		}
		for _, conn := range forward[current] {
			if set[conn.DestRoom] {
				continue
			}
			set[conn.DestRoom] = true
			queue = append(queue, conn.DestRoom)
		}
	}

	return set
}

// subLevel carves one segment out of the finder's level as a standalone
// level, keeping only rooms in the segment and connections internal to
// it. The synthetic name keeps its cache entries distinct from the full
// level's.
func (f *Finder) subLevel(i int, rooms map[string]bool) *core.Level {
	sub := &core.Level{
		Name:        fmt.Sprintf("%s#%d", f.level.Name, i),
		DisplayName: f.level.DisplayName,
	}
	for _, room := range f.level.Rooms {
		if rooms[room.Name] {
			sub.Rooms = append(sub.Rooms, room)
		}
	}
	for _, conn := range f.level.RoomConnections {
		if rooms[conn.SourceRoom] && rooms[conn.DestRoom] {
			sub.RoomConnections = append(sub.RoomConnections, conn)
		}
	}
	sub.Index()
	return sub
}

// crossing finds the room connection joining one segment's exit to the
// next segment's entry. Its absence means the boundary table and the
// level data disagree.
func (f *Finder) crossing(from, to Segment) (core.RoomConnection, error) {
	want := core.RoomConnection{
		SourceRoom: from.Exit.Room,
		SourceDoor: from.Exit.Region,
		DestRoom:   to.Entry.Room,
		DestDoor:   to.Entry.Region,
	}
	for _, conn := range f.level.RoomConnections {
		if conn == want {
			return conn, nil
		}
	}
	return core.RoomConnection{}, fmt.Errorf(
		"roompath: no connection %s/%s -> %s/%s in level %q: %w",
		want.SourceRoom, want.SourceDoor, want.DestRoom, want.DestDoor, f.level.Name, ErrSegmentGap,
	)
}
