package roompath

import (
	"fmt"

	"github.com/ashlyng/summitpath/core"
	"github.com/ashlyng/summitpath/pathcache"
)

// Finder enumerates room-connection paths through one level, sharing a
// pathcache.Cache with the rest of the run.
type Finder struct {
	level *core.Level
	cache *pathcache.Cache
	opts  Options
}

// New builds a Finder for level backed by cache.
func New(level *core.Level, cache *pathcache.Cache, opts ...Option) (*Finder, error) {
	if level == nil {
		return nil, ErrLevelNil
	}
	if cache == nil {
		return nil, ErrCacheNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Finder{level: level, cache: cache, opts: o}, nil
}

// branch is one pending line of the search: the room it sits in, the
// region it occupies there, the connections taken so far, and its private
// per-room visit counts.
type branch struct {
	room   string
	region string
	path   []core.RoomConnection
	visits map[string]int
}

// Between returns every structurally valid sequence of room connections
// from the source room/region to the destination room/region.
//
// A source room equal to the destination room yields an empty set: no
// inter-room travel is needed, and routes looping out of and back into
// the origin room are a documented limitation (see package doc). Zero
// paths for distinct rooms means the destination is unreachable and is
// likewise not an error.
func (f *Finder) Between(srcRoom, srcRegion, dstRoom, dstRegion string) ([][]core.RoomConnection, error) {
	// 1. Validate the endpoints against the model (missing-data errors).
	if len(f.level.Rooms) == 0 {
		return nil, fmt.Errorf("roompath: level %q: %w", f.level.Name, core.ErrNoRooms)
	}
	if err := f.checkRef(f.level, srcRoom, srcRegion); err != nil {
		return nil, fmt.Errorf("roompath: source: %w", err)
	}
	if err := f.checkRef(f.level, dstRoom, dstRegion); err != nil {
		return nil, fmt.Errorf("roompath: destination: %w", err)
	}

	// 2. Degenerate case: already in the destination room.
	if srcRoom == dstRoom {
		return nil, nil
	}

	// 3. Chained levels take the partition-and-multiply route, provided
	//    the search starts where the chain does.
	if len(f.opts.Chain) > 0 && f.opts.Chain[0].Entry == (RoomRef{Room: srcRoom, Region: srcRegion}) {
		return f.chained(dstRoom, dstRegion)
	}

	return f.search(f.level, srcRoom, srcRegion, dstRoom, dstRegion)
}

// search runs the depth-first enumeration over one (sub)level's room
// graph. level may be the Finder's own level or a carved-out segment.
func (f *Finder) search(level *core.Level, srcRoom, srcRegion, dstRoom, dstRegion string) ([][]core.RoomConnection, error) {
	forward := f.cache.Forward(level)

	// Reachability pruning: rooms that cannot reach the destination at
	// all are dead ends; never step into one.
	reach := f.cache.ReachableTo(level, dstRoom)
	if !reach[srcRoom] {
		return nil, nil
	}

	var paths [][]core.RoomConnection
	stack := []branch{{
		room:   srcRoom,
		region: srcRegion,
		visits: map[string]int{srcRoom: 1},
	}}

	var b branch
	for len(stack) > 0 {
		b, stack = stack[len(stack)-1], stack[:len(stack)-1]

		if b.room == dstRoom {
			ok, err := f.acceptable(level, b, dstRegion)
			if err != nil {
				return nil, err
			}
			if ok {
				paths = append(paths, b.path)
			}
			continue
		}

		for _, conn := range forward[b.room] {
			next := conn.DestRoom

			if !reach[next] {
				continue
			}
			if b.visits[next]+1 > f.opts.MaxRevisits {
				continue
			}
			if connUsed(b.path, conn) {
				continue
			}

			// Lazy hop validation: the branch must be able to cross its
			// current room from where it stands to this door's region.
			// Matching regions need no internal traversal at all.
			if b.region != conn.SourceDoor {
				crossings, err := f.cache.RegionPaths(level, b.room, b.region, conn.SourceDoor)
				if err != nil {
					return nil, err
				}
				if len(crossings) == 0 {
					f.opts.Logger.Debugw("no route through room, hop skipped",
						"level", level.Name,
						"room", b.room,
						"from", b.region,
						"to", conn.SourceDoor,
					)
					continue
				}
			}

			stack = append(stack, branch{
				room:   next,
				region: conn.DestDoor,
				path:   appendConn(b.path, conn),
				visits: bumpVisit(b.visits, next),
			})
		}
	}

	return paths, nil
}

// acceptable reports whether a branch that reached the destination room
// can also reach the destination region internally. The check is skipped
// when the branch already stands in it.
func (f *Finder) acceptable(level *core.Level, b branch, dstRegion string) (bool, error) {
	if dstRegion == "" || b.region == dstRegion {
		return true, nil
	}
	crossings, err := f.cache.RegionPaths(level, b.room, b.region, dstRegion)
	if err != nil {
		return false, err
	}
	if len(crossings) == 0 {
		f.opts.Logger.Debugw("destination region unreachable from entry door, path dropped",
			"level", level.Name,
			"room", b.room,
			"from", b.region,
			"to", dstRegion,
		)
		return false, nil
	}
	return true, nil
}

func (f *Finder) checkRef(level *core.Level, roomName, regionName string) error {
	room, err := level.Room(roomName)
	if err != nil {
		return fmt.Errorf("room %q in level %q: %w", roomName, level.Name, err)
	}
	if regionName == "" {
		return nil
	}
	if _, err = room.Region(regionName); err != nil {
		return fmt.Errorf("region %q in room %q: %w", regionName, roomName, err)
	}
	return nil
}

// connUsed reports whether this exact connection (4-tuple identity) was
// already taken by the branch.
func connUsed(path []core.RoomConnection, conn core.RoomConnection) bool {
	for _, used := range path {
		if used == conn {
			return true
		}
	}
	return false
}

// appendConn copies the branch path; siblings must not share backing
// arrays.
func appendConn(path []core.RoomConnection, conn core.RoomConnection) []core.RoomConnection {
	out := make([]core.RoomConnection, len(path), len(path)+1)
	copy(out, path)
	return append(out, conn)
}

func bumpVisit(visits map[string]int, room string) map[string]int {
	out := make(map[string]int, len(visits)+1)
	for k, v := range visits {
		out[k] = v
	}
	out[room]++
	return out
}
