package regionpath

import (
	"errors"
	"fmt"

	"github.com/ashlyng/summitpath/core"
)

// ErrRoomNil is returned when a nil *core.Room is passed to Through.
var ErrRoomNil = errors.New("regionpath: room is nil")

// frame is one pending branch of the traversal: where we are, how we got
// here, and which regions this branch has already used.
type frame struct {
	current string
	path    []string
	visited map[string]bool
}

// Through returns every simple path through room's region graph from
// source to dest, each path as the ordered list of regions visited.
//
// A source equal to dest yields an empty path set ("already there").
// Two distinct regions with no route between them also yield an empty
// set; that is an expected outcome, not an error.
func Through(room *core.Room, source, dest string) ([][]*core.Region, error) {
	// 1. Validate input
	if room == nil {
		return nil, ErrRoomNil
	}
	if source == dest {
		return nil, nil
	}
	if _, err := room.Region(source); err != nil {
		return nil, fmt.Errorf("regionpath: source region %q in room %q: %w", source, room.Name, err)
	}
	if _, err := room.Region(dest); err != nil {
		return nil, fmt.Errorf("regionpath: dest region %q in room %q: %w", dest, room.Name, err)
	}

	// 2. Build the adjacency list, dropping impassable connections
	adjacency := make(map[string][]string, len(room.Regions))
	for _, region := range room.Regions {
		for _, conn := range region.Connections {
			if conn.Rule.Impassable() {
				continue
			}
			adjacency[region.Name] = append(adjacency[region.Name], conn.Dest)
		}
	}

	// 3. Depth-first search with an explicit frontier; the visited set is
	//    per-branch, so separate paths may cover overlapping regions.
	var paths [][]*core.Region
	stack := []frame{{
		current: source,
		path:    []string{source},
		visited: map[string]bool{source: true},
	}}

	var f frame
	for len(stack) > 0 {
		f, stack = stack[len(stack)-1], stack[:len(stack)-1]

		if f.current == dest {
			resolved, err := resolve(room, f.path)
			if err != nil {
				return nil, err
			}
			paths = append(paths, resolved)
			continue
		}

		for _, next := range adjacency[f.current] {
			if f.visited[next] {
				continue
			}
			stack = append(stack, frame{
				current: next,
				path:    appendCopy(f.path, next),
				visited: extendSet(f.visited, next),
			})
		}
	}

	return paths, nil
}

// resolve maps a path of region names back to the room's Region entities.
func resolve(room *core.Room, names []string) ([]*core.Region, error) {
	out := make([]*core.Region, len(names))
	for i, name := range names {
		region, err := room.Region(name)
		if err != nil {
			return nil, fmt.Errorf("regionpath: region %q in room %q: %w", name, room.Name, err)
		}
		out[i] = region
	}
	return out, nil
}

// appendCopy returns a fresh slice so sibling branches never share backing
// arrays.
func appendCopy(path []string, next string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, next)
}

func extendSet(visited map[string]bool, next string) map[string]bool {
	out := make(map[string]bool, len(visited)+1)
	for k := range visited {
		out[k] = true
	}
	out[next] = true
	return out
}
