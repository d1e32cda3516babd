package generate

import (
	"fmt"

	"github.com/ashlyng/summitpath/compose"
	"github.com/ashlyng/summitpath/core"
	"github.com/ashlyng/summitpath/logic"
	"github.com/ashlyng/summitpath/pathcache"
	"github.com/ashlyng/summitpath/roompath"
)

// Locations extracts every location of interest from the level model:
// one checkpoint location per checkpoint-bearing room, plus every inline
// region location. Paths start empty.
func Locations(data *core.LevelData) []*core.Location {
	var out []*core.Location
	for _, level := range data.Levels {
		for _, room := range level.Rooms {
			if room.Checkpoint != "" {
				out = append(out, &core.Location{
					LevelName:        level.Name,
					LevelDisplayName: level.DisplayName,
					RoomName:         room.Name,
					RegionName:       room.CheckpointRegion,
					Name:             room.Checkpoint,
					DisplayName:      room.Checkpoint,
					Type:             core.TypeCheckpoint,
				})
			}

			for _, region := range room.Regions {
				for _, raw := range region.Locations {
					out = append(out, &core.Location{
						LevelName:        level.Name,
						LevelDisplayName: level.DisplayName,
						RoomName:         room.Name,
						RegionName:       region.Name,
						Name:             raw.Name,
						DisplayName:      raw.DisplayName,
						Type:             raw.Type,
						Rule:             raw.Rule,
					})
				}
			}
		}
	}
	return out
}

// Paths computes and stores the full location path set of every location.
// sources maps each level name to its entry room/region; a level without
// an entry is a missing-data error and aborts the batch.
//
// Locations whose room is the level entry room keep zero paths: the room
// search treats same-room travel as empty (documented limitation), and a
// warning is logged when that leaves a location with no gating data.
func Paths(data *core.LevelData, locations []*core.Location, sources map[string]roompath.RoomRef, opts ...Option) error {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	cache := pathcache.New()
	finders := make(map[string]*roompath.Finder, len(data.Levels))

	for i, loc := range locations {
		level, err := data.Level(loc.LevelName)
		if err != nil {
			return fmt.Errorf("generate: location %q: level %q: %w", loc.Name, loc.LevelName, err)
		}

		source, ok := sources[level.Name]
		if !ok {
			return fmt.Errorf("generate: no entry source configured for level %q", level.Name)
		}

		finder := finders[level.Name]
		if finder == nil {
			finder, err = newFinder(level, cache, source, o)
			if err != nil {
				return err
			}
			finders[level.Name] = finder
		}

		o.Logger.Debugw("finding location paths",
			"level", level.Name,
			"room", loc.RoomName,
			"region", loc.RegionName,
			"location", loc.Name,
		)

		roomPaths, err := finder.Between(source.Room, source.Region, loc.RoomName, loc.RegionName)
		if err != nil {
			return fmt.Errorf("generate: location %q in level %q: %w", loc.Name, level.Name, err)
		}

		loc.Paths = nil
		for _, roomPath := range roomPaths {
			composed, err := compose.LocationPaths(level, roomPath, source.Region, loc.RoomName, loc.RegionName, cache)
			if err != nil {
				return fmt.Errorf("generate: location %q in level %q: %w", loc.Name, level.Name, err)
			}
			loc.Paths = append(loc.Paths, composed...)
		}

		if len(loc.Paths) == 0 && loc.Rule.Empty() {
			o.Logger.Warnw("no gating information for location",
				"level", level.Name,
				"room", loc.RoomName,
				"location", loc.Name,
			)
		}

		if (i+1)%progressEvery == 0 {
			o.Logger.Infow("calculated location paths", "locations", i+1)
		}
	}

	return nil
}

func newFinder(level *core.Level, cache *pathcache.Cache, source roompath.RoomRef, o Options) (*roompath.Finder, error) {
	fopts := []roompath.Option{roompath.WithLogger(o.Logger)}
	if chain, ok := o.Chains[level.Name]; ok {
		fopts = append(fopts, roompath.WithChain(chain))
	}
	if revisits, ok := o.Revisits[level.Name]; ok {
		fopts = append(fopts, roompath.WithMaxRevisits(revisits))
	}
	// The source ref is validated up front so a bad source map fails on
	// the first location of the level, not deep inside a search.
	if _, err := level.Room(source.Room); err != nil {
		return nil, fmt.Errorf("generate: entry room %q for level %q: %w", source.Room, level.Name, err)
	}
	return roompath.New(level, cache, fopts...)
}

// Logic collapses every location's accumulated paths and intrinsic rule
// into its final CollapsedLogic record. Locations that end up with no
// logic at all are flagged for review via the logger.
func Logic(locations []*core.Location, opts ...Option) []core.CollapsedLogic {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	lopts := []logic.Option{logic.WithGated(o.Gated)}
	if o.Remap != nil {
		lopts = append(lopts, logic.WithRemap(o.Remap, o.DisabledMarker))
	}

	out := make([]core.CollapsedLogic, 0, len(locations))
	for _, loc := range locations {
		rule := logic.Collapse(loc.Paths, loc.Rule, lopts...)
		if len(rule) == 0 {
			o.Logger.Warnw("no logic rules for location",
				"level", loc.LevelDisplayName,
				"room", loc.RoomName,
				"location", loc.DisplayName,
			)
		}
		out = append(out, core.CollapsedLogic{
			LevelDisplayName:    loc.LevelDisplayName,
			RoomName:            loc.RoomName,
			LocationDisplayName: loc.DisplayName,
			LocationType:        loc.Type,
			Rule:                rule,
		})
	}
	return out
}
