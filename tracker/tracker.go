// Package tracker injects collapsed logic rules into PopTracker pack
// location files. Each pack file is a JSON array of level objects whose
// nested sections carry an "access_rules" list; injection replaces those
// lists with the synthesized rules.
package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ashlyng/summitpath/core"
)

// Sentinel errors for pack injection.
var (
	// ErrNoDirectory indicates the injector was built without a pack
	// directory.
	ErrNoDirectory = errors.New("tracker: pack directory not set")

	// ErrUnmappedLevel indicates a level display name has no pack file
	// mapped for it.
	ErrUnmappedLevel = errors.New("tracker: no pack file mapped for level")
)

// Summary counts the outcome of one injection run.
type Summary struct {
	Updated        int
	Ignored        int
	MissingSection int
	Files          int
}

// Option configures an Injector.
type Option func(*Injector)

// WithLevelFiles replaces the base-level-name to pack-file map.
func WithLevelFiles(files map[string]string) Option {
	return func(in *Injector) {
		in.levelFiles = files
	}
}

// WithIgnoredTypes skips locations of the given types during injection.
func WithIgnoredTypes(types ...string) Option {
	return func(in *Injector) {
		for _, t := range types {
			in.ignored[t] = true
		}
	}
}

// WithDryRun parses and matches but never writes files back.
func WithDryRun() Option {
	return func(in *Injector) {
		in.dryRun = true
	}
}

// WithLogger installs a logger for per-location diagnostics.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(in *Injector) {
		if l != nil {
			in.logger = l
		}
	}
}

// Injector matches collapsed logic records against pack files and
// rewrites the matching sections' access rules. Files load lazily and
// stay cached until Flush.
type Injector struct {
	dir        string
	levelFiles map[string]string
	ignored    map[string]bool
	dryRun     bool
	logger     *zap.SugaredLogger

	cache    map[string][]map[string]any
	affected map[string]bool
}

// New builds an Injector over the given pack directory.
func New(dir string, opts ...Option) *Injector {
	in := &Injector{
		dir:        dir,
		levelFiles: DefaultLevelFiles(),
		ignored:    make(map[string]bool),
		logger:     zap.NewNop().Sugar(),
		cache:      make(map[string][]map[string]any),
		affected:   make(map[string]bool),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// DefaultLevelFiles returns the stock base-level-name to pack-file map.
func DefaultLevelFiles() map[string]string {
	return map[string]string{
		"Celestial Resort": "celestial_resort.json",
		"Core":             "core.json",
		"Epilogue":         "epilogue.json",
		"Farewell":         "farewell.json",
		"Forsaken City":    "forsaken_city.json",
		"Golden Ridge":     "golden_ridge.json",
		"Mirror Temple":    "mirror_temple.json",
		"Old Site":         "old_site.json",
		"Prologue":         "prologue.json",
		"Reflection":       "reflection.json",
		"The Summit":       "summit.json",
	}
}

// Inject rewrites the access rules for every logic record, then flushes
// the touched files. Records of ignored types and records whose section
// cannot be located are counted but skipped.
func (in *Injector) Inject(data *core.LogicData) (Summary, error) {
	if in.dir == "" {
		return Summary{}, ErrNoDirectory
	}

	var sum Summary
	for _, logic := range data.LocationLogic {
		if in.ignored[logic.LocationType] {
			sum.Ignored++
			continue
		}
		file, err := in.fileFor(logic.LevelDisplayName)
		if err != nil {
			return sum, err
		}
		section, err := in.findSection(file, logic)
		if err != nil {
			return sum, err
		}
		if section == nil {
			sum.MissingSection++
			in.logger.Warnw("section not found",
				"level", logic.LevelDisplayName,
				"room", logic.RoomName,
				"location", logic.LocationDisplayName)
			continue
		}
		section["access_rules"] = joinRules(logic.Rule)
		sum.Updated++
		in.affected[file] = true
	}

	if err := in.Flush(); err != nil {
		return sum, err
	}
	sum.Files = len(in.affected)
	return sum, nil
}

// Flush writes every cached file back to disk. A dry-run injector only
// logs what it would write.
func (in *Injector) Flush() error {
	for file, data := range in.cache {
		if !in.affected[file] {
			continue
		}
		if in.dryRun {
			in.logger.Infow("dry run, skipping write", "file", file)
			continue
		}
		raw, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("encode pack file %s: %w", file, err)
		}
		path := filepath.Join(in.dir, file)
		if err := os.WriteFile(path, append(raw, '\n'), 0644); err != nil {
			return fmt.Errorf("write pack file %s: %w", file, err)
		}
	}
	return nil
}

// SectionName returns the section name a logic record is matched under.
// Strawberries are disambiguated by room since packs repeat their
// display names.
func SectionName(logic core.CollapsedLogic) string {
	if logic.LocationType == core.TypeStrawberry {
		return fmt.Sprintf("Room %s %s", logic.RoomName, logic.LocationDisplayName)
	}
	return logic.LocationDisplayName
}

// baseLevelName strips the trailing side letter: "Forsaken City A"
// becomes "Forsaken City".
func baseLevelName(display string) string {
	if i := strings.LastIndex(display, " "); i >= 0 {
		return display[:i]
	}
	return display
}

func joinRules(rule [][]string) []string {
	joined := make([]string, len(rule))
	for i, group := range rule {
		joined[i] = strings.Join(group, ",")
	}
	return joined
}

func (in *Injector) fileFor(levelDisplay string) (string, error) {
	base := baseLevelName(levelDisplay)
	file, ok := in.levelFiles[base]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnmappedLevel, base)
	}
	return file, nil
}

func (in *Injector) load(file string) ([]map[string]any, error) {
	if data, ok := in.cache[file]; ok {
		return data, nil
	}
	path := filepath.Join(in.dir, file)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pack file: %w", err)
	}
	var data []map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode pack file %s: %w", path, err)
	}
	in.cache[file] = data
	in.logger.Debugw("pack file cached", "file", file)
	return data, nil
}

// findSection walks one pack file for the section matching a logic
// record. Pack levels group sections under children; flat levels keep a
// top-level sections list.
func (in *Injector) findSection(file string, logic core.CollapsedLogic) (map[string]any, error) {
	data, err := in.load(file)
	if err != nil {
		return nil, err
	}

	var level map[string]any
	for _, candidate := range data {
		if candidate["name"] == logic.LevelDisplayName {
			level = candidate
			break
		}
	}
	if level == nil {
		in.logger.Debugw("level not present in pack file",
			"file", file, "level", logic.LevelDisplayName)
		return nil, nil
	}

	want := SectionName(logic)
	if children, ok := level["children"].([]any); ok && len(children) > 0 {
		for _, child := range children {
			childMap, ok := child.(map[string]any)
			if !ok {
				continue
			}
			if section := sectionIn(childMap, want); section != nil {
				return section, nil
			}
		}
		return nil, nil
	}
	return sectionIn(level, want), nil
}

func sectionIn(node map[string]any, want string) map[string]any {
	sections, ok := node["sections"].([]any)
	if !ok {
		return nil
	}
	for _, section := range sections {
		sectionMap, ok := section.(map[string]any)
		if !ok {
			continue
		}
		if sectionMap["name"] == want {
			return sectionMap
		}
	}
	return nil
}
