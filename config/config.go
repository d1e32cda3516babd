// Package config loads the YAML run configuration: per-level entry
// points, chained-sublevel boundary tables, revisit overrides, and the
// logic synthesizer's remap and gating settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ashlyng/summitpath/roompath"
)

// Sentinel errors for configuration validation.
var (
	// ErrNoSources indicates the configuration defines no level entry
	// points at all.
	ErrNoSources = errors.New("config: no level sources defined")

	// ErrBadRef indicates a room reference is missing its room or region.
	ErrBadRef = errors.New("config: room reference missing room or region")
)

// RoomRef names a region within a room, as written in the config file.
type RoomRef struct {
	Room   string `yaml:"room"`
	Region string `yaml:"region"`
}

// Segment is one entry/exit pair of a chained-sublevel boundary table.
type Segment struct {
	Entry RoomRef `yaml:"entry"`
	Exit  RoomRef `yaml:"exit"`
}

// Config is the parsed run configuration.
type Config struct {
	// Sources maps level names to the room and region a run of that
	// level starts from.
	Sources map[string]RoomRef `yaml:"sources"`

	// Chains maps level names to their segment boundary tables. Levels
	// absent from the map are searched whole.
	Chains map[string][]Segment `yaml:"chains"`

	// Revisits maps level names to per-level room revisit overrides.
	Revisits map[string]int `yaml:"revisits"`

	// Remap rewrites tokens during logic synthesis; DisabledMarker is
	// the extra disjunct appended alongside any remapped term.
	Remap          map[string]string `yaml:"remap"`
	DisabledMarker string            `yaml:"disabled_marker"`

	// GatedSubstrings marks a token as gated when it contains any of
	// these substrings; used by the invalidity filter.
	GatedSubstrings []string `yaml:"gated_substrings"`
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Sources) == 0 {
		return ErrNoSources
	}
	for level, ref := range c.Sources {
		if ref.Room == "" || ref.Region == "" {
			return fmt.Errorf("%w: sources[%s]", ErrBadRef, level)
		}
	}
	for level, segments := range c.Chains {
		for i, seg := range segments {
			if seg.Entry.Room == "" || seg.Entry.Region == "" ||
				seg.Exit.Room == "" || seg.Exit.Region == "" {
				return fmt.Errorf("%w: chains[%s][%d]", ErrBadRef, level, i)
			}
		}
	}
	return nil
}

// SourceRefs converts the entry-point map to the path finder's type.
func (c *Config) SourceRefs() map[string]roompath.RoomRef {
	refs := make(map[string]roompath.RoomRef, len(c.Sources))
	for level, ref := range c.Sources {
		refs[level] = roompath.RoomRef{Room: ref.Room, Region: ref.Region}
	}
	return refs
}

// ChainSegments converts the boundary tables to the path finder's type.
func (c *Config) ChainSegments() map[string][]roompath.Segment {
	if len(c.Chains) == 0 {
		return nil
	}
	chains := make(map[string][]roompath.Segment, len(c.Chains))
	for level, segments := range c.Chains {
		converted := make([]roompath.Segment, len(segments))
		for i, seg := range segments {
			converted[i] = roompath.Segment{
				Entry: roompath.RoomRef{Room: seg.Entry.Room, Region: seg.Entry.Region},
				Exit:  roompath.RoomRef{Room: seg.Exit.Room, Region: seg.Exit.Region},
			}
		}
		chains[level] = converted
	}
	return chains
}

// Gated returns the gated-token predicate derived from GatedSubstrings,
// or nil when none are configured.
func (c *Config) Gated() func(token string) bool {
	if len(c.GatedSubstrings) == 0 {
		return nil
	}
	subs := append([]string(nil), c.GatedSubstrings...)
	return func(token string) bool {
		for _, sub := range subs {
			if strings.Contains(token, sub) {
				return true
			}
		}
		return false
	}
}
