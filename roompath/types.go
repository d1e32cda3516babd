// Package roompath types and options: RoomRef, Segment, functional
// options, and sentinel errors.
package roompath

import (
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrLevelNil is returned by New when the level is nil.
	ErrLevelNil = errors.New("roompath: level is nil")

	// ErrCacheNil is returned by New when the cache is nil.
	ErrCacheNil = errors.New("roompath: cache is nil")

	// ErrSegmentGap indicates the chained-sublevel table does not cover
	// the requested destination, or two adjacent segments are not joined
	// by any room connection. Either way the boundary table disagrees
	// with the level data.
	ErrSegmentGap = errors.New("roompath: chain segments do not cover the search")
)

// RoomRef names a region inside a room.
type RoomRef struct {
	Room   string
	Region string
}

// Segment is one sublevel of a chained level: the room/region the chain
// enters it through, and the room/region it must be left through to reach
// the next segment. Exit is ignored for the segment containing the search
// destination.
type Segment struct {
	Entry RoomRef
	Exit  RoomRef
}

// DefaultMaxRevisits bounds how many times one branch may enter the same
// room. Two entries allow leaving and re-entering a hub through a
// different door; anything higher has never produced a distinct path in
// practice, only blow-up.
const DefaultMaxRevisits = 2

// Option configures a Finder.
type Option func(*Options)

// Options holds configurable parameters for the room path search.
type Options struct {
	// MaxRevisits is the per-branch cap on entries into a single room.
	// Must be at least 1. Default DefaultMaxRevisits.
	MaxRevisits int

	// Chain, when non-empty, declares the level as an ordered chain of
	// sublevels and switches Between to the partition-and-multiply
	// strategy. The first segment's entry must be the search source.
	Chain []Segment

	// Logger receives verbose search diagnostics. Defaults to a no-op.
	Logger *zap.SugaredLogger
}

// DefaultOptions returns Options with the revisit bound at
// DefaultMaxRevisits, no chain, and a no-op logger.
func DefaultOptions() Options {
	return Options{
		MaxRevisits: DefaultMaxRevisits,
		Logger:      zap.NewNop().Sugar(),
	}
}

// WithMaxRevisits overrides the per-branch room revisit bound.
// Values below 1 are ignored.
func WithMaxRevisits(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MaxRevisits = n
		}
	}
}

// WithChain declares the level's chained-sublevel boundary table.
func WithChain(segments []Segment) Option {
	return func(o *Options) {
		o.Chain = segments
	}
}

// WithLogger installs a logger for search diagnostics.
// A nil logger has no effect.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
