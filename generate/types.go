package generate

import (
	"go.uber.org/zap"

	"github.com/ashlyng/summitpath/roompath"
)

// progressEvery controls how often Paths reports batch progress.
const progressEvery = 50

// Option configures a batch run.
type Option func(*Options)

// Options carries the per-run configuration shared by Paths and Logic.
type Options struct {
	// Logger receives progress and data-completeness warnings.
	// Defaults to a no-op.
	Logger *zap.SugaredLogger

	// Chains maps level names to their chained-sublevel boundary tables.
	Chains map[string][]roompath.Segment

	// Revisits maps level names to per-level room revisit overrides.
	Revisits map[string]int

	// Remap, DisabledMarker, and Gated configure the logic synthesizer's
	// remap/augment and invalidity steps; zero values disable them.
	Remap          map[string]string
	DisabledMarker string
	Gated          func(token string) bool
}

// DefaultOptions returns Options with a no-op logger and every optional
// pass disabled.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop().Sugar()}
}

// WithLogger installs a logger for progress and warnings.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithChains installs the chained-sublevel boundary tables, keyed by
// level name.
func WithChains(chains map[string][]roompath.Segment) Option {
	return func(o *Options) {
		o.Chains = chains
	}
}

// WithRevisits installs per-level room revisit overrides.
func WithRevisits(revisits map[string]int) Option {
	return func(o *Options) {
		o.Revisits = revisits
	}
}

// WithRemap installs the token remap table and disabled marker for the
// logic pass.
func WithRemap(table map[string]string, marker string) Option {
	return func(o *Options) {
		o.Remap = table
		o.DisabledMarker = marker
	}
}

// WithGated installs the gated-token predicate for the logic pass.
func WithGated(fn func(token string) bool) Option {
	return func(o *Options) {
		o.Gated = fn
	}
}
