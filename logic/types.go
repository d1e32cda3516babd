package logic

// Option configures Collapse.
type Option func(*Options)

// Options holds the remap/augment and invalidity configuration. The zero
// configuration makes remapping and the invalidity filter no-ops.
type Options struct {
	// Remap maps external requirement names to the rule engine's
	// canonical identifiers.
	Remap map[string]string

	// DisabledMarker is the token meaning "the feature gating remapped
	// items is turned off", appended as an alternative branch wherever a
	// remap occurred.
	DisabledMarker string

	// Gated reports whether a token names an item gated by the feature
	// behind DisabledMarker. A term pairing the marker with a gated
	// token is contradictory and gets culled.
	Gated func(token string) bool
}

// DefaultOptions returns Options with no remap table, no marker, and no
// gated-token rule.
func DefaultOptions() Options { return Options{} }

// WithRemap installs the token remap table and its disabled marker.
func WithRemap(table map[string]string, marker string) Option {
	return func(o *Options) {
		o.Remap = table
		o.DisabledMarker = marker
	}
}

// WithGated installs the gated-token predicate used by the invalidity
// filter.
func WithGated(fn func(token string) bool) Option {
	return func(o *Options) {
		o.Gated = fn
	}
}
