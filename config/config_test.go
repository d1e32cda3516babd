package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashlyng/summitpath/config"
	"github.com/ashlyng/summitpath/roompath"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
sources:
  "1a": {room: "1", region: "main"}
  "7a": {room: "a-00", region: "main"}
chains:
  "7a":
    - entry: {room: "a-00", region: "main"}
      exit: {room: "a-15", region: "east"}
    - entry: {room: "b-00", region: "main"}
      exit: {room: "b-09", region: "east"}
revisits:
  "3a": 3
remap:
  "celestialresort_key": "celestialresorta-frontdoorkey"
disabled_marker: "$KEYSANITY_IS_DISABLED"
gated_substrings: ["key"]
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	refs := cfg.SourceRefs()
	assert.Equal(t, roompath.RoomRef{Room: "1", Region: "main"}, refs["1a"])

	chains := cfg.ChainSegments()
	require.Len(t, chains["7a"], 2)
	assert.Equal(t, roompath.Segment{
		Entry: roompath.RoomRef{Room: "a-00", Region: "main"},
		Exit:  roompath.RoomRef{Room: "a-15", Region: "east"},
	}, chains["7a"][0])

	assert.Equal(t, 3, cfg.Revisits["3a"])
	assert.Equal(t, "$KEYSANITY_IS_DISABLED", cfg.DisabledMarker)

	gated := cfg.Gated()
	require.NotNil(t, gated)
	assert.True(t, gated("celestialresorta-frontdoorkey"))
	assert.False(t, gated("dash"))
}

func TestLoad_NoSources(t *testing.T) {
	path := writeConfig(t, `
remap:
  "a": "b"
`)

	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrNoSources)
}

func TestLoad_IncompleteRef(t *testing.T) {
	path := writeConfig(t, `
sources:
  "1a": {room: "1"}
`)

	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrBadRef)
}

func TestLoad_IncompleteChainRef(t *testing.T) {
	path := writeConfig(t, `
sources:
  "7a": {room: "a-00", region: "main"}
chains:
  "7a":
    - entry: {room: "a-00", region: "main"}
      exit: {room: "a-15"}
`)

	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrBadRef)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestChainSegments_EmptyIsNil(t *testing.T) {
	path := writeConfig(t, `
sources:
  "1a": {room: "1", region: "main"}
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.ChainSegments())
	assert.Nil(t, cfg.Gated())
}
