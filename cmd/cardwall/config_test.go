package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/cardwall/wallpaper"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigAppliesFields(t *testing.T) {
	path := writeConfig(t, `
position: topleft
card_width: 320
card_opacity: 0.5
dark_mode: false
blur_background: true
output_dir: /tmp/wallpapers
`)

	opts := wallpaper.DefaultOptions()
	dir, err := loadConfig(path, &opts)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/wallpapers", dir)
	assert.Equal(t, wallpaper.AnchorTopLeft, opts.Anchor)
	assert.Equal(t, 320, opts.CardWidth)
	assert.InDelta(t, 0.5, opts.CardOpacity, 1e-12)
	assert.False(t, opts.DarkMode)
	assert.True(t, opts.BlurBackground)
}

func TestLoadConfigKeepsDefaultsForUnsetFields(t *testing.T) {
	path := writeConfig(t, "output_dir: /tmp/out\n")

	opts := wallpaper.DefaultOptions()
	_, err := loadConfig(path, &opts)
	require.NoError(t, err)

	assert.Equal(t, wallpaper.DefaultOptions(), opts)
}

func TestLoadConfigInvalidAnchor(t *testing.T) {
	path := writeConfig(t, "position: middle\n")

	opts := wallpaper.DefaultOptions()
	_, err := loadConfig(path, &opts)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	opts := wallpaper.DefaultOptions()
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"), &opts)
	assert.Error(t, err)
}
