package main

import (
	"os"
	"path/filepath"
	"testing"

	"deedles.dev/wlwin/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
title: Editor
width: 1024
state: maximized
cursor:
  theme: Adwaita
  size: 32
`)

	config, err := loadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, "Editor", config.Title)
	assert.Equal(t, uint32(1024), config.Width)
	assert.Equal(t, uint32(600), config.Height)
	assert.Equal(t, "Adwaita", config.Cursor.Theme)
	assert.Equal(t, 32, config.Cursor.Size)

	opts, err := config.Options()
	require.NoError(t, err)
	assert.Equal(t, window.StateMaximized, opts.State)
	assert.Equal(t, window.ContextTypeOpenGL, opts.ContextType)
}

func TestLoadConfigMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	config, err := loadConfig(path, false)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), config)

	_, err = loadConfig(path, true)
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, "width: [\n"), true)
	assert.Error(t, err)
}

func TestApplyFlags(t *testing.T) {
	config := defaultConfig()
	flags := rootCmd.Flags()
	require.NoError(t, flags.Parse([]string{"--title", "Flags", "--height", "300", "--context", "none", "--dialog"}))

	require.NoError(t, config.applyFlags(flags))
	assert.Equal(t, "Flags", config.Title)
	assert.Equal(t, uint32(800), config.Width)
	assert.Equal(t, uint32(300), config.Height)
	assert.True(t, config.Dialog)

	opts, err := config.Options()
	require.NoError(t, err)
	assert.Equal(t, window.ContextTypeNone, opts.ContextType)
	assert.True(t, opts.Dialog)
}

func TestOptionsInvalid(t *testing.T) {
	config := defaultConfig()
	config.State = "sideways"
	_, err := config.Options()
	assert.Error(t, err)

	config = defaultConfig()
	config.Context = "vulkan"
	_, err = config.Options()
	assert.Error(t, err)
}

func TestBackgroundColor(t *testing.T) {
	config := defaultConfig()
	config.Background = "steelblue"
	c, err := config.BackgroundColor()
	require.NoError(t, err)
	assert.Equal(t, colornames.Steelblue, c)

	config.Background = "not-a-color"
	_, err = config.BackgroundColor()
	assert.Error(t, err)
}
