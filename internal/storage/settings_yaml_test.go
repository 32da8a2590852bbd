package storage

import (
	"os"
	"path/filepath"
	"testing"

	"pomodoro/internal/ui/appearance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAppearance(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), appearanceFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppearanceFileMissing(t *testing.T) {
	settings, err := LoadAppearanceFile(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, appearance.DefaultSettings(), settings)
}

func TestLoadAppearanceFileOverrides(t *testing.T) {
	path := writeAppearance(t, `
background: "#000000"
long_break_color: "#ff0000"
pad_x: 20
pad_y: 10
title_size: 40
monospace: false
`)

	settings, err := LoadAppearanceFile(path)
	require.NoError(t, err)

	defaults := appearance.DefaultSettings()
	assert.Equal(t, appearance.MustParseHex("#000000"), settings.Background)
	assert.Equal(t, appearance.MustParseHex("#ff0000"), settings.LongBreakColor)
	assert.Equal(t, defaults.WorkColor, settings.WorkColor)
	assert.Equal(t, float32(20), settings.PadX)
	assert.Equal(t, float32(10), settings.PadY)
	assert.Equal(t, float32(40), settings.TitleSize)
	assert.Equal(t, defaults.CountdownSize, settings.CountdownSize)
	assert.False(t, settings.Monospace)
}

func TestLoadAppearanceFileInvalidColor(t *testing.T) {
	path := writeAppearance(t, `
work_color: "green"
short_break_color: "#123456"
`)

	settings, err := LoadAppearanceFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "green")
	assert.Equal(t, appearance.DefaultSettings().WorkColor, settings.WorkColor)
	assert.Equal(t, appearance.MustParseHex("#123456"), settings.ShortBreakColor)
}

func TestLoadAppearanceFileIgnoresOutOfRangeValues(t *testing.T) {
	path := writeAppearance(t, `
pad_x: -5
pad_y: 900
button_size: 0
`)

	settings, err := LoadAppearanceFile(path)
	require.NoError(t, err)

	defaults := appearance.DefaultSettings()
	assert.Equal(t, defaults.PadX, settings.PadX)
	assert.Equal(t, defaults.PadY, settings.PadY)
	assert.Equal(t, defaults.ButtonSize, settings.ButtonSize)
	assert.True(t, settings.Monospace)
}

func TestLoadAppearanceFileBadYaml(t *testing.T) {
	path := writeAppearance(t, "background: [unterminated")

	settings, err := LoadAppearanceFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse appearance yaml")
	assert.Equal(t, appearance.DefaultSettings(), settings)
}

func TestLoadAppearanceUsesUserConfigDir(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("HOME", configHome)
	t.Setenv("AppData", configHome)

	path, err := AppearancePath("PomodoroTest")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`marks_color: "#010203"`), 0o644))

	settings, err := LoadAppearance("PomodoroTest")
	require.NoError(t, err)
	assert.Equal(t, appearance.MustParseHex("#010203"), settings.MarksColor)
}
