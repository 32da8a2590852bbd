package appearance

import (
	"image/color"
	"testing"

	"pomodoro/internal/core/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	parsed, err := ParseHex("#e7305b")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xe7, G: 0x30, B: 0x5b, A: 0xff}, parsed)

	short, err := ParseHex("#fff")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, short)

	_, err = ParseHex("tomato")
	assert.Error(t, err)

	assert.Panics(t, func() { MustParseHex("#12") })
}

func TestPhaseColor(t *testing.T) {
	settings := DefaultSettings()

	assert.Equal(t, MustParseHex("#e7305b"), settings.PhaseColor(session.PhaseLongBreak))
	assert.Equal(t, MustParseHex("#e2979c"), settings.PhaseColor(session.PhaseShortBreak))
	assert.Equal(t, MustParseHex("#9bdeac"), settings.PhaseColor(session.PhaseWork))
	assert.Equal(t, settings.IdleColor, settings.PhaseColor(session.PhaseIdle))
}

func TestTheme(t *testing.T) {
	test.NewTempApp(t)
	settings := DefaultSettings()
	th := NewTheme(settings)

	assert.Equal(t, color.Color(settings.Background), th.Color(theme.ColorNameBackground, theme.VariantDark))
	assert.Equal(t, color.Color(settings.ButtonBackground), th.Color(theme.ColorNameButton, theme.VariantLight))
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameForeground, theme.VariantLight),
		th.Color(theme.ColorNameForeground, theme.VariantDark))
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNamePrimary, theme.VariantLight),
		th.Color(theme.ColorNamePrimary, theme.VariantDark))

	assert.Equal(t, settings.ButtonSize, th.Size(theme.SizeNameText))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNamePadding), th.Size(theme.SizeNamePadding))

	assert.Equal(t,
		theme.DefaultTheme().Font(fyne.TextStyle{Monospace: true}),
		th.Font(fyne.TextStyle{}))
}

func TestButtonTheme(t *testing.T) {
	settings := DefaultSettings()
	th := NewButtonTheme(settings)

	assert.Equal(t, color.Color(settings.ButtonForeground), th.Color(theme.ColorNameForeground, theme.VariantLight))
	assert.Equal(t, color.Color(settings.ButtonBackground), th.Color(theme.ColorNameButton, theme.VariantDark))
	assert.Equal(t, color.Color(settings.Background), th.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t, settings.ButtonSize, th.Size(theme.SizeNameText))
}
