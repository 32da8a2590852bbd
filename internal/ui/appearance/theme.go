package appearance

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme applies Settings on top of the default Fyne theme. It always renders
// the light variant so the palette looks the same on dark desktops.
type Theme struct {
	fyne.Theme
	settings Settings
}

// NewTheme creates a theme for settings.
func NewTheme(settings Settings) fyne.Theme {
	return &Theme{Theme: theme.DefaultTheme(), settings: settings}
}

// Color returns the palette color for name.
func (t *Theme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return t.settings.Background
	case theme.ColorNameButton:
		return t.settings.ButtonBackground
	}
	return t.Theme.Color(name, theme.VariantLight)
}

// buttonTheme colors button text without touching other foregrounds.
type buttonTheme struct {
	*Theme
}

// NewButtonTheme creates the theme for the Start/Restart and Reset buttons.
func NewButtonTheme(settings Settings) fyne.Theme {
	return &buttonTheme{Theme: &Theme{Theme: theme.DefaultTheme(), settings: settings}}
}

func (t *buttonTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameForeground {
		return t.settings.ButtonForeground
	}
	return t.Theme.Color(name, variant)
}

// Font returns the monospace face for every style when Monospace is set.
func (t *Theme) Font(style fyne.TextStyle) fyne.Resource {
	if t.settings.Monospace {
		style.Monospace = true
	}
	return t.Theme.Font(style)
}

// Size overrides the widget text size with the button size.
func (t *Theme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText && t.settings.ButtonSize > 0 {
		return t.settings.ButtonSize
	}
	return t.Theme.Size(name)
}
