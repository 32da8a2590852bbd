package appearance

import (
	"fmt"
	"image/color"

	"pomodoro/internal/core/session"

	"github.com/lucasb-eyer/go-colorful"
)

// Settings defines the visual constants of the timer window.
type Settings struct {
	Background       color.NRGBA
	IdleColor        color.NRGBA
	WorkColor        color.NRGBA
	ShortBreakColor  color.NRGBA
	LongBreakColor   color.NRGBA
	CountdownColor   color.NRGBA
	MarksColor       color.NRGBA
	ButtonBackground color.NRGBA
	ButtonForeground color.NRGBA

	PadX float32
	PadY float32

	TitleSize     float32
	CountdownSize float32
	ButtonSize    float32
	MarksSize     float32
	Monospace     bool
}

// DefaultSettings returns the tomato palette.
func DefaultSettings() Settings {
	return Settings{
		Background:       MustParseHex("#f7f5dd"),
		IdleColor:        MustParseHex("#9bdeac"),
		WorkColor:        MustParseHex("#9bdeac"),
		ShortBreakColor:  MustParseHex("#e2979c"),
		LongBreakColor:   MustParseHex("#e7305b"),
		CountdownColor:   MustParseHex("#ffffff"),
		MarksColor:       MustParseHex("#9bdeac"),
		ButtonBackground: MustParseHex("#9bdeac"),
		ButtonForeground: MustParseHex("#e7305b"),
		PadX:             100,
		PadY:             50,
		TitleSize:        50,
		CountdownSize:    30,
		ButtonSize:       15,
		MarksSize:        20,
		Monospace:        true,
	}
}

// PhaseColor returns the title color for phase.
func (settings Settings) PhaseColor(phase session.Phase) color.NRGBA {
	switch phase {
	case session.PhaseWork:
		return settings.WorkColor
	case session.PhaseShortBreak:
		return settings.ShortBreakColor
	case session.PhaseLongBreak:
		return settings.LongBreakColor
	default:
		return settings.IdleColor
	}
}

// ParseHex parses "#rrggbb" or "#rgb" into an opaque color.
func ParseHex(value string) (color.NRGBA, error) {
	parsed, err := colorful.Hex(value)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", value, err)
	}
	r, g, b := parsed.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustParseHex parses value or panics.
func MustParseHex(value string) color.NRGBA {
	parsed, err := ParseHex(value)
	if err != nil {
		panic(err)
	}
	return parsed
}
