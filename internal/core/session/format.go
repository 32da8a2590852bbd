package session

import "fmt"

// FormatCountdown renders whole seconds as minutes:seconds. Minutes are not
// padded, seconds always have two digits.
func FormatCountdown(remainingSeconds int) string {
	if remainingSeconds < 0 {
		remainingSeconds = 0
	}
	return fmt.Sprintf("%d:%02d", remainingSeconds/60, remainingSeconds%60)
}

// PhaseFor derives the phase of a repetition count. Multiples of
// longBreakEvery are long breaks, other even counts short breaks and odd
// counts work.
func PhaseFor(repetitions, longBreakEvery int) Phase {
	switch {
	case repetitions <= 0:
		return PhaseIdle
	case longBreakEvery > 0 && repetitions%longBreakEvery == 0:
		return PhaseLongBreak
	case repetitions%2 == 0:
		return PhaseShortBreak
	default:
		return PhaseWork
	}
}
