package model

import "time"

// SessionConfig contains the fixed constants of a pomodoro session.
type SessionConfig struct {
	WorkMinutes       int
	ShortBreakMinutes int
	LongBreakMinutes  int

	// LongBreakEvery is the repetition period of the long break. Repetitions
	// that are multiples of it run a long break.
	LongBreakEvery int

	// CheckMark is appended to the marks display for every finished work phase.
	CheckMark string

	// TickInterval is the host delay between two countdown steps.
	TickInterval time.Duration
}

// DefaultSessionConfig returns the classic 25/5/20 schedule.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		WorkMinutes:       25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  20,
		LongBreakEvery:    8,
		CheckMark:         "✔",
		TickInterval:      time.Second,
	}
}

// Normalized fills zero or invalid fields with defaults.
func (config SessionConfig) Normalized() SessionConfig {
	defaults := DefaultSessionConfig()
	if config.WorkMinutes <= 0 {
		config.WorkMinutes = defaults.WorkMinutes
	}
	if config.ShortBreakMinutes <= 0 {
		config.ShortBreakMinutes = defaults.ShortBreakMinutes
	}
	if config.LongBreakMinutes <= 0 {
		config.LongBreakMinutes = defaults.LongBreakMinutes
	}
	if config.LongBreakEvery <= 0 || config.LongBreakEvery%2 != 0 {
		config.LongBreakEvery = defaults.LongBreakEvery
	}
	if config.CheckMark == "" {
		config.CheckMark = defaults.CheckMark
	}
	if config.TickInterval <= 0 {
		config.TickInterval = defaults.TickInterval
	}
	return config
}
