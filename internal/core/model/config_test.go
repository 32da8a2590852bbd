package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSessionConfig(t *testing.T) {
	config := DefaultSessionConfig()

	assert.Equal(t, 25, config.WorkMinutes)
	assert.Equal(t, 5, config.ShortBreakMinutes)
	assert.Equal(t, 20, config.LongBreakMinutes)
	assert.Equal(t, 8, config.LongBreakEvery)
	assert.Equal(t, "✔", config.CheckMark)
	assert.Equal(t, time.Second, config.TickInterval)
}

func TestNormalized(t *testing.T) {
	t.Run("zero value gets defaults", func(t *testing.T) {
		assert.Equal(t, DefaultSessionConfig(), SessionConfig{}.Normalized())
	})

	t.Run("odd long break period is rejected", func(t *testing.T) {
		config := DefaultSessionConfig()
		config.LongBreakEvery = 5
		assert.Equal(t, 8, config.Normalized().LongBreakEvery)
	})

	t.Run("valid overrides are kept", func(t *testing.T) {
		config := SessionConfig{
			WorkMinutes:       50,
			ShortBreakMinutes: 10,
			LongBreakMinutes:  30,
			LongBreakEvery:    4,
			CheckMark:         "*",
			TickInterval:      time.Millisecond,
		}
		assert.Equal(t, config, config.Normalized())
	})
}
