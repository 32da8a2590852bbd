package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{9, "0:09"},
		{10, "0:10"},
		{59, "0:59"},
		{60, "1:00"},
		{65, "1:05"},
		{300, "5:00"},
		{1200, "20:00"},
		{1500, "25:00"},
		{-3, "0:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCountdown(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestPhaseFor(t *testing.T) {
	assert.Equal(t, PhaseIdle, PhaseFor(0, 8))

	for count := 1; count <= 64; count++ {
		var want Phase
		switch {
		case count%8 == 0:
			want = PhaseLongBreak
		case count%2 == 0:
			want = PhaseShortBreak
		default:
			want = PhaseWork
		}
		assert.Equal(t, want, PhaseFor(count, 8), "count=%d", count)
	}
}

func TestPhaseForCustomPeriod(t *testing.T) {
	assert.Equal(t, PhaseWork, PhaseFor(3, 4))
	assert.Equal(t, PhaseLongBreak, PhaseFor(4, 4))
	assert.Equal(t, PhaseShortBreak, PhaseFor(6, 4))
}
