package session

// Phase is the interval type being timed.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// EventType defines the type of session event.
type EventType string

const (
	EventPhaseStart    EventType = "phase_start"
	EventTick          EventType = "tick"
	EventPhaseComplete EventType = "phase_complete"
	EventReset         EventType = "reset"
)

// Event is a session update for observers.
type Event struct {
	Type        EventType
	SessionID   string
	Phase       Phase
	Title       string
	Repetitions int
	Remaining   int
	Countdown   string
	Marks       string
	ActionLabel string
}
