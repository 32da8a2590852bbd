// Package session contains the pomodoro session controller: it picks the next
// phase from the repetition count, counts it down one tick at a time and keeps
// the row of completed-work marks.
package session

import (
	"sync"

	"pomodoro/internal/core/clock"
	"pomodoro/internal/core/model"

	"github.com/google/uuid"
)

// Labels rendered by the controller. Displays may translate them.
const (
	TitleIdle     = "Timer"
	TitleWork     = "Work"
	TitleBreak    = "Break"
	ActionStart   = "Start"
	ActionRestart = "Restart"
	IdleCountdown = "00:00"
)

// Display is the presentation surface the controller writes to. Calls are
// made while the controller lock is held and must not call back into it.
type Display interface {
	SetTitle(title string, phase Phase)
	SetCountdown(text string)
	SetMarks(marks string)
	SetActionLabel(label string)
}

// Controller drives one pomodoro session.
type Controller struct {
	mu          sync.Mutex
	config      model.SessionConfig
	scheduler   clock.Scheduler
	display     Display
	newID       func() string
	repetitions int
	remaining   int
	marks       string
	title       string
	actionLabel string
	sessionID   string
	pending     clock.Handle
	generation  uint64
	events      []chan Event
	closed      bool
}

// New creates an idle controller. A nil display discards all output.
func New(config model.SessionConfig, scheduler clock.Scheduler, display Display) *Controller {
	if display == nil {
		display = discardDisplay{}
	}
	return &Controller{
		config:      config.Normalized(),
		scheduler:   scheduler,
		display:     display,
		newID:       uuid.NewString,
		title:       TitleIdle,
		actionLabel: ActionStart,
	}
}

// Subscribe registers a new observer channel. Events are dropped when the
// channel buffer is full.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		close(ch)
		return ch
	}
	controller.events = append(controller.events, ch)
	return ch
}

// Reset cancels the running countdown and returns every display to its
// initial state. Safe to call at any time.
func (controller *Controller) Reset() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return
	}
	controller.resetLocked()
}

// ToggleStart starts a session, restarting from the first repetition when a
// countdown is already running.
func (controller *Controller) ToggleStart() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return
	}
	if controller.pending != nil {
		controller.resetLocked()
	}
	controller.sessionID = controller.newID()
	controller.beginPhaseLocked()
}

// Close cancels any pending tick and closes observer channels. The
// controller ignores every call afterwards.
func (controller *Controller) Close() {
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return
	}
	controller.closed = true
	controller.cancelPendingLocked()
	events := controller.events
	controller.events = nil
	controller.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Repetitions returns the number of phases started since the last reset.
func (controller *Controller) Repetitions() int {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.repetitions
}

// Phase returns the phase of the current repetition.
func (controller *Controller) Phase() Phase {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return PhaseFor(controller.repetitions, controller.config.LongBreakEvery)
}

// Remaining returns the countdown value last displayed, in seconds.
func (controller *Controller) Remaining() int {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.remaining
}

// Marks returns the completed-work marks.
func (controller *Controller) Marks() string {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.marks
}

// Active reports whether a countdown tick is scheduled.
func (controller *Controller) Active() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.pending != nil
}

// SessionID returns the identifier of the running session, or "" when idle.
func (controller *Controller) SessionID() string {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.sessionID
}

// Snapshot returns the current state as a tick event.
func (controller *Controller) Snapshot() Event {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.eventLocked(EventTick)
}

func (controller *Controller) resetLocked() {
	controller.cancelPendingLocked()
	controller.repetitions = 0
	controller.remaining = 0
	controller.marks = ""
	controller.title = TitleIdle
	controller.actionLabel = ActionStart
	controller.sessionID = ""

	controller.display.SetMarks("")
	controller.display.SetTitle(TitleIdle, PhaseIdle)
	controller.display.SetCountdown(IdleCountdown)
	controller.display.SetActionLabel(ActionStart)

	controller.emitLocked(controller.eventLocked(EventReset))
}

func (controller *Controller) beginPhaseLocked() {
	controller.cancelPendingLocked()
	controller.repetitions++

	phase := PhaseFor(controller.repetitions, controller.config.LongBreakEvery)
	controller.actionLabel = ActionRestart
	controller.title = titleFor(phase)
	controller.display.SetActionLabel(ActionRestart)
	controller.display.SetTitle(controller.title, phase)

	seconds := controller.minutesFor(phase) * 60
	controller.remaining = seconds
	controller.emitLocked(controller.eventLocked(EventPhaseStart))

	controller.countdownLocked(seconds)
}

func (controller *Controller) countdownLocked(remaining int) {
	controller.remaining = remaining
	controller.display.SetCountdown(FormatCountdown(remaining))

	if remaining > 0 {
		controller.scheduleLocked(remaining - 1)
		controller.emitLocked(controller.eventLocked(EventTick))
		return
	}

	switch PhaseFor(controller.repetitions, controller.config.LongBreakEvery) {
	case PhaseLongBreak:
		controller.marks = ""
		controller.display.SetMarks(controller.marks)
	case PhaseWork:
		controller.marks += controller.config.CheckMark
		controller.display.SetMarks(controller.marks)
	}
	controller.emitLocked(controller.eventLocked(EventPhaseComplete))

	controller.beginPhaseLocked()
}

func (controller *Controller) scheduleLocked(next int) {
	controller.cancelPendingLocked()
	generation := controller.generation
	controller.pending = controller.scheduler.AfterFunc(controller.config.TickInterval, func() {
		controller.tick(generation, next)
	})
}

func (controller *Controller) tick(generation uint64, remaining int) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed || generation != controller.generation {
		return
	}
	controller.pending = nil
	controller.countdownLocked(remaining)
}

// cancelPendingLocked drops the scheduled tick and invalidates any callback
// already on its way.
func (controller *Controller) cancelPendingLocked() {
	if controller.pending != nil {
		controller.pending.Cancel()
		controller.pending = nil
	}
	controller.generation++
}

func (controller *Controller) minutesFor(phase Phase) int {
	switch phase {
	case PhaseLongBreak:
		return controller.config.LongBreakMinutes
	case PhaseShortBreak:
		return controller.config.ShortBreakMinutes
	default:
		return controller.config.WorkMinutes
	}
}

func (controller *Controller) eventLocked(eventType EventType) Event {
	countdown := FormatCountdown(controller.remaining)
	if controller.repetitions == 0 {
		countdown = IdleCountdown
	}
	return Event{
		Type:        eventType,
		SessionID:   controller.sessionID,
		Phase:       PhaseFor(controller.repetitions, controller.config.LongBreakEvery),
		Title:       controller.title,
		Repetitions: controller.repetitions,
		Remaining:   controller.remaining,
		Countdown:   countdown,
		Marks:       controller.marks,
		ActionLabel: controller.actionLabel,
	}
}

func (controller *Controller) emitLocked(event Event) {
	for _, ch := range controller.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func titleFor(phase Phase) string {
	switch phase {
	case PhaseWork:
		return TitleWork
	case PhaseShortBreak, PhaseLongBreak:
		return TitleBreak
	default:
		return TitleIdle
	}
}

type discardDisplay struct{}

func (discardDisplay) SetTitle(string, Phase) {}

func (discardDisplay) SetCountdown(string) {}

func (discardDisplay) SetMarks(string) {}

func (discardDisplay) SetActionLabel(string) {}
