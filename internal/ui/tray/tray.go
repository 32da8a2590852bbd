package tray

import (
	"fmt"
	"strings"

	"pomodoro/internal/core/session"
	"pomodoro/internal/i18n"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnToggleStart func()
	OnReset       func()
	OnShow        func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	title       string
	statusItem  *fyne.MenuItem
	actionItem  *fyne.MenuItem
	resetItem   *fyne.MenuItem
	showItem    *fyne.MenuItem
	quitItem    *fyne.MenuItem
	callbacks   Callbacks
	statusLabel string
}

// New creates a tray manager with the provided callbacks. A nil app keeps
// the menu in memory only.
func New(app desktop.App, title string, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		title:     title,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.actionItem = fyne.NewMenuItem(i18n.T(session.ActionStart), func() {
		if manager.callbacks.OnToggleStart != nil {
			manager.callbacks.OnToggleStart()
		}
	})

	manager.resetItem = fyne.NewMenuItem(i18n.T("Reset"), func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})

	manager.showItem = fyne.NewMenuItem(i18n.T("Show window"), func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})

	manager.quitItem = fyne.NewMenuItem(i18n.T("Quit"), func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	manager.quitItem.IsQuit = true

	manager.SetStatus(StatusText(session.Event{
		Phase:     session.PhaseIdle,
		Title:     session.TitleIdle,
		Countdown: session.IdleCountdown,
	}))
	return manager
}

// Update reflects a session event in the menu.
func (manager *Manager) Update(event session.Event) {
	manager.actionItem.Label = i18n.T(event.ActionLabel)
	manager.SetStatus(StatusText(event))
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("%s: %s", i18n.T("Status"), status)
	manager.refreshMenu()
}

// Menu returns the menu currently installed.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu(manager.title,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.actionItem,
		manager.resetItem,
		manager.showItem,
		fyne.NewMenuItemSeparator(),
		manager.quitItem,
	)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}

// StatusText renders an event as "Work 24:59 ✔✔".
func StatusText(event session.Event) string {
	parts := []string{i18n.T(event.Title), event.Countdown}
	if event.Marks != "" {
		parts = append(parts, event.Marks)
	}
	return strings.Join(parts, " ")
}
