package main

import (
	"errors"
	"log"

	"pomodoro/internal/core/clock"
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/session"
	"pomodoro/internal/i18n"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/appearance"
	"pomodoro/internal/ui/timerwindow"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "Pomodoro"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("single instance: %v, raised the running window", err)
		} else {
			log.Printf("single instance: %v", err)
		}
		return
	}
	defer func() {
		_ = guard.Release()
	}()
	log.Printf("single instance: listening on %s", guard.Address())

	i18n.Detect()

	settings, err := storage.LoadAppearance(appName)
	if err != nil {
		if path, pathErr := storage.AppearancePath(appName); pathErr == nil {
			log.Printf("appearance %s: %v", path, err)
		} else {
			log.Printf("appearance: %v", err)
		}
	}

	fyneApp := app.NewWithID("com.pomodoro.app")
	fyneApp.SetIcon(resources.Icon())
	fyneApp.Settings().SetTheme(appearance.NewTheme(settings))

	desktopApp, hasTray := fyneApp.(desktop.App)

	window := timerwindow.New(fyneApp, timerwindow.Config{
		Title:       appName,
		Settings:    settings,
		Tomato:      resources.Tomato(),
		HideOnClose: hasTray,
	})

	controller := session.New(model.DefaultSessionConfig(), clock.NewDispatcher(fyne.Do), window)
	window.SetOnToggleStart(controller.ToggleStart)
	window.SetOnReset(controller.Reset)
	window.SetOnClosed(controller.Close)

	guard.Serve(func() {
		fyne.Do(window.Show)
	})

	var trayManager *tray.Manager
	if hasTray {
		trayManager = tray.New(desktopApp, appName, tray.Callbacks{
			OnToggleStart: controller.ToggleStart,
			OnReset:       controller.Reset,
			OnShow:        window.Show,
			OnQuit: func() {
				controller.Close()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(resources.Icon())
		trayManager.Update(controller.Snapshot())
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	events := controller.Subscribe(16)
	go func() {
		for event := range events {
			logEvent(event)
			if trayManager == nil {
				continue
			}
			fyne.Do(func() {
				trayManager.Update(event)
			})
		}
	}()

	window.ShowAndRun()
	controller.Close()
}

func logEvent(event session.Event) {
	switch event.Type {
	case session.EventPhaseStart:
		log.Printf("session %s: repetition %d, %s for %s", event.SessionID, event.Repetitions, event.Phase, event.Countdown)
	case session.EventPhaseComplete:
		log.Printf("session %s: %s finished, marks %q", event.SessionID, event.Phase, event.Marks)
	case session.EventReset:
		log.Printf("session reset")
	}
}
