package timerwindow

import (
	"pomodoro/internal/core/session"
	"pomodoro/internal/i18n"
	"pomodoro/internal/ui/appearance"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	tomatoWidth  = float32(200)
	tomatoHeight = float32(224)
	// countdownCenterY is where the countdown sits on the tomato artwork.
	countdownCenterY = float32(130)
)

// Config defines the main window.
type Config struct {
	Title    string
	Settings appearance.Settings
	Tomato   fyne.Resource
	// HideOnClose keeps the app running in the tray when the window closes.
	HideOnClose bool
}

// Window is the single timer window. It implements session.Display; its
// setters must run on the Fyne event loop.
type Window struct {
	window         fyne.Window
	settings       appearance.Settings
	titleLabel     *canvas.Text
	countdownLabel *canvas.Text
	marksLabel     *canvas.Text
	image          *canvas.Image
	actionButton   *widget.Button
	resetButton    *widget.Button
	buttonBar      *container.ThemeOverride
	onToggleStart  func()
	onReset        func()
}

var _ session.Display = (*Window)(nil)

// New creates the timer window in its idle state.
func New(app fyne.App, config Config) *Window {
	settings := config.Settings
	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	textStyle := fyne.TextStyle{Bold: true, Monospace: settings.Monospace}

	titleLabel := canvas.NewText(i18n.T(session.TitleIdle), settings.IdleColor)
	titleLabel.Alignment = fyne.TextAlignCenter
	titleLabel.TextStyle = textStyle
	titleLabel.TextSize = settings.TitleSize

	image := canvas.NewImageFromResource(config.Tomato)
	image.FillMode = canvas.ImageFillContain

	countdownLabel := canvas.NewText(session.IdleCountdown, settings.CountdownColor)
	countdownLabel.Alignment = fyne.TextAlignCenter
	countdownLabel.TextStyle = textStyle
	countdownLabel.TextSize = settings.CountdownSize

	marksLabel := canvas.NewText("", settings.MarksColor)
	marksLabel.Alignment = fyne.TextAlignCenter
	marksLabel.TextStyle = textStyle
	marksLabel.TextSize = settings.MarksSize

	timerWindow := &Window{
		window:         window,
		settings:       settings,
		titleLabel:     titleLabel,
		countdownLabel: countdownLabel,
		marksLabel:     marksLabel,
		image:          image,
	}

	timerWindow.actionButton = widget.NewButton(i18n.T(session.ActionStart), func() {
		if timerWindow.onToggleStart != nil {
			timerWindow.onToggleStart()
		}
	})
	timerWindow.resetButton = widget.NewButton(i18n.T("Reset"), func() {
		if timerWindow.onReset != nil {
			timerWindow.onReset()
		}
	})

	tomato := container.New(&tomatoLayout{}, image, countdownLabel)
	timerWindow.buttonBar = container.NewThemeOverride(
		container.NewBorder(nil, nil, timerWindow.actionButton, timerWindow.resetButton),
		appearance.NewButtonTheme(settings),
	)
	body := container.NewVBox(
		container.NewCenter(titleLabel),
		tomato,
		timerWindow.buttonBar,
		container.NewCenter(marksLabel),
	)
	padded := container.New(layout.NewCustomPaddedLayout(settings.PadY, settings.PadY, settings.PadX, settings.PadX), body)
	window.SetContent(container.NewStack(canvas.NewRectangle(settings.Background), padded))

	if config.HideOnClose {
		window.SetCloseIntercept(func() {
			window.Hide()
		})
	}

	return timerWindow
}

// SetOnToggleStart sets the Start/Restart handler.
func (timerWindow *Window) SetOnToggleStart(handler func()) {
	timerWindow.onToggleStart = handler
}

// SetOnReset sets the Reset handler.
func (timerWindow *Window) SetOnReset(handler func()) {
	timerWindow.onReset = handler
}

// SetOnClosed sets the handler run when the window is really closed.
func (timerWindow *Window) SetOnClosed(handler func()) {
	timerWindow.window.SetOnClosed(handler)
}

// Show displays the window and brings it to the front.
func (timerWindow *Window) Show() {
	timerWindow.window.Show()
	timerWindow.window.RequestFocus()
}

// ShowAndRun displays the window and runs the application.
func (timerWindow *Window) ShowAndRun() {
	timerWindow.window.ShowAndRun()
}

// SetTitle shows the phase title in the phase color.
func (timerWindow *Window) SetTitle(title string, phase session.Phase) {
	timerWindow.titleLabel.Text = i18n.T(title)
	timerWindow.titleLabel.Color = timerWindow.settings.PhaseColor(phase)
	timerWindow.titleLabel.Refresh()
}

// SetCountdown updates the text drawn over the tomato.
func (timerWindow *Window) SetCountdown(text string) {
	timerWindow.countdownLabel.Text = text
	timerWindow.countdownLabel.Refresh()
}

// SetMarks updates the completed-work marks.
func (timerWindow *Window) SetMarks(marks string) {
	timerWindow.marksLabel.Text = marks
	timerWindow.marksLabel.Refresh()
}

// SetActionLabel relabels the Start/Restart button.
func (timerWindow *Window) SetActionLabel(label string) {
	timerWindow.actionButton.SetText(i18n.T(label))
}

// tomatoLayout centers the artwork and draws the countdown over its lower half.
type tomatoLayout struct{}

func (layout *tomatoLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	image := objects[0]
	countdown := objects[1]

	scale := size.Width / tomatoWidth
	if heightScale := size.Height / tomatoHeight; heightScale < scale {
		scale = heightScale
	}
	if scale <= 0 {
		return
	}
	imageSize := fyne.NewSize(tomatoWidth*scale, tomatoHeight*scale)
	imagePos := fyne.NewPos((size.Width-imageSize.Width)/2, (size.Height-imageSize.Height)/2)
	image.Move(imagePos)
	image.Resize(imageSize)

	textSize := countdown.MinSize()
	textY := imagePos.Y + countdownCenterY*scale - textSize.Height/2
	if textY < 0 {
		textY = 0
	}
	countdown.Move(fyne.NewPos(imagePos.X, textY))
	countdown.Resize(fyne.NewSize(imageSize.Width, textSize.Height))
}

func (layout *tomatoLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 2 {
		return fyne.NewSize(0, 0)
	}
	width := tomatoWidth
	if textWidth := objects[1].MinSize().Width; textWidth > width {
		width = textWidth
	}
	return fyne.NewSize(width, tomatoHeight)
}
