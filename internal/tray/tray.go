// Package tray puts the clock in the system notification area with a
// small menu to show, toggle and quit it.
package tray

import (
	"os"
	"sync"
	"time"

	"github.com/getlantern/systray"

	"desktop-clock/internal/clockface"
	"desktop-clock/internal/logger"
)

// Controller is what the tray menu acts on.
type Controller interface {
	Show()
	Toggle()
	Quit()
}

// Options configures the tray icon.
type Options struct {
	IconPath string
	Tooltip  string
}

const (
	defaultTooltip = "Desktop Clock - Click to toggle visibility"
	iconSize       = 64
)

// Tray is the notification area icon and its menu.
type Tray struct {
	ctrl Controller
	opts Options

	once sync.Once
	done chan struct{}
}

// New creates a tray for ctrl.
func New(ctrl Controller, opts Options) *Tray {
	if opts.Tooltip == "" {
		opts.Tooltip = defaultTooltip
	}
	return &Tray{ctrl: ctrl, opts: opts, done: make(chan struct{})}
}

// Start shows the tray icon. It returns immediately.
func (t *Tray) Start() {
	t.once.Do(t.start)
}

// Stop removes the tray icon.
func (t *Tray) Stop() {
	t.stop()
}

func (t *Tray) onReady() {
	if icon := LoadIcon(t.opts.IconPath); len(icon) > 0 {
		systray.SetIcon(icon)
	}
	systray.SetTooltip(t.opts.Tooltip)

	showItem := systray.AddMenuItem("Show Clock", "Show the clock")
	toggleItem := systray.AddMenuItem("Toggle Clock", "Show or hide the clock")
	systray.AddSeparator()
	quitItem := systray.AddMenuItem("Quit", "Quit Desktop Clock")

	logger.Info("tray ready")
	go t.handleClicks(showItem, toggleItem, quitItem)
}

func (t *Tray) onExit() {
	close(t.done)
}

func (t *Tray) handleClicks(showItem, toggleItem, quitItem *systray.MenuItem) {
	for {
		select {
		case <-showItem.ClickedCh:
			t.ctrl.Show()
		case <-toggleItem.ClickedCh:
			t.ctrl.Toggle()
		case <-quitItem.ClickedCh:
			t.ctrl.Quit()
		case <-t.done:
			return
		}
	}
}

// LoadIcon returns the tray icon bytes: the file at path if it can be
// read, otherwise a small analog face rendered at ten past ten, otherwise
// an empty placeholder.
func LoadIcon(path string) []byte {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil && len(data) > 0 {
			return data
		}
		logger.Warn("failed to load tray icon, rendering one", "path", path, "err", err)
	}

	icon, err := RenderIcon(iconSize)
	if err != nil {
		logger.Warn("failed to render tray icon, using a placeholder", "err", err)
		return placeholder()
	}
	return icon
}

// RenderIcon draws the analog face for the tray at the given size.
func RenderIcon(size int) ([]byte, error) {
	at := time.Date(2000, time.January, 1, 10, 10, 30, 0, time.UTC)
	face := clockface.NewAnalog(nil).Render(size, 100, clockface.NewFrame(at, clockface.AmericanEnglish))
	return encodeIcon(face)
}
