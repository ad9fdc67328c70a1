//go:build !windows

package tray

import "desktop-clock/internal/logger"

// Supported reports whether Start shows an icon on this platform.
const Supported = false

// Wails already runs the GTK or Cocoa main loop here and systray would
// start a second one, so the icon is not shown.
func (t *Tray) start() {
	logger.Warn("tray icon is not supported on this platform")
	t.onExit()
}

func (t *Tray) stop() {}
