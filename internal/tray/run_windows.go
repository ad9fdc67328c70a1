package tray

import (
	"runtime"

	"github.com/getlantern/systray"
)

// Supported reports whether Start shows an icon on this platform.
const Supported = true

func (t *Tray) start() {
	go func() {
		// the native tray loop must stay on the thread that created it
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		systray.Run(t.onReady, t.onExit)
	}()
}

func (t *Tray) stop() {
	systray.Quit()
}
