package main

import (
	"sync"
	"time"

	"desktop-clock/internal/logger"
	"desktop-clock/internal/overlay"
)

// windowShell applies the overlay's requests to the native window.
type windowShell struct {
	title string

	mu       sync.Mutex
	hide     func()
	post     func(overlay.Event)
	interval time.Duration
	stop     chan struct{}

	// platform state, see shell_windows.go
	hwnd         uintptr
	clickThrough bool
}

func newWindowShell(title string) *windowShell {
	return &windowShell{title: title}
}

// attach connects the shell to the running app and starts following the
// cursor while the window ignores input.
func (s *windowShell) attach(hide func(), post func(overlay.Event), interval time.Duration) {
	s.mu.Lock()
	s.hide = hide
	s.post = post
	s.interval = interval
	s.mu.Unlock()

	s.startFollower()
}

// detach stops the follower and leaves the window clickable.
func (s *windowShell) detach() {
	s.stopFollower()
	s.RequestPointerCapture(true)
}

// RequestPointerCapture makes the window take or ignore pointer input.
// Repeats of the current state do nothing.
func (s *windowShell) RequestPointerCapture(enable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clickThrough == !enable {
		return
	}
	if s.setClickThrough(!enable) {
		s.clickThrough = !enable
		logger.Debug("pointer capture changed", "capture", enable)
	}
}

// RequestHide hides the window to the tray.
func (s *windowShell) RequestHide() {
	s.mu.Lock()
	hide := s.hide
	s.mu.Unlock()

	if hide != nil {
		hide()
	}
}

func (s *windowShell) ignoringInput() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clickThrough
}
