//go:build windows

package main

import (
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"desktop-clock/internal/overlay"
)

// Windows constants for extended window styles
const (
	_GWL_EXSTYLE       int32 = -20
	_WS_EX_TRANSPARENT int32 = 0x00000020
	_WS_EX_LAYERED     int32 = 0x00080000
)

var (
	user32              = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW     = user32.NewProc("FindWindowW")
	procGetWindowLongW  = user32.NewProc("GetWindowLongW")
	procSetWindowLongW  = user32.NewProc("SetWindowLongW")
	procGetCursorPos    = user32.NewProc("GetCursorPos")
	procScreenToClient  = user32.NewProc("ScreenToClient")
	procGetDpiForWindow = user32.NewProc("GetDpiForWindow")
)

type point struct {
	X, Y int32
}

// resolveHWND finds and caches the HWND of the clock window by its title.
// Callers hold s.mu.
func (s *windowShell) resolveHWND() uintptr {
	if s.hwnd != 0 {
		return s.hwnd
	}

	title, err := windows.UTF16PtrFromString(s.title)
	if err != nil {
		return 0
	}
	hwnd, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(title)))
	s.hwnd = hwnd
	return hwnd
}

// setClickThrough toggles WS_EX_TRANSPARENT so mouse events pass through
// the window. Callers hold s.mu.
func (s *windowShell) setClickThrough(enable bool) bool {
	hwnd := s.resolveHWND()
	if hwnd == 0 {
		return false
	}

	idx := _GWL_EXSTYLE
	exStyle, _, _ := procGetWindowLongW.Call(hwnd, uintptr(idx))
	newStyle := int32(exStyle) | _WS_EX_LAYERED
	if enable {
		newStyle |= _WS_EX_TRANSPARENT
	} else {
		newStyle &^= _WS_EX_TRANSPARENT
	}

	procSetWindowLongW.Call(hwnd, uintptr(idx), uintptr(newStyle))
	return true
}

// startFollower polls the cursor while the window ignores input and posts
// it as pointer moves, so the overlay can take input back when the cursor
// reaches the clock.
func (s *windowShell) startFollower() {
	s.mu.Lock()
	if s.stop != nil {
		s.mu.Unlock()
		return // already running
	}
	stop := make(chan struct{})
	s.stop = stop
	interval := s.interval
	post := s.post
	s.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var last point
		for {
			select {
			case <-ticker.C:
				if !s.ignoringInput() {
					continue
				}
				p, ok := s.cursorInWindow()
				if !ok || p == last {
					continue
				}
				last = p
				scale := s.cssScale()
				post(overlay.Event{
					Kind: overlay.PointerMove,
					X:    float64(p.X) / scale,
					Y:    float64(p.Y) / scale,
				})

			case <-stop:
				return
			}
		}
	}()
}

func (s *windowShell) stopFollower() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}

// cursorInWindow returns the cursor position in client pixels.
func (s *windowShell) cursorInWindow() (point, bool) {
	s.mu.Lock()
	hwnd := s.resolveHWND()
	s.mu.Unlock()
	if hwnd == 0 {
		return point{}, false
	}

	var p point
	if ret, _, _ := procGetCursorPos.Call(uintptr(unsafe.Pointer(&p))); ret == 0 {
		return point{}, false
	}
	if ret, _, _ := procScreenToClient.Call(hwnd, uintptr(unsafe.Pointer(&p))); ret == 0 {
		return point{}, false
	}
	return p, true
}

// cssScale is the number of device pixels per CSS pixel.
func (s *windowShell) cssScale() float64 {
	s.mu.Lock()
	hwnd := s.hwnd
	s.mu.Unlock()

	if err := procGetDpiForWindow.Find(); err != nil || hwnd == 0 {
		return 1
	}
	dpi, _, _ := procGetDpiForWindow.Call(hwnd)
	if dpi == 0 {
		return 1
	}
	return float64(dpi) / 96
}
