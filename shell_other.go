//go:build !windows

package main

// setClickThrough records the state only; this platform has no
// per-window input pass-through.
func (s *windowShell) setClickThrough(enable bool) bool {
	return true
}

// startFollower is a no-op on non-Windows platforms
func (s *windowShell) startFollower() {}

// stopFollower is a no-op on non-Windows platforms
func (s *windowShell) stopFollower() {}
