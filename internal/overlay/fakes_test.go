package overlay

import (
	"testing"

	"github.com/stretchr/testify/require"

	"desktop-clock/internal/clockface"
	"desktop-clock/internal/settings"
	"desktop-clock/internal/storage"
)

type fakeShell struct {
	captures []bool
	hides    int
}

func (f *fakeShell) RequestPointerCapture(enable bool) {
	f.captures = append(f.captures, enable)
}

func (f *fakeShell) RequestHide() {
	f.hides++
}

func (f *fakeShell) lastCapture(t *testing.T) bool {
	t.Helper()
	require.NotEmpty(t, f.captures, "no capture signal sent")
	return f.captures[len(f.captures)-1]
}

type fakeSink struct {
	frames  chan *View
	layouts chan Layout
}

func newFakeSink() *fakeSink {
	return &fakeSink{
		frames:  make(chan *View, 32),
		layouts: make(chan Layout, 32),
	}
}

func (f *fakeSink) Frame(v *View)   { f.frames <- v }
func (f *fakeSink) Layout(l Layout) { f.layouts <- l }

func newTestService(t *testing.T) (*Service, *fakeShell, *settings.Service) {
	t.Helper()

	settingsSvc := settings.New(storage.NewMemory())
	settingsSvc.Load()
	shell := &fakeShell{}

	svc, err := New(settingsSvc, clockface.NewAnalog(nil), clockface.AmericanEnglish, shell)
	require.NoError(t, err)
	return svc, shell, settingsSvc
}

// place puts a 200x100 body at (left, top).
func place(t *testing.T, svc *Service, left, top float64) {
	t.Helper()
	require.NoError(t, svc.Handle(Event{Kind: BodyLayout, X: left, Y: top, Width: 200, Height: 100}))
}
