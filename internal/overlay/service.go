// Package overlay is the clock's interaction core: it owns the clock body
// position, the menu and modal state and the pass-through decision, and
// turns ticks into views. All of it runs on one goroutine, see Loop.
package overlay

import (
	"errors"
	"time"

	"desktop-clock/internal/clockface"
	"desktop-clock/internal/logger"
	"desktop-clock/internal/settings"
)

// Shell is the host window as seen from the core.
type Shell interface {
	// RequestPointerCapture makes the window take (true) or ignore and
	// forward (false) pointer input.
	RequestPointerCapture(enable bool)
	// RequestHide hides the window without destroying it.
	RequestHide()
}

// Service manages the clock body and the overlay window state
type Service struct {
	settings *settings.Service
	analog   *clockface.Analog
	locale   *clockface.Locale
	shell    Shell

	drag        *Drag
	passThrough *PassThrough
	size        Point
	placed      bool
	menuOpen    bool
	menuAt      Point
	modalOpen   bool

	frameDirty  bool
	layoutDirty bool
}

// New creates a new overlay service
func New(settingsSvc *settings.Service, analog *clockface.Analog, locale *clockface.Locale, shell Shell) (*Service, error) {
	if settingsSvc == nil {
		return nil, errors.New("overlay: nil settings service")
	}
	if shell == nil {
		return nil, errors.New("overlay: nil shell")
	}
	if analog == nil {
		analog = clockface.NewAnalog(nil)
	}
	if locale == nil {
		locale = clockface.AmericanEnglish
	}

	return &Service{
		settings:    settingsSvc,
		analog:      analog,
		locale:      locale,
		shell:       shell,
		drag:        NewDrag(settingsSvc.Get().DraggingEnabled),
		passThrough: newPassThrough(shell),
		frameDirty:  true,
		layoutDirty: true,
	}, nil
}

// Render builds the view for now from the current settings.
func (s *Service) Render(now time.Time) *View {
	c := s.settings.Get()

	v := &View{
		ClockType: c.ClockType,
		Palette:   clockface.PaletteFor(c.Theme),
		Opacity:   float64(c.Opacity) / 100,
	}

	if c.ClockType == settings.Analog {
		d := c.Diameter()
		f := clockface.NewFrame(now, s.locale)
		v.Padding = clockface.AnalogPadding(d)
		v.Analog = &AnalogView{
			Diameter:    d,
			Face:        s.analog.RenderSettings(c, f),
			Date:        f.Date,
			DateFontRem: clockface.DateFontScale(d),
		}
		return v
	}

	digital := clockface.RenderDigital(now, c.ClockFormat, c.DigitalSize, s.locale)
	v.Padding = clockface.DigitalPadding
	v.Digital = &digital
	return v
}

// Body returns the clock body's bounding box.
func (s *Service) Body() Rect {
	pos := s.drag.Position()
	return Rect{Left: pos.X, Top: pos.Y, Width: s.size.X, Height: s.size.Y}
}

// Layout returns the state the frontend mirrors.
func (s *Service) Layout() Layout {
	return Layout{
		Body:            s.Body(),
		Placed:          s.placed,
		Dragging:        s.drag.State() == Dragging,
		DraggingEnabled: s.drag.Enabled(),
		MenuOpen:        s.menuOpen,
		MenuAt:          s.menuAt,
		ModalOpen:       s.modalOpen,
		Capture:         s.passThrough.Capture(),
	}
}

// Settings returns the active settings record.
func (s *Service) Settings() settings.ClockSettings {
	return s.settings.Get()
}

// SaveSettings persists c as the whole record and closes the settings
// modal. On error nothing changes.
func (s *Service) SaveSettings(c settings.ClockSettings) error {
	if err := s.settings.Save(c); err != nil {
		return err
	}
	s.drag.SetEnabled(s.settings.Get().DraggingEnabled)
	s.modalOpen = false
	s.refreshCapture()
	s.frameDirty = true
	s.layoutDirty = true
	return nil
}

// Tick marks a new frame due.
func (s *Service) Tick() {
	s.frameDirty = true
}

// takeDirty returns and clears the pending frame and layout flags.
func (s *Service) takeDirty() (frame, layout bool) {
	frame, layout = s.frameDirty, s.layoutDirty
	s.frameDirty, s.layoutDirty = false, false
	return frame, layout
}

func (s *Service) refreshCapture() {
	s.passThrough.Refresh(s.Body(), s.menuOpen, s.modalOpen)
}

func (s *Service) onPointerMove(ev Event) error {
	p := ev.Point()
	if pos, moved := s.drag.Move(p); moved {
		s.placed = true
		s.layoutDirty = true
		logger.Debug("clock body moved", "left", pos.X, "top", pos.Y)
	}
	s.passThrough.Update(p, s.Body(), s.menuOpen, s.modalOpen)
	return nil
}

func (s *Service) onPointerDown(ev Event) error {
	// the menu and the settings modal sit on top of the body
	if ev.Button != PrimaryButton || s.menuOpen || s.modalOpen {
		return nil
	}
	p := ev.Point()
	if s.drag.Press(p, s.Body().Contains(p)) {
		s.layoutDirty = true
	}
	return nil
}

func (s *Service) onPointerUp(Event) error {
	if s.drag.Release() {
		s.layoutDirty = true
		at := s.Body().Origin()
		logger.Debug("clock body dropped", "left", at.X, "top", at.Y)
	}
	return nil
}

func (s *Service) onMenuOpen(ev Event) error {
	p := ev.Point()
	if !s.Body().Contains(p) {
		return nil
	}
	s.menuOpen = true
	s.menuAt = p
	s.refreshCapture()
	s.layoutDirty = true
	return nil
}

func (s *Service) onMenuClose(Event) error {
	if !s.menuOpen {
		return nil
	}
	s.menuOpen = false
	s.refreshCapture()
	s.layoutDirty = true
	return nil
}

func (s *Service) onSettingsOpen(Event) error {
	s.menuOpen = false
	s.modalOpen = true
	s.refreshCapture()
	s.layoutDirty = true
	return nil
}

func (s *Service) onSettingsClose(Event) error {
	s.modalOpen = false
	s.refreshCapture()
	s.layoutDirty = true
	return nil
}

// onDraggingToggle flips dragging for this session. The record is written
// by the next save.
func (s *Service) onDraggingToggle(Event) error {
	c := s.settings.Get()
	c.DraggingEnabled = !c.DraggingEnabled
	s.settings.Set(c)
	s.drag.SetEnabled(c.DraggingEnabled)
	s.layoutDirty = true
	logger.Info("dragging toggled", "enabled", c.DraggingEnabled)
	return nil
}

func (s *Service) onWindowMinimize(Event) error {
	s.menuOpen = false
	s.layoutDirty = true
	s.shell.RequestHide()
	return nil
}

// onBodyLayout takes the measured body size. The first report also places
// the body; after that the position is ours.
func (s *Service) onBodyLayout(ev Event) error {
	s.size = Point{X: ev.Width, Y: ev.Height}
	if !s.placed {
		s.drag.Place(ev.Point())
		s.placed = true
	}
	s.layoutDirty = true
	return nil
}
