package overlay

// WantsCapture decides whether the window should take pointer input: over
// the clock body, or whenever the context menu or the settings modal is
// open. Everywhere else input falls through to the windows beneath.
func WantsCapture(p Point, body Rect, menuOpen, modalOpen bool) bool {
	return menuOpen || modalOpen || body.Contains(p)
}

// PassThrough sends the capture decision to the shell on every pointer
// move. Repeated identical signals are sent as well; the shell drops them.
type PassThrough struct {
	shell   Shell
	last    Point
	capture bool
}

func newPassThrough(shell Shell) *PassThrough {
	return &PassThrough{shell: shell, capture: true}
}

// Update records the pointer and signals the shell.
func (p *PassThrough) Update(pointer Point, body Rect, menuOpen, modalOpen bool) bool {
	p.last = pointer
	return p.Refresh(body, menuOpen, modalOpen)
}

// Refresh re-evaluates the decision at the last known pointer position.
func (p *PassThrough) Refresh(body Rect, menuOpen, modalOpen bool) bool {
	p.capture = WantsCapture(p.last, body, menuOpen, modalOpen)
	p.shell.RequestPointerCapture(p.capture)
	return p.capture
}

// Capture returns the last decision.
func (p *PassThrough) Capture() bool {
	return p.capture
}
