package overlay

// DragState is the drag controller's state.
type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Drag moves the clock body with the primary button. It owns the body
// position.
type Drag struct {
	state   DragState
	enabled bool

	pos    Point
	start  Point
	origin Point
}

// NewDrag creates an idle controller with the body at the origin.
func NewDrag(enabled bool) *Drag {
	return &Drag{enabled: enabled}
}

// Press starts a drag if dragging is enabled and the press is over the
// body. It reports whether a drag started.
func (d *Drag) Press(pointer Point, overBody bool) bool {
	if d.state == Dragging || !d.enabled || !overBody {
		return false
	}
	d.state = Dragging
	d.start = pointer
	d.origin = d.pos
	return true
}

// Move repositions the body relative to where the drag started, so a
// missed move never makes it drift. It reports whether the body moved.
func (d *Drag) Move(pointer Point) (Point, bool) {
	if d.state != Dragging {
		return d.pos, false
	}
	d.pos = Point{
		X: d.origin.X + (pointer.X - d.start.X),
		Y: d.origin.Y + (pointer.Y - d.start.Y),
	}
	return d.pos, true
}

// Release ends any drag, wherever the pointer is.
func (d *Drag) Release() bool {
	was := d.state == Dragging
	d.state = Idle
	return was
}

// SetEnabled gates new drags. A drag in progress runs until release.
func (d *Drag) SetEnabled(enabled bool) {
	d.enabled = enabled
}

func (d *Drag) Enabled() bool { return d.enabled }

func (d *Drag) State() DragState { return d.state }

// Position returns the body's top-left corner.
func (d *Drag) Position() Point { return d.pos }

// Place moves the body without dragging it.
func (d *Drag) Place(p Point) {
	d.pos = p
}
