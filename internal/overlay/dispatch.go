package overlay

import (
	"errors"
	"fmt"
)

// ErrUnknownEvent is returned for an event kind with no handler.
var ErrUnknownEvent = errors.New("overlay: unknown event kind")

// EventKind names an input event from the frontend.
type EventKind string

const (
	PointerMove    EventKind = "pointer.move"
	PointerDown    EventKind = "pointer.down"
	PointerUp      EventKind = "pointer.up"
	MenuOpen       EventKind = "menu.open"
	MenuClose      EventKind = "menu.close"
	SettingsOpen   EventKind = "settings.open"
	SettingsClose  EventKind = "settings.close"
	DraggingToggle EventKind = "dragging.toggle"
	WindowMinimize EventKind = "window.minimize"
	BodyLayout     EventKind = "body.layout"
)

// Mouse buttons as reported by the DOM.
const (
	PrimaryButton   = 0
	SecondaryButton = 2
)

// Event is one input event. Only the fields its kind needs are set.
type Event struct {
	Kind   EventKind `json:"kind"`
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	Button int       `json:"button"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
}

// Point returns the event's pointer position.
func (e Event) Point() Point {
	return Point{X: e.X, Y: e.Y}
}

type handler func(*Service, Event) error

var handlers = map[EventKind]handler{
	PointerMove:    (*Service).onPointerMove,
	PointerDown:    (*Service).onPointerDown,
	PointerUp:      (*Service).onPointerUp,
	MenuOpen:       (*Service).onMenuOpen,
	MenuClose:      (*Service).onMenuClose,
	SettingsOpen:   (*Service).onSettingsOpen,
	SettingsClose:  (*Service).onSettingsClose,
	DraggingToggle: (*Service).onDraggingToggle,
	WindowMinimize: (*Service).onWindowMinimize,
	BodyLayout:     (*Service).onBodyLayout,
}

// kinds lists every event kind that has a handler.
func kinds() []EventKind {
	kinds := make([]EventKind, 0, len(handlers))
	for k := range handlers {
		kinds = append(kinds, k)
	}
	return kinds
}

// Handle dispatches ev to its handler. It must only be called from the
// loop goroutine.
func (s *Service) Handle(ev Event) error {
	h, ok := handlers[ev.Kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Kind)
	}
	return h(s, ev)
}
