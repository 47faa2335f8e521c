package session

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"

	"github.com/gogpu/paint"
)

// ErrUnknownEvent is returned when an event's type matches no known type.
var ErrUnknownEvent = errors.New("session: unknown event type")

// EventType names an input event.
type EventType string

const (
	// Scene operations.
	TypeBegin   EventType = "begin"
	TypeExtend  EventType = "extend"
	TypePreview EventType = "preview"
	TypeCommit  EventType = "commit"
	TypeUndo    EventType = "undo"
	TypeClear   EventType = "clear"
	TypeMode    EventType = "mode"
	TypeColor   EventType = "color"
	TypeRedraw  EventType = "redraw"

	// Raw pointer gestures, interpreted by Pointer.
	TypePointerDown        EventType = "pointer.down"
	TypePointerUp          EventType = "pointer.up"
	TypePointerMove        EventType = "pointer.move"
	TypePointerDoubleClick EventType = "pointer.dblclick"
)

var eventTypes = []EventType{
	TypeBegin, TypeExtend, TypePreview, TypeCommit, TypeUndo, TypeClear,
	TypeMode, TypeColor, TypeRedraw,
	TypePointerDown, TypePointerUp, TypePointerMove, TypePointerDoubleClick,
}

// ParseEventType returns the EventType named s, ignoring case.
func ParseEventType(s string) (EventType, error) {
	folded := EventType(cases.Fold().String(s))
	for _, t := range eventTypes {
		if t == folded {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownEvent, s)
}

// Event is one input event on the wire.
//
//	{"type":"pointer.down","x":10,"y":10}
//	{"type":"mode","mode":"polygon"}
//	{"type":"color","color":"red"}
//
// X and Y are used by point events, Mode by "mode" and Color by "color".
type Event struct {
	Type  EventType `json:"type"`
	X     int       `json:"x,omitempty"`
	Y     int       `json:"y,omitempty"`
	Mode  string    `json:"mode,omitempty"`
	Color string    `json:"color,omitempty"`
}

// Point returns the event position.
func (e Event) Point() paint.Point {
	return paint.Pt(e.X, e.Y)
}

// At returns a point event of type t.
func At(t EventType, p paint.Point) Event {
	return Event{Type: t, X: p.X, Y: p.Y}
}

// Status is a summary of a session's scene.
type Status struct {
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	Mode       paint.ShapeKind `json:"mode"`
	Color      paint.Color     `json:"color"`
	Active     bool            `json:"active"`
	Shapes     int             `json:"shapes"`
	Cursor     *paint.Point    `json:"cursor,omitempty"`
	InProgress *paint.Shape    `json:"inProgress,omitempty"`
}

// Label returns the pointer readout, "x=12 y=7", or "" before the first
// point event.
func (s Status) Label() string {
	if s.Cursor == nil {
		return ""
	}
	return fmt.Sprintf("x=%d y=%d", s.Cursor.X, s.Cursor.Y)
}
