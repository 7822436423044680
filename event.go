package motion

import (
	"image"
	"time"

	"gioui.org/io/key"
)

// RawEvent is a platform multi-touch event. All per pointer accessors take
// the pointer index in the range [0, PointerCount()).
type RawEvent interface {
	// Action returns the action word, with the pointer index packed in its high byte.
	Action() int
	// EventTime returns the event time relative to the device boot.
	EventTime() time.Duration
	MetaState() int
	PointerCount() int
	PointerID(i int) int
	X(i int) float32
	Y(i int) float32
	Pressure(i int) float32
	// Size is the normalized contact size, a fraction of the display.
	Size(i int) float32
	// Orientation of the contact ellipse major axis in radians.
	Orientation(i int) float32
	ToolMajor(i int) float32
	ToolMinor(i int) float32
}

// Pointer holds the raw readings of a single contact.
type Pointer struct {
	ID          int     `json:"id"`
	X           float32 `json:"x"`
	Y           float32 `json:"y"`
	Pressure    float32 `json:"pressure"`
	Size        float32 `json:"size"`
	Orientation float32 `json:"orientation"`
	ToolMajor   float32 `json:"toolMajor"`
	ToolMinor   float32 `json:"toolMinor"`
}

// MotionEvent is a plain value implementation of RawEvent.
type MotionEvent struct {
	ActionWord int           `json:"action"`
	Time       time.Duration `json:"time"`
	Meta       int           `json:"meta"`
	Pointers   []Pointer     `json:"pointers"`
}

var _ RawEvent = (*MotionEvent)(nil)

func (m *MotionEvent) Action() int { return m.ActionWord }
func (m *MotionEvent) EventTime() time.Duration { return m.Time }
func (m *MotionEvent) MetaState() int { return m.Meta }
func (m *MotionEvent) PointerCount() int { return len(m.Pointers) }
func (m *MotionEvent) PointerID(i int) int { return m.Pointers[i].ID }
func (m *MotionEvent) X(i int) float32 { return m.Pointers[i].X }
func (m *MotionEvent) Y(i int) float32 { return m.Pointers[i].Y }
func (m *MotionEvent) Pressure(i int) float32 { return m.Pointers[i].Pressure }
func (m *MotionEvent) Size(i int) float32 { return m.Pointers[i].Size }
func (m *MotionEvent) Orientation(i int) float32 { return m.Pointers[i].Orientation }
func (m *MotionEvent) ToolMajor(i int) float32 { return m.Pointers[i].ToolMajor }
func (m *MotionEvent) ToolMinor(i int) float32 { return m.Pointers[i].ToolMinor }

// ContactPoint is a single normalized contact.
type ContactPoint struct {
	Position image.Point `json:"position"`
	ID       int         `json:"id"`
	Pressure float32     `json:"pressure"`
	// Orientation is expressed in degrees, in the range [-90, 90).
	Orientation float32 `json:"orientation"`
	// Radius holds the contact ellipse semi-axes: X in the minor slot, Y in the major slot.
	Radius image.Point `json:"radius"`
}

// TouchEvent is the device independent snapshot of a RawEvent.
type TouchEvent struct {
	Action       Action         `json:"action"`
	Time         time.Time      `json:"time"`
	MetaState    int            `json:"meta"`
	PointerIndex int            `json:"pointerIndex"`
	Points       []ContactPoint `json:"points"`
}

// MultiTouchMessage identifies the multi-touch input message a TouchEvent maps to.
type MultiTouchMessage int

const (
	MultiTouchNone MultiTouchMessage = iota
	MultiTouchStart
	MultiTouchMove
	MultiTouchEnd
	MultiTouchCancel
)

// Message returns the multi-touch message delivered to the content for this event.
func (e *TouchEvent) Message() MultiTouchMessage {
	switch e.Action {
	case ActionDown, ActionPointerDown:
		return MultiTouchStart
	case ActionMove:
		return MultiTouchMove
	case ActionUp, ActionPointerUp:
		return MultiTouchEnd
	case ActionCancel:
		return MultiTouchCancel
	}
	return MultiTouchNone
}

// Platform meta state bits.
const (
	MetaShift = 0x1
	MetaAlt   = 0x2
	MetaCtrl  = 0x1000
	MetaMeta  = 0x10000
)

// Modifiers translates the platform meta state into key modifiers.
func (e *TouchEvent) Modifiers() key.Modifiers {
	var mods key.Modifiers
	if e.MetaState&MetaShift != 0 {
		mods |= key.ModShift
	}
	if e.MetaState&MetaAlt != 0 {
		mods |= key.ModAlt
	}
	if e.MetaState&MetaCtrl != 0 {
		mods |= key.ModCtrl
	}
	if e.MetaState&MetaMeta != 0 {
		mods |= key.ModSuper
	}
	return mods
}
