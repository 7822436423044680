package motion

import (
	"image"
	"time"
)

// GestureHandler receives the gestures detected by the platform. The
// boolean results report whether the gesture has been consumed.
type GestureHandler interface {
	OnLongPress(ev RawEvent)
	OnSingleTapUp(ev RawEvent) bool
	OnSingleTapConfirmed(ev RawEvent) bool
	OnDoubleTap(ev RawEvent) bool
}

// GestureRelay forwards the platform gesture callbacks to the handler it
// was created with. It keeps no state and never filters a callback.
type GestureRelay struct {
	handler GestureHandler
}

var _ GestureHandler = (*GestureRelay)(nil)

// NewGestureRelay binds a relay to h.
func NewGestureRelay(h GestureHandler) *GestureRelay {
	return &GestureRelay{handler: h}
}

func (r *GestureRelay) OnLongPress(ev RawEvent) {
	r.handler.OnLongPress(ev)
}

func (r *GestureRelay) OnSingleTapUp(ev RawEvent) bool {
	return r.handler.OnSingleTapUp(ev)
}

func (r *GestureRelay) OnSingleTapConfirmed(ev RawEvent) bool {
	return r.handler.OnSingleTapConfirmed(ev)
}

func (r *GestureRelay) OnDoubleTap(ev RawEvent) bool {
	return r.handler.OnDoubleTap(ev)
}

// TapKind is the kind of a tap gesture.
type TapKind uint8

const (
	TapLong TapKind = iota
	TapUp
	TapConfirmed
	TapDouble
)

// Topic returns the notification topic the content listens on for this tap kind.
func (k TapKind) Topic() string {
	switch k {
	case TapLong:
		return "Gesture:LongPress"
	case TapUp, TapConfirmed:
		return "Gesture:SingleTap"
	}
	return "Gesture:DoubleTap"
}

func (k TapKind) String() string {
	switch k {
	case TapLong:
		return "LongPress"
	case TapUp:
		return "SingleTapUp"
	case TapConfirmed:
		return "SingleTapConfirmed"
	}
	return "DoubleTap"
}

// TapEvent is a tap gesture located in the surface coordinate space.
type TapEvent struct {
	Kind  TapKind     `json:"kind"`
	Time  time.Time   `json:"time"`
	Point image.Point `json:"point"`
}

// TapForwarder is a GestureHandler which turns the gesture callbacks into
// TapEvents, located at the first contact point of the normalized event.
type TapForwarder struct {
	norm *Normalizer
	sink func(TapEvent) bool
}

var _ GestureHandler = (*TapForwarder)(nil)

// NewTapForwarder creates a TapForwarder delivering the tap events to sink.
// The sink result is reported back as the consumed state of the gesture.
func NewTapForwarder(n *Normalizer, sink func(TapEvent) bool) *TapForwarder {
	return &TapForwarder{norm: n, sink: sink}
}

func (f *TapForwarder) OnLongPress(ev RawEvent) {
	f.forward(TapLong, ev)
}

func (f *TapForwarder) OnSingleTapUp(ev RawEvent) bool {
	return f.forward(TapUp, ev)
}

func (f *TapForwarder) OnSingleTapConfirmed(ev RawEvent) bool {
	return f.forward(TapConfirmed, ev)
}

func (f *TapForwarder) OnDoubleTap(ev RawEvent) bool {
	return f.forward(TapDouble, ev)
}

func (f *TapForwarder) forward(kind TapKind, ev RawEvent) bool {
	te := f.norm.Normalize(ev)
	tap := TapEvent{Kind: kind, Time: te.Time}
	if len(te.Points) > 0 {
		tap.Point = te.Points[0].Position
	}
	return f.sink(tap)
}

// MarshalText implements encoding.TextMarshaler.
func (k TapKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
