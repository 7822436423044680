package motion

import (
	"time"

	"gioui.org/gesture"
	"github.com/esimov/motion/utils"
)

const (
	// DoubleTapTimeout is the Gio double click window.
	DoubleTapTimeout = 200 * time.Millisecond
	// LongPressTimeout is the press duration after which a long press is reported.
	LongPressTimeout = 500 * time.Millisecond
	// TouchSlop is the distance in pixels a pointer can travel before it stops being a long press.
	TouchSlop = 8
)

// TapScheduler completes the clicks recognized by the Gio gesture detector
// with the time based gestures. A single tap is confirmed once no second tap
// follows within DoubleTapTimeout, and a press held still for
// LongPressTimeout is reported as a long press.
// All the gestures are delivered to the handler the scheduler is bound to.
type TapScheduler struct {
	DoubleTapTimeout time.Duration
	LongPressTimeout time.Duration
	TouchSlop        float32

	h GestureHandler

	pressed bool
	pressAt time.Time
	pressEv RawEvent
	// long is set when the current press can no longer become a tap,
	// either because it has been reported as a long press or cancelled.
	long  bool
	moved bool

	confirmAt time.Time
	confirmEv RawEvent
}

// NewTapScheduler creates a TapScheduler bound to h with the default timeouts.
func NewTapScheduler(h GestureHandler) *TapScheduler {
	return &TapScheduler{
		DoubleTapTimeout: DoubleTapTimeout,
		LongPressTimeout: LongPressTimeout,
		TouchSlop:        TouchSlop,
		h:                h,
	}
}

// Press starts tracking the press of the first pointer.
func (s *TapScheduler) Press(ev RawEvent, now time.Time) {
	s.Fire(now)
	s.pressed, s.pressAt, s.pressEv = true, now, ev
	s.long, s.moved = false, false
}

// Move cancels the pending long press once the first pointer travels
// further than the touch slop.
func (s *TapScheduler) Move(ev RawEvent) {
	if !s.pressed || s.pressEv == nil || ev.PointerCount() == 0 || s.pressEv.PointerCount() == 0 {
		return
	}
	dx := utils.Abs(ev.X(0) - s.pressEv.X(0))
	dy := utils.Abs(ev.Y(0) - s.pressEv.Y(0))
	if dx > s.TouchSlop || dy > s.TouchSlop {
		s.moved = true
	}
}

// Release ends the press.
func (s *TapScheduler) Release() {
	s.pressed = false
}

// Cancel drops the current press and the pending confirmation.
func (s *TapScheduler) Cancel() {
	s.long = true
	s.confirmEv = nil
}

// Clicks relays the clicks recognized by the Gio gesture detector, together
// with the motion event which completed them. A single click is reported as
// a single tap up and scheduled for confirmation, successive clicks as a
// double tap. Clicks ending a long press are dropped.
// It reports whether any of the gestures has been consumed.
func (s *TapScheduler) Clicks(clicks []gesture.ClickEvent, ev RawEvent, now time.Time) bool {
	var consumed bool
	for _, c := range clicks {
		if c.Type != gesture.TypeClick || s.long {
			continue
		}
		switch {
		case c.NumClicks == 1:
			s.confirm()
			consumed = s.h.OnSingleTapUp(ev) || consumed
			s.confirmAt, s.confirmEv = now.Add(s.DoubleTapTimeout), ev
		case c.NumClicks >= 2:
			s.confirmEv = nil
			consumed = s.h.OnDoubleTap(ev) || consumed
		}
	}
	return consumed
}

// Fire delivers the gestures due at now. It returns the time the next
// pending gesture is due, or false when nothing is pending.
func (s *TapScheduler) Fire(now time.Time) (time.Time, bool) {
	if s.longPending() && !now.Before(s.pressAt.Add(s.LongPressTimeout)) {
		s.confirm()
		s.long = true
		s.h.OnLongPress(s.pressEv)
	}
	if s.confirmEv != nil && !s.pressed && !now.Before(s.confirmAt) {
		s.confirm()
	}

	var (
		next time.Time
		ok   bool
	)
	if s.longPending() {
		next, ok = s.pressAt.Add(s.LongPressTimeout), true
	}
	if s.confirmEv != nil && !s.pressed && (!ok || s.confirmAt.Before(next)) {
		next, ok = s.confirmAt, true
	}
	return next, ok
}

func (s *TapScheduler) longPending() bool {
	return s.pressed && !s.long && !s.moved && s.pressEv != nil
}

// confirm reports the pending single tap, if any.
func (s *TapScheduler) confirm() {
	if s.confirmEv == nil {
		return
	}
	ev := s.confirmEv
	s.confirmEv = nil
	s.h.OnSingleTapConfirmed(ev)
}
