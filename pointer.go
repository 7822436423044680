package motion

import (
	"gioui.org/io/key"
	"gioui.org/io/pointer"
)

// PointerTracker assembles the single pointer events delivered by Gio into
// multi-touch MotionEvents carrying every pressed pointer, the way the
// platform reports them.
type PointerTracker struct {
	// TouchSize is reported as the normalized contact size of every pointer.
	TouchSize float32

	active []Pointer
}

// Track updates the tracked pointers with e. It returns the resulting
// motion event, or false when e does not affect any pressed pointer.
func (t *PointerTracker) Track(e pointer.Event) (*MotionEvent, bool) {
	id := int(e.PointerID)
	idx := t.index(id)

	var code int
	switch e.Type {
	case pointer.Press:
		if idx >= 0 {
			return nil, false
		}
		t.active = append(t.active, Pointer{ID: id})
		idx = len(t.active) - 1
		code = CodePointerDown
		if len(t.active) == 1 {
			code = CodeDown
		}
	case pointer.Drag, pointer.Move:
		if idx < 0 {
			return nil, false
		}
		code = CodeMove
	case pointer.Release:
		if idx < 0 {
			return nil, false
		}
		code = CodePointerUp
		if len(t.active) == 1 {
			code = CodeUp
		}
	case pointer.Cancel:
		if len(t.active) == 0 {
			return nil, false
		}
		ev := t.event(EncodeAction(CodeCancel, 0), e)
		t.active = t.active[:0]
		return ev, true
	default:
		return nil, false
	}

	p := &t.active[idx]
	p.X, p.Y = e.Position.X, e.Position.Y
	p.Pressure = 1
	p.Size = t.TouchSize

	// Move events do not carry a pointer index.
	index := idx
	if code == CodeMove {
		index = 0
	}
	ev := t.event(EncodeAction(code, index), e)
	if e.Type == pointer.Release {
		t.active = append(t.active[:idx], t.active[idx+1:]...)
	}
	return ev, true
}

// Pressed returns the number of pressed pointers.
func (t *PointerTracker) Pressed() int {
	return len(t.active)
}

func (t *PointerTracker) index(id int) int {
	for i, p := range t.active {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (t *PointerTracker) event(action int, e pointer.Event) *MotionEvent {
	ev := &MotionEvent{
		ActionWord: action,
		Time:       e.Time,
		Meta:       metaState(e.Modifiers),
		Pointers:   make([]Pointer, len(t.active)),
	}
	copy(ev.Pointers, t.active)
	return ev
}

// metaState translates key modifiers into the platform meta state.
func metaState(mods key.Modifiers) int {
	var meta int
	if mods.Contain(key.ModShift) {
		meta |= MetaShift
	}
	if mods.Contain(key.ModAlt) {
		meta |= MetaAlt
	}
	if mods.Contain(key.ModCtrl) {
		meta |= MetaCtrl
	}
	if mods.Contain(key.ModSuper) {
		meta |= MetaMeta
	}
	return meta
}
