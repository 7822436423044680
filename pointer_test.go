package motion

import (
	"image"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"github.com/stretchr/testify/assert"
)

func touch(typ pointer.Type, id pointer.ID, x, y float32) pointer.Event {
	return pointer.Event{
		Type:      typ,
		Source:    pointer.Touch,
		PointerID: id,
		Time:      time.Second,
		Position:  f32.Pt(x, y),
	}
}

func TestPointerTracker_MultiTouchSequence(t *testing.T) {
	assert := assert.New(t)
	tr := &PointerTracker{TouchSize: 0.05}

	ev, ok := tr.Track(touch(pointer.Press, 1, 10, 10))
	assert.True(ok)
	assert.Equal(EncodeAction(CodeDown, 0), ev.Action())
	assert.Equal(1, ev.PointerCount())
	assert.Equal(float32(0.05), ev.Size(0))

	ev, ok = tr.Track(touch(pointer.Press, 2, 50, 60))
	assert.True(ok)
	assert.Equal(EncodeAction(CodePointerDown, 1), ev.Action())
	assert.Equal(2, ev.PointerCount())
	assert.Equal(2, ev.PointerID(1))

	ev, ok = tr.Track(touch(pointer.Drag, 2, 55, 65))
	assert.True(ok)
	assert.Equal(CodeMove, ev.Action())
	assert.Equal(float32(55), ev.X(1))
	assert.Equal(float32(65), ev.Y(1))

	ev, ok = tr.Track(touch(pointer.Release, 1, 12, 12))
	assert.True(ok)
	assert.Equal(EncodeAction(CodePointerUp, 0), ev.Action())
	assert.Equal(2, ev.PointerCount())
	assert.Equal(1, tr.Pressed())

	ev, ok = tr.Track(touch(pointer.Release, 2, 55, 65))
	assert.True(ok)
	assert.Equal(EncodeAction(CodeUp, 0), ev.Action())
	assert.Equal(1, ev.PointerCount())
	assert.Equal(0, tr.Pressed())
}

func TestPointerTracker_IgnoresUntrackedPointers(t *testing.T) {
	assert := assert.New(t)
	tr := &PointerTracker{}

	_, ok := tr.Track(touch(pointer.Move, 3, 1, 1))
	assert.False(ok)
	_, ok = tr.Track(touch(pointer.Release, 3, 1, 1))
	assert.False(ok)
	_, ok = tr.Track(touch(pointer.Cancel, 0, 0, 0))
	assert.False(ok)
	_, ok = tr.Track(touch(pointer.Enter, 3, 1, 1))
	assert.False(ok)
}

func TestPointerTracker_CancelReleasesEveryPointer(t *testing.T) {
	tr := &PointerTracker{}
	tr.Track(touch(pointer.Press, 1, 10, 10))
	tr.Track(touch(pointer.Press, 2, 20, 20))

	ev, ok := tr.Track(pointer.Event{Type: pointer.Cancel})
	assert.True(t, ok)
	assert.Equal(t, CodeCancel, ev.Action())
	assert.Equal(t, 2, ev.PointerCount())
	assert.Equal(t, 0, tr.Pressed())
}

func TestPointerTracker_ShouldTranslateModifiers(t *testing.T) {
	tr := &PointerTracker{}
	e := touch(pointer.Press, 1, 0, 0)
	e.Modifiers = key.ModShift | key.ModCtrl

	ev, _ := tr.Track(e)
	assert.Equal(t, MetaShift|MetaCtrl, ev.MetaState())
}

func TestPointerTracker_NormalizedSequence(t *testing.T) {
	assert := assert.New(t)
	tr := &PointerTracker{TouchSize: 0.1}
	n := NewNormalizer(NewViewport(f32.Pt(100, 0), 2, false), Config{
		Display: image.Pt(480, 800),
		Clock:   testClock,
	})

	ev, _ := tr.Track(touch(pointer.Press, 1, 40, 80))
	te := n.Normalize(ev)

	assert.Equal(ActionDown, te.Action)
	assert.Equal(0, te.PointerIndex)
	assert.Equal(120, te.Points[0].Position.X)
	assert.Equal(40, te.Points[0].Position.Y)
	assert.Equal(48, te.Points[0].Radius.X)
}
