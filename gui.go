package motion

import (
	"image"
	"image/color"

	"gioui.org/app"
	"gioui.org/gesture"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var (
	defaultBkgColor  = color.NRGBA{R: 0x20, G: 0x20, B: 0x24, A: 0xff}
	defaultFillColor = color.NRGBA{R: 0x0f, G: 0x8b, B: 0x8d, A: 0xc0}
)

// Gui is a Gio window visualizing the normalized contact points.
// Every pointer event received by the window is converted into a motion
// event, normalized and drawn as the contact ellipse. The clicks recognized
// by the Gio gesture detector are relayed to the gesture handler.
type Gui struct {
	cfg struct {
		window struct {
			w     float32
			h     float32
			title string
		}
		color struct {
			background color.NRGBA
			fill       color.NRGBA
		}
	}
	norm    *Normalizer
	relay   *GestureRelay
	taps    *TapScheduler
	tracker PointerTracker
	click   gesture.Click
	last    *MotionEvent
	points  []ContactPoint

	// OnEvent, if set, is called with every normalized event.
	OnEvent func(*TouchEvent)
}

// NewGUI initializes the preview window state.
func NewGUI(w, h int, n *Normalizer, handler GestureHandler, touchSize float32) *Gui {
	gui := &Gui{
		norm:  n,
		relay: NewGestureRelay(handler),
	}
	gui.taps = NewTapScheduler(gui.relay)
	gui.tracker.TouchSize = touchSize
	gui.cfg.window.w, gui.cfg.window.h = float32(w), float32(h)
	gui.cfg.window.title = "Touch preview"
	gui.cfg.color.background = defaultBkgColor
	gui.cfg.color.fill = defaultFillColor

	return gui
}

// Run opens the window and processes its events until the window is
// closed or the ESC key is pressed.
func (g *Gui) Run() error {
	w := app.NewWindow(app.Title(g.cfg.window.title), app.Size(
		unit.Px(g.cfg.window.w),
		unit.Px(g.cfg.window.h),
	))

	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			g.update(gtx)
			g.draw(gtx)
			e.Frame(gtx.Ops)
		case key.Event:
			if e.Name == key.NameEscape {
				w.Perform(system.ActionClose)
			}
		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}

// update consumes the pending pointer and click events and schedules
// a redraw for the next time based gesture.
func (g *Gui) update(gtx C) {
	for _, e := range gtx.Events(g) {
		pe, ok := e.(pointer.Event)
		if !ok {
			continue
		}
		me, ok := g.tracker.Track(pe)
		if !ok {
			continue
		}
		g.last = me

		te := g.norm.Normalize(me)
		switch te.Action {
		case ActionDown:
			g.taps.Press(me, gtx.Now)
		case ActionMove:
			g.taps.Move(me)
		case ActionUp:
			g.taps.Release()
		case ActionPointerDown, ActionCancel:
			g.taps.Cancel()
		}
		if g.OnEvent != nil {
			g.OnEvent(te)
		}
		g.points = g.points[:0]
		if g.tracker.Pressed() > 0 {
			g.points = append(g.points, te.Points...)
		}
	}

	if clicks := g.click.Events(gtx.Queue); len(clicks) > 0 && g.last != nil {
		g.taps.Clicks(clicks, g.last, gtx.Now)
	}
	if at, ok := g.taps.Fire(gtx.Now); ok {
		op.InvalidateOp{At: at}.Add(gtx.Ops)
	}
}

// draw registers the input handlers and paints the active contacts.
func (g *Gui) draw(gtx C) D {
	paint.Fill(gtx.Ops, g.cfg.color.background)

	area := clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops)
	pointer.InputOp{
		Tag:   g,
		Types: pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
	}.Add(gtx.Ops)
	g.click.Add(gtx.Ops)
	area.Pop()

	for _, p := range g.points {
		g.drawContact(gtx.Ops, p)
	}
	return D{Size: gtx.Constraints.Max}
}
