package motion

import (
	"errors"
	"image"
	"math"
	"time"

	"gioui.org/f32"
	"github.com/esimov/motion/utils"
	"github.com/kataras/golog"
)

// ExtendedShapeSince is the first platform level reporting the tool axes and the contact orientation.
const ExtendedShapeSince = 9

// ErrNoSurface is returned by a Surface which is not attached to a rendering layer.
var ErrNoSurface = errors.New("no rendering surface attached")

// Surface is the rendering surface capability consulted during normalization.
type Surface interface {
	// PanZoomInternal reports whether the surface owns the viewport transform.
	PanZoomInternal() (bool, error)
	// ViewToLayer converts a view space point into the surface logical space.
	ViewToLayer(p f32.Point) (f32.Point, error)
}

// Clock provides the wall time and the time elapsed since the device boot.
type Clock interface {
	Now() time.Time
	Uptime() time.Duration
}

// Config holds the device capabilities, resolved once for the lifetime of a Normalizer.
type Config struct {
	// ExtendedShape is set when the platform reports tool axes and orientation.
	ExtendedShape bool
	// Display is the display size in pixels.
	Display image.Point
	Clock   Clock
	// Logger receives the per point failures at debug level. A nil Logger discards them.
	Logger *golog.Logger
}

// Normalizer converts raw platform events into TouchEvents.
type Normalizer struct {
	surface Surface
	cfg     Config
}

// pointResult is the outcome of a single contact point conversion.
type pointResult struct {
	point ContactPoint
	err   error
}

// NewNormalizer creates a Normalizer bound to the rendering surface.
func NewNormalizer(s Surface, cfg Config) *Normalizer {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock()
	}
	return &Normalizer{surface: s, cfg: cfg}
}

// Normalize builds the TouchEvent for ev. It never fails: a contact point
// which cannot be converted is replaced by a zero sentinel point.
func (n *Normalizer) Normalize(ev RawEvent) *TouchEvent {
	clock := n.cfg.Clock
	action, index := DecodeAction(ev.Action())

	te := &TouchEvent{
		Action:       action,
		Time:         clock.Now().Add(-clock.Uptime()).Add(ev.EventTime()),
		MetaState:    ev.MetaState(),
		PointerIndex: NoPointer,
		Points:       []ContactPoint{},
	}
	if !action.ContactBearing() {
		return te
	}

	te.PointerIndex = index
	te.Points = make([]ContactPoint, ev.PointerCount())
	for i := range te.Points {
		res := n.addMotionPoint(ev, i)
		if res.err != nil {
			if n.cfg.Logger != nil {
				n.cfg.Logger.Debugf("error creating motion point %d: %v", i, res.err)
			}
			te.Points[i] = ContactPoint{ID: ev.PointerID(i)}
			continue
		}
		te.Points[i] = res.point
	}
	return te
}

// addMotionPoint converts the contact point at index i.
func (n *Normalizer) addMotionPoint(ev RawEvent, i int) pointResult {
	if n.surface == nil {
		return pointResult{err: ErrNoSurface}
	}
	internal, err := n.surface.PanZoomInternal()
	if err != nil {
		return pointResult{err: err}
	}

	pos := f32.Pt(ev.X(i), ev.Y(i))
	if !internal {
		pos, err = n.surface.ViewToLayer(pos)
		if err != nil {
			return pointResult{err: err}
		}
	}

	cp := ContactPoint{
		Position: image.Pt(round(pos.X), round(pos.Y)),
		ID:       ev.PointerID(i),
		Pressure: ev.Pressure(i),
	}

	if n.cfg.ExtendedShape {
		cp.Orientation, cp.Radius = contactEllipse(ev.Orientation(i), ev.ToolMajor(i), ev.ToolMinor(i))
	} else {
		size := int(ev.Size(i) * float32(utils.Min(n.cfg.Display.X, n.cfg.Display.Y)))
		cp.Radius = image.Pt(size, size)
	}
	return pointResult{point: cp}
}

// FoldOrientation closes the orientation range: exactly 90 degrees,
// which touch event consumers never accept, is folded to -90.
func FoldOrientation(deg float32) float32 {
	if deg == 90 {
		return -90
	}
	return deg
}

// contactEllipse returns the contact orientation in degrees together with
// the minor and major radii as seen at that orientation. A negative
// orientation is shifted by 90 degrees, which swaps the raw axes.
func contactEllipse(radians, major, minor float32) (float32, image.Point) {
	deg := FoldOrientation(float32(float64(radians) * (180 / math.Pi)))
	if deg < 0 {
		return deg + 90, image.Pt(int(major)/2, int(minor)/2)
	}
	return deg, image.Pt(int(minor)/2, int(major)/2)
}

// round rounds half up, towards positive infinity.
func round(v float32) int {
	return int(math.Floor(float64(v) + 0.5))
}
