package motion

import "gioui.org/f32"

// Viewport is a Surface backed by an affine view to layer transform.
// A viewport created with panZoom set handles the viewport transform itself
// and view points pass through unchanged.
type Viewport struct {
	tr       f32.Affine2D
	panZoom  bool
	detached bool
}

var _ Surface = (*Viewport)(nil)

// NewViewport creates an attached viewport scrolled to offset and scaled by zoom.
func NewViewport(offset f32.Point, zoom float32, panZoom bool) *Viewport {
	v := &Viewport{panZoom: panZoom}
	v.SetTransform(offset, zoom)
	return v
}

// SetTransform updates the viewport origin and zoom factor. A layer point
// is obtained by scaling the view point and adding the viewport offset.
func (v *Viewport) SetTransform(offset f32.Point, zoom float32) {
	if zoom <= 0 {
		zoom = 1
	}
	v.tr = f32.Affine2D{}.
		Scale(f32.Point{}, f32.Pt(1/zoom, 1/zoom)).
		Offset(offset)
}

// Detach disconnects the viewport from its rendering layer.
func (v *Viewport) Detach() {
	v.detached = true
}

// Attach reconnects a detached viewport.
func (v *Viewport) Attach() {
	v.detached = false
}

// PanZoomInternal implements Surface.
func (v *Viewport) PanZoomInternal() (bool, error) {
	if v.detached {
		return false, ErrNoSurface
	}
	return v.panZoom, nil
}

// ViewToLayer implements Surface.
func (v *Viewport) ViewToLayer(p f32.Point) (f32.Point, error) {
	if v.detached {
		return f32.Point{}, ErrNoSurface
	}
	return v.tr.Transform(p), nil
}
