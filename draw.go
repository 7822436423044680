package motion

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/esimov/motion/utils"
)

// minContactRadius keeps contacts without shape data visible.
const minContactRadius = 6

// drawContact paints the contact ellipse rotated by its orientation.
func (g *Gui) drawContact(ops *op.Ops, p ContactPoint) {
	rx := utils.Max(p.Radius.X, minContactRadius)
	ry := utils.Max(p.Radius.Y, minContactRadius)

	center := layoutPoint(p.Position)
	angle := float32(float64(p.Orientation) * math.Pi / 180)
	defer op.Affine(f32.Affine2D{}.Rotate(center, angle)).Push(ops).Pop()

	r := f32.Pt(float32(rx), float32(ry))
	bounds := f32.Rectangle{Min: center.Sub(r), Max: center.Add(r)}
	defer clip.Ellipse(bounds).Push(ops).Pop()
	paint.ColorOp{Color: g.cfg.color.fill}.Add(ops)
	paint.PaintOp{}.Add(ops)
}

// layoutPoint converts an integer contact position to Gio f32.Point.
func layoutPoint(p image.Point) f32.Point {
	return f32.Point{
		X: float32(p.X),
		Y: float32(p.Y),
	}
}
