package motion

import (
	"testing"

	"gioui.org/f32"
	"github.com/stretchr/testify/assert"
)

func TestViewport_ViewToLayer(t *testing.T) {
	assert := assert.New(t)
	v := NewViewport(f32.Pt(100, 50), 2, false)

	internal, err := v.PanZoomInternal()
	assert.NoError(err)
	assert.False(internal)

	p, err := v.ViewToLayer(f32.Pt(20, 40))
	assert.NoError(err)
	assert.Equal(f32.Pt(110, 70), p)

	v.SetTransform(f32.Point{}, 0)
	p, err = v.ViewToLayer(f32.Pt(20, 40))
	assert.NoError(err)
	assert.Equal(f32.Pt(20, 40), p)
}

func TestViewport_DetachedSurfaceFails(t *testing.T) {
	assert := assert.New(t)
	v := NewViewport(f32.Point{}, 1, true)

	v.Detach()
	_, err := v.PanZoomInternal()
	assert.ErrorIs(err, ErrNoSurface)
	_, err = v.ViewToLayer(f32.Pt(1, 1))
	assert.ErrorIs(err, ErrNoSurface)

	v.Attach()
	internal, err := v.PanZoomInternal()
	assert.NoError(err)
	assert.True(internal)
}
