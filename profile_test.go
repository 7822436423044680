package motion

import (
	"bytes"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gioui.org/f32"
	"github.com/stretchr/testify/assert"
)

const sampleProfile = `
sdk_level = 8
display_width = 720
display_height = 1280
pan_zoom_internal = false
zoom = 2.0
offset_x = 10.0
offset_y = 20.0
`

func TestProfile_ShouldDecodeToml(t *testing.T) {
	assert := assert.New(t)

	p, err := DecodeProfile(strings.NewReader(sampleProfile))
	assert.NoError(err)
	assert.Equal(8, p.SDKLevel)
	assert.Equal(float32(2), p.Zoom)
	// Missing keys keep their defaults.
	assert.Equal(DefaultProfile().TouchSize, p.TouchSize)

	cfg := p.Config()
	assert.False(cfg.ExtendedShape)
	assert.Equal(image.Pt(720, 1280), cfg.Display)

	pt, err := p.Viewport().ViewToLayer(f32.Pt(100, 100))
	assert.NoError(err)
	assert.Equal(f32.Pt(60, 70), pt)
}

func TestProfile_ExtendedShapeCapability(t *testing.T) {
	p := DefaultProfile()
	assert.True(t, p.Config().ExtendedShape)

	p.SDKLevel = ExtendedShapeSince - 1
	assert.False(t, p.Config().ExtendedShape)
}

func TestProfile_ShouldRejectInvalidValues(t *testing.T) {
	for _, doc := range []string{
		"display_width = 0",
		"zoom = -1.0",
		"touch_size = 2.0",
	} {
		_, err := DecodeProfile(strings.NewReader(doc))
		assert.True(t, errors.Is(err, ErrInvalidProfile), doc)
	}

	_, err := DecodeProfile(strings.NewReader("display_width = "))
	assert.Error(t, err)
}

func TestProfile_ShouldLoadEncodedProfile(t *testing.T) {
	p := DefaultProfile()
	p.DisplayWidth = 1080
	p.PanZoomInternal = true

	var buf bytes.Buffer
	assert.NoError(t, p.Encode(&buf))

	fname := filepath.Join(t.TempDir(), "device.toml")
	assert.NoError(t, os.WriteFile(fname, buf.Bytes(), 0644))

	loaded, err := LoadProfile(fname)
	assert.NoError(t, err)
	assert.Equal(t, p, loaded)

	_, err = LoadProfile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
