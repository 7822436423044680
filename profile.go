package motion

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"gioui.org/f32"
	"github.com/BurntSushi/toml"
)

// ErrInvalidProfile is returned when a device profile fails validation.
var ErrInvalidProfile = errors.New("invalid device profile")

// Profile describes the device capabilities and the rendering surface state.
type Profile struct {
	SDKLevel        int     `toml:"sdk_level"`
	DisplayWidth    int     `toml:"display_width"`
	DisplayHeight   int     `toml:"display_height"`
	PanZoomInternal bool    `toml:"pan_zoom_internal"`
	Zoom            float32 `toml:"zoom"`
	OffsetX         float32 `toml:"offset_x"`
	OffsetY         float32 `toml:"offset_y"`
	// TouchSize is the normalized contact size reported for pointers lacking size data.
	TouchSize float32 `toml:"touch_size"`
}

// DefaultProfile returns the profile used when no profile file is provided.
func DefaultProfile() Profile {
	return Profile{
		SDKLevel:      ExtendedShapeSince,
		DisplayWidth:  480,
		DisplayHeight: 800,
		Zoom:          1,
		TouchSize:     0.05,
	}
}

// LoadProfile reads a TOML device profile from path.
func LoadProfile(path string) (Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return Profile{}, fmt.Errorf("unable to open the device profile: %w", err)
	}
	defer f.Close()

	return DecodeProfile(f)
}

// DecodeProfile decodes a TOML device profile. Keys missing from the
// document keep their default values.
func DecodeProfile(r io.Reader) (Profile, error) {
	p := DefaultProfile()
	if _, err := toml.NewDecoder(r).Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("unable to decode the device profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Encode writes the profile as a TOML document.
func (p Profile) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(p)
}

// Validate checks the profile values.
func (p Profile) Validate() error {
	if p.DisplayWidth <= 0 || p.DisplayHeight <= 0 {
		return fmt.Errorf("%w: display size %dx%d", ErrInvalidProfile, p.DisplayWidth, p.DisplayHeight)
	}
	if p.Zoom <= 0 {
		return fmt.Errorf("%w: zoom factor %v", ErrInvalidProfile, p.Zoom)
	}
	if p.TouchSize < 0 || p.TouchSize > 1 {
		return fmt.Errorf("%w: touch size %v out of [0, 1]", ErrInvalidProfile, p.TouchSize)
	}
	return nil
}

// Config resolves the profile capabilities into a normalizer configuration.
func (p Profile) Config() Config {
	return Config{
		ExtendedShape: p.SDKLevel >= ExtendedShapeSince,
		Display:       image.Pt(p.DisplayWidth, p.DisplayHeight),
	}
}

// Viewport returns the rendering surface described by the profile.
func (p Profile) Viewport() *Viewport {
	return NewViewport(f32.Pt(p.OffsetX, p.OffsetY), p.Zoom, p.PanZoomInternal)
}
