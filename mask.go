package retouch

import "image"

// Mask marks the damaged region of a same-sized Pixmap.
// It shares the Pixmap's 4-channel RGBA layout so that a buffer index is
// interchangeable between the two, but only the alpha channel is
// meaningful: a pixel is damaged iff its mask alpha is greater than zero.
//
// Fill consumes a mask destructively. Every pixel it resolves has its
// mask alpha cleared, so after a fully successful fill the mask is empty.
type Mask struct {
	width  int
	height int
	data   []uint8 // RGBA layout, alpha channel only
}

// NewMask creates a new empty mask with the given dimensions.
// All pixels start undamaged.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// NewMaskFromAlpha creates a mask from an image's alpha channel.
// Any pixel with nonzero alpha is marked damaged.
func NewMaskFromAlpha(img image.Image) *Mask {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	mask := NewMask(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// a is 0-65535, shift by 8 to get 0-255
			// #nosec G115 -- safe: a>>8 is always in range [0, 255]
			mask.data[(y*w+x)*4+3] = uint8(a >> 8)
		}
	}

	return mask
}

// NewMaskFromLuma creates a mask from an image's luminance: brighter
// pixels are "more damaged". This is the conventional encoding for mask
// files painted as white-on-black grayscale images.
func NewMaskFromLuma(img image.Image) *Mask {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	mask := NewMask(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// Rec. 601 luma, 16-bit channels down to 8 bits.
			luma := (299*r + 587*g + 114*b) / 1000
			// #nosec G115 -- safe: luma>>8 is always in range [0, 255]
			mask.data[(y*w+x)*4+3] = uint8(luma >> 8)
		}
	}

	return mask
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// Damaged reports whether the pixel at (x, y) is marked damaged.
// Returns false for coordinates outside the mask bounds.
func (m *Mask) Damaged(x, y int) bool {
	return m.Alpha(x, y) > 0
}

// Alpha returns the mask alpha value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) Alpha(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[(y*m.width+x)*4+3]
}

// SetAlpha sets the mask alpha value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) SetAlpha(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[(y*m.width+x)*4+3] = value
}

// SetDamaged marks or unmarks the pixel at (x, y) as damaged.
func (m *Mask) SetDamaged(x, y int, damaged bool) {
	if damaged {
		m.SetAlpha(x, y, 255)
	} else {
		m.SetAlpha(x, y, 0)
	}
}

// Count returns the number of damaged pixels.
func (m *Mask) Count() int {
	n := 0
	for i := 3; i < len(m.data); i += 4 {
		if m.data[i] > 0 {
			n++
		}
	}
	return n
}

// Fill marks every pixel with the given alpha value.
func (m *Mask) Fill(value uint8) {
	for i := 3; i < len(m.data); i += 4 {
		m.data[i] = value
	}
}

// Invert inverts all mask alpha values (255 - value).
func (m *Mask) Invert() {
	for i := 3; i < len(m.data); i += 4 {
		m.data[i] = 255 - m.data[i]
	}
}

// Clear clears the mask (marks all pixels undamaged).
func (m *Mask) Clear() {
	for i := 3; i < len(m.data); i += 4 {
		m.data[i] = 0
	}
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying mask data slice (RGBA layout).
// This is useful for advanced operations.
func (m *Mask) Data() []uint8 {
	return m.data
}
