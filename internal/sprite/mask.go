// Package sprite builds the game's sprite images and the per-pixel collision
// masks derived from their alpha channel.
package sprite

import (
	"image"
	"math/bits"

	"github.com/vovakirdan/galaxy-raid/internal/core"
)

// Mask is a packed bitmap of solid pixels, one bit per pixel, row-major.
type Mask struct {
	w, h   int
	stride int // uint64 words per row
	bits   []uint64
}

// NewMask creates an empty mask of the given size.
func NewMask(w, h int) *Mask {
	stride := (w + 63) / 64
	return &Mask{
		w:      w,
		h:      h,
		stride: stride,
		bits:   make([]uint64, stride*h),
	}
}

// FromImage derives a mask from an image's alpha channel. A pixel is solid
// when its 8-bit alpha is strictly greater than threshold.
func FromImage(img image.Image, threshold uint8) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if uint8(a>>8) > threshold {
				m.Set(x-b.Min.X, y-b.Min.Y)
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.h }

// Bounds returns the mask's rectangle when placed at (x, y).
func (m *Mask) Bounds(x, y int) core.Rect {
	return core.NewRect(x, y, m.w, m.h)
}

// Set marks a pixel as solid. Out-of-range coordinates are ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	m.bits[y*m.stride+x/64] |= 1 << uint(x%64)
}

// At reports whether a pixel is solid. Out-of-range coordinates are empty.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.bits[y*m.stride+x/64]&(1<<uint(x%64)) != 0
}

// Count returns the number of solid pixels.
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// Overlap reports whether other, placed at offset (dx, dy) relative to m,
// shares at least one solid pixel with m. Bounding boxes are tested first
// and pixels are only compared inside their intersection.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	r := m.Bounds(0, 0).Intersect(other.Bounds(dx, dy))
	if r.Empty() {
		return false
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if m.At(x, y) && other.At(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}

// Region reports whether any solid pixel lies inside r (mask coordinates).
// Renderers use it to down-sample a mask onto a coarse grid.
func (m *Mask) Region(r core.Rect) bool {
	r = m.Bounds(0, 0).Intersect(r)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if m.At(x, y) {
				return true
			}
		}
	}
	return false
}
