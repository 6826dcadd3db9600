package raster

import (
	"image"
	"math"

	"obj-bmp-renderer/internal/shade"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
// Row 0 is the bottom row of the final image.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGB interleaved, len = W*H*3
	ZBuf   []float64 // depth per pixel, len = W*H, initialized to -inf
}

// NewFrameBuffer allocates a black color buffer and -inf z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*3),
		ZBuf:   make([]float64, n),
	}
	fb.ClearDepth()
	return fb
}

// Clear fills every pixel with bg and resets the z-buffer.
func (fb *FrameBuffer) Clear(bg shade.RGB) {
	r, g, b := bg.Bytes()
	for i := 0; i < len(fb.Color); i += 3 {
		fb.Color[i] = r
		fb.Color[i+1] = g
		fb.Color[i+2] = b
	}
	fb.ClearDepth()
}

// ClearDepth resets every depth to -inf.
func (fb *FrameBuffer) ClearDepth() {
	inf := math.Inf(-1)
	for i := range fb.ZBuf {
		fb.ZBuf[i] = inf
	}
}

// InBounds reports whether (x, y) addresses a pixel.
func (fb *FrameBuffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < fb.Width && y < fb.Height
}

// Set writes a color at (x, y) without blending or depth testing.
// The caller guarantees (x, y) is in bounds.
func (fb *FrameBuffer) Set(x, y int, c shade.RGB) {
	i := (y*fb.Width + x) * 3
	fb.Color[i], fb.Color[i+1], fb.Color[i+2] = c.Bytes()
}

// At returns the stored bytes at (x, y).
func (fb *FrameBuffer) At(x, y int) (r, g, b uint8) {
	i := (y*fb.Width + x) * 3
	return fb.Color[i], fb.Color[i+1], fb.Color[i+2]
}

// Depth returns the z-buffer value at (x, y).
func (fb *FrameBuffer) Depth(x, y int) float64 {
	return fb.ZBuf[y*fb.Width+x]
}

// Row returns the RGB bytes of storage row y.
func (fb *FrameBuffer) Row(y int) []uint8 {
	off := y * fb.Width * 3
	return fb.Color[off : off+fb.Width*3]
}

// NRGBA converts the framebuffer to an opaque top-down image, flipping rows
// so the result matches the orientation of the BMP output.
func (fb *FrameBuffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		src := fb.Row(fb.Height - 1 - y)
		dst := img.Pix[y*img.Stride : y*img.Stride+fb.Width*4]
		for x := 0; x < fb.Width; x++ {
			dst[x*4] = src[x*3]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 255
		}
	}
	return img
}
