package raster

import "obj-bmp-renderer/internal/shade"

// Stats counts rasterizer work for one render.
type Stats struct {
	Triangles  int // DrawTriangle calls
	Degenerate int // rejected as zero-area
	Clipped    int // bounding box entirely off-screen
	Fragments  int // pixels inside a triangle
	Written    int // fragments that passed the depth test
	Occluded   int // fragments that failed the depth test
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Triangles += o.Triangles
	s.Degenerate += o.Degenerate
	s.Clipped += o.Clipped
	s.Fragments += o.Fragments
	s.Written += o.Written
	s.Occluded += o.Occluded
}

// Renderer owns one framebuffer and draws into it with the current shader.
// A Renderer is not safe for concurrent use; independent renders should
// use independent Renderers.
type Renderer struct {
	fb       *FrameBuffer
	shader   shade.Shader
	viewport Viewport
	stats    Stats
}

// NewRenderer returns a renderer drawing into fb. A nil shader paints white.
func NewRenderer(fb *FrameBuffer, s shade.Shader) *Renderer {
	r := &Renderer{fb: fb, viewport: DefaultViewport}
	r.SetShader(s)
	return r
}

// SetShader replaces the shader used for subsequent triangles.
func (r *Renderer) SetShader(s shade.Shader) {
	if s == nil {
		s = shade.Flat{Color: shade.White}
	}
	r.shader = s
}

// SetViewport records the viewport.
func (r *Renderer) SetViewport(v Viewport) { r.viewport = v }

func (r *Renderer) Viewport() Viewport { return r.viewport }

func (r *Renderer) FrameBuffer() *FrameBuffer { return r.fb }

func (r *Renderer) Stats() Stats { return r.stats }

// Point writes c at (x, y) with no blending and no depth test.
// Coordinates outside the framebuffer are ignored.
func (r *Renderer) Point(x, y int, c shade.RGB) {
	if !r.fb.InBounds(x, y) {
		return
	}
	r.fb.Set(x, y, c)
}
