// Package render composes ingestion, rasterization and encoding into a
// single batch render.
//
// A Context owns its framebuffer; there is no package-level render target,
// so independent renders (and tests) never share state.
package render

import (
	"errors"
	"fmt"

	"obj-bmp-renderer/internal/mesh"
	"obj-bmp-renderer/internal/obj"
	"obj-bmp-renderer/internal/output"
	"obj-bmp-renderer/internal/raster"
	"obj-bmp-renderer/internal/shade"
)

// Loader resolves a mesh path. *obj.Cache implements it.
type Loader interface {
	Load(path string) (*obj.Mesh, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(path string) (*obj.Mesh, error)

func (f LoaderFunc) Load(path string) (*obj.Mesh, error) { return f(path) }

// Context is one render: a surface plus the renderer drawing into it.
type Context struct {
	r          *raster.Renderer
	loader     Loader
	background shade.RGB
	meshes     int
}

// CreateSurface allocates a width×height surface cleared to black.
func CreateSurface(width, height int) (*Context, error) {
	c := &Context{loader: LoaderFunc(obj.Parse)}
	if err := c.CreateWindow(width, height); err != nil {
		return nil, err
	}
	return c, nil
}

// CreateWindow replaces the surface with a fresh width×height one. The
// viewport and background are kept; statistics start over.
func (c *Context) CreateWindow(width, height int) error {
	if width <= 0 || height <= 0 {
		return &StageError{Stage: StageRasterization, Err: fmt.Errorf("invalid surface size %dx%d", width, height)}
	}
	vp := raster.DefaultViewport
	if c.r != nil {
		vp = c.r.Viewport()
	}
	fb := raster.NewFrameBuffer(width, height)
	fb.Clear(c.background)
	c.r = raster.NewRenderer(fb, nil)
	c.r.SetViewport(vp)
	c.meshes = 0

	Logger().Info("surface created", "width", width, "height", height)
	return nil
}

// SetLoader replaces how LoadMesh reads files, e.g. with a shared cache.
func (c *Context) SetLoader(l Loader) {
	if l == nil {
		l = LoaderFunc(obj.Parse)
	}
	c.loader = l
}

// Viewport records the viewport rectangle. It does not affect drawing.
func (c *Context) Viewport(x, y, width, height int) {
	c.r.SetViewport(raster.Viewport{X: x, Y: y, Width: width, Height: height})
}

// Clear fills the surface with bg and resets depth. Later CreateWindow
// calls clear to the same color.
func (c *Context) Clear(bg shade.RGB) {
	c.background = bg
	c.r.FrameBuffer().Clear(bg)
}

// Point writes a single pixel, ignoring the depth buffer.
func (c *Context) Point(x, y int, col shade.RGB) {
	c.r.Point(x, y, col)
}

// LoadMesh parses the OBJ file at path, transforms it into screen space
// and rasterizes every face with s.
func (c *Context) LoadMesh(path string, xf mesh.Transform, s shade.Shader) error {
	m, err := c.loader.Load(path)
	if err != nil {
		return &StageError{Stage: StageIngestion, Path: path, Err: err}
	}
	return c.draw(path, m, xf, s)
}

// DrawMesh rasterizes an already parsed mesh.
func (c *Context) DrawMesh(m *obj.Mesh, xf mesh.Transform, s shade.Shader) error {
	return c.draw("", m, xf, s)
}

func (c *Context) draw(path string, m *obj.Mesh, xf mesh.Transform, s shade.Shader) error {
	tris, err := mesh.Triangulate(m, xf)
	if err != nil {
		return &StageError{Stage: StageIngestion, Path: path, Err: err}
	}

	before := c.r.Stats()
	c.r.SetShader(s)
	for i := range tris {
		v := &tris[i].Verts
		c.r.DrawTriangle(v[0], v[1], v[2])
	}
	c.meshes++

	after := c.r.Stats()
	log := Logger().With("mesh", path, "faces", len(m.Faces))
	log.Debug("mesh rasterized",
		"triangles", after.Triangles-before.Triangles,
		"fragments", after.Fragments-before.Fragments,
		"written", after.Written-before.Written,
		"occluded", after.Occluded-before.Occluded,
	)
	if n := after.Degenerate - before.Degenerate; n > 0 {
		log.Warn("degenerate triangles skipped", "count", n)
	}
	if n := after.Clipped - before.Clipped; n > 0 {
		log.Warn("off-screen triangles skipped", "count", n)
	}
	return nil
}

// Finish encodes the surface and writes it to path. The format follows
// the extension (BMP when there is none).
func (c *Context) Finish(path string) error {
	if path == "" {
		return &StageError{Stage: StageEncoding, Err: errors.New("empty output path")}
	}
	if err := output.Write(path, c.r.FrameBuffer()); err != nil {
		return &StageError{Stage: StageEncoding, Path: path, Err: err}
	}

	fb := c.r.FrameBuffer()
	Logger().Info("image written", "path", path, "width", fb.Width, "height", fb.Height, "meshes", c.meshes)
	return nil
}

// Stats returns the accumulated rasterizer counters.
func (c *Context) Stats() raster.Stats { return c.r.Stats() }

// FrameBuffer exposes the surface for inspection.
func (c *Context) FrameBuffer() *raster.FrameBuffer { return c.r.FrameBuffer() }
