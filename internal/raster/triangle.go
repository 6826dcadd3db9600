package raster

import (
	"math"

	"obj-bmp-renderer/internal/mathutil"
)

// Barycentric returns the weights (w, v, u) of p relative to triangle ABC;
// w belongs to A, v to B and u to C, so p = w*A + v*B + u*C.
//
// The weights come from the cross product of (Cx-Ax, Bx-Ax, Ax-Px) and
// (Cy-Ay, By-Ay, Ay-Py). When the z component of that product is below 1 in
// magnitude the triangle has (near) zero area and (-1, -1, -1) is returned,
// which every inside test rejects.
func Barycentric(a, b, c mathutil.Vec3, p mathutil.Vec2) (w, v, u float64) {
	bary := mathutil.Vec3{c[0] - a[0], b[0] - a[0], a[0] - p[0]}.Cross(
		mathutil.Vec3{c[1] - a[1], b[1] - a[1], a[1] - p[1]})

	if math.Abs(bary[2]) < 1 {
		return -1, -1, -1
	}

	return 1 - (bary[0]+bary[1])/bary[2], bary[1] / bary[2], bary[0] / bary[2]
}

// Degenerate reports whether ABC is rejected by Barycentric for every pixel.
// The z component of the barycentric cross product does not depend on P.
func Degenerate(a, b, c mathutil.Vec3) bool {
	area := (c[0]-a[0])*(b[1]-a[1]) - (b[0]-a[0])*(c[1]-a[1])
	return math.Abs(area) < 1
}

// pixelBounds returns the integer pixel box covering ABC clipped to the
// framebuffer. ok is false when nothing is left after clipping.
func (fb *FrameBuffer) pixelBounds(a, b, c mathutil.Vec3) (x0, x1, y0, y1 int, ok bool) {
	box, _ := mathutil.BoundingBox(a.XY(), b.XY(), c.XY())

	// Clip against the framebuffer before converting, so huge coordinates
	// cannot overflow int.
	xmin := math.Max(math.Floor(box.XMin), 0)
	ymin := math.Max(math.Floor(box.YMin), 0)
	xmax := math.Min(math.Ceil(box.XMax), float64(fb.Width-1))
	ymax := math.Min(math.Ceil(box.YMax), float64(fb.Height-1))
	if !(xmin <= xmax && ymin <= ymax) {
		return 0, 0, 0, 0, false
	}
	return int(xmin), int(xmax), int(ymin), int(ymax), true
}

// DrawTriangle scan-fills ABC into the framebuffer.
//
// Every pixel of the bounding box (both ends inclusive) is tested; pixels
// with a negative barycentric weight are outside, zero weights are on the
// edge and count as inside. Depth is interpolated as an offset from A with
// the same weights, so a constant-depth triangle stores its depth exactly.
// A fragment is kept only if it is strictly closer (greater z) than what
// the z-buffer already holds; ties keep the first triangle drawn.
func (r *Renderer) DrawTriangle(a, b, c mathutil.Vec3) {
	r.stats.Triangles++
	if Degenerate(a, b, c) {
		r.stats.Degenerate++
		return
	}

	fb := r.fb
	x0, x1, y0, y1, ok := fb.pixelBounds(a, b, c)
	if !ok {
		r.stats.Clipped++
		return
	}

	for y := y0; y <= y1; y++ {
		rowOff := y * fb.Width
		for x := x0; x <= x1; x++ {
			w, v, u := Barycentric(a, b, c, mathutil.Vec2{float64(x), float64(y)})
			if w < 0 || v < 0 || u < 0 {
				continue
			}
			r.stats.Fragments++

			z := a[2] + (b[2]-a[2])*v + (c[2]-a[2])*u
			col := r.shader.Shade(x, y)

			zIdx := rowOff + x
			if !(z > fb.ZBuf[zIdx]) {
				r.stats.Occluded++
				continue
			}
			fb.ZBuf[zIdx] = z
			fb.Set(x, y, col)
			r.stats.Written++
		}
	}
}
