package raster

import (
	"math"
	"testing"

	"obj-bmp-renderer/internal/mathutil"
	"obj-bmp-renderer/internal/shade"
)

func v3(x, y, z float64) mathutil.Vec3 { return mathutil.Vec3{x, y, z} }

func newTestRenderer(w, h int, s shade.Shader) *Renderer {
	fb := NewFrameBuffer(w, h)
	fb.Clear(shade.Black)
	return NewRenderer(fb, s)
}

func isColor(fb *FrameBuffer, x, y int, c shade.RGB) bool {
	r, g, b := fb.At(x, y)
	wr, wg, wb := c.Bytes()
	return r == wr && g == wg && b == wb
}

func TestBarycentricVertices(t *testing.T) {
	a, b, c := v3(0, 0, 0), v3(10, 0, 0), v3(0, 10, 0)

	tests := []struct {
		name    string
		p       mathutil.Vec2
		w, v, u float64
	}{
		{"at A", mathutil.Vec2{0, 0}, 1, 0, 0},
		{"at B", mathutil.Vec2{10, 0}, 0, 1, 0},
		{"at C", mathutil.Vec2{0, 10}, 0, 0, 1},
		{"midpoint BC", mathutil.Vec2{5, 5}, 0, 0.5, 0.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, v, u := Barycentric(a, b, c, tc.p)
			if math.Abs(w-tc.w) > 1e-12 || math.Abs(v-tc.v) > 1e-12 || math.Abs(u-tc.u) > 1e-12 {
				t.Errorf("Barycentric(%v) = (%v, %v, %v), want (%v, %v, %v)", tc.p, w, v, u, tc.w, tc.v, tc.u)
			}
		})
	}
}

func TestBarycentricPartition(t *testing.T) {
	a, b, c := v3(0, 0, 0), v3(8, 1, 0), v3(3, 9, 0)

	inside := []mathutil.Vec2{{3, 3}, {4, 2}, {3, 7}, {0, 0}}
	for _, p := range inside {
		w, v, u := Barycentric(a, b, c, p)
		if math.Abs(w+v+u-1) > 1e-9 {
			t.Errorf("weights at %v sum to %v", p, w+v+u)
		}
		if w < 0 || v < 0 || u < 0 {
			t.Errorf("inside point %v has negative weight (%v, %v, %v)", p, w, v, u)
		}
	}

	outside := []mathutil.Vec2{{9, 9}, {-1, 0}, {8, 0}, {0, 5}}
	for _, p := range outside {
		w, v, u := Barycentric(a, b, c, p)
		if math.Abs(w+v+u-1) > 1e-9 {
			t.Errorf("weights at %v sum to %v", p, w+v+u)
		}
		if w >= 0 && v >= 0 && u >= 0 {
			t.Errorf("outside point %v has no negative weight (%v, %v, %v)", p, w, v, u)
		}
	}
}

func TestDegenerateTriangle(t *testing.T) {
	a, b, c := v3(0, 0, 0), v3(1, 1, 0), v3(2, 2, 0)
	if !Degenerate(a, b, c) {
		t.Fatal("collinear triangle not reported degenerate")
	}
	for y := 0; y <= 2; y++ {
		for x := 0; x <= 2; x++ {
			w, v, u := Barycentric(a, b, c, mathutil.Vec2{float64(x), float64(y)})
			if w != -1 || v != -1 || u != -1 {
				t.Errorf("Barycentric at (%d,%d) = (%v,%v,%v), want sentinel", x, y, w, v, u)
			}
		}
	}

	r := newTestRenderer(8, 8, shade.Flat{Color: shade.White})
	r.DrawTriangle(a, b, c)
	st := r.Stats()
	if st.Degenerate != 1 || st.Written != 0 {
		t.Errorf("stats = %+v, want one degenerate triangle and no writes", st)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if !isColor(r.FrameBuffer(), x, y, shade.Black) {
				t.Fatalf("pixel (%d,%d) was drawn", x, y)
			}
		}
	}
}

func TestDrawTriangleEndToEnd(t *testing.T) {
	r := newTestRenderer(20, 20, shade.Flat{Color: shade.White})
	r.DrawTriangle(v3(0, 0, 1), v3(10, 0, 1), v3(0, 10, 1))
	fb := r.FrameBuffer()

	lit := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			inside := x+y <= 10
			switch {
			case inside && !isColor(fb, x, y, shade.White):
				t.Errorf("pixel (%d,%d) should be white", x, y)
			case !inside && !isColor(fb, x, y, shade.Black):
				t.Errorf("pixel (%d,%d) should be black", x, y)
			}
			if inside {
				lit++
				if d := fb.Depth(x, y); d != 1 {
					t.Errorf("depth (%d,%d) = %v, want 1", x, y, d)
				}
			} else if d := fb.Depth(x, y); !math.IsInf(d, -1) {
				t.Errorf("depth (%d,%d) = %v, want -inf", x, y, d)
			}
		}
	}
	if lit != 66 {
		t.Errorf("lit pixels = %d, want 66", lit)
	}
	if st := r.Stats(); st.Written != 66 || st.Occluded != 0 {
		t.Errorf("stats = %+v", st)
	}
}

func TestConstantDepthExact(t *testing.T) {
	r := newTestRenderer(64, 64, nil)
	r.DrawTriangle(v3(3, 1, 0.7), v3(61, 5, 0.7), v3(17, 59, 0.7))
	fb := r.FrameBuffer()

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if d := fb.Depth(x, y); !math.IsInf(d, -1) && d != 0.7 {
				t.Fatalf("depth (%d,%d) = %v, want 0.7", x, y, d)
			}
		}
	}
	if r.Stats().Written == 0 {
		t.Fatal("nothing drawn")
	}
}

func TestDepthInterpolationWeights(t *testing.T) {
	// Only A is raised, so depth must peak at A and vanish at B and C.
	r := newTestRenderer(12, 12, nil)
	r.DrawTriangle(v3(0, 0, 10), v3(10, 0, 0), v3(0, 10, 0))
	fb := r.FrameBuffer()

	tests := []struct {
		x, y int
		want float64
	}{
		{0, 0, 10},
		{10, 0, 0},
		{0, 10, 0},
		{2, 3, 5},
		{5, 0, 5},
	}
	for _, tc := range tests {
		if d := fb.Depth(tc.x, tc.y); math.Abs(d-tc.want) > 1e-9 {
			t.Errorf("depth (%d,%d) = %v, want %v", tc.x, tc.y, d, tc.want)
		}
	}
}

func TestDepthTestOrderIndependent(t *testing.T) {
	red := shade.Flat{Color: shade.RGB{R: 1}}
	blue := shade.Flat{Color: shade.RGB{B: 1}}

	near := [3]mathutil.Vec3{v3(0, 0, 5), v3(9, 0, 5), v3(0, 9, 5)}
	far := [3]mathutil.Vec3{v3(0, 0, 3), v3(9, 0, 3), v3(0, 9, 3)}

	draw := func(r *Renderer, s shade.Shader, tri [3]mathutil.Vec3) {
		r.SetShader(s)
		r.DrawTriangle(tri[0], tri[1], tri[2])
	}

	t.Run("near first", func(t *testing.T) {
		r := newTestRenderer(10, 10, nil)
		draw(r, red, near)
		draw(r, blue, far)
		if !isColor(r.FrameBuffer(), 2, 2, red.Color) {
			t.Error("far triangle overwrote the near one")
		}
		if st := r.Stats(); st.Occluded == 0 {
			t.Errorf("expected occluded fragments, stats = %+v", st)
		}
	})

	t.Run("far first", func(t *testing.T) {
		r := newTestRenderer(10, 10, nil)
		draw(r, blue, far)
		draw(r, red, near)
		if !isColor(r.FrameBuffer(), 2, 2, red.Color) {
			t.Error("near triangle did not replace the far one")
		}
		if d := r.FrameBuffer().Depth(2, 2); d != 5 {
			t.Errorf("depth = %v, want 5", d)
		}
	})

	t.Run("equal depth keeps first", func(t *testing.T) {
		r := newTestRenderer(10, 10, nil)
		draw(r, blue, near)
		draw(r, red, near)
		if !isColor(r.FrameBuffer(), 2, 2, blue.Color) {
			t.Error("equal-depth fragment replaced the first one")
		}
	})
}

func TestQuadSplitCoverage(t *testing.T) {
	a, b, c, d := v3(0, 0, 0), v3(4, 0, 0), v3(4, 4, 0), v3(0, 4, 0)

	coverage := make(map[[2]int]int)
	for _, tri := range [][3]mathutil.Vec3{{a, b, c}, {a, c, d}} {
		r := newTestRenderer(8, 8, nil)
		r.DrawTriangle(tri[0], tri[1], tri[2])
		fb := r.FrameBuffer()
		for y := 0; y < fb.Height; y++ {
			for x := 0; x < fb.Width; x++ {
				if !math.IsInf(fb.Depth(x, y), -1) {
					coverage[[2]int{x, y}]++
				}
			}
		}
	}

	for y := 0; y <= 4; y++ {
		for x := 0; x <= 4; x++ {
			n := coverage[[2]int{x, y}]
			want := 1
			if x == y {
				want = 2 // shared diagonal
			}
			if n != want {
				t.Errorf("pixel (%d,%d) covered %d times, want %d", x, y, n, want)
			}
		}
	}
	if len(coverage) != 25 {
		t.Errorf("covered pixels = %d, want 25", len(coverage))
	}
}

func TestDrawTriangleClipsToFrameBuffer(t *testing.T) {
	r := newTestRenderer(10, 10, shade.Flat{Color: shade.White})
	r.DrawTriangle(v3(-50, -50, 1), v3(100, -50, 1), v3(-50, 100, 1))
	fb := r.FrameBuffer()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if !isColor(fb, x, y, shade.White) {
				t.Fatalf("pixel (%d,%d) not covered", x, y)
			}
		}
	}
	if st := r.Stats(); st.Written != 100 {
		t.Errorf("written = %d, want 100", st.Written)
	}

	r.DrawTriangle(v3(100, 100, 1), v3(110, 100, 1), v3(100, 110, 1))
	if st := r.Stats(); st.Clipped != 1 {
		t.Errorf("clipped = %d, want 1", st.Clipped)
	}
}

func TestDrawTriangleWindingAgnostic(t *testing.T) {
	ccw := newTestRenderer(12, 12, nil)
	ccw.DrawTriangle(v3(1, 1, 0), v3(10, 2, 0), v3(4, 9, 0))
	cw := newTestRenderer(12, 12, nil)
	cw.DrawTriangle(v3(1, 1, 0), v3(4, 9, 0), v3(10, 2, 0))

	if a, b := ccw.Stats().Written, cw.Stats().Written; a != b || a == 0 {
		t.Errorf("written ccw=%d cw=%d, want equal and non-zero", a, b)
	}
}

func TestShaderReceivesPixelCoordinates(t *testing.T) {
	var calls int
	s := shade.ShaderFunc(func(x, y int) shade.RGB {
		calls++
		return shade.RGB{R: float64(x) / 10, G: float64(y) / 10}
	})
	r := newTestRenderer(12, 12, s)
	r.DrawTriangle(v3(0, 0, 0), v3(10, 0, 0), v3(0, 10, 0))

	if calls != 66 {
		t.Errorf("shader calls = %d, want 66", calls)
	}
	if !isColor(r.FrameBuffer(), 3, 4, shade.RGB{R: 0.3, G: 0.4}) {
		r0, g0, b0 := r.FrameBuffer().At(3, 4)
		t.Errorf("pixel (3,4) = %d,%d,%d", r0, g0, b0)
	}
}
