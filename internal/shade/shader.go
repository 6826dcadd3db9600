// Package shade maps pixel coordinates to colors.
//
// A Shader is chosen once per mesh when the render is set up; the
// rasterizer calls it for every covered pixel and never inspects what kind
// of shader it is.
package shade

import "math"

// RGB is a linear color with channels nominally in [0,1].
type RGB struct {
	R, G, B float64
}

var (
	Black = RGB{}
	White = RGB{1, 1, 1}
)

// RGB255 builds a color from 0-255 channel values.
func RGB255(r, g, b float64) RGB {
	return RGB{r / 255, g / 255, b / 255}
}

// Scale multiplies every channel by k.
func (c RGB) Scale(k float64) RGB {
	return RGB{c.R * k, c.G * k, c.B * k}
}

// Lerp interpolates from c toward d. t is not clamped.
func (c RGB) Lerp(d RGB, t float64) RGB {
	return RGB{
		c.R + t*(d.R-c.R),
		c.G + t*(d.G-c.G),
		c.B + t*(d.B-c.B),
	}
}

// Bytes quantizes each channel with round(c*255), clamped to [0,255].
func (c RGB) Bytes() (r, g, b uint8) {
	return Quantize(c.R), Quantize(c.G), Quantize(c.B)
}

// Quantize converts one channel to a byte.
func Quantize(c float64) uint8 {
	v := math.Round(c * 255)
	if !(v > 0) { // also catches NaN
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Shader computes the color at screen pixel (x, y).
// Implementations must not depend on call order.
type Shader interface {
	Shade(x, y int) RGB
}

// ShaderFunc adapts a plain function to Shader.
type ShaderFunc func(x, y int) RGB

func (f ShaderFunc) Shade(x, y int) RGB { return f(x, y) }

// Flat paints every pixel the same color.
type Flat struct {
	Color RGB
}

func (f Flat) Shade(int, int) RGB { return f.Color }
