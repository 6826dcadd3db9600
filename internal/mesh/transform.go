package mesh

import "obj-bmp-renderer/internal/mathutil"

// Transform maps model coordinates to screen pixels: round(v*Scale + Translate).
type Transform struct {
	Translate mathutil.Vec3
	Scale     mathutil.Vec3
}

// Identity leaves coordinates unchanged apart from rounding.
func Identity() Transform {
	return Transform{Scale: mathutil.Vec3{1, 1, 1}}
}

// Apply transforms v and rounds half-to-even. Rounding happens after the
// affine step so sub-pixel model coordinates still land on the right pixel.
func (t Transform) Apply(v mathutil.Vec3) mathutil.Vec3 {
	return v.Mul(t.Scale).Add(t.Translate).RoundEven()
}
