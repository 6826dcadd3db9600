package mathutil

// Vec2 is a 2-component screen-space point.
type Vec2 [2]float64

// Box is an axis-aligned rectangle, inclusive on both ends.
type Box struct {
	XMin, XMax float64
	YMin, YMax float64
}

// BoundingBox returns the smallest box containing every point.
// ok is false when no points are given.
func BoundingBox(pts ...Vec2) (b Box, ok bool) {
	if len(pts) == 0 {
		return Box{}, false
	}
	b = Box{XMin: pts[0][0], XMax: pts[0][0], YMin: pts[0][1], YMax: pts[0][1]}
	for _, p := range pts[1:] {
		if p[0] < b.XMin {
			b.XMin = p[0]
		}
		if p[0] > b.XMax {
			b.XMax = p[0]
		}
		if p[1] < b.YMin {
			b.YMin = p[1]
		}
		if p[1] > b.YMax {
			b.YMax = p[1]
		}
	}
	return b, true
}
