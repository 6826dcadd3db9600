package shade

import "math"

// Band is a horizontal strip [YMin, YMax] (inclusive) whose color blends
// from From toward To by |y-Pivot|/Span. Colors are on the 0-255 scale.
type Band struct {
	YMin  int        `json:"y_min"`
	YMax  int        `json:"y_max"`
	Pivot int        `json:"pivot"`
	From  [3]float64 `json:"from"`
	To    [3]float64 `json:"to"`
}

// Stripes darkens rows where y mod Period < Width by Factor.
type Stripes struct {
	Period int     `json:"period"`
	Width  int     `json:"width"`
	Factor float64 `json:"factor"`
}

// Falloff dims pixels by distance from (CX, CY):
//
//	i = 1 - (((floor(dist)+Offset)/Radius) * Attenuation)^Exponent
//
// Pixels with i <= 0 are black.
type Falloff struct {
	CX          int     `json:"cx"`
	CY          int     `json:"cy"`
	Offset      float64 `json:"offset"`
	Radius      float64 `json:"radius"`
	Attenuation float64 `json:"attenuation"`
	Exponent    float64 `json:"exponent"`
}

// Intensity returns the falloff factor at (x, y).
func (f *Falloff) Intensity(x, y int) float64 {
	dx, dy := float64(x-f.CX), float64(y-f.CY)
	r := math.Floor(math.Sqrt(dx*dx + dy*dy))
	return 1 - math.Pow((r+f.Offset)/f.Radius*f.Attenuation, f.Exponent)
}

// Banded is a gradient shader made of horizontal bands, optional stripes
// and an optional radial falloff. Rows outside every band are black.
type Banded struct {
	Bands   []Band
	Span    float64
	Stripes *Stripes
	Falloff *Falloff
}

func (s *Banded) Shade(x, y int) RGB {
	var c RGB
	for i := range s.Bands {
		b := &s.Bands[i]
		if y < b.YMin || y > b.YMax {
			continue
		}
		t := math.Abs(float64(y-b.Pivot)) / s.Span
		from := RGB255(b.From[0], b.From[1], b.From[2])
		to := RGB255(b.To[0], b.To[1], b.To[2])
		c = from.Lerp(to, t)
		break
	}

	if st := s.Stripes; st != nil && st.Period > 0 && mod(y, st.Period) < st.Width {
		c = c.Scale(st.Factor)
	}

	if s.Falloff != nil {
		i := s.Falloff.Intensity(x, y)
		if i <= 0 {
			return Black
		}
		c = c.Scale(i)
	}
	return c
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// Jupiter returns the banded gas-giant look used for the sphere scene:
// warm bands between rows 270 and 550, 14-pixel darker stripes every 40
// rows, and a soft falloff centred up-left of the disc.
func Jupiter() *Banded {
	cream := [3]float64{232, 205, 146}
	tan := [3]float64{180, 155, 125}
	grey := [3]float64{174, 162, 166}
	return &Banded{
		Span: 60,
		Bands: []Band{
			{YMin: 270, YMax: 310, Pivot: 310, From: cream, To: tan},
			{YMin: 311, YMax: 335, Pivot: 360, From: grey, To: cream},
			{YMin: 336, YMax: 360, Pivot: 360, From: tan, To: grey},
			{YMin: 361, YMax: 384, Pivot: 410, From: cream, To: grey},
			{YMin: 385, YMax: 435, Pivot: 410, From: [3]float64{180, 150, 120}, To: cream},
			{YMin: 436, YMax: 459, Pivot: 410, From: cream, To: grey},
			{YMin: 460, YMax: 484, Pivot: 460, From: tan, To: grey},
			{YMin: 485, YMax: 509, Pivot: 460, From: grey, To: cream},
			{YMin: 510, YMax: 550, Pivot: 520, From: cream, To: tan},
		},
		Stripes: &Stripes{Period: 40, Width: 14, Factor: 0.98},
		Falloff: &Falloff{CX: 120, CY: 390, Offset: 50, Radius: 400, Attenuation: 0.95, Exponent: 4},
	}
}
