package shade

import "fmt"

// Shader kinds accepted by New.
const (
	KindFlat    = "flat"
	KindBanded  = "banded"
	KindJupiter = "jupiter"
)

// Spec is the serializable form of a shader selection.
type Spec struct {
	Kind    string     `json:"kind"`
	Color   [3]float64 `json:"color,omitempty"` // flat: 0-1 channels
	Bands   []Band     `json:"bands,omitempty"`
	Span    float64    `json:"span,omitempty"`
	Stripes *Stripes   `json:"stripes,omitempty"`
	Falloff *Falloff   `json:"falloff,omitempty"`
}

// New builds the shader described by s. An empty kind means flat white.
func New(s Spec) (Shader, error) {
	switch s.Kind {
	case "", KindFlat:
		if s.Kind == "" && s.Color == ([3]float64{}) {
			return Flat{Color: White}, nil
		}
		return Flat{Color: RGB{s.Color[0], s.Color[1], s.Color[2]}}, nil
	case KindBanded:
		if len(s.Bands) == 0 {
			return nil, fmt.Errorf("shade: banded shader needs at least one band")
		}
		span := s.Span
		if span <= 0 {
			span = 60
		}
		if f := s.Falloff; f != nil {
			if f.Radius == 0 {
				return nil, fmt.Errorf("shade: falloff radius must be non-zero")
			}
			if f.Exponent == 0 {
				return nil, fmt.Errorf("shade: falloff exponent must be non-zero")
			}
		}
		return &Banded{Bands: s.Bands, Span: span, Stripes: s.Stripes, Falloff: s.Falloff}, nil
	case KindJupiter:
		return Jupiter(), nil
	default:
		return nil, fmt.Errorf("shade: unknown shader kind %q", s.Kind)
	}
}
