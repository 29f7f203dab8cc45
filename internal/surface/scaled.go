package surface

import (
	"image/color"

	"LocalSketch/internal/state"
)

// Scaled multiplies every coordinate and size by K before forwarding to the
// wrapped surface.
type Scaled struct {
	state.Surface
	K float64
}

var _ state.Surface = Scaled{}

func Scale(s state.Surface, k float64) Scaled { return Scaled{Surface: s, K: k} }

func (s Scaled) SetColor(c color.Color)  { s.Surface.SetColor(c) }
func (s Scaled) SetLineWidth(w float64) { s.Surface.SetLineWidth(w * s.K) }
func (s Scaled) SetFontSize(px float64) { s.Surface.SetFontSize(px * s.K) }
func (s Scaled) MoveTo(p state.Point)   { s.Surface.MoveTo(p.Scale(s.K)) }
func (s Scaled) LineTo(p state.Point)   { s.Surface.LineTo(p.Scale(s.K)) }

func (s Scaled) FillCircle(center state.Point, radius float64) {
	s.Surface.FillCircle(center.Scale(s.K), radius*s.K)
}

func (s Scaled) FillText(text string, at state.Point) {
	s.Surface.FillText(text, at.Scale(s.K))
}
