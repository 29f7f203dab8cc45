package state

import (
	"image/color"
)

// Point is a position on the drawing surface, in surface pixels.
type Point struct{ X, Y float64 }

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Scale returns p with both coordinates multiplied by k.
func (p Point) Scale(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }

// Surface is a stateful painting target in the style of a 2D canvas context.
// Style setters persist until changed, so every Drawable sets the style it
// needs before painting.
type Surface interface {
	Clear()
	SetColor(c color.Color)
	SetLineWidth(w float64)
	SetFontSize(px float64)
	MoveTo(p Point)
	LineTo(p Point)
	Stroke()
	FillCircle(center Point, radius float64)
	FillText(text string, at Point)
}

// Drawable is anything that can paint itself onto a Surface.
type Drawable interface {
	Draw(s Surface)
}

var (
	_ Drawable = (*Stroke)(nil)
	_ Drawable = (*Glyph)(nil)
	_ Drawable = (*ToolPreview)(nil)
)

// Stroke is a freehand polyline. Thickness and color are fixed at creation.
type Stroke struct {
	ID        string
	Points    []Point
	Thickness float64
	ColorName string
	color     color.Color
	frozen    bool
}

// NewStroke starts a stroke at p.
func NewStroke(p Point, thickness float64, colorName string) *Stroke {
	return &Stroke{
		ID:        NewID(),
		Points:    []Point{p},
		Thickness: thickness,
		ColorName: colorName,
		color:     ParseColor(colorName),
	}
}

// Extend appends p. It does nothing once the stroke has been committed.
func (s *Stroke) Extend(p Point) {
	if s.frozen {
		return
	}
	s.Points = append(s.Points, p)
}

// Freeze stops the stroke from growing any further.
func (s *Stroke) Freeze() { s.frozen = true }

// Frozen reports whether the stroke has been committed.
func (s *Stroke) Frozen() bool { return s.frozen }

// Len returns the number of recorded points.
func (s *Stroke) Len() int { return len(s.Points) }

// Color returns the parsed stroke color.
func (s *Stroke) Color() color.Color { return s.color }

// Draw paints the polyline. Fewer than two points paint nothing.
func (s *Stroke) Draw(surf Surface) {
	if len(s.Points) < 2 {
		return
	}
	surf.SetColor(s.color)
	surf.SetLineWidth(s.Thickness)
	surf.MoveTo(s.Points[0])
	for _, p := range s.Points[1:] {
		surf.LineTo(p)
	}
	surf.Stroke()
}

func (s *Stroke) clone() *Stroke {
	c := *s
	c.Points = append([]Point(nil), s.Points...)
	return &c
}

// Glyph is a decorative label ("sticker") placed at a point.
type Glyph struct {
	ID    string
	At    Point
	Label string
	Size  float64
}

// GlyphInk is the color every glyph is painted with.
var GlyphInk color.Color = color.Black

// NewGlyph creates a glyph with the given label at p.
func NewGlyph(label string, p Point, size float64) *Glyph {
	return &Glyph{ID: NewID(), At: p, Label: label, Size: size}
}

// Reposition moves the glyph to p.
func (g *Glyph) Reposition(p Point) { g.At = p }

// Draw paints the label centered on the glyph's point.
func (g *Glyph) Draw(surf Surface) {
	surf.SetColor(GlyphInk)
	surf.SetFontSize(g.Size)
	surf.FillText(g.Label, g.At)
}

func (g *Glyph) clone() *Glyph {
	c := *g
	return &c
}

// ToolPreview is the cursor indicator of the current marker. It is never
// committed.
type ToolPreview struct {
	At        Point
	Thickness float64
	ColorName string
	color     color.Color
}

func NewToolPreview(p Point, thickness float64, colorName string) *ToolPreview {
	return &ToolPreview{
		At:        p,
		Thickness: thickness,
		ColorName: colorName,
		color:     ParseColor(colorName),
	}
}

// Draw fills a dot as wide as the marker.
func (t *ToolPreview) Draw(surf Surface) {
	surf.SetColor(t.color)
	surf.FillCircle(t.At, t.Thickness/2)
}
