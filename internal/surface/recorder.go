// Package surface provides the painting targets the engine draws onto: an
// in-memory recorder, an RGBA raster and a scaling wrapper.
package surface

import (
	"fmt"
	"image/color"
	"strings"

	"LocalSketch/internal/state"
)

// OpKind identifies a recorded paint operation.
type OpKind string

const (
	OpClear  OpKind = "clear"
	OpStroke OpKind = "stroke"
	OpCircle OpKind = "circle"
	OpText   OpKind = "text"
)

// Op is one paint operation together with the style in effect when it ran.
type Op struct {
	Kind     OpKind
	Color    color.Color
	Width    float64
	FontSize float64
	Points   []state.Point
	Radius   float64
	Text     string
}

func (op Op) String() string {
	switch op.Kind {
	case OpStroke:
		var sb strings.Builder
		for i, p := range op.Points {
			if i > 0 {
				sb.WriteString("->")
			}
			fmt.Fprintf(&sb, "(%g,%g)", p.X, p.Y)
		}
		return fmt.Sprintf("stroke %s w=%g c=%v", sb.String(), op.Width, op.Color)
	case OpCircle:
		return fmt.Sprintf("circle (%g,%g) r=%g c=%v", op.Points[0].X, op.Points[0].Y, op.Radius, op.Color)
	case OpText:
		return fmt.Sprintf("text %q (%g,%g) size=%g c=%v", op.Text, op.Points[0].X, op.Points[0].Y, op.FontSize, op.Color)
	default:
		return string(op.Kind)
	}
}

// Recorder is a Surface that remembers what was painted instead of
// rasterizing it.
type Recorder struct {
	Ops []Op

	color    color.Color
	width    float64
	fontSize float64
	path     [][]state.Point
}

var _ state.Surface = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{color: color.Black, width: 1, fontSize: 10}
}

// Clear forgets earlier operations, like wiping a canvas.
func (r *Recorder) Clear() {
	r.Ops = []Op{{Kind: OpClear}}
	r.path = nil
}

func (r *Recorder) SetColor(c color.Color) { r.color = c }
func (r *Recorder) SetLineWidth(w float64) { r.width = w }
func (r *Recorder) SetFontSize(px float64) { r.fontSize = px }

func (r *Recorder) MoveTo(p state.Point) {
	r.path = append(r.path, []state.Point{p})
}

func (r *Recorder) LineTo(p state.Point) {
	if len(r.path) == 0 {
		r.MoveTo(p)
		return
	}
	last := len(r.path) - 1
	r.path[last] = append(r.path[last], p)
}

func (r *Recorder) Stroke() {
	for _, sub := range r.path {
		if len(sub) < 2 {
			continue
		}
		r.Ops = append(r.Ops, Op{Kind: OpStroke, Color: r.color, Width: r.width, Points: sub})
	}
	r.path = nil
}

func (r *Recorder) FillCircle(center state.Point, radius float64) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, Color: r.color, Points: []state.Point{center}, Radius: radius})
}

func (r *Recorder) FillText(text string, at state.Point) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Color: r.color, FontSize: r.fontSize, Points: []state.Point{at}, Text: text})
}

// Marks returns every recorded operation except clears.
func (r *Recorder) Marks() []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind != OpClear {
			out = append(out, op)
		}
	}
	return out
}

// Dump renders the recording one operation per line.
func (r *Recorder) Dump() string {
	var sb strings.Builder
	for _, op := range r.Ops {
		sb.WriteString(op.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
