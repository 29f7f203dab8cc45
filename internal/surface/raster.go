package surface

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"sync"

	"LocalSketch/internal/state"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

var labelFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// CanRender reports whether every rune of label has an outline in the label
// font. Runes without one would all paint as the same missing-glyph box.
func CanRender(label string) bool {
	f, err := labelFont()
	if err != nil || label == "" {
		return false
	}
	var buf sfnt.Buffer
	for _, r := range label {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil || idx == 0 {
			return false
		}
	}
	return true
}

// Raster paints onto an RGBA image. Lines and dots go through rasterx, labels
// through x/image/font.
type Raster struct {
	img        *image.RGBA
	background color.Color

	color    color.Color
	width    float64
	fontSize float64
	path     [][]state.Point
	faces    map[float64]font.Face
}

var _ state.Surface = (*Raster)(nil)

// NewRaster allocates a w x h image filled with background.
func NewRaster(w, h int, background color.Color) *Raster {
	r := &Raster{
		img:        image.NewRGBA(image.Rect(0, 0, w, h)),
		background: background,
		color:      color.Black,
		width:      1,
		fontSize:   10,
		faces:      make(map[float64]font.Face),
	}
	r.Clear()
	return r
}

// Image returns the backing image. It is repainted in place.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
	r.path = nil
}

func (r *Raster) SetColor(c color.Color) { r.color = c }
func (r *Raster) SetLineWidth(w float64) { r.width = w }
func (r *Raster) SetFontSize(px float64) { r.fontSize = px }

func (r *Raster) MoveTo(p state.Point) {
	r.path = append(r.path, []state.Point{p})
}

func (r *Raster) LineTo(p state.Point) {
	if len(r.path) == 0 {
		r.MoveTo(p)
		return
	}
	last := len(r.path) - 1
	r.path[last] = append(r.path[last], p)
}

// Stroke draws the pending path with round caps and joins and then drops it.
func (r *Raster) Stroke() {
	defer func() { r.path = nil }()
	if r.width <= 0 {
		return
	}
	bounds := r.img.Bounds()
	for _, sub := range r.path {
		if len(sub) < 2 {
			continue
		}
		scanner := rasterx.NewScannerGV(bounds.Dx(), bounds.Dy(), r.img, bounds)
		dasher := rasterx.NewDasher(bounds.Dx(), bounds.Dy(), scanner)
		dasher.SetStroke(fixed.Int26_6(r.width*64), 4<<6, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round, nil, 0)
		dasher.SetColor(r.color)
		dasher.Start(rasterx.ToFixedP(sub[0].X, sub[0].Y))
		for _, p := range sub[1:] {
			dasher.Line(rasterx.ToFixedP(p.X, p.Y))
		}
		dasher.Stop(false)
		dasher.Draw()
	}
}

func (r *Raster) FillCircle(center state.Point, radius float64) {
	if radius <= 0 {
		return
	}
	bounds := r.img.Bounds()
	scanner := rasterx.NewScannerGV(bounds.Dx(), bounds.Dy(), r.img, bounds)
	filler := rasterx.NewFiller(bounds.Dx(), bounds.Dy(), scanner)
	filler.SetColor(r.color)
	rasterx.AddCircle(center.X, center.Y, radius, filler)
	filler.Draw()
}

// FillText draws text centered on at.
func (r *Raster) FillText(text string, at state.Point) {
	face := r.face(r.fontSize)
	if face == nil || text == "" {
		return
	}
	d := &font.Drawer{Dst: r.img, Src: image.NewUniform(r.color), Face: face}
	m := face.Metrics()
	advance := d.MeasureString(text)
	x := fixed.Int26_6(at.X*64) - advance/2
	y := fixed.Int26_6(at.Y*64) + (m.Ascent-m.Descent)/2
	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(text)
}

func (r *Raster) face(size float64) font.Face {
	if size <= 0 {
		return nil
	}
	if f, ok := r.faces[size]; ok {
		return f
	}
	f, err := labelFont()
	if err != nil {
		log.Printf("[RASTER] Failed to parse label font: %v", err)
		return nil
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		log.Printf("[RASTER] Failed to create %gpx face: %v", size, err)
		return nil
	}
	r.faces[size] = face
	return face
}
