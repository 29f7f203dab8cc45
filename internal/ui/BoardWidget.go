package ui

import (
	"fmt"
	"io"
	"log"

	"LocalSketch/internal/board"
	"LocalSketch/internal/config"
	"LocalSketch/internal/export"
	"LocalSketch/internal/state"
	"LocalSketch/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget shows a session's raster frame and feeds it pointer input.
type BoardWidget struct {
	widget.BaseWidget
	cfg       config.Config
	session   *board.Session
	coord     *board.Coordinator
	raster    *surface.Raster
	image     *canvas.Image
	statusBar *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(cfg config.Config) *BoardWidget {
	b := &BoardWidget{
		cfg:       cfg,
		session:   board.NewSession(nil, cfg.SessionOptions()),
		raster:    surface.NewRaster(cfg.Canvas.Width, cfg.Canvas.Height, state.ParseColor(cfg.Canvas.Background)),
		statusBar: widget.NewLabel("Ready"),
	}
	b.image = canvas.NewImageFromImage(b.raster.Image())
	b.image.FillMode = canvas.ImageFillOriginal
	b.image.ScaleMode = canvas.ImageScalePixels
	b.image.SetMinSize(fyne.NewSize(float32(cfg.Canvas.Width), float32(cfg.Canvas.Height)))

	b.coord = board.NewCoordinator(b.session, b.raster)
	b.coord.Attach(b.session.Bus())
	b.coord.OnFrame(func(board.Signal) { b.image.Refresh() })
	b.coord.Redraw(board.ContentChanged)

	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Session() *board.Session { return b.session }
func (b *BoardWidget) StatusBar() *widget.Label { return b.statusBar }

func (b *BoardWidget) SetStatus(text string) {
	fyne.Do(func() { b.statusBar.SetText(text) })
}

// SelectTool picks the marker for the next strokes.
func (b *BoardWidget) SelectTool(thickness float64, color string) {
	b.session.SelectTool(thickness, color)
}

// SelectGlyph arms a sticker. Empty tokens and tokens the label font cannot
// draw are ignored.
func (b *BoardWidget) SelectGlyph(token string) {
	if !surface.CanRender(token) {
		b.SetStatus(fmt.Sprintf("Cannot draw sticker %q", token))
		return
	}
	b.session.SelectGlyph(token)
}

func (b *BoardWidget) ClearBoard() {
	b.session.Clear()
	b.SetStatus("Cleared")
}

// ExportTo writes the committed drawing as PNG at the configured export size.
func (b *BoardWidget) ExportTo(w io.Writer) error {
	e := b.cfg.Export
	return export.WritePNG(w, b.session.List().Snapshot(), e.Scale, e.Width, e.Height, state.ParseColor(b.cfg.Canvas.Background))
}

// SaveToFile exports to a writer from the file-save dialog.
func (b *BoardWidget) SaveToFile(writer fyne.URIWriteCloser) {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("Error closing writer: %v", err)
		}
	}()

	if err := b.ExportTo(writer); err != nil {
		log.Printf("SaveToFile: %v", err)
		b.SetStatus("Export failed")
		return
	}
	b.SetStatus(fmt.Sprintf("Exported %d items to %s", b.session.List().Len(), writer.URI().Name()))
}

func toPoint(p fyne.Position) state.Point {
	return state.Pt(float64(p.X), float64(p.Y))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.session.PointerDown(toPoint(e.Position))
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.session.PointerUp()
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.session.PointerMove(toPoint(e.Position))
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.session.PointerMove(toPoint(e.Position))
}

func (b *BoardWidget) MouseOut() {
	b.session.PointerLeave()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) DragEnd()                    {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.image)
}
