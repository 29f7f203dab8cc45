package ui

import (
	"bytes"
	"image/png"
	"testing"

	"LocalSketch/internal/board"
	"LocalSketch/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mouse(x, y float32, button desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     button,
	}
}

func drag(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func newTestBoard(t *testing.T) *BoardWidget {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	cfg := config.Default()
	cfg.Canvas.Width, cfg.Canvas.Height = 64, 64
	cfg.Export.Scale, cfg.Export.Width, cfg.Export.Height = 2, 128, 128
	return NewBoardWidget(cfg)
}

func TestBoardWidgetDrawsStroke(t *testing.T) {
	b := newTestBoard(t)
	b.SelectTool(6, "black")

	b.MouseDown(mouse(10, 32, desktop.MouseButtonPrimary))
	assert.Equal(t, board.Drawing, b.Session().Mode())
	b.Dragged(drag(30, 32))
	b.Dragged(drag(50, 32))
	b.MouseUp(mouse(50, 32, desktop.MouseButtonPrimary))

	assert.Equal(t, board.Idle, b.Session().Mode())
	require.Len(t, b.Session().List().Strokes(), 1)
	assert.Equal(t, 3, b.Session().List().Strokes()[0].Len())

	px := b.raster.Image().RGBAAt(30, 32)
	assert.Less(t, px.R, uint8(64), "frame shows the stroke")
}

func TestBoardWidgetIgnoresSecondaryButton(t *testing.T) {
	b := newTestBoard(t)
	b.MouseDown(mouse(1, 1, desktop.MouseButtonSecondary))
	assert.Equal(t, board.Idle, b.Session().Mode())
}

func TestBoardWidgetHoverAndLeave(t *testing.T) {
	b := newTestBoard(t)
	b.MouseMoved(mouse(5, 5, 0))
	require.NotNil(t, b.Session().Preview())

	b.MouseDown(mouse(5, 5, desktop.MouseButtonPrimary))
	b.Dragged(drag(9, 9))
	b.MouseOut()
	assert.Equal(t, board.Idle, b.Session().Mode())
	assert.Equal(t, 1, b.Session().List().Len())
}

func TestBoardWidgetPlacesSticker(t *testing.T) {
	b := newTestBoard(t)
	b.SelectGlyph("")
	assert.Equal(t, board.Idle, b.Session().Mode(), "empty token never reaches the session")

	b.SelectGlyph("🎈")
	assert.Equal(t, board.Idle, b.Session().Mode(), "undrawable token never reaches the session")

	b.SelectGlyph("♥")
	b.MouseDown(mouse(5, 5, desktop.MouseButtonPrimary))
	b.Dragged(drag(6, 6))
	b.MouseUp(mouse(6, 6, desktop.MouseButtonPrimary))

	glyphs := b.Session().List().Glyphs()
	require.Len(t, glyphs, 1)
	assert.Equal(t, 6.0, glyphs[0].At.X)
}

func TestBoardWidgetExportAndClear(t *testing.T) {
	b := newTestBoard(t)
	b.MouseDown(mouse(0, 0, desktop.MouseButtonPrimary))
	b.Dragged(drag(20, 20))
	b.MouseUp(mouse(20, 20, desktop.MouseButtonPrimary))

	var buf bytes.Buffer
	require.NoError(t, b.ExportTo(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())

	b.ClearBoard()
	assert.Equal(t, 0, b.Session().List().Len())
	assert.Equal(t, board.Idle, b.Session().Mode())
}

func TestBoardWidgetRenders(t *testing.T) {
	b := newTestBoard(t)
	w := test.NewWindow(b)
	defer w.Close()
	assert.Equal(t, float32(64), b.MinSize().Width)
}
