package ui

import (
	"image/color"

	"LocalSketch/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Token    string
	OnTapped func(token string)
}

func newColorSwatch(token string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Token: token, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(state.ParseColor(s.Token))
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Token)
	}
}

// toolState remembers the marker picked in the toolbar so the thin/thick
// buttons and the swatches can be combined.
type toolState struct {
	board     *BoardWidget
	thickness float64
	color     string
}

func (ts *toolState) apply() { ts.board.SelectTool(ts.thickness, ts.color) }

// NewToolbar builds the marker, sticker, clear and export controls.
func NewToolbar(board *BoardWidget, win fyne.Window) fyne.CanvasObject {
	cfg := board.cfg
	ts := &toolState{board: board, thickness: cfg.Marker.Thin, color: cfg.Marker.Color}

	slider := widget.NewSlider(1, 50)
	slider.SetValue(cfg.Marker.Thin)
	slider.OnChanged = func(val float64) {
		ts.thickness = val
		ts.apply()
	}
	setThickness := func(v float64) func() {
		return func() {
			ts.thickness = v
			slider.SetValue(v)
			ts.apply()
		}
	}

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), setThickness(cfg.Marker.Thin)),
		widget.NewToolbarAction(theme.ContentAddIcon(), setThickness(cfg.Marker.Thick)),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentClearIcon(), board.ClearBoard),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			dialog.ShowFileSave(func(w fyne.URIWriteCloser, err error) {
				if err != nil {
					dialog.ShowError(err, win)
					return
				}
				if w == nil {
					return
				}
				board.SaveToFile(w)
			}, win)
		}),
	)

	swatches := container.NewHBox()
	for _, ink := range cfg.Marker.Inks {
		swatches.Add(newColorSwatch(ink, func(token string) {
			ts.color = token
			ts.apply()
		}))
	}

	stickers := container.NewHBox()
	for _, g := range cfg.Glyphs.Palette {
		stickers.Add(widget.NewButton(g, func() { board.SelectGlyph(g) }))
	}

	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), slider)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		swatches,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widget.NewSeparator(),
		widget.NewLabel("Stickers:"),
		stickers,
		layout.NewSpacer(),
	)
}
