package state_test

import (
	"image/color"
	"testing"

	"LocalSketch/internal/state"
	"LocalSketch/internal/surface"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrokeExtendAndFreeze(t *testing.T) {
	s := state.NewStroke(state.Pt(1, 1), 3, "red")
	s.Extend(state.Pt(2, 2))
	assert.Equal(t, 2, s.Len())

	s.Freeze()
	s.Extend(state.Pt(3, 3))
	assert.Equal(t, 2, s.Len(), "frozen stroke must not grow")
	assert.True(t, s.Frozen())
}

func TestShortStrokePaintsNothing(t *testing.T) {
	rec := surface.NewRecorder()
	state.NewStroke(state.Pt(10, 10), 4, "black").Draw(rec)
	assert.Empty(t, rec.Marks())
}

func TestStrokeDrawUsesOwnStyle(t *testing.T) {
	rec := surface.NewRecorder()
	rec.SetLineWidth(99)
	rec.SetColor(color.White)

	s := state.NewStroke(state.Pt(0, 0), 3, "#00ff00")
	s.Extend(state.Pt(5, 5))
	s.Draw(rec)

	marks := rec.Marks()
	require.Len(t, marks, 1)
	assert.Equal(t, surface.OpStroke, marks[0].Kind)
	assert.Equal(t, 3.0, marks[0].Width)
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, marks[0].Color)
	assert.Equal(t, []state.Point{{0, 0}, {5, 5}}, marks[0].Points)
}

func TestGlyphReposition(t *testing.T) {
	g := state.NewGlyph("⭐", state.Pt(1, 1), 24)
	g.Reposition(state.Pt(7, 8))
	g.Reposition(state.Pt(9, 10))

	rec := surface.NewRecorder()
	rec.SetFontSize(3)
	rec.SetColor(color.White)
	g.Draw(rec)

	marks := rec.Marks()
	require.Len(t, marks, 1)
	assert.Equal(t, "⭐", marks[0].Text)
	assert.Equal(t, 24.0, marks[0].FontSize)
	assert.Equal(t, state.Pt(9, 10), marks[0].Points[0])
	assert.Equal(t, state.GlyphInk, marks[0].Color)
}

func TestToolPreviewDraw(t *testing.T) {
	rec := surface.NewRecorder()
	state.NewToolPreview(state.Pt(4, 4), 10, "blue").Draw(rec)

	marks := rec.Marks()
	require.Len(t, marks, 1)
	assert.Equal(t, surface.OpCircle, marks[0].Kind)
	assert.Equal(t, 5.0, marks[0].Radius)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		token string
		want  color.Color
	}{
		{"#ff0000", color.NRGBA{R: 255, A: 255}},
		{"#0F0", color.NRGBA{G: 255, A: 255}},
		{"#0000ff80", color.NRGBA{B: 255, A: 128}},
		{"red", color.RGBA{R: 255, A: 255}},
		{" Blue ", color.RGBA{B: 255, A: 255}},
		{"nonsense", color.Black},
		{"#12", color.Black},
		{"#zzzzzz", color.Black},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, state.ParseColor(tt.token))
		})
	}
}
