package state_test

import (
	"testing"

	"LocalSketch/internal/state"
	"LocalSketch/internal/surface"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(x0, y0, x1, y1 float64) *state.Stroke {
	s := state.NewStroke(state.Pt(x0, y0), 2, "black")
	s.Extend(state.Pt(x1, y1))
	return s
}

func TestDisplayListPaintOrder(t *testing.T) {
	dl := state.NewDisplayList()
	dl.CommitGlyph(state.NewGlyph("a", state.Pt(1, 1), 10))
	dl.CommitStroke(line(0, 0, 1, 1))
	dl.CommitGlyph(state.NewGlyph("b", state.Pt(2, 2), 10))
	dl.CommitStroke(line(2, 2, 3, 3))

	var kinds []string
	for d := range dl.Iterate() {
		switch e := d.(type) {
		case *state.Stroke:
			kinds = append(kinds, "stroke")
		case *state.Glyph:
			kinds = append(kinds, e.Label)
		}
	}
	assert.Equal(t, []string{"stroke", "stroke", "a", "b"}, kinds)
	assert.Equal(t, 4, dl.Len())
}

func TestDisplayListIterateRestartable(t *testing.T) {
	dl := state.NewDisplayList()
	dl.CommitStroke(line(0, 0, 1, 1))
	dl.CommitStroke(line(1, 1, 2, 2))

	count := func() int {
		n := 0
		for range dl.Iterate() {
			n++
		}
		return n
	}
	assert.Equal(t, 2, count())
	assert.Equal(t, 2, count())

	for range dl.Iterate() {
		break
	}
	assert.Equal(t, 2, dl.Len())
}

func TestDisplayListCommitFreezes(t *testing.T) {
	dl := state.NewDisplayList()
	s := line(0, 0, 1, 1)
	dl.CommitStroke(s)
	s.Extend(state.Pt(5, 5))
	assert.Equal(t, 2, dl.Strokes()[0].Len())
}

func TestDisplayListClear(t *testing.T) {
	dl := state.NewDisplayList()
	dl.Clear()
	assert.Equal(t, 0, dl.Len())

	dl.CommitStroke(line(0, 0, 1, 1))
	dl.CommitGlyph(state.NewGlyph("x", state.Pt(0, 0), 10))
	dl.Clear()
	assert.Equal(t, 0, dl.Len())
	assert.Empty(t, dl.Strokes())
	assert.Empty(t, dl.Glyphs())
}

func TestDisplayListSnapshotIsIndependent(t *testing.T) {
	dl := state.NewDisplayList()
	g := state.NewGlyph("x", state.Pt(1, 1), 10)
	dl.CommitStroke(line(0, 0, 1, 1))
	dl.CommitGlyph(g)

	snap := dl.Snapshot()
	g.Reposition(state.Pt(50, 50))
	dl.Clear()

	require.Equal(t, 2, snap.Len())
	assert.Equal(t, state.Pt(1, 1), snap.Glyphs()[0].At)
	assert.True(t, snap.Strokes()[0].Frozen())
}

func TestDisplayListPaint(t *testing.T) {
	dl := state.NewDisplayList()
	dl.CommitStroke(line(0, 0, 1, 1))
	dl.CommitStroke(state.NewStroke(state.Pt(9, 9), 2, "black"))

	rec := surface.NewRecorder()
	dl.Paint(rec)
	assert.Len(t, rec.Marks(), 1, "single-point stroke is invisible")
}
