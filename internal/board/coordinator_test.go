package board

import (
	"testing"

	"LocalSketch/internal/state"
	"LocalSketch/internal/surface"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attached(t *testing.T, policy Policy) (*Session, *surface.Recorder, *Coordinator) {
	t.Helper()
	opts := DefaultOptions()
	opts.Policy = policy
	s := NewSession(nil, opts)
	rec := surface.NewRecorder()
	c := NewCoordinator(s, rec)
	c.Attach(s.Bus())
	return s, rec, c
}

func kinds(ops []surface.Op) []surface.OpKind {
	out := make([]surface.OpKind, 0, len(ops))
	for _, op := range ops {
		out = append(out, op.Kind)
	}
	return out
}

func TestRedrawPaintOrder(t *testing.T) {
	s, rec, _ := attached(t, Policy{})
	s.SelectGlyph("g1")
	s.PointerDown(state.Pt(1, 1))
	s.PointerUp()
	s.PointerDown(state.Pt(0, 0))
	s.PointerMove(state.Pt(5, 5))
	s.PointerUp()
	s.PointerDown(state.Pt(10, 10))
	s.PointerMove(state.Pt(20, 20))

	// committed stroke, committed glyph, in-flight stroke on top
	assert.Equal(t, []surface.OpKind{surface.OpClear, surface.OpStroke, surface.OpText, surface.OpStroke}, kinds(rec.Ops))
	assert.Equal(t, state.Pt(20, 20), rec.Ops[3].Points[1])
}

func TestRedrawIsIdempotent(t *testing.T) {
	s, rec, c := attached(t, Policy{})
	s.SelectTool(5, "red")
	s.PointerDown(state.Pt(0, 0))
	s.PointerMove(state.Pt(3, 4))
	s.PointerUp()
	s.PointerMove(state.Pt(9, 9))

	c.Redraw(OverlayMoved)
	first := rec.Dump()
	c.Redraw(OverlayMoved)
	assert.Equal(t, first, rec.Dump())
}

func TestPreviewOnlyOnOverlayMoved(t *testing.T) {
	s, rec, c := attached(t, Policy{})
	s.PointerMove(state.Pt(4, 4))
	assert.Equal(t, []surface.OpKind{surface.OpClear, surface.OpCircle}, kinds(rec.Ops))

	c.Redraw(ContentChanged)
	assert.Equal(t, []surface.OpKind{surface.OpClear}, kinds(rec.Ops))
}

func TestPreviewHiddenWhileGlyphArmed(t *testing.T) {
	s, rec, c := attached(t, Policy{})
	s.PointerMove(state.Pt(4, 4))
	s.SelectGlyph("⭐")
	s.PointerMove(state.Pt(6, 6))

	marks := rec.Marks()
	require.Len(t, marks, 1)
	assert.Equal(t, surface.OpText, marks[0].Kind)
	assert.Equal(t, state.Pt(6, 6), marks[0].Points[0])

	c.Redraw(OverlayMoved)
	assert.Len(t, rec.Marks(), 1)
}

func TestSinglePointStrokeInvisibleOnRedraw(t *testing.T) {
	s, rec, _ := attached(t, Policy{})
	s.PointerDown(state.Pt(10, 10))
	s.PointerUp()
	assert.Equal(t, 1, s.List().Len())
	assert.Empty(t, rec.Marks())
}

func TestEntitiesDoNotLeakStyle(t *testing.T) {
	s, rec, _ := attached(t, Policy{})
	s.SelectTool(12, "red")
	s.PointerDown(state.Pt(0, 0))
	s.PointerMove(state.Pt(1, 1))
	s.PointerUp()
	s.SelectTool(1, "blue")
	s.PointerDown(state.Pt(2, 2))
	s.PointerMove(state.Pt(3, 3))
	s.PointerUp()

	marks := rec.Marks()
	require.Len(t, marks, 2)
	assert.Equal(t, 12.0, marks[0].Width)
	assert.Equal(t, state.ParseColor("red"), marks[0].Color)
	assert.Equal(t, 1.0, marks[1].Width)
	assert.Equal(t, state.ParseColor("blue"), marks[1].Color)
}

func TestOnFrameAndCancel(t *testing.T) {
	s := NewSession(nil, DefaultOptions())
	c := NewCoordinator(s, surface.NewRecorder())
	var frames []Signal
	c.OnFrame(func(sig Signal) { frames = append(frames, sig) })
	cancel := c.Attach(s.Bus())

	s.PointerMove(state.Pt(1, 1))
	s.PointerDown(state.Pt(1, 1))
	assert.Equal(t, []Signal{OverlayMoved, ContentChanged}, frames)
	assert.Equal(t, 2, c.Frames())

	cancel()
	s.PointerUp()
	assert.Len(t, frames, 2)
}

func TestBusOrderAndCancel(t *testing.T) {
	bus := NewBus()
	var order []string
	cancelA := bus.Subscribe(func(Signal) { order = append(order, "a") })
	bus.Subscribe(func(Signal) { order = append(order, "b") })

	bus.Emit(ContentChanged)
	cancelA()
	cancelA()
	bus.Emit(OverlayMoved)
	assert.Equal(t, []string{"a", "b", "b"}, order)
}
