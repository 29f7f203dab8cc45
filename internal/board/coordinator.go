package board

import (
	"LocalSketch/internal/state"
)

// Model is the read-only view of a session the coordinator paints from.
type Model interface {
	List() *state.DisplayList
	InFlight() state.Drawable
	Preview() *state.ToolPreview
	GlyphArmed() bool
}

// Coordinator repaints a surface from a model whenever it is signalled.
// Every frame starts from a cleared surface, so repainting is idempotent.
type Coordinator struct {
	model   Model
	surface state.Surface
	frames  []func(Signal)
	count   int
}

func NewCoordinator(m Model, s state.Surface) *Coordinator {
	return &Coordinator{model: m, surface: s}
}

// Attach subscribes the coordinator to bus.
func (c *Coordinator) Attach(bus *Bus) (cancel func()) {
	return bus.Subscribe(c.Redraw)
}

// OnFrame registers fn to run after every repaint.
func (c *Coordinator) OnFrame(fn func(Signal)) {
	c.frames = append(c.frames, fn)
}

// Frames returns how many repaints have run.
func (c *Coordinator) Frames() int { return c.count }

// Redraw repaints the whole surface: committed strokes, committed glyphs,
// the in-flight entity, then for OverlayMoved the tool preview unless a glyph
// is armed.
func (c *Coordinator) Redraw(sig Signal) {
	c.surface.Clear()
	c.model.List().Paint(c.surface)
	if d := c.model.InFlight(); d != nil {
		d.Draw(c.surface)
	}
	if sig == OverlayMoved && !c.model.GlyphArmed() {
		if p := c.model.Preview(); p != nil {
			p.Draw(c.surface)
		}
	}
	c.count++
	for _, fn := range c.frames {
		fn(sig)
	}
}
