package state

import (
	"iter"
)

// DisplayList holds the committed drawables. Strokes paint first, then glyphs,
// each in commit order.
type DisplayList struct {
	strokes []*Stroke
	glyphs  []*Glyph
}

func NewDisplayList() *DisplayList {
	return &DisplayList{}
}

// CommitStroke freezes s and appends it.
func (dl *DisplayList) CommitStroke(s *Stroke) {
	if s == nil {
		return
	}
	s.Freeze()
	dl.strokes = append(dl.strokes, s)
}

// CommitGlyph appends g.
func (dl *DisplayList) CommitGlyph(g *Glyph) {
	if g == nil {
		return
	}
	dl.glyphs = append(dl.glyphs, g)
}

// Clear drops every committed entity. There is no way back.
func (dl *DisplayList) Clear() {
	dl.strokes = nil
	dl.glyphs = nil
}

// Len returns the number of committed entities.
func (dl *DisplayList) Len() int { return len(dl.strokes) + len(dl.glyphs) }

// Strokes returns the committed strokes in commit order.
func (dl *DisplayList) Strokes() []*Stroke {
	return append([]*Stroke(nil), dl.strokes...)
}

// Glyphs returns the committed glyphs in commit order.
func (dl *DisplayList) Glyphs() []*Glyph {
	return append([]*Glyph(nil), dl.glyphs...)
}

// Iterate yields the entities in paint order. Every call starts over and
// nothing is mutated.
func (dl *DisplayList) Iterate() iter.Seq[Drawable] {
	return func(yield func(Drawable) bool) {
		for _, s := range dl.strokes {
			if !yield(s) {
				return
			}
		}
		for _, g := range dl.glyphs {
			if !yield(g) {
				return
			}
		}
	}
}

// Snapshot copies the list by value so it can be read off the event path.
func (dl *DisplayList) Snapshot() *DisplayList {
	out := &DisplayList{
		strokes: make([]*Stroke, 0, len(dl.strokes)),
		glyphs:  make([]*Glyph, 0, len(dl.glyphs)),
	}
	for _, s := range dl.strokes {
		out.strokes = append(out.strokes, s.clone())
	}
	for _, g := range dl.glyphs {
		out.glyphs = append(out.glyphs, g.clone())
	}
	return out
}

// Paint replays every committed entity onto s without clearing it first.
func (dl *DisplayList) Paint(s Surface) {
	for d := range dl.Iterate() {
		d.Draw(s)
	}
}
