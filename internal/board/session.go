// Package board holds the interaction state machine of a drawing session and
// the coordinator that repaints it.
package board

import (
	"log"

	"LocalSketch/internal/export"
	"LocalSketch/internal/state"
)

// Mode is the pointer interaction state.
type Mode int

const (
	Idle Mode = iota
	ArmedGlyph
	Drawing
	PlacingGlyph
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case ArmedGlyph:
		return "armed-glyph"
	case Drawing:
		return "drawing"
	case PlacingGlyph:
		return "placing-glyph"
	default:
		return "unknown"
	}
}

// OffSurface is where an armed glyph waits before the pointer reaches it.
var OffSurface = state.Pt(-1000, -1000)

// Tool is the marker used for strokes started from now on.
type Tool struct {
	Thickness float64
	Color     string
}

// Policy settles the behaviors that are a matter of taste.
type Policy struct {
	// KeepGlyphArmed re-arms the same glyph after each placement.
	KeepGlyphArmed bool
	// DiscardOnLeave drops a half-drawn stroke or unplaced glyph when the
	// pointer leaves the surface instead of committing it.
	DiscardOnLeave bool
}

type Options struct {
	Tool       Tool
	GlyphSize  float64
	Policy     Policy
	Background string
	Verbose    bool
}

func DefaultOptions() Options {
	return Options{
		Tool:       Tool{Thickness: 2, Color: "black"},
		GlyphSize:  32,
		Background: "white",
	}
}

// Session owns the display list and whatever is being drawn or placed. It
// is driven by one goroutine; calls must not overlap.
type Session struct {
	ID string

	opts    Options
	bus     *Bus
	mode    Mode
	tool    Tool
	list    *state.DisplayList
	stroke  *state.Stroke
	glyph   *state.Glyph
	preview *state.ToolPreview
}

var _ Model = (*Session)(nil)

// NewSession starts an empty session. A nil bus gets a private one.
func NewSession(bus *Bus, opts Options) *Session {
	if bus == nil {
		bus = NewBus()
	}
	if !(opts.Tool.Thickness > 0) {
		opts.Tool.Thickness = 1
	}
	if opts.GlyphSize <= 0 {
		opts.GlyphSize = DefaultOptions().GlyphSize
	}
	s := &Session{
		ID:   state.NewID(),
		opts: opts,
		bus:  bus,
		tool: opts.Tool,
		list: state.NewDisplayList(),
	}
	if opts.Verbose {
		log.Printf("[SESSION] %s started", s.ID)
	}
	return s
}

func (s *Session) Bus() *Bus                   { return s.bus }
func (s *Session) Mode() Mode                  { return s.mode }
func (s *Session) Tool() Tool                  { return s.tool }
func (s *Session) List() *state.DisplayList    { return s.list }
func (s *Session) Preview() *state.ToolPreview { return s.preview }
func (s *Session) Policy() Policy              { return s.opts.Policy }

// GlyphArmed reports whether a glyph template is armed or being placed.
func (s *Session) GlyphArmed() bool { return s.glyph != nil }

// InFlight returns the uncommitted entity that paints on top, or nil.
func (s *Session) InFlight() state.Drawable {
	switch s.mode {
	case Drawing:
		if s.stroke != nil {
			return s.stroke
		}
	case ArmedGlyph, PlacingGlyph:
		if s.glyph != nil {
			return s.glyph
		}
	}
	return nil
}

// SelectTool sets the marker for strokes started after this call. A stroke
// in progress keeps its own thickness and color. An armed glyph is
// disarmed.
func (s *Session) SelectTool(thickness float64, color string) {
	if !(thickness > 0) {
		thickness = 1
	}
	s.tool = Tool{Thickness: thickness, Color: color}
	if s.mode != PlacingGlyph {
		s.glyph = nil
	}
	if s.mode == ArmedGlyph {
		s.setMode(Idle)
	}
	if s.preview != nil {
		s.preview = state.NewToolPreview(s.preview.At, thickness, color)
	}
	s.bus.Emit(OverlayMoved)
}

// SelectGlyph arms a glyph with the given label. The token must not be empty.
func (s *Session) SelectGlyph(token string) {
	switch s.mode {
	case Idle, ArmedGlyph:
		s.glyph = state.NewGlyph(token, OffSurface, s.opts.GlyphSize)
		s.preview = nil
		s.setMode(ArmedGlyph)
	case Drawing:
		s.glyph = state.NewGlyph(token, OffSurface, s.opts.GlyphSize)
	case PlacingGlyph:
		s.glyph = state.NewGlyph(token, s.glyph.At, s.opts.GlyphSize)
	}
	s.bus.Emit(OverlayMoved)
}

// PointerDown starts a stroke at p, or starts placing the armed glyph there.
func (s *Session) PointerDown(p state.Point) {
	if s.mode == Drawing || s.mode == PlacingGlyph {
		s.finish()
	}
	s.preview = nil
	if s.mode == ArmedGlyph {
		s.glyph.Reposition(p)
		s.setMode(PlacingGlyph)
	} else {
		s.stroke = state.NewStroke(p, s.tool.Thickness, s.tool.Color)
		s.setMode(Drawing)
	}
	s.bus.Emit(ContentChanged)
}

// PointerMove extends the stroke, drags the glyph, or moves the overlay,
// depending on the mode.
func (s *Session) PointerMove(p state.Point) {
	switch s.mode {
	case Drawing:
		s.stroke.Extend(p)
		s.bus.Emit(ContentChanged)
	case PlacingGlyph:
		s.glyph.Reposition(p)
		s.bus.Emit(ContentChanged)
	case ArmedGlyph:
		s.glyph.Reposition(p)
		s.bus.Emit(OverlayMoved)
	case Idle:
		s.preview = state.NewToolPreview(p, s.tool.Thickness, s.tool.Color)
		s.bus.Emit(OverlayMoved)
	}
}

// PointerUp commits whatever is in flight.
func (s *Session) PointerUp() {
	if s.mode != Drawing && s.mode != PlacingGlyph {
		return
	}
	s.finish()
	s.bus.Emit(ContentChanged)
}

// PointerLeave always lands in Idle. The in-flight entity is committed
// unless the policy discards it, and any armed glyph is disarmed.
func (s *Session) PointerLeave() {
	if s.mode == Drawing || s.mode == PlacingGlyph {
		if s.opts.Policy.DiscardOnLeave {
			if s.opts.Verbose {
				log.Printf("[SESSION] %s discarding %s on leave", s.ID, s.mode)
			}
			s.stroke = nil
		} else {
			s.finish()
		}
	}
	s.glyph = nil
	s.preview = nil
	s.setMode(Idle)
	s.bus.Emit(ContentChanged)
}

// Clear wipes the display list and everything in flight.
func (s *Session) Clear() {
	s.list.Clear()
	s.stroke = nil
	s.glyph = nil
	s.preview = nil
	s.setMode(Idle)
	s.bus.Emit(ContentChanged)
}

// ExportRaster encodes the committed entities as PNG. See export.Raster.
func (s *Session) ExportRaster(scale float64, width, height int) ([]byte, error) {
	return export.Raster(s.list.Snapshot(), scale, width, height, state.ParseColor(s.opts.Background))
}

// finish commits the in-flight entity and picks the next mode. It does not
// emit.
func (s *Session) finish() {
	switch s.mode {
	case Drawing:
		s.list.CommitStroke(s.stroke)
		s.stroke = nil
		if s.glyph != nil {
			s.setMode(ArmedGlyph)
		} else {
			s.setMode(Idle)
		}
	case PlacingGlyph:
		placed := s.glyph
		s.list.CommitGlyph(placed)
		s.glyph = nil
		if s.opts.Policy.KeepGlyphArmed {
			s.glyph = state.NewGlyph(placed.Label, placed.At, placed.Size)
			s.setMode(ArmedGlyph)
		} else {
			s.setMode(Idle)
		}
	}
}

func (s *Session) setMode(m Mode) {
	if s.opts.Verbose && m != s.mode {
		log.Printf("[SESSION] %s %s -> %s", s.ID, s.mode, m)
	}
	s.mode = m
}
