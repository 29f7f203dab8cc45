package board

// Signal is an invalidation class. Both classes trigger a full repaint.
type Signal int

const (
	// ContentChanged means the committed or in-flight content moved.
	ContentChanged Signal = iota
	// OverlayMoved means only the cursor overlay (tool preview or armed
	// glyph) moved.
	OverlayMoved
)

func (s Signal) String() string {
	switch s {
	case ContentChanged:
		return "drawing-changed"
	case OverlayMoved:
		return "tool-moved"
	default:
		return "unknown"
	}
}

// Bus delivers signals synchronously to its subscribers in registration order.
type Bus struct {
	subs   []subscriber
	nextID int
}

type subscriber struct {
	id int
	fn func(Signal)
}

func NewBus() *Bus { return &Bus{} }

// Subscribe registers fn and returns a function that unregisters it.
func (b *Bus) Subscribe(fn func(Signal)) (cancel func()) {
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Emit calls every subscriber with sig before returning.
func (b *Bus) Emit(sig Signal) {
	subs := append([]subscriber(nil), b.subs...)
	for _, s := range subs {
		s.fn(sig)
	}
}
