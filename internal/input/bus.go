package input

// Handler receives raw events in the order they were published.
type Handler func(Raw)

type entry struct {
	id uint32
	fn Handler
}

// Bus delivers raw events synchronously to its subscribers. It is meant
// to be driven from a single UI goroutine and holds no locks.
type Bus struct {
	handlers []entry
	nextID   uint32
	closed   bool
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscription is returned by Subscribe and releases the handler when closed.
type Subscription struct {
	id  uint32
	bus *Bus
}

// Subscribe registers fn. Subscribing to a closed bus returns an inert
// subscription.
func (b *Bus) Subscribe(fn Handler) *Subscription {
	if b.closed || fn == nil {
		return &Subscription{}
	}
	b.nextID++
	b.handlers = append(b.handlers, entry{id: b.nextID, fn: fn})
	return &Subscription{id: b.nextID, bus: b}
}

// Close unregisters the handler. Safe to call more than once.
func (s *Subscription) Close() {
	if s == nil || s.bus == nil {
		return
	}
	s.bus.remove(s.id)
	s.bus = nil
}

// Active reports whether the subscription still receives events.
func (s *Subscription) Active() bool {
	return s != nil && s.bus != nil
}

func (b *Bus) remove(id uint32) {
	for i := range b.handlers {
		if b.handlers[i].id == id {
			copy(b.handlers[i:], b.handlers[i+1:])
			b.handlers[len(b.handlers)-1] = entry{}
			b.handlers = b.handlers[:len(b.handlers)-1]
			return
		}
	}
}

// Publish hands raw to every subscriber in registration order.
func (b *Bus) Publish(raw Raw) {
	if b.closed {
		return
	}
	// handlers may unsubscribe while being called
	hs := append([]entry(nil), b.handlers...)
	for _, h := range hs {
		h.fn(raw)
	}
}

// Len is the number of live subscriptions.
func (b *Bus) Len() int { return len(b.handlers) }

// Close drops every subscription; later Publish and Subscribe calls are
// no-ops.
func (b *Bus) Close() {
	b.closed = true
	for i := range b.handlers {
		b.handlers[i] = entry{}
	}
	b.handlers = nil
}
