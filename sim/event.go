package sim

// VTimeInSec is the time in the simulated space, in seconds.
type VTimeInSec float64

// An Event is something that happens at a future simulated time.
type Event interface {
	// Time returns the time at which the event should happen.
	Time() VTimeInSec

	// Handler returns the handler that handles the event.
	Handler() Handler

	// IsSecondary tells if the event is a secondary event. Secondary events
	// are handled after all the same-time primary events are handled.
	IsSecondary() bool
}

// A Handler defines a domain for events. An event can only be scheduled by
// its handler and can only directly modify that handler.
type Handler interface {
	Handle(e Event) error
}

// EventBase provides the basic fields and getters for other events.
type EventBase struct {
	ID        string
	time      VTimeInSec
	handler   Handler
	secondary bool
}

// NewEventBase creates a new EventBase.
func NewEventBase(t VTimeInSec, handler Handler) *EventBase {
	e := new(EventBase)
	e.ID = GetIDGenerator().Generate()
	e.time = t
	e.handler = handler
	return e
}

// Time returns the time that the event is going to happen.
func (e EventBase) Time() VTimeInSec {
	return e.time
}

// Handler returns the handler that handles the event.
func (e EventBase) Handler() Handler {
	return e.handler
}

// IsSecondary returns true if the event is a secondary event.
func (e EventBase) IsSecondary() bool {
	return e.secondary
}
