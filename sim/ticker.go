package sim

import (
	"sync"
)

// TickEvent is a generic event that a component uses to update its state.
type TickEvent struct {
	EventBase
}

// MakeTickEvent creates a new TickEvent.
func MakeTickEvent(handler Handler, time VTimeInSec) TickEvent {
	evt := TickEvent{}
	evt.ID = GetIDGenerator().Generate()
	evt.handler = handler
	evt.time = time
	return evt
}

// A Ticker updates its state from tick to tick. Tick returns true if the
// ticker made progress, in which case another tick is scheduled.
type Ticker interface {
	Tick() bool
}

// TickScheduler schedules tick events, deduplicating ticks that are already
// scheduled.
type TickScheduler struct {
	lock      sync.Mutex
	handler   Handler
	Freq      Freq
	Engine    Engine
	secondary bool

	nextTickTime VTimeInSec
}

// NewTickScheduler creates a scheduler for tick events.
func NewTickScheduler(
	handler Handler,
	engine Engine,
	freq Freq,
) *TickScheduler {
	t := new(TickScheduler)

	t.handler = handler
	t.Engine = engine
	t.Freq = freq
	t.nextTickTime = -1

	return t
}

// NewSecondaryTickScheduler creates a scheduler that always schedules
// secondary tick events.
func NewSecondaryTickScheduler(
	handler Handler,
	engine Engine,
	freq Freq,
) *TickScheduler {
	t := NewTickScheduler(handler, engine, freq)
	t.secondary = true
	return t
}

// TickNow schedules a tick event at the current time.
func (t *TickScheduler) TickNow() {
	t.lock.Lock()
	time := t.CurrentTime()

	if t.nextTickTime >= time {
		t.lock.Unlock()
		return
	}

	t.nextTickTime = t.Freq.ThisTick(time)
	tick := MakeTickEvent(t.handler, t.nextTickTime)
	tick.secondary = t.secondary

	t.Engine.Schedule(tick)
	t.lock.Unlock()
}

// TickLater schedules a tick event at the cycle after the current time.
func (t *TickScheduler) TickLater() {
	t.lock.Lock()
	time := t.Freq.NextTick(t.CurrentTime())

	if t.nextTickTime >= time {
		t.lock.Unlock()
		return
	}

	t.nextTickTime = time
	tick := MakeTickEvent(t.handler, t.nextTickTime)
	tick.secondary = t.secondary

	t.Engine.Schedule(tick)
	t.lock.Unlock()
}

// CurrentTime returns the current time of the engine.
func (t *TickScheduler) CurrentTime() VTimeInSec {
	return t.Engine.CurrentTime()
}

// TickingComponent is a component that updates its state from cycle to
// cycle. A programmer only needs to write a tick function for a ticking
// component.
type TickingComponent struct {
	*ComponentBase
	*TickScheduler

	ticker Ticker
}

// NewTickingComponent creates a new ticking component.
func NewTickingComponent(
	name string,
	engine Engine,
	freq Freq,
	ticker Ticker,
) *TickingComponent {
	tc := new(TickingComponent)
	tc.TickScheduler = NewTickScheduler(tc, engine, freq)
	tc.ComponentBase = NewComponentBase(name)
	tc.ticker = ticker

	return tc
}

// NewSecondaryTickingComponent creates a new ticking component that only
// schedules secondary tick events.
func NewSecondaryTickingComponent(
	name string,
	engine Engine,
	freq Freq,
	ticker Ticker,
) *TickingComponent {
	tc := new(TickingComponent)
	tc.TickScheduler = NewSecondaryTickScheduler(tc, engine, freq)
	tc.ComponentBase = NewComponentBase(name)
	tc.ticker = ticker

	return tc
}

// Handle triggers the tick function of the TickingComponent.
func (c *TickingComponent) Handle(_ Event) error {
	madeProgress := c.ticker.Tick()
	if madeProgress {
		c.TickLater()
	}

	return nil
}

// NotifyWireChange triggers the TickingComponent to start ticking again when
// a wire it observes changes level.
func (c *TickingComponent) NotifyWireChange(_ *Wire) {
	c.TickLater()
}
