package sim

// HookPosWireTransition marks when the committed level of a wire changes.
// The hook item is the new level.
var HookPosWireTransition = &HookPos{Name: "Wire Transition"}

// A WireListener is notified when the committed level of a wire it observes
// changes.
type WireListener interface {
	NotifyWireChange(w *Wire)
}

// A Wire is a single-bit signal net that connects components. Wires update
// in two phases: a component drives a level during its own (primary) tick,
// and the wire commits the level as a secondary event, after all the
// same-time primary events have run. Components therefore always sample the
// level committed before the current tick, regardless of the order the
// engine triggers them in.
//
// Serial lines idle high, so a new wire starts at the high level.
type Wire struct {
	*TickingComponent

	level     bool
	pending   bool
	listeners []WireListener
}

// NewWire creates a wire that commits level changes at the given frequency.
func NewWire(name string, engine Engine, freq Freq) *Wire {
	w := &Wire{
		level:   true,
		pending: true,
	}
	w.TickingComponent = NewSecondaryTickingComponent(name, engine, freq, w)

	return w
}

// Level returns the committed level of the wire.
func (w *Wire) Level() bool {
	return w.level
}

// Drive latches the level to commit at the end of the current tick.
func (w *Wire) Drive(level bool) {
	w.pending = level

	if w.pending != w.level {
		w.TickNow()
	}
}

// Observe registers a listener to be notified of level transitions.
func (w *Wire) Observe(l WireListener) {
	w.listeners = append(w.listeners, l)
}

// Tick commits a pending level change.
func (w *Wire) Tick() bool {
	if w.pending == w.level {
		return false
	}

	w.level = w.pending

	w.InvokeHook(HookCtx{
		Domain: w,
		Pos:    HookPosWireTransition,
		Item:   w.level,
	})

	for _, l := range w.listeners {
		l.NotifyWireChange(w)
	}

	return true
}
