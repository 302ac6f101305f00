package uart

// A Transmitter drives a serial line level from bytes. Step must be called
// once per tick. A transmission is started by asserting request for one
// tick while the transmitter is ready; requests at any other time are
// silently ignored. Once started, a frame always runs to completion.
type Transmitter struct {
	timing Timing

	phase     Phase
	tickCount uint16
	bitIndex  uint8
	shift     byte
}

// NewTransmitter creates a Transmitter in the idle phase, driving the line
// high.
func NewTransmitter(t Timing) *Transmitter {
	return &Transmitter{timing: t}
}

// Phase returns the phase the transmitter is currently in.
func (t *Transmitter) Phase() Phase {
	return t.phase
}

// Reset returns the transmitter to the idle phase with all counters
// cleared, abandoning any frame in flight.
func (t *Transmitter) Reset() {
	*t = Transmitter{timing: t.timing}
}

// Step advances the transmitter by one tick. The returned line level is the
// level to drive for this tick. ready is true only while the transmitter
// can accept a new request.
func (t *Transmitter) Step(request bool, data byte) (line bool, ready bool) {
	if t.phase == PhaseCleanup {
		// The cleanup tick only parks the line high; new requests are
		// accepted again starting on this tick.
		t.phase = PhaseIdle
	}

	switch t.phase {
	case PhaseIdle:
		if request {
			t.shift = data & t.timing.elementMask()
			t.phase = PhaseStartBit
			// The start bit begins on the accepting tick.
			return false, false
		}
		return true, true

	case PhaseStartBit:
		if t.tickCount == t.timing.TicksPerBit-1 {
			t.tickCount = 0
			t.phase = PhaseDataBits
			return t.currentBit(), false
		}
		t.tickCount++
		return false, false

	case PhaseDataBits:
		if t.tickCount == t.timing.TicksPerBit-1 {
			t.tickCount = 0
			t.bitIndex++
			if t.bitIndex == t.timing.ElementBits {
				t.bitIndex = 0
				t.phase = PhaseStopBit
				// The stop bit begins as soon as the last data bit ends.
				return true, false
			}
			return t.currentBit(), false
		}
		t.tickCount++
		return t.currentBit(), false

	case PhaseStopBit:
		// The last tick of the stop period doubles as the cleanup tick, so
		// the machine is ready again exactly one frame after acceptance.
		if t.tickCount == t.timing.TicksPerBit-2 {
			t.tickCount = 0
			t.phase = PhaseCleanup
			return true, false
		}
		t.tickCount++
		return true, false
	}

	return true, false
}

func (t *Transmitter) currentBit() bool {
	return t.shift>>t.bitIndex&1 == 1
}
