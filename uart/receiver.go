package uart

// A Receiver recovers bytes from a raw serial line level. Step must be
// called once per tick, unconditionally, with the level sampled on that
// tick. The machine never fails: anything that does not look like a valid
// frame degrades to a return to the idle phase.
type Receiver struct {
	timing Timing

	phase     Phase
	tickCount uint16
	bitIndex  uint8
	shift     byte
}

// NewReceiver creates a Receiver in the idle phase.
func NewReceiver(t Timing) *Receiver {
	return &Receiver{timing: t}
}

// Phase returns the phase the receiver is currently in.
func (r *Receiver) Phase() Phase {
	return r.phase
}

// Reset returns the receiver to the idle phase with all counters cleared,
// abandoning any frame in flight.
func (r *Receiver) Reset() {
	*r = Receiver{timing: r.timing}
}

// Step advances the receiver by one tick. The returned data is valid only
// on the single tick where valid is true, when a complete frame has been
// received.
func (r *Receiver) Step(line bool) (data byte, valid bool) {
	switch r.phase {
	case PhaseIdle:
		if !line {
			r.phase = PhaseStartBit
		}

	case PhaseStartBit:
		// Re-sampling half a bit after the edge both validates the start
		// bit and aligns every following full-period sample with the middle
		// of its bit.
		if r.tickCount == r.timing.HalfTicksPerBit-1 {
			r.tickCount = 0
			if !line {
				r.phase = PhaseDataBits
				r.shift = 0
			} else {
				// False start. The dip did not hold for half a bit.
				r.phase = PhaseIdle
			}
		} else {
			r.tickCount++
		}

	case PhaseDataBits:
		if r.tickCount == r.timing.TicksPerBit-1 {
			r.tickCount = 0
			if line {
				r.shift |= 1 << r.bitIndex
			}
			r.bitIndex++
			if r.bitIndex == r.timing.ElementBits {
				r.bitIndex = 0
				r.phase = PhaseStopBit
			}
		} else {
			r.tickCount++
		}

	case PhaseStopBit:
		// The stop bit level is never checked. Framing violations are
		// silently accepted.
		if r.tickCount == r.timing.TicksPerBit-1 {
			r.tickCount = 0
			r.phase = PhaseCleanup
			return r.shift, true
		}
		r.tickCount++

	case PhaseCleanup:
		// One tick of separation before the next start edge can be
		// detected, so the tail of this frame cannot be mistaken for a new
		// start bit.
		r.phase = PhaseIdle
	}

	return 0, false
}
