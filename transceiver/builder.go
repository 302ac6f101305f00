package transceiver

import (
	"github.com/serialab/uartsim/sim"
	"github.com/serialab/uartsim/uart"
)

// Builder can build transceiver components.
type Builder struct {
	engine   sim.Engine
	freq     sim.Freq
	timing   uart.Timing
	txWire   *sim.Wire
	rxWire   *sim.Wire
	bufDepth int
}

// MakeBuilder creates a builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		bufDepth: 16,
	}
}

// WithEngine sets the engine that drives the component.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the tick frequency of the component. It must match the tick
// frequency the timing was derived from.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithTiming sets the derived serial timing for both state machines.
func (b Builder) WithTiming(t uart.Timing) Builder {
	b.timing = t
	return b
}

// WithTXWire sets the wire the transmitter drives.
func (b Builder) WithTXWire(w *sim.Wire) Builder {
	b.txWire = w
	return b
}

// WithRXWire sets the wire the receiver samples.
func (b Builder) WithRXWire(w *sim.Wire) Builder {
	b.rxWire = w
	return b
}

// WithBufDepth sets the capacity of the TX and RX FIFOs.
func (b Builder) WithBufDepth(depth int) Builder {
	b.bufDepth = depth
	return b
}

// Build creates a transceiver component with the given name.
func (b Builder) Build(name string) *Comp {
	b.parametersMustBeValid()

	c := &Comp{
		tx:      uart.NewTransmitter(b.timing),
		rx:      uart.NewReceiver(b.timing),
		txWire:  b.txWire,
		rxWire:  b.rxWire,
		txReady: true,
	}

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)
	c.txBuf = sim.NewBuffer(name+".TxBuf", b.bufDepth)
	c.rxBuf = sim.NewBuffer(name+".RxBuf", b.bufDepth)

	b.rxWire.Observe(c)

	return c
}

func (b Builder) parametersMustBeValid() {
	if b.engine == nil {
		panic("transceiver requires an engine")
	}

	if b.freq == 0 {
		panic("transceiver requires a tick frequency")
	}

	if b.timing.TicksPerBit == 0 {
		panic("transceiver requires a serial timing")
	}

	if b.txWire == nil || b.rxWire == nil {
		panic("transceiver requires both a TX and an RX wire")
	}
}
