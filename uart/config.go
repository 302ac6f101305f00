package uart

import "fmt"

// DefaultElementBits is the number of data bits per frame when the
// configuration does not specify one.
const DefaultElementBits = 8

// Config describes an asynchronous serial link. TickFrequency is the rate
// of the periodic timing source that advances the state machines and
// BaudRate is the signaling rate on the line. The same configuration must
// be used on both ends of a link.
type Config struct {
	TickFrequency uint32
	BaudRate      uint32
	ElementBits   uint8
}

// Timing holds the tick counts derived from a Config. The state machines
// only ever consult the derived counts, never the raw configuration.
type Timing struct {
	TicksPerBit     uint16
	HalfTicksPerBit uint16
	ElementBits     uint8
}

// MakeTiming derives the per-bit tick counts from a configuration. The
// machines need at least 2 ticks per bit to place a sample between two
// edges; configurations below that are rejected here rather than letting
// the counters degenerate.
func MakeTiming(c Config) (Timing, error) {
	if c.BaudRate == 0 {
		return Timing{}, fmt.Errorf("uart: baud rate cannot be 0")
	}

	elementBits := c.ElementBits
	if elementBits == 0 {
		elementBits = DefaultElementBits
	}

	if elementBits > 8 {
		return Timing{}, fmt.Errorf(
			"uart: element size %d exceeds the 8-bit shift register",
			elementBits)
	}

	ticksPerBit := c.TickFrequency / c.BaudRate
	if ticksPerBit < 2 {
		return Timing{}, fmt.Errorf(
			"uart: %d Hz provides %d ticks per bit at %d baud, need at least 2",
			c.TickFrequency, ticksPerBit, c.BaudRate)
	}

	if ticksPerBit > 0xffff {
		return Timing{}, fmt.Errorf(
			"uart: %d ticks per bit overflows the 16-bit counters",
			ticksPerBit)
	}

	return Timing{
		TicksPerBit:     uint16(ticksPerBit),
		HalfTicksPerBit: uint16(ticksPerBit / 2),
		ElementBits:     elementBits,
	}, nil
}

// MustMakeTiming is like MakeTiming but panics on invalid configurations.
func MustMakeTiming(c Config) Timing {
	t, err := MakeTiming(c)
	if err != nil {
		panic(err)
	}

	return t
}

// elementMask returns a mask covering the data bits of a frame.
func (t Timing) elementMask() byte {
	return byte(uint16(1)<<t.ElementBits - 1)
}
