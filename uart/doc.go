// Package uart implements the two state machines of an asynchronous serial
// transceiver. A Receiver recovers bytes from a raw line level and a
// Transmitter drives a line level from bytes. Both machines advance once per
// tick of a periodic timing source and share no state. Synchronization is
// recovered purely from the start-bit edge and counted ticks.
//
// The machines are pure: a step consumes the inputs of the current tick and
// produces the outputs of the current tick. Outputs are only valid for the
// tick at which Step was called. Wiring a transmitter's line to a
// receiver's line, whether for loopback or between two transceivers, is the
// caller's responsibility on every tick.
//
// Frames carry 1 start bit, ElementBits data bits (LSB first), and 1 stop
// bit. Parity is not generated or checked and flow control is not
// implemented. A malformed stop bit is silently accepted; higher-level
// framing is expected to validate payload integrity.
package uart
