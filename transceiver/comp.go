// Package transceiver models a full-duplex UART device as a ticking
// component. The component owns one transmitter and one receiver state
// machine, drives its TX wire and samples its RX wire once per tick, and
// exposes byte-level FIFOs to the host. Two transceivers form a link by
// cross-wiring: one's TX wire is the other's RX wire.
package transceiver

import (
	"fmt"

	"github.com/serialab/uartsim/sim"
	"github.com/serialab/uartsim/uart"
)

// HookPosFrameSent marks when a byte is handed to the transmitter. The hook
// item is the byte.
var HookPosFrameSent = &sim.HookPos{Name: "Frame Sent"}

// HookPosByteRecvd marks when the receiver completes a byte. The hook item
// is the byte.
var HookPosByteRecvd = &sim.HookPos{Name: "Byte Recvd"}

// Comp is a full-duplex UART transceiver component.
type Comp struct {
	*sim.TickingComponent

	tx *uart.Transmitter
	rx *uart.Receiver

	txWire *sim.Wire
	rxWire *sim.Wire

	txBuf sim.Buffer
	rxBuf sim.Buffer

	// txReady holds the transmitter's ready output as of the previous tick.
	// Requests are issued based on it, so a request is only ever presented
	// on a tick where the machine was observably ready.
	txReady bool
}

// Send queues a byte for transmission. It fails when the TX FIFO is full;
// the caller is expected to retry after the line has drained.
func (c *Comp) Send(data byte) error {
	if !c.txBuf.CanPush() {
		return fmt.Errorf("%s: tx buffer full", c.Name())
	}

	c.txBuf.Push(data)
	c.TickLater()

	return nil
}

// Recv returns the next received byte, if any.
func (c *Comp) Recv() (byte, bool) {
	e := c.rxBuf.Pop()
	if e == nil {
		return 0, false
	}

	return e.(byte), true
}

// RecvAll drains the RX FIFO.
func (c *Comp) RecvAll() []byte {
	var data []byte
	for {
		b, ok := c.Recv()
		if !ok {
			return data
		}
		data = append(data, b)
	}
}

// Tick advances both state machines by one tick.
func (c *Comp) Tick() bool {
	madeProgress := c.tickTx()
	madeProgress = c.tickRx() || madeProgress

	return madeProgress
}

func (c *Comp) tickTx() bool {
	request := false
	var data byte

	if c.txReady && c.txBuf.Size() > 0 {
		data = c.txBuf.Pop().(byte)
		request = true
	}

	line, ready := c.tx.Step(request, data)
	c.txWire.Drive(line)
	c.txReady = ready

	if request {
		c.InvokeHook(sim.HookCtx{
			Domain: c,
			Pos:    HookPosFrameSent,
			Item:   data,
		})
	}

	return request || !ready || c.txBuf.Size() > 0
}

func (c *Comp) tickRx() bool {
	data, valid := c.rx.Step(c.rxWire.Level())

	if valid {
		if !c.rxBuf.CanPush() {
			// Overrun. The oldest byte is dropped, as a hardware FIFO
			// would.
			c.rxBuf.Pop()
		}
		c.rxBuf.Push(data)

		c.InvokeHook(sim.HookCtx{
			Domain: c,
			Pos:    HookPosByteRecvd,
			Item:   data,
		})
	}

	return valid || c.rx.Phase() != uart.PhaseIdle
}
