package uart_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/serialab/uartsim/uart"
)

var _ = Describe("Transmitter", func() {
	var (
		timing uart.Timing
		tx     *uart.Transmitter
	)

	BeforeEach(func() {
		timing = uart.MustMakeTiming(uart.Config{
			TickFrequency: 4,
			BaudRate:      1,
		})
		tx = uart.NewTransmitter(timing)
	})

	It("should idle high and ready without a request", func() {
		for i := 0; i < 1000; i++ {
			line, ready := tx.Step(false, 0)

			Expect(line).To(BeTrue())
			Expect(ready).To(BeTrue())
			Expect(tx.Phase()).To(Equal(uart.PhaseIdle))
		}
	})

	It("should produce the exact waveform of a frame", func() {
		// 0xA5, sent LSB first: 1, 0, 1, 0, 0, 1, 0, 1.
		dataBits := []bool{
			true, false, true, false,
			false, true, false, true,
		}

		var line, ready bool

		line, ready = tx.Step(true, 0xA5)
		Expect(line).To(BeFalse())
		Expect(ready).To(BeFalse())

		for tick := 1; tick < 4; tick++ {
			line, ready = tx.Step(false, 0)
			Expect(line).To(BeFalse(), "start bit, tick %d", tick)
			Expect(ready).To(BeFalse())
		}

		for bit := 0; bit < 8; bit++ {
			for tick := 0; tick < 4; tick++ {
				line, ready = tx.Step(false, 0)
				Expect(line).To(Equal(dataBits[bit]),
					"data bit %d, tick %d", bit, tick)
				Expect(ready).To(BeFalse())
			}
		}

		for tick := 36; tick < 40; tick++ {
			line, ready = tx.Step(false, 0)
			Expect(line).To(BeTrue(), "stop bit, tick %d", tick)
			Expect(ready).To(BeFalse())
		}

		// One full frame after acceptance the machine accepts again.
		line, ready = tx.Step(false, 0)
		Expect(line).To(BeTrue())
		Expect(ready).To(BeTrue())
	})

	It("should ignore requests while a frame is in flight", func() {
		undisturbed := uart.NewTransmitter(timing)

		tx.Step(true, 0x0f)
		undisturbed.Step(true, 0x0f)

		for tick := 1; tick < 40; tick++ {
			line, ready := tx.Step(true, 0xf0)
			wantLine, wantReady := undisturbed.Step(false, 0)

			Expect(ready).To(BeFalse())
			Expect(line).To(Equal(wantLine), "tick %d", tick)
			Expect(ready).To(Equal(wantReady))
		}

		Expect(tx).To(Equal(undisturbed))
	})

	It("should accept a new request on the first ready tick", func() {
		tx.Step(true, 0x55)
		for tick := 1; tick < 40; tick++ {
			tx.Step(false, 0)
		}

		line, ready := tx.Step(true, 0xff)

		Expect(line).To(BeFalse())
		Expect(ready).To(BeFalse())
		Expect(tx.Phase()).To(Equal(uart.PhaseStartBit))
	})

	It("should mask data beyond the element size", func() {
		narrow := uart.MustMakeTiming(uart.Config{
			TickFrequency: 4,
			BaudRate:      1,
			ElementBits:   1,
		})
		tx := uart.NewTransmitter(narrow)

		tx.Step(true, 0xfe)

		highSeen := false
		for tick := 1; tick < 12; tick++ {
			line, _ := tx.Step(false, 0)
			if tick < 8 && line {
				highSeen = true
			}
		}

		// Bit 0 of 0xfe is 0; the upper bits must not leak into the frame.
		Expect(highSeen).To(BeFalse())
	})

	It("should abandon a frame on reset", func() {
		tx.Step(true, 0x00)
		for tick := 1; tick < 10; tick++ {
			tx.Step(false, 0)
		}

		tx.Reset()

		line, ready := tx.Step(false, 0)
		Expect(line).To(BeTrue())
		Expect(ready).To(BeTrue())
	})
})
