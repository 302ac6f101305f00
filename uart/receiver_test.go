package uart_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/serialab/uartsim/uart"
)

var _ = Describe("Receiver", func() {
	var (
		timing uart.Timing
		rx     *uart.Receiver
	)

	BeforeEach(func() {
		timing = uart.MustMakeTiming(uart.Config{
			TickFrequency: 4,
			BaudRate:      1,
		})
		rx = uart.NewReceiver(timing)
	})

	It("should stay idle on an idle line", func() {
		for i := 0; i < 1000; i++ {
			data, valid := rx.Step(true)

			Expect(data).To(Equal(byte(0)))
			Expect(valid).To(BeFalse())
			Expect(rx.Phase()).To(Equal(uart.PhaseIdle))
		}
	})

	It("should reject a dip shorter than half a bit", func() {
		rx.Step(false)
		Expect(rx.Phase()).To(Equal(uart.PhaseStartBit))

		// The line is back high at the validation sample.
		for i := 0; i < 100; i++ {
			_, valid := rx.Step(true)
			Expect(valid).To(BeFalse())
		}
		Expect(rx.Phase()).To(Equal(uart.PhaseIdle))
	})

	It("should accept a frame with a violated stop bit", func() {
		// Start, 8 low data bits, then the line stays low where the stop
		// bit should be. The stop level is never checked.
		validSeen := false
		var got byte

		for tick := 0; tick < 40; tick++ {
			data, valid := rx.Step(false)
			if valid {
				validSeen = true
				got = data
			}
		}

		Expect(validSeen).To(BeTrue())
		Expect(got).To(Equal(byte(0x00)))
	})

	It("should be ready for a new start edge two ticks after a frame", func() {
		for tick := 0; tick < 39; tick++ {
			rx.Step(false)
		}

		_, valid := rx.Step(true)
		Expect(valid).To(BeFalse())

		// One cleanup tick separates the frame from the next start edge.
		rx.Step(true)
		Expect(rx.Phase()).To(Equal(uart.PhaseIdle))

		rx.Step(false)
		Expect(rx.Phase()).To(Equal(uart.PhaseStartBit))
	})

	It("should abandon a frame on reset", func() {
		rx.Step(false)
		rx.Step(false)
		rx.Step(false)
		Expect(rx.Phase()).To(Equal(uart.PhaseDataBits))

		rx.Reset()

		Expect(rx.Phase()).To(Equal(uart.PhaseIdle))
	})
})
