package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/browser"
	"github.com/serialab/uartsim/sim"
	"github.com/serialab/uartsim/simulation"
	"github.com/serialab/uartsim/transceiver"
	"github.com/serialab/uartsim/uart"
	"github.com/spf13/cobra"
)

var (
	loopbackTickHz   uint32
	loopbackBaud     uint32
	loopbackDataBits uint8
	loopbackPayload  string
	loopbackTraceOut string
	loopbackMonitor  bool
	loopbackPort     int
)

var loopbackCmd = &cobra.Command{
	Use:   "loopback",
	Short: "Run a loopback simulation between two cross-wired transceivers.",
	Long: `Loopback builds a simulation with two transceivers, wires the ` +
		`TX line of each to the RX line of the other, queues the payload ` +
		`on the first one, and runs the simulation until the line is ` +
		`idle. The payload received by the second transceiver is printed ` +
		`at the end.`,
	RunE: runLoopback,
}

func init() {
	rootCmd.AddCommand(loopbackCmd)

	loopbackCmd.Flags().Uint32Var(&loopbackTickHz, "tick-hz", 16*115200,
		"frequency of the timing source, in Hz")
	loopbackCmd.Flags().Uint32Var(&loopbackBaud, "baud", 115200,
		"signaling rate of the line")
	loopbackCmd.Flags().Uint8Var(&loopbackDataBits, "data-bits",
		uart.DefaultElementBits, "data bits per frame")
	loopbackCmd.Flags().StringVar(&loopbackPayload, "data", "hello, uart",
		"payload to send across the link")
	loopbackCmd.Flags().StringVar(&loopbackTraceOut, "trace", "",
		"record line transitions and frames into this database "+
			"(without extension)")
	loopbackCmd.Flags().BoolVar(&loopbackMonitor, "monitor", false,
		"start the monitoring server and open it in a browser")
	loopbackCmd.Flags().IntVar(&loopbackPort, "monitor-port", 0,
		"port number for the monitoring server")
}

func runLoopback(cmd *cobra.Command, _ []string) error {
	applyEnvUint32(cmd, "tick-hz", "UARTSIM_TICK_HZ", &loopbackTickHz)
	applyEnvUint32(cmd, "baud", "UARTSIM_BAUD", &loopbackBaud)

	timing, err := uart.MakeTiming(uart.Config{
		TickFrequency: loopbackTickHz,
		BaudRate:      loopbackBaud,
		ElementBits:   loopbackDataBits,
	})
	if err != nil {
		return err
	}

	s := buildSimulation()
	defer s.Terminate()

	engine := s.GetEngine()
	freq := sim.Freq(loopbackTickHz) * sim.Hz

	wireAB := sim.NewWire("WireAB", engine, freq)
	wireBA := sim.NewWire("WireBA", engine, freq)
	s.RegisterWire(wireAB)
	s.RegisterWire(wireBA)

	bufDepth := len(loopbackPayload)
	if bufDepth < 16 {
		bufDepth = 16
	}

	builder := transceiver.MakeBuilder().
		WithEngine(engine).
		WithFreq(freq).
		WithTiming(timing).
		WithBufDepth(bufDepth)

	devA := builder.WithTXWire(wireAB).WithRXWire(wireBA).Build("DevA")
	devB := builder.WithTXWire(wireBA).WithRXWire(wireAB).Build("DevB")
	s.RegisterComponent(devA)
	s.RegisterComponent(devB)

	for _, b := range []byte(loopbackPayload) {
		if err := devA.Send(b); err != nil {
			return err
		}
	}

	if loopbackMonitor {
		// Start paused so the simulation can be inspected before it is
		// continued through the monitoring API.
		engine.Pause()
		_ = browser.OpenURL(s.MonitorURL())
	}

	if err := engine.Run(); err != nil {
		return err
	}
	engine.Finished()

	now := engine.CurrentTime()
	fmt.Printf("sent:     %q\n", loopbackPayload)
	fmt.Printf("received: %q\n", devB.RecvAll())
	fmt.Printf("simulated %d ticks (%.9f s)\n", freq.Cycle(now), now)

	return nil
}

func buildSimulation() *simulation.Simulation {
	builder := simulation.MakeBuilder()

	if loopbackTraceOut == "" {
		builder = builder.WithoutRecording()
	} else {
		builder = builder.WithOutputFileName(loopbackTraceOut)
	}

	if !loopbackMonitor {
		builder = builder.WithoutMonitoring()
	} else if loopbackPort > 0 {
		builder = builder.WithMonitorPort(loopbackPort)
	}

	return builder.Build()
}

// applyEnvUint32 fills a flag from the environment when the flag is not
// given on the command line.
func applyEnvUint32(
	cmd *cobra.Command,
	flagName, envName string,
	dst *uint32,
) {
	if cmd.Flags().Changed(flagName) {
		return
	}

	v := os.Getenv(envName)
	if v == "" {
		return
	}

	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring %s=%q: %s\n", envName, v, err)
		return
	}

	*dst = uint32(n)
}
