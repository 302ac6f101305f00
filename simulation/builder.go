package simulation

import (
	"github.com/rs/xid"
	"github.com/serialab/uartsim/datarecording"
	"github.com/serialab/uartsim/monitoring"
	"github.com/serialab/uartsim/sim"
	"github.com/serialab/uartsim/tracing"
)

// Builder can build simulations.
type Builder struct {
	monitorOn      bool
	monitorPort    int
	recordingOn    bool
	outputFileName string
}

// MakeBuilder creates a new builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		monitorOn:   true,
		recordingOn: true,
	}
}

// WithoutMonitoring disables the monitoring server.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithoutRecording disables the data recorder and the tracers.
func (b Builder) WithoutRecording() Builder {
	b.recordingOn = false
	return b
}

// WithOutputFileName sets the file name of the data recorder's database,
// without the extension.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.recordingOn && b.outputFileName != "" {
		panic("output file name cannot be set when recording is disabled")
	}
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{
		id:            xid.New().String(),
		engine:        sim.NewSerialEngine(),
		compNameIndex: make(map[string]int),
		wireNameIndex: make(map[string]int),
	}

	if b.recordingOn {
		outputPath := b.outputFileName
		if outputPath == "" {
			outputPath = "uartsim_" + s.id
		}

		s.dataRecorder = datarecording.NewDataRecorder(outputPath)
		s.lineTracer = tracing.NewLineTracer(s.engine, s.dataRecorder)
		s.frameTracer = tracing.NewFrameTracer(s.engine, s.dataRecorder)
	}

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
		s.monitor.RegisterEngine(s.engine)
		s.monitorURL = s.monitor.StartServer()
	}

	return s
}
