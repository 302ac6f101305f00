// Package simulation provides the services required to define and run a
// simulation: the engine, the data recorder, the monitor, and a registry of
// the components and wires in the simulated system.
package simulation

import (
	"github.com/serialab/uartsim/datarecording"
	"github.com/serialab/uartsim/monitoring"
	"github.com/serialab/uartsim/sim"
	"github.com/serialab/uartsim/tracing"
)

// A Simulation holds everything a simulated system shares.
type Simulation struct {
	id     string
	engine sim.Engine

	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor
	monitorURL   string
	lineTracer   *tracing.LineTracer
	frameTracer  *tracing.FrameTracer

	components    []sim.Component
	compNameIndex map[string]int
	wires         []*sim.Wire
	wireNameIndex map[string]int
}

// ID returns the unique ID of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// GetEngine returns the engine used in the simulation.
func (s *Simulation) GetEngine() sim.Engine {
	return s.engine
}

// GetDataRecorder returns the data recorder used in the simulation. It is
// nil when recording is disabled.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor used in the simulation. It is nil when
// monitoring is disabled.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// MonitorURL returns the URL the monitoring server serves on, or an empty
// string when monitoring is disabled.
func (s *Simulation) MonitorURL() string {
	return s.monitorURL
}

// RegisterComponent registers a component with the simulation, attaching
// the frame tracer and the monitor when they are enabled.
func (s *Simulation) RegisterComponent(c sim.Component) {
	name := c.Name()
	if _, registered := s.compNameIndex[name]; registered {
		panic("component " + name + " already registered")
	}

	s.components = append(s.components, c)
	s.compNameIndex[name] = len(s.components) - 1

	if s.frameTracer != nil {
		c.AcceptHook(s.frameTracer)
	}

	if s.monitor != nil {
		s.monitor.RegisterComponent(c)
	}
}

// RegisterWire registers a wire with the simulation, attaching the line
// tracer when tracing is enabled.
func (s *Simulation) RegisterWire(w *sim.Wire) {
	name := w.Name()
	if _, registered := s.wireNameIndex[name]; registered {
		panic("wire " + name + " already registered")
	}

	s.wires = append(s.wires, w)
	s.wireNameIndex[name] = len(s.wires) - 1

	if s.lineTracer != nil {
		w.AcceptHook(s.lineTracer)
	}
}

// GetComponentByName returns the component with the given name.
func (s *Simulation) GetComponentByName(name string) sim.Component {
	return s.components[s.compNameIndex[name]]
}

// GetWireByName returns the wire with the given name.
func (s *Simulation) GetWireByName(name string) *sim.Wire {
	return s.wires[s.wireNameIndex[name]]
}

// Terminate flushes and closes the data recorder.
func (s *Simulation) Terminate() {
	if s.dataRecorder != nil {
		s.dataRecorder.Close()
	}
}
