// Package tracing records what happens on the simulated serial link. Tracers
// are hooks: attached to a wire they record level transitions, attached to a
// transceiver they record the bytes that cross it. All tracers write through
// a datarecording.DataRecorder.
package tracing

import (
	"github.com/serialab/uartsim/datarecording"
	"github.com/serialab/uartsim/sim"
)

// LineTableName is the table that line transitions are recorded into.
const LineTableName = "line_transitions"

// A LineSample is one committed level transition of a wire.
type LineSample struct {
	Time  float64
	Wire  string
	Level bool
}

// A LineTracer records every committed level transition of the wires it is
// hooked to.
type LineTracer struct {
	timeTeller sim.TimeTeller
	recorder   datarecording.DataRecorder
}

// NewLineTracer creates a LineTracer and prepares its table.
func NewLineTracer(
	timeTeller sim.TimeTeller,
	recorder datarecording.DataRecorder,
) *LineTracer {
	recorder.CreateTable(LineTableName, LineSample{})

	return &LineTracer{
		timeTeller: timeTeller,
		recorder:   recorder,
	}
}

// Func records a wire transition.
func (t *LineTracer) Func(ctx sim.HookCtx) {
	if ctx.Pos != sim.HookPosWireTransition {
		return
	}

	t.recorder.InsertData(LineTableName, LineSample{
		Time:  float64(t.timeTeller.CurrentTime()),
		Wire:  ctx.Domain.(sim.Named).Name(),
		Level: ctx.Item.(bool),
	})
}
