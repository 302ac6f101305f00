package tracing

import (
	"github.com/serialab/uartsim/datarecording"
	"github.com/serialab/uartsim/sim"
	"github.com/serialab/uartsim/transceiver"
)

// FrameTableName is the table that frame events are recorded into.
const FrameTableName = "frame_events"

// Frame directions.
const (
	DirSend = "send"
	DirRecv = "recv"
)

// A FrameEvent is a byte crossing a transceiver, either handed to the
// transmitter or completed by the receiver.
type FrameEvent struct {
	Time      float64
	Component string
	Direction string
	Value     uint8
}

// A FrameTracer records the bytes sent and received by the transceivers it
// is hooked to.
type FrameTracer struct {
	timeTeller sim.TimeTeller
	recorder   datarecording.DataRecorder
}

// NewFrameTracer creates a FrameTracer and prepares its table.
func NewFrameTracer(
	timeTeller sim.TimeTeller,
	recorder datarecording.DataRecorder,
) *FrameTracer {
	recorder.CreateTable(FrameTableName, FrameEvent{})

	return &FrameTracer{
		timeTeller: timeTeller,
		recorder:   recorder,
	}
}

// Func records a frame event.
func (t *FrameTracer) Func(ctx sim.HookCtx) {
	var direction string

	switch ctx.Pos {
	case transceiver.HookPosFrameSent:
		direction = DirSend
	case transceiver.HookPosByteRecvd:
		direction = DirRecv
	default:
		return
	}

	t.recorder.InsertData(FrameTableName, FrameEvent{
		Time:      float64(t.timeTeller.CurrentTime()),
		Component: ctx.Domain.(sim.Named).Name(),
		Direction: direction,
		Value:     ctx.Item.(byte),
	})
}
