package uart

// Phase enumerates the states shared by the receiver and the transmitter
// state machines.
type Phase uint8

// The phases of a frame. Both machines rest in PhaseIdle and walk through
// the remaining phases once per frame.
const (
	PhaseIdle Phase = iota
	PhaseStartBit
	PhaseDataBits
	PhaseStopBit
	PhaseCleanup
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseStartBit:
		return "StartBit"
	case PhaseDataBits:
		return "DataBits"
	case PhaseStopBit:
		return "StopBit"
	case PhaseCleanup:
		return "Cleanup"
	}

	return "Unknown"
}
