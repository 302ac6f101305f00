package sim

// TimeTeller can be used to get the current simulated time.
type TimeTeller interface {
	CurrentTime() VTimeInSec
}

// EventScheduler can be used to schedule future events.
type EventScheduler interface {
	Schedule(e Event)
}

// A SimulationEndHandler is called after the simulation ends.
type SimulationEndHandler interface {
	Handle(now VTimeInSec)
}

// An Engine keeps a discrete event simulation running.
type Engine interface {
	Hookable
	TimeTeller
	EventScheduler

	// Run processes all the events until the simulation finishes.
	Run() error

	// Pause prevents the engine from triggering more events until Continue
	// is called.
	Pause()

	// Continue resumes a paused engine.
	Continue()

	// RegisterSimulationEndHandler registers a handler that performs some
	// action after the simulation is finished.
	RegisterSimulationEndHandler(handler SimulationEndHandler)

	// Finished invokes all the registered SimulationEndHandlers.
	Finished()
}
