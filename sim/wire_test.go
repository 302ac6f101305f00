package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type transitionRecordingHook struct {
	levels []bool
}

func (h *transitionRecordingHook) Func(ctx HookCtx) {
	if ctx.Pos == HookPosWireTransition {
		h.levels = append(h.levels, ctx.Item.(bool))
	}
}

type wireDriver struct {
	wire  *Wire
	level bool
}

func (d *wireDriver) Handle(Event) error {
	d.wire.Drive(d.level)
	return nil
}

type wireSampler struct {
	wire    *Wire
	samples []bool
}

func (s *wireSampler) Handle(Event) error {
	s.samples = append(s.samples, s.wire.Level())
	return nil
}

type wireWatcher struct {
	changes int
	seen    []bool
}

func (w *wireWatcher) NotifyWireChange(wire *Wire) {
	w.changes++
	w.seen = append(w.seen, wire.Level())
}

var _ = Describe("Wire", func() {
	var (
		engine *SerialEngine
		wire   *Wire
	)

	BeforeEach(func() {
		engine = NewSerialEngine()
		wire = NewWire("Wire", engine, 1*Hz)
	})

	It("should start at the high level", func() {
		Expect(wire.Level()).To(BeTrue())
	})

	It("should commit a driven level at the end of the tick", func() {
		hook := &transitionRecordingHook{}
		wire.AcceptHook(hook)
		watcher := &wireWatcher{}
		wire.Observe(watcher)

		engine.Schedule(NewEventBase(1, &wireDriver{wire: wire, level: false}))

		Expect(engine.Run()).To(Succeed())
		Expect(wire.Level()).To(BeFalse())
		Expect(hook.levels).To(Equal([]bool{false}))
		Expect(watcher.changes).To(Equal(1))
		Expect(watcher.seen).To(Equal([]bool{false}))
	})

	It("should not report a transition when redriven to the same level", func() {
		hook := &transitionRecordingHook{}
		wire.AcceptHook(hook)
		watcher := &wireWatcher{}
		wire.Observe(watcher)

		engine.Schedule(NewEventBase(1, &wireDriver{wire: wire, level: true}))

		Expect(engine.Run()).To(Succeed())
		Expect(wire.Level()).To(BeTrue())
		Expect(hook.levels).To(BeEmpty())
		Expect(watcher.changes).To(Equal(0))
	})

	It("should let same-time readers sample the previous level", func() {
		sampler := &wireSampler{wire: wire}

		engine.Schedule(NewEventBase(1, &wireDriver{wire: wire, level: false}))
		engine.Schedule(NewEventBase(1, sampler))

		Expect(engine.Run()).To(Succeed())

		// The commit runs as a secondary event, so the reader sees the old
		// level no matter which same-time primary event runs first.
		Expect(sampler.samples).To(Equal([]bool{true}))
		Expect(wire.Level()).To(BeFalse())
	})

	It("should track a sequence of drives", func() {
		hook := &transitionRecordingHook{}
		wire.AcceptHook(hook)

		engine.Schedule(NewEventBase(1, &wireDriver{wire: wire, level: false}))
		engine.Schedule(NewEventBase(2, &wireDriver{wire: wire, level: true}))
		engine.Schedule(NewEventBase(3, &wireDriver{wire: wire, level: false}))

		Expect(engine.Run()).To(Succeed())
		Expect(hook.levels).To(Equal([]bool{false, true, false}))
	})
})
