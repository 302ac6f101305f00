package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Tick Scheduler", func() {
	var (
		mockCtrl  *gomock.Controller
		engine    *MockEngine
		handler   *MockHandler
		scheduler *TickScheduler
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewMockEngine(mockCtrl)
		handler = NewMockHandler(mockCtrl)
		scheduler = NewTickScheduler(handler, engine, 1*Hz)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should schedule a tick at the current time", func() {
		engine.EXPECT().CurrentTime().Return(VTimeInSec(10))
		engine.EXPECT().Schedule(gomock.Any()).Do(func(e Event) {
			Expect(e.Time()).To(BeNumerically("~", 10, 1e-9))
			Expect(e.IsSecondary()).To(BeFalse())
			Expect(e.Handler()).To(BeIdenticalTo(handler))
		})

		scheduler.TickNow()
	})

	It("should schedule a tick at the next cycle", func() {
		engine.EXPECT().CurrentTime().Return(VTimeInSec(10))
		engine.EXPECT().Schedule(gomock.Any()).Do(func(e Event) {
			Expect(e.Time()).To(BeNumerically("~", 11, 1e-9))
		})

		scheduler.TickLater()
	})

	It("should not schedule the same tick twice", func() {
		engine.EXPECT().CurrentTime().Return(VTimeInSec(10)).Times(2)
		engine.EXPECT().Schedule(gomock.Any())

		scheduler.TickLater()
		scheduler.TickLater()
	})

	It("should mark ticks from a secondary scheduler as secondary", func() {
		scheduler = NewSecondaryTickScheduler(handler, engine, 1*Hz)

		engine.EXPECT().CurrentTime().Return(VTimeInSec(10))
		engine.EXPECT().Schedule(gomock.Any()).Do(func(e Event) {
			Expect(e.IsSecondary()).To(BeTrue())
		})

		scheduler.TickNow()
	})
})

var _ = Describe("Ticking Component", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *MockEngine
		ticker   *MockTicker
		comp     *TickingComponent
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewMockEngine(mockCtrl)
		ticker = NewMockTicker(mockCtrl)
		comp = NewTickingComponent("Comp", engine, 1*Hz, ticker)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should tick again after making progress", func() {
		ticker.EXPECT().Tick().Return(true)
		engine.EXPECT().CurrentTime().Return(VTimeInSec(10))
		engine.EXPECT().Schedule(gomock.Any()).Do(func(e Event) {
			Expect(e.Time()).To(BeNumerically("~", 11, 1e-9))
		})

		Expect(comp.Handle(MakeTickEvent(comp, 10))).To(Succeed())
	})

	It("should stop ticking when no progress is made", func() {
		ticker.EXPECT().Tick().Return(false)

		Expect(comp.Handle(MakeTickEvent(comp, 10))).To(Succeed())
	})

	It("should resume ticking when an observed wire changes", func() {
		engine.EXPECT().CurrentTime().Return(VTimeInSec(10))
		engine.EXPECT().Schedule(gomock.Any())

		comp.NotifyWireChange(nil)
	})
})
