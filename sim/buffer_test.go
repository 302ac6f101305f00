package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type bufRecordingHook struct {
	pushed []interface{}
	popped []interface{}
}

func (h *bufRecordingHook) Func(ctx HookCtx) {
	switch ctx.Pos {
	case HookPosBufPush:
		h.pushed = append(h.pushed, ctx.Item)
	case HookPosBufPop:
		h.popped = append(h.popped, ctx.Item)
	}
}

var _ = Describe("Buffer", func() {
	var buf Buffer

	BeforeEach(func() {
		buf = NewBuffer("Buf", 2)
	})

	It("should pop in push order", func() {
		buf.Push(1)
		buf.Push(2)

		Expect(buf.Pop()).To(Equal(1))
		Expect(buf.Pop()).To(Equal(2))
		Expect(buf.Pop()).To(BeNil())
	})

	It("should peek without removing", func() {
		buf.Push(1)

		Expect(buf.Peek()).To(Equal(1))
		Expect(buf.Size()).To(Equal(1))
	})

	It("should respect the capacity", func() {
		Expect(buf.Capacity()).To(Equal(2))
		Expect(buf.CanPush()).To(BeTrue())

		buf.Push(1)
		buf.Push(2)

		Expect(buf.CanPush()).To(BeFalse())
		Expect(func() { buf.Push(3) }).To(Panic())
	})

	It("should clear all elements", func() {
		buf.Push(1)
		buf.Push(2)

		buf.Clear()

		Expect(buf.Size()).To(Equal(0))
		Expect(buf.Peek()).To(BeNil())
	})

	It("should invoke hooks on push and pop", func() {
		hook := &bufRecordingHook{}
		buf.AcceptHook(hook)

		buf.Push(1)
		buf.Push(2)
		buf.Pop()

		Expect(hook.pushed).To(Equal([]interface{}{1, 2}))
		Expect(hook.popped).To(Equal([]interface{}{1}))
	})
})
