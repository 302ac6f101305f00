package sim

import (
	"container/heap"
	"sync"
)

// An EventQueue is a queue of events ordered by their times.
type EventQueue interface {
	Push(evt Event)
	Pop() Event
	Len() int
	Peek() Event
}

// EventQueueImpl is a thread-safe, heap-based event queue.
type EventQueueImpl struct {
	sync.Mutex
	events eventHeap
}

// NewEventQueue creates a new EventQueueImpl.
func NewEventQueue() *EventQueueImpl {
	q := new(EventQueueImpl)
	q.events = make(eventHeap, 0)
	heap.Init(&q.events)
	return q
}

// Push adds an event to the queue.
func (q *EventQueueImpl) Push(evt Event) {
	q.Lock()
	heap.Push(&q.events, evt)
	q.Unlock()
}

// Pop removes and returns the earliest event in the queue.
func (q *EventQueueImpl) Pop() Event {
	q.Lock()
	e := heap.Pop(&q.events).(Event)
	q.Unlock()
	return e
}

// Len returns the number of events in the queue.
func (q *EventQueueImpl) Len() int {
	q.Lock()
	l := q.events.Len()
	q.Unlock()
	return l
}

// Peek returns the earliest event without removing it from the queue.
func (q *EventQueueImpl) Peek() Event {
	q.Lock()
	evt := q.events[0]
	q.Unlock()
	return evt
}

type eventHeap []Event

func (h eventHeap) Len() int {
	return len(h)
}

func (h eventHeap) Less(i, j int) bool {
	return h[i].Time() < h[j].Time()
}

func (h eventHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *eventHeap) Push(x interface{}) {
	*h = append(*h, x.(Event))
}

func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	evt := old[n-1]
	*h = old[0 : n-1]
	return evt
}
