package event

import "github.com/jakecoffman/cp"

// Queue is a FIFO of events collected during one frame.
type Queue struct {
	items []Event
}

// Push adds an event.
func (q *Queue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *Queue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Count returns the number of pending events of kind k.
func (q *Queue) Count(k Kind) int {
	if q == nil {
		return 0
	}
	n := 0
	for _, evt := range q.items {
		if evt.Kind == k {
			n++
		}
	}
	return n
}

// Play queues a sound cue.
func (q *Queue) Play(cue Cue) {
	q.Push(Event{Kind: Sound, Cue: cue})
}

// Points queues a point award. When show is set the award also floats above pos.
func (q *Queue) Points(amount int, show bool, pos cp.Vector) {
	q.Push(Event{Kind: AddPoints, Amount: amount, ShowText: show, Pos: pos})
}
