// Package overlay holds the pending screen-space distortion effects for the
// next frame's draw-list assembly.
package overlay

// Descriptor describes one distortion effect: where it originates and its
// texture-space parameters. descriptors are created by gameplay code and read
// by the draw-list builder; they live only until the ring overwrites them
type Descriptor struct {
	Source uint32
	U      float32
	V      float32
	W      float32
	Kind   uint8
}

const Capacity = 4

// Queue is a fixed-capacity ring with a single producer and a single
// consumer, both running in the same frame tick. there is no backpressure: a
// push beyond capacity silently overwrites the oldest unread slot. effects
// are visual and transient so losing the oldest one under overload is
// acceptable.
//
// The consumer reads the whole table once per frame and does not dequeue;
// entries persist until overwritten.
type Queue struct {
	enabled bool
	slots   [Capacity]Descriptor
	idx     int
}

// Enable opens or closes the queue to producers. disabling also clears any
// pending entries
func (q *Queue) Enable(on bool) {
	q.enabled = on
	if !on {
		q.Clear()
	}
}

func (q *Queue) Enabled() bool {
	return q.enabled
}

// Push adds a descriptor to the next slot, wrapping at capacity. pushes are
// dropped while the queue is disabled
func (q *Queue) Push(d Descriptor) {
	if !q.enabled {
		return
	}

	q.slots[q.idx] = d

	q.idx = q.idx + 1
	if q.idx == Capacity {
		q.idx = 0
	}
}

// Slots returns the whole table for the per-frame read
func (q *Queue) Slots() [Capacity]Descriptor {
	return q.slots
}

// Index returns the slot the next push will land in
func (q *Queue) Index() int {
	return q.idx
}

// Clear zeroes the table and the index
func (q *Queue) Clear() {
	q.slots = [Capacity]Descriptor{}
	q.idx = 0
}
