package clock

import (
	"sync/atomic"
)

// LamportTime is a scalar Lamport timestamp. Values wrap around at the
// maximum representable uint64; modular wraparound is documented
// behavior, not an error.
type LamportTime uint64

// LamportClock is a thread-safe Lamport logical clock backed by a
// single atomic counter. One instance is shared by reference across
// every component of a node that stamps or merges events; copying a
// clock mid-lifetime would split the counter and break causality.
//
// All event-producing operations return the newly committed timestamp:
// immediately after an uncontended call, Time reports the value the
// call returned.
type LamportClock struct {
	time atomic.Uint64
}

// New creates a new clock with its counter at zero.
func New() *LamportClock {
	return &LamportClock{}
}

// Time returns the current timestamp without advancing the clock.
func (c *LamportClock) Time() LamportTime {
	return LamportTime(c.time.Load())
}

// LocalEvent records a local event. It atomically advances the counter
// by one and returns the timestamp assigned to the event.
func (c *LamportClock) LocalEvent() LamportTime {
	return LamportTime(c.time.Add(1))
}

// SendEvent records a message send. It is identical to LocalEvent and
// exists to mark, at the call site, that the returned timestamp is
// attached to an outgoing message.
func (c *LamportClock) SendEvent() LamportTime {
	return c.LocalEvent()
}

// ReceiveEvent records the receipt of a message carrying the sender's
// timestamp and returns the timestamp assigned to the receive event,
// per Lamport's rule:
//
//	local = max(local, remote) + 1
//
// A remote timestamp older than the local counter degenerates to an
// ordinary local event. Otherwise the counter is advanced to remote+1
// with a compare-and-swap; a failed CAS means another writer moved the
// counter first, and the merge is retried against the fresh value.
// The loop is lock-free: it never blocks, but the number of retries
// under contention is unbounded.
func (c *LamportClock) ReceiveEvent(remote LamportTime) LamportTime {
	for {
		cur := c.time.Load()
		if uint64(remote) < cur {
			return LamportTime(c.time.Add(1))
		}
		if c.time.CompareAndSwap(cur, uint64(remote)+1) {
			return remote + 1
		}
	}
}
