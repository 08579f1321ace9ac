package clock

import (
	"math"
	"sync"
	"testing"
)

func TestLamportClock_Wraparound(t *testing.T) {
	c := New()

	// Drive the counter to the maximum representable value.
	c.ReceiveEvent(math.MaxUint64 - 1)
	if c.Time() != math.MaxUint64 {
		t.Fatalf("Expected counter at MaxUint64, got %d", c.Time())
	}

	// One more event wraps modularly to zero.
	ts := c.LocalEvent()
	if ts != 0 {
		t.Errorf("Expected wrapped timestamp 0, got %d", ts)
	}
	if c.Time() != 0 {
		t.Errorf("Expected wrapped counter 0, got %d", c.Time())
	}
}

func TestLamportClock_Wraparound_Receive(t *testing.T) {
	c := New()

	// A merge with the maximum timestamp wraps the same way.
	ts := c.ReceiveEvent(math.MaxUint64)
	if ts != 0 {
		t.Errorf("Expected wrapped merge timestamp 0, got %d", ts)
	}
	if c.Time() != 0 {
		t.Errorf("Expected wrapped counter 0, got %d", c.Time())
	}
}

// TestLamportClock_CausalExchange simulates two nodes exchanging a
// message and its reply: the reply always carries a strictly later
// timestamp than the original send.
func TestLamportClock_CausalExchange(t *testing.T) {
	sender := New()
	receiver := New()

	// Receiver does unrelated local work first.
	for i := 0; i < 3; i++ {
		receiver.LocalEvent()
	}

	sent := sender.SendEvent()
	merged := receiver.ReceiveEvent(sent)
	if merged <= sent {
		t.Errorf("Receive timestamp %d not after send timestamp %d", merged, sent)
	}

	reply := receiver.SendEvent()
	if reply <= sent {
		t.Errorf("Reply timestamp %d not after original send %d", reply, sent)
	}

	ack := sender.ReceiveEvent(reply)
	if ack <= reply {
		t.Errorf("Ack timestamp %d not after reply %d", ack, reply)
	}
}

// TestLamportClock_CausalChain relays one timestamp through a chain of
// clocks; every hop must observe a strictly larger value.
func TestLamportClock_CausalChain(t *testing.T) {
	const hops = 10

	chain := make([]*LamportClock, hops)
	for i := range chain {
		chain[i] = New()
	}

	ts := chain[0].SendEvent()
	for i := 1; i < hops; i++ {
		next := chain[i].ReceiveEvent(ts)
		if next <= ts {
			t.Fatalf("Hop %d assigned %d, not after %d", i, next, ts)
		}
		ts = chain[i].SendEvent()
	}
}

// TestLamportClock_ConcurrentReceiveSameRemote races many receivers of
// the same remote timestamp; exactly one merge can win the CAS, the
// rest fall through to local increments, and every caller still gets a
// distinct timestamp strictly above the remote.
func TestLamportClock_ConcurrentReceiveSameRemote(t *testing.T) {
	const goroutines = 32
	const remote = LamportTime(1000)

	c := New()

	var wg sync.WaitGroup
	results := make([]LamportTime, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = c.ReceiveEvent(remote)
		}(i)
	}
	wg.Wait()

	seen := make(map[LamportTime]bool, goroutines)
	for _, ts := range results {
		if ts <= remote {
			t.Errorf("Receive returned %d, not after remote %d", ts, remote)
		}
		if seen[ts] {
			t.Errorf("Duplicate timestamp %d under concurrent receive", ts)
		}
		seen[ts] = true
	}

	if c.Time() != remote+goroutines {
		t.Errorf("Expected final counter %d, got %d", remote+goroutines, c.Time())
	}
}
