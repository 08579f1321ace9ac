package clock

import (
	"testing"
)

func TestLamportClock_New(t *testing.T) {
	c := New()
	if c.Time() != 0 {
		t.Errorf("Expected new clock at 0, got %d", c.Time())
	}
}

func TestLamportClock_Time_NoSideEffect(t *testing.T) {
	c := New()
	c.LocalEvent()
	before := c.Time()
	for i := 0; i < 10; i++ {
		if got := c.Time(); got != before {
			t.Errorf("Time() advanced the clock: expected %d, got %d", before, got)
		}
	}
}

func TestLamportClock_LocalEvent(t *testing.T) {
	c := New()

	for i := 1; i <= 5; i++ {
		ts := c.LocalEvent()
		if ts != LamportTime(i) {
			t.Errorf("Expected timestamp %d, got %d", i, ts)
		}
		if c.Time() != ts {
			t.Errorf("Expected committed counter %d after event, got %d", ts, c.Time())
		}
	}
}

func TestLamportClock_SendEvent(t *testing.T) {
	c := New()

	ts := c.SendEvent()
	if ts != 1 {
		t.Errorf("Expected send timestamp 1, got %d", ts)
	}

	// SendEvent and LocalEvent advance the same counter.
	if ts2 := c.LocalEvent(); ts2 != 2 {
		t.Errorf("Expected timestamp 2, got %d", ts2)
	}
	if ts3 := c.SendEvent(); ts3 != 3 {
		t.Errorf("Expected timestamp 3, got %d", ts3)
	}
}

func TestLamportClock_ReceiveEvent(t *testing.T) {
	tests := []struct {
		name     string
		local    LamportTime
		remote   LamportTime
		expected LamportTime
	}{
		{
			name:     "stale remote degenerates to local event",
			local:    5,
			remote:   3,
			expected: 6,
		},
		{
			name:     "remote ahead merges to remote+1",
			local:    2,
			remote:   7,
			expected: 8,
		},
		{
			name:     "remote equal to local merges to remote+1",
			local:    4,
			remote:   4,
			expected: 5,
		},
		{
			name:     "remote on fresh clock",
			local:    0,
			remote:   9,
			expected: 10,
		},
		{
			name:     "zero remote on fresh clock",
			local:    0,
			remote:   0,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			for c.Time() < tt.local {
				c.LocalEvent()
			}

			ts := c.ReceiveEvent(tt.remote)
			if ts != tt.expected {
				t.Errorf("Expected returned timestamp %d, got %d", tt.expected, ts)
			}
			if c.Time() != tt.expected {
				t.Errorf("Expected committed counter %d, got %d", tt.expected, c.Time())
			}
		})
	}
}

func TestLamportClock_ReceiveEvent_Scenario(t *testing.T) {
	c := New()

	c.ReceiveEvent(3)
	if c.Time() != 4 {
		t.Errorf("Expected time 4 after receive(3), got %d", c.Time())
	}

	c.ReceiveEvent(2)
	if c.Time() != 5 {
		t.Errorf("Expected time 5 after receive(2), got %d", c.Time())
	}

	c.ReceiveEvent(1)
	if c.Time() != 6 {
		t.Errorf("Expected time 6 after receive(1), got %d", c.Time())
	}

	c.ReceiveEvent(6)
	if c.Time() != 7 {
		t.Errorf("Expected time 7 after receive(6), got %d", c.Time())
	}
}

func TestLamportClock_IndependentInstances(t *testing.T) {
	a := New()
	b := New()

	a.LocalEvent()
	a.LocalEvent()

	if b.Time() != 0 {
		t.Errorf("Expected independent clock to stay at 0, got %d", b.Time())
	}
}
