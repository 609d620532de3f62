package irq

import "testing"

func TestTimerRaisesEveryPeriod(t *testing.T) {
	tm := NewTimer(4)
	for i := 0; i < 3; i++ {
		tm.Tick()
		if tm.Raised() {
			t.Fatalf("Raised early after %d ticks", i+1)
		}
	}
	tm.Tick()
	if !tm.Raised() {
		t.Fatal("Raised false after Period ticks elapsed")
	}
}

func TestTimerAcknowledgeClearsPending(t *testing.T) {
	tm := NewTimer(1)
	tm.Tick()
	if !tm.Raised() {
		t.Fatal("expected Raised after single tick with Period 1")
	}
	tm.Acknowledge()
	if tm.Raised() {
		t.Fatal("Raised still true after Acknowledge")
	}
}

func TestTimerZeroPeriodNeverRaises(t *testing.T) {
	tm := NewTimer(0)
	for i := 0; i < 100; i++ {
		tm.Tick()
	}
	if tm.Raised() {
		t.Fatal("Period 0 timer must never raise")
	}
}

func TestTimerRollsOverRepeatedly(t *testing.T) {
	tm := NewTimer(2)
	tm.Tick()
	tm.Tick()
	if !tm.Raised() {
		t.Fatal("expected Raised after first period")
	}
	tm.Acknowledge()
	tm.Tick()
	if tm.Raised() {
		t.Fatal("Raised true mid-period after rollover")
	}
	tm.Tick()
	if !tm.Raised() {
		t.Fatal("expected Raised after second period")
	}
}
