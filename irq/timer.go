package irq

// Timer is a simple divide-down interrupt source: it asserts Raised after
// every Period calls to Tick. Its pending flag only drops on an explicit
// Acknowledge, which makes it usable as either kind of source: wired as a
// LevelSource, Raised just stays true until something acknowledges it
// (e.g. a status-register read); wired as an EdgeSource (NMI), a bus host
// must call Acknowledge as soon as it latches Raised so the rollover
// isn't mistaken for a second falling edge.
type Timer struct {
	Period uint32

	count   uint32
	pending bool
}

// NewTimer returns a Timer that raises every period calls to Tick. A
// period of 0 disables the timer (Raised never returns true).
func NewTimer(period uint32) *Timer {
	return &Timer{Period: period}
}

// Tick advances the internal counter, setting pending once Period calls
// have elapsed since construction or the last rollover.
func (t *Timer) Tick() {
	if t.Period == 0 {
		return
	}
	t.count++
	if t.count >= t.Period {
		t.count = 0
		t.pending = true
	}
}

// Raised implements LevelSource and EdgeSource.
func (t *Timer) Raised() bool { return t.pending }

// Acknowledge clears the pending interrupt. A bus host should call this
// once it has dispatched the timer's IRQ to the CPU.
func (t *Timer) Acknowledge() { t.pending = false }
