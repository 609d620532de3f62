// Package irq defines the interfaces peripherals implement to assert a
// 6502 core's interrupt pins. IRQ and NMI are electrically different:
// IRQ is level-sensitive (the line can be held low across many cycles
// and is serviced whenever it's unmasked), NMI is edge-triggered (only
// the high-to-low transition matters, and it must be consumed exactly
// once). Collapsing both onto one generic Sender would let a level
// source work by accident and an edge source misbehave, so the two are
// kept as separate interfaces.
package irq

// LevelSource is an IRQ peripheral. Raised may be queried on every
// cycle; it simply reports the current state of the line. The
// peripheral itself owns clearing the condition (typically a status
// register read or an explicit acknowledge on the concrete type) —
// a bus host is not required to consume anything just for polling it.
type LevelSource interface {
	// Raised reports whether the line is currently held low.
	Raised() bool
}

// EdgeSource is an NMI peripheral. The CPU core only cares about the
// falling edge, so once a host observes Raised true it must call
// Acknowledge before the next cycle or the same edge will appear to
// fire again indefinitely.
type EdgeSource interface {
	// Raised reports whether an unacknowledged falling edge is pending.
	Raised() bool
	// Acknowledge consumes the pending edge.
	Acknowledge()
}
