// Package io defines the minimal interface a peripheral implements to
// drive the CPU's PORT pins. A host polls Input once per Step and feeds
// the result in as cpu.Pins.PORT; only the low 6 bits are architecturally
// significant, but implementations are free to return a full byte and let
// the host mask it.
package io

// Port8 is an 8-bit input source wired to the CPU's PORT pins.
type Port8 interface {
	// Input returns the port's current input level.
	Input() uint8
}
