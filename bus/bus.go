// Package bus provides a minimal host that drives a cpu.Chip over its pin
// interface: answering reads/writes against a memory.Bank and publishing
// the address of the most recently fetched opcode for an observer (a
// debugger, a monitor UI) running on a different goroutine.
package bus

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/pinbus/mos6502/cpu"
	"github.com/pinbus/mos6502/io"
	"github.com/pinbus/mos6502/irq"
	"github.com/pinbus/mos6502/memory"
)

// Host owns one CPU core, one memory map, and any number of interrupt
// sources, and is responsible for completing the pin contract the core
// cannot satisfy on its own: supplying DATA on reads, capturing DATA on
// writes, and feeding IRQ/NMI from whatever peripherals are wired in.
type Host struct {
	CPU *cpu.Chip
	RAM memory.Bank

	// IRQSources are level sources: polled (in order) on every Step, and
	// IRQ stays asserted for as long as any of them reports Raised. The
	// source itself is responsible for eventually clearing its own
	// condition.
	IRQSources []irq.LevelSource

	// NMISources are edge sources: the first one found Raised on a Step
	// has its edge consumed immediately via Acknowledge, so the same
	// falling edge can't be mistaken for a second one on the next cycle.
	NMISources []irq.EdgeSource

	// PortInput, if set, is polled every Step to drive the CPU's PORT
	// pins (low 6 bits significant); nil leaves PORT at zero.
	PortInput io.Port8

	pins cpu.Pins

	// opAddr mirrors cpu.Chip.OpAddr but is safe to read from another
	// goroutine without synchronizing with the Step loop.
	opAddr atomic.Uint32
}

// NewHost wires up a Host around an already-constructed Chip and RAM. The
// caller is expected to have called CPU.PowerOn (or be mid-reset) before
// the first Step.
func NewHost(c *cpu.Chip, ram memory.Bank) *Host {
	h := &Host{CPU: c, RAM: ram}
	h.pins = c.Pins()
	return h
}

// PowerOn drives the CPU's reset microprogram against RAM until RES
// deasserts, so the reset and interrupt vectors are read from the real
// memory map instead of the zeroed state cpu.Chip.PowerOn assumes.
func (h *Host) PowerOn() {
	h.pins = cpu.Pins{RES: true, RW: true, SYNC: true}
	for h.pins.RES {
		h.Step()
	}
}

// Step runs exactly one clock edge: it resolves DATA for the pending read
// (or commits the pending write from the previous edge), ticks the CPU,
// and updates OpAddr when the returned pins indicate a fresh SYNC fetch.
func (h *Host) Step() {
	in := h.pins
	in.IRQ = false
	in.NMI = false
	for _, s := range h.IRQSources {
		if s.Raised() {
			in.IRQ = true
			break
		}
	}
	for _, s := range h.NMISources {
		if s.Raised() {
			in.NMI = true
			s.Acknowledge()
			break
		}
	}
	if h.PortInput != nil {
		in.PORT = h.PortInput.Input() & 0x3F
	}

	if in.RW {
		in.DATA = h.RAM.Read(in.ADDR)
	} else {
		h.RAM.Write(in.ADDR, in.DATA)
	}

	out := h.CPU.Tick(in)
	h.pins = out
	if out.SYNC {
		h.opAddr.Store(uint32(h.CPU.OpAddr()))
	}
}

// StepInstruction runs Step repeatedly until the CPU asserts SYNC for the
// next opcode fetch, i.e. until the current instruction retires.
func (h *Host) StepInstruction() {
	h.Step()
	for !h.pins.SYNC {
		h.Step()
	}
}

// OpAddr returns the address the CPU most recently fetched an opcode from.
// Safe to call from any goroutine.
func (h *Host) OpAddr() uint16 { return uint16(h.opAddr.Load()) }

// Snapshot is a read-only copy of CPU state, safe to hand to a UI goroutine
// without exposing a live pointer into the CPU's internals.
type Snapshot struct {
	PC     uint16
	SP     uint8
	A, X, Y uint8
	P      uint8
	OpAddr uint16
}

// Snapshot captures the current register file. It is only safe to call
// between Step calls on the same goroutine that drives Run/Step; a
// concurrently running monitor should instead read OpAddr (which is
// synchronized) and treat register values as a looser, best-effort read.
func (h *Host) Snapshot() Snapshot {
	return Snapshot{
		PC:     h.CPU.PC(),
		SP:     h.CPU.SP(),
		A:      h.CPU.A(),
		X:      h.CPU.X(),
		Y:      h.CPU.Y(),
		P:      h.CPU.P(),
		OpAddr: h.CPU.OpAddr(),
	}
}

// Run drives Step in a loop until ctx is canceled or stop reports true,
// modeling the dedicated CPU-clock thread a real host would run. stepMode,
// when true, pauses the loop (spinning on ctx) until a caller flips it back
// off — a debugger's "halt and single-step" control.
func (h *Host) Run(ctx context.Context, stepMode, stop *atomic.Bool) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if stop.Load() {
			return nil
		}
		if stepMode.Load() {
			continue
		}
		h.Step()
	}
}

// RunWithObserver runs the CPU-clock loop (Run) and observe concurrently
// and returns once both have returned. observe is a debugger UI's polling
// loop that reads OpAddr/Snapshot on its own schedule rather than
// synchronizing with every Step. The context both receive is canceled as
// soon as either returns a non-nil error; a Run that ends through stop
// returns nil and leaves observe running until it returns or ctx ends.
// The returned error is the first non-nil error either of them returned.
func (h *Host) RunWithObserver(ctx context.Context, stepMode, stop *atomic.Bool, observe func(context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return h.Run(gctx, stepMode, stop)
	})
	g.Go(func() error {
		return observe(gctx)
	})
	return g.Wait()
}
