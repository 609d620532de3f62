package bus

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pinbus/mos6502/cpu"
	"github.com/pinbus/mos6502/irq"
	"github.com/pinbus/mos6502/memory"
	"github.com/stretchr/testify/require"
)

type fixedPort uint8

func (f fixedPort) Input() uint8 { return uint8(f) }

func newTestHost(t *testing.T, program map[uint16]uint8) *Host {
	t.Helper()
	ram, err := memory.New8BitRAMBank(1<<16, nil)
	require.NoError(t, err)
	ram.Write(0xFFFC, 0x00)
	ram.Write(0xFFFD, 0x80)
	for addr, v := range program {
		ram.Write(addr, v)
	}

	c := cpu.New()
	h := NewHost(c, ram)
	h.PowerOn()
	return h
}

func TestStepInstructionRunsOneOpcode(t *testing.T) {
	h := newTestHost(t, map[uint16]uint8{
		0x8000: 0xA9, 0x8001: 0x55, // LDA #$55
		0x8002: 0xEA, // NOP
	})
	h.StepInstruction()
	if got := h.Snapshot().A; got != 0x55 {
		t.Fatalf("A after LDA #$55 = %#x, want 0x55", got)
	}
}

func TestOpAddrTracksFetchedInstruction(t *testing.T) {
	h := newTestHost(t, map[uint16]uint8{
		0x8000: 0xEA, // NOP
		0x8001: 0xEA, // NOP
	})
	h.StepInstruction()
	if got, want := h.OpAddr(), uint16(0x8000); got != want {
		t.Fatalf("OpAddr after first NOP = %#x, want %#x", got, want)
	}
	h.StepInstruction()
	if got, want := h.OpAddr(), uint16(0x8001); got != want {
		t.Fatalf("OpAddr after second NOP = %#x, want %#x", got, want)
	}
}

func TestIRQSourcePropagatesToCPU(t *testing.T) {
	h := newTestHost(t, map[uint16]uint8{
		0x8000: 0xEA, // NOP
	})
	h.RAM.Write(0xFFFE, 0x00)
	h.RAM.Write(0xFFFF, 0x90)
	h.RAM.Write(0x9000, 0xEA)

	tm := irq.NewTimer(1)
	tm.Tick() // the timer is clocked by its own peripheral logic, not by Host
	h.IRQSources = append(h.IRQSources, tm)

	h.StepInstruction() // IRQ from the already-raised timer latched at the NOP's fetch, serviced as BRK
	h.StepInstruction() // the handler's NOP at $9000 retires

	if got, want := h.Snapshot().PC, uint16(0x9001); got != want {
		t.Fatalf("PC after serviced IRQ and one handler instruction = %#x, want %#x", got, want)
	}
}

func TestPortInputIsMaskedToSixBits(t *testing.T) {
	h := newTestHost(t, map[uint16]uint8{0x8000: 0xEA})
	h.PortInput = fixedPort(0xFF)
	h.Step()
	if got, want := h.pins.PORT, uint8(0x3F); got != want {
		t.Fatalf("pins.PORT = %#x, want %#x", got, want)
	}
}

func TestRunStopsOnStopFlag(t *testing.T) {
	h := newTestHost(t, map[uint16]uint8{0x8000: 0xEA})
	var stepMode, stop atomic.Bool
	stop.Store(true)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := h.Run(ctx, &stepMode, &stop); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestRunWithObserverStopsTogether(t *testing.T) {
	h := newTestHost(t, map[uint16]uint8{0x8000: 0xEA})
	var stepMode, stop atomic.Bool

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	observed := false
	err := h.RunWithObserver(ctx, &stepMode, &stop, func(octx context.Context) error {
		<-octx.Done()
		observed = true
		return octx.Err()
	})
	if err == nil {
		t.Fatal("expected error once the shared context timed out")
	}
	if !observed {
		t.Fatal("observer goroutine never saw cancellation")
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	h := newTestHost(t, map[uint16]uint8{0x8000: 0xEA})
	var stepMode, stop atomic.Bool

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := h.Run(ctx, &stepMode, &stop); err == nil {
		t.Fatal("expected error from canceled context")
	}
}
