package cpu

import "testing"

func TestZeroPageXWrapsWithinPage(t *testing.T) {
	h := newHarness(t)
	h.mem[0xFFFC] = 0x00
	h.mem[0xFFFD] = 0x80
	h.mem[0x8000] = 0xA2 // LDX #$FF
	h.mem[0x8001] = 0xFF
	h.mem[0x8002] = 0xB5 // LDA $80,X -> wraps to $7F
	h.mem[0x8003] = 0x80
	h.mem[0x007F] = 0x55
	h.powerOn()
	h.runToNextFetch() // LDX
	h.runToNextFetch() // LDA $80,X

	if got, want := h.c.A(), uint8(0x55); got != want {
		t.Fatalf("A after LDA $80,X (wrapped) = %#x, want %#x", got, want)
	}
}

func TestAbsoluteXPageCrossCostsExtraCycle(t *testing.T) {
	h := newHarness(t)
	h.mem[0xFFFC] = 0x00
	h.mem[0xFFFD] = 0x80
	h.mem[0x8000] = 0xA2 // LDX #$01
	h.mem[0x8001] = 0x01
	h.mem[0x8002] = 0xBD // LDA $80FF,X -> crosses into $8100
	h.mem[0x8003] = 0xFF
	h.mem[0x8004] = 0x80
	h.mem[0x8100] = 0x42
	h.powerOn()
	h.runToNextFetch() // LDX

	start := h.c.TicksTotal()
	h.runToNextFetch() // LDA, page-crossing
	if got := h.c.TicksTotal() - start; got != 5 {
		t.Errorf("page-crossing absolute,X took %d ticks, want 5", got)
	}
	if got, want := h.c.A(), uint8(0x42); got != want {
		t.Fatalf("A after page-crossing LDA = %#x, want %#x", got, want)
	}
}

func TestAbsoluteXSamePageSkipsExtraCycle(t *testing.T) {
	h := newHarness(t)
	h.mem[0xFFFC] = 0x00
	h.mem[0xFFFD] = 0x80
	h.mem[0x8000] = 0xA2 // LDX #$01
	h.mem[0x8001] = 0x01
	h.mem[0x8002] = 0xBD // LDA $9000,X -> stays in page
	h.mem[0x8003] = 0x00
	h.mem[0x8004] = 0x90
	h.mem[0x9001] = 0xAB
	h.powerOn()
	h.runToNextFetch() // LDX

	start := h.c.TicksTotal()
	h.runToNextFetch() // LDA, same page
	if got := h.c.TicksTotal() - start; got != 4 {
		t.Errorf("same-page absolute,X took %d ticks, want 4", got)
	}
	if got, want := h.c.A(), uint8(0xAB); got != want {
		t.Fatalf("A after same-page LDA = %#x, want %#x", got, want)
	}
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	h := newHarness(t)
	h.mem[0xFFFC] = 0x00
	h.mem[0xFFFD] = 0x80
	h.mem[0x8000] = 0x6C // JMP ($10FF): pointer's low byte is 0xFF
	h.mem[0x8001] = 0xFF
	h.mem[0x8002] = 0x10
	h.mem[0x10FF] = 0x34 // target low byte
	h.mem[0x1000] = 0x12 // correctly-wrapped high byte source ($1000, not $1100)
	h.mem[0x1100] = 0x99 // must NOT be read: the unwrapped high byte source
	h.powerOn()

	h.runToNextFetch() // JMP indirect
	if got, want := h.c.PC(), uint16(0x1234); got != want {
		t.Fatalf("PC after indirect JMP with wrapped pointer = %#x, want %#x (page-wrap bug)", got, want)
	}
}
