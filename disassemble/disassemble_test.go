package disassemble

import (
	"testing"

	"github.com/pinbus/mos6502/memory"
	"github.com/stretchr/testify/require"
)

func newBank(t *testing.T, contents map[uint16]uint8) memory.Bank {
	t.Helper()
	b, err := memory.New8BitRAMBank(1<<16, nil)
	require.NoError(t, err)
	for addr, v := range contents {
		b.Write(addr, v)
	}
	return b
}

func TestStepEachAddressingMode(t *testing.T) {
	tests := []struct {
		name    string
		mem     map[uint16]uint8
		want    string
		wantLen int
	}{
		{"implied", map[uint16]uint8{0x1000: 0xEA}, "$1000: NOP", 1},
		{"accumulator", map[uint16]uint8{0x1000: 0x0A}, "$1000: ASL A", 1},
		{"immediate", map[uint16]uint8{0x1000: 0xA9, 0x1001: 0x42}, "$1000: LDA #$42", 2},
		{"zeropage", map[uint16]uint8{0x1000: 0xA5, 0x1001: 0x10}, "$1000: LDA $10", 2},
		{"zeropage,X", map[uint16]uint8{0x1000: 0xB5, 0x1001: 0x10}, "$1000: LDA $10,X", 2},
		{"zeropage,Y", map[uint16]uint8{0x1000: 0x96, 0x1001: 0x10}, "$1000: STX $10,Y", 2},
		{"indirect,X", map[uint16]uint8{0x1000: 0xA1, 0x1001: 0x20}, "$1000: LDA ($20,X)", 2},
		{"indirect,Y", map[uint16]uint8{0x1000: 0xB1, 0x1001: 0x20}, "$1000: LDA ($20),Y", 2},
		{"absolute", map[uint16]uint8{0x1000: 0xAD, 0x1001: 0x34, 0x1002: 0x12}, "$1000: LDA $1234", 3},
		{"absolute,X", map[uint16]uint8{0x1000: 0xBD, 0x1001: 0x34, 0x1002: 0x12}, "$1000: LDA $1234,X", 3},
		{"absolute,Y", map[uint16]uint8{0x1000: 0xB9, 0x1001: 0x34, 0x1002: 0x12}, "$1000: LDA $1234,Y", 3},
		{"indirect", map[uint16]uint8{0x1000: 0x6C, 0x1001: 0x34, 0x1002: 0x12}, "$1000: JMP ($1234)", 3},
		{"bad opcode", map[uint16]uint8{0x1000: 0x02}, "$1000: BAD", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newBank(t, tc.mem)
			got, n := Step(0x1000, b)
			if got != tc.want {
				t.Errorf("Step() text = %q, want %q", got, tc.want)
			}
			if n != tc.wantLen {
				t.Errorf("Step() len = %d, want %d", n, tc.wantLen)
			}
		})
	}
}

func TestStepRelativeComputesTarget(t *testing.T) {
	b := newBank(t, map[uint16]uint8{0x1000: 0xF0, 0x1001: 0x05})
	got, n := Step(0x1000, b)
	if want := "$1000: BEQ $1007"; got != want {
		t.Errorf("Step() = %q, want %q", got, want)
	}
	if n != 2 {
		t.Errorf("Step() len = %d, want 2", n)
	}
}

func TestStepRelativeBackward(t *testing.T) {
	b := newBank(t, map[uint16]uint8{0x1000: 0xD0, 0x1001: 0xFB}) // -5
	got, _ := Step(0x1000, b)
	if want := "$1000: BNE $0FFD"; got != want {
		t.Errorf("Step() = %q, want %q", got, want)
	}
}
