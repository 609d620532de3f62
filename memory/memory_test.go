package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRAMBankAliasing(t *testing.T) {
	b, err := New8BitRAMBank(256, nil)
	require.NoError(t, err)

	b.Write(0x00FF, 0x42)
	assert.Equal(t, uint8(0x42), b.Read(0x00FF))
	// 256-byte bank aliases every 256 addresses.
	assert.Equal(t, uint8(0x42), b.Read(0x01FF))
	assert.Equal(t, uint8(0x42), b.DatabusVal())
}

func TestRAMBankRejectsOversize(t *testing.T) {
	_, err := New8BitRAMBank(1<<17, nil)
	assert.Error(t, err)
}

func TestROMBankIgnoresWrites(t *testing.T) {
	rom, err := NewROMBank([]uint8{0xAA, 0xBB, 0xCC, 0xDD}, nil)
	require.NoError(t, err)

	assert.Equal(t, uint8(0xBB), rom.Read(1))
	rom.Write(1, 0xFF)
	assert.Equal(t, uint8(0xBB), rom.Read(1), "ROM write must be a no-op")
}

func TestROMBankRejectsEmpty(t *testing.T) {
	_, err := NewROMBank(nil, nil)
	assert.Error(t, err)
}

func TestSegmentRoutesByRange(t *testing.T) {
	ram, err := New8BitRAMBank(0x8000, nil)
	require.NoError(t, err)
	rom, err := NewROMBank(make([]uint8, 0x8000), nil)
	require.NoError(t, err)

	seg := NewMappedSegment()
	seg.Map(0x0000, 0x7FFF, ram)
	seg.Map(0x8000, 0xFFFF, rom)

	seg.Write(0x0010, 0x77)
	assert.Equal(t, uint8(0x77), seg.Read(0x0010))

	seg.Write(0x8010, 0x99) // no-op, lands in ROM
	assert.Equal(t, uint8(0x00), seg.Read(0x8010))
}

func TestSegmentUnmappedReadsZero(t *testing.T) {
	seg := NewMappedSegment()
	assert.Equal(t, uint8(0), seg.Read(0x1234))
	seg.Write(0x1234, 0xFF) // must not panic
}

func TestLatestDatabusValWalksParentChain(t *testing.T) {
	outer, err := New8BitRAMBank(16, nil)
	require.NoError(t, err)
	inner, err := New8BitRAMBank(16, outer)
	require.NoError(t, err)

	outer.Write(0, 0x11)
	inner.Write(0, 0x22)

	assert.Equal(t, uint8(0x11), LatestDatabusVal(inner))
}
