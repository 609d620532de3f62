// Package memory models the 6502's 16-bit address space as a Bank: the
// thing a Chip's ADDR/DATA pins resolve against every Tick. A real
// system composes several address ranges (RAM, ROM, mapped I/O) into
// one flat 64KiB map; this package expresses each participant as its
// own Bank and provides Segment to route between them.
package memory

import (
	"fmt"
	"math/rand"
	"time"
)

// Bank is anything that can answer a 6502's address bus. Because A0-A15
// is only 16 bits wide, a Bank backed by fewer locations than that
// aliases rather than faults: addresses outside its own extent wrap
// around instead of producing a bus error, the same way real hardware
// with fewer address lines than the full bus behaves.
type Bank interface {
	// Read returns the data byte addressed by addr.
	Read(addr uint16) uint8
	// Write updates addr with val. A read-only Bank still updates its
	// DatabusVal on a write, since the data bus is driven by whatever
	// byte was being written even when the destination can't store it.
	Write(addr uint16, val uint8)
	// PowerOn resets the Bank to its power-on state. Whether that's
	// zeroed, fixed, or randomized content is implementation specific.
	PowerOn()
	// Parent is the next Bank out in a composition chain, or nil if
	// this Bank is outermost. Some callers need to walk to the
	// outermost Bank to read bus-wide state such as DatabusVal.
	Parent() Bank
	// DatabusVal returns the last byte this Bank drove onto the data
	// bus, from either a Read or a Write.
	DatabusVal() uint8
}

// LatestDatabusVal walks a chain of Banks to the outermost one and
// returns its DatabusVal: the byte left sitting on the shared bus after
// the most recent transfer, which is what an address no Bank claims
// would float to on real hardware.
func LatestDatabusVal(b Bank) uint8 {
	if b.Parent() != nil {
		return LatestDatabusVal(b.Parent())
	}
	return b.DatabusVal()
}

// store is the address-masking backing array shared by ram and rom:
// both are flat, power-of-two-sized buffers addressed with the same
// wraparound rule, differing only in whether a write actually lands.
type store struct {
	data       []uint8
	parent     Bank
	databusVal uint8
	readOnly   bool
}

// mask wraps addr into range for this store's size, implementing the
// aliasing behavior Bank's doc comment describes.
func (s *store) mask(addr uint16) uint16 {
	return addr & uint16(len(s.data)-1)
}

func (s *store) read(addr uint16) uint8 {
	v := s.data[s.mask(addr)]
	s.databusVal = v
	return v
}

func (s *store) write(addr uint16, val uint8) {
	s.databusVal = val
	if s.readOnly {
		return
	}
	s.data[s.mask(addr)] = val
}

func (s *store) Parent() Bank      { return s.parent }
func (s *store) DatabusVal() uint8 { return s.databusVal }

// ram is a read/write Bank over a flat byte slice.
type ram struct{ *store }

// New8BitRAMBank creates a R/W RAM bank of the given size. Size must be
// a power of 2 and no larger than 64KiB; a bank smaller than the full
// address space aliases on Read/Write per Bank's contract.
func New8BitRAMBank(size int, parent Bank) (Bank, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("invalid size: %d must be a power of 2", size)
	}
	if size > 1<<16 {
		return nil, fmt.Errorf("invalid size: %d is bigger than 64k", size)
	}
	return &ram{&store{data: make([]uint8, size), parent: parent}}, nil
}

func (r *ram) Read(addr uint16) uint8       { return r.read(addr) }
func (r *ram) Write(addr uint16, val uint8) { r.write(addr, val) }

// PowerOn randomizes RAM contents, matching real SRAM's undefined
// power-on state rather than pretending the guest sees all zeros.
func (r *ram) PowerOn() {
	rand.Seed(time.Now().UnixNano())
	for i := range r.data {
		r.data[i] = uint8(rand.Intn(256))
	}
}

// rom is a Bank whose Write never mutates its backing store, for
// mapping fixed program images (test ROMs, monitor firmware) into a
// larger address space.
type rom struct{ *store }

// NewROMBank wraps data as a read-only Bank. Addresses are masked with
// len(data)-1 the same way ram's are, so a power-of-2 length aliases
// cleanly; with any other length some addresses inside the image also map
// to the wrong byte.
func NewROMBank(data []uint8, parent Bank) (Bank, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("invalid ROM image: empty")
	}
	d := make([]uint8, len(data))
	copy(d, data)
	return &rom{&store{data: d, parent: parent, readOnly: true}}, nil
}

func (r *rom) Read(addr uint16)       uint8 { return r.read(addr) }
func (r *rom) Write(addr uint16, val uint8) { r.write(addr, val) }
func (r *rom) PowerOn()                     {}

// mapping associates a Bank with the address range it answers, relative
// to the Segment's own address space.
type mapping struct {
	lo, hi uint16 // inclusive
	bank   Bank
}

// segment routes Read/Write across several Banks by address range,
// letting a host compose (say) a ROM at the top of the map and RAM
// everywhere else into one flat 64KiB space without any single Bank
// needing to know about the others.
type segment struct {
	mappings   []mapping
	databusVal uint8
}

// Segment is the concrete type NewMappedSegment returns. It implements
// Bank, dispatching Read/Write to whichever mapped sub-Bank's [lo, hi]
// range (inclusive) contains the requested address; addresses not
// covered by any mapping read as 0 and discard writes.
type Segment struct {
	*segment
}

// NewMappedSegment is the constructor most callers want: it returns the
// concrete Segment type so Map can be called to add Bank ranges before
// the result is handed off (typically to bus.Host) as a plain Bank.
func NewMappedSegment() *Segment {
	return &Segment{&segment{}}
}

// Map adds bank to answer for [lo, hi] (inclusive). Earlier-added
// mappings take priority where ranges overlap.
func (s *Segment) Map(lo, hi uint16, bank Bank) {
	s.mappings = append(s.mappings, mapping{lo, hi, bank})
}

func (s *segment) find(addr uint16) (Bank, uint16) {
	for _, m := range s.mappings {
		if addr >= m.lo && addr <= m.hi {
			return m.bank, m.lo
		}
	}
	return nil, 0
}

func (s *segment) Read(addr uint16) uint8 {
	b, base := s.find(addr)
	if b == nil {
		return 0
	}
	v := b.Read(addr - base)
	s.databusVal = v
	return v
}

func (s *segment) Write(addr uint16, val uint8) {
	s.databusVal = val
	b, base := s.find(addr)
	if b == nil {
		return
	}
	b.Write(addr-base, val)
}

// PowerOn powers on every mapped Bank.
func (s *segment) PowerOn() {
	for _, m := range s.mappings {
		m.bank.PowerOn()
	}
}

// Parent always returns nil: a Segment is meant to be the outermost
// Bank in a memory map.
func (s *segment) Parent() Bank { return nil }

func (s *segment) DatabusVal() uint8 { return s.databusVal }
