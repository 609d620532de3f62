package cpu

// Each addrFunc below mirrors one 6502 addressing mode's micro-sequence,
// driven by c.ticks. They set c.pins.ADDR for the byte the host should
// supply on the following edge and set c.addressingDone on the tick that
// resolves the final operand/effective address, which is also the tick the
// paired opFunc first runs (operation and addressing overlap by one tick
// for most modes).

// addrImp is implicit/accumulator addressing: there is no operand to fetch,
// so addressing is "done" immediately.
func addrImp(c *Chip) { c.addressingDone = true }

// addrRel marks relative addressing done immediately; all timing for
// branches (including the operand fetch) lives in the shared branch
// handler in control.go since branch cycle count depends on whether the
// branch is taken and whether it crosses a page.
func addrRel(c *Chip) { c.addressingDone = true }

// addrJsr marks JSR's addressing done immediately; like branches, JSR's
// timing is hand-coded entirely in its opFunc because it interleaves
// operand fetch with stack pushes.
func addrJsr(c *Chip) { c.addressingDone = true }

func addrImm(c *Chip) {
	if c.ticks == 0 {
		c.pins.ADDR = c.reg.PC
		c.reg.PC++
		c.addressingDone = true
	}
}

func addrZpg(c *Chip) {
	switch c.ticks {
	case 0:
		c.pins.ADDR = c.reg.PC
		c.reg.PC++
	case 1:
		c.pins.ADDR = uint16(c.pins.DATA)
		c.addressingDone = true
	}
}

func addrZpgX(c *Chip) {
	switch c.ticks {
	case 0:
		c.pins.ADDR = c.reg.PC
		c.reg.PC++
	case 1:
		c.ar = uint16(c.pins.DATA)
		c.pins.ADDR = c.ar
	case 2:
		c.pins.ADDR = (c.ar + uint16(c.reg.X)) & 0xFF
		c.addressingDone = true
	}
}

func addrZpgY(c *Chip) {
	switch c.ticks {
	case 0:
		c.pins.ADDR = c.reg.PC
		c.reg.PC++
	case 1:
		c.ar = uint16(c.pins.DATA)
		c.pins.ADDR = c.ar
	case 2:
		c.pins.ADDR = (c.ar + uint16(c.reg.Y)) & 0xFF
		c.addressingDone = true
	}
}

func addrAbs(c *Chip) {
	switch c.ticks {
	case 0:
		c.pins.ADDR = c.reg.PC
		c.reg.PC++
	case 1:
		c.pins.ADDR = c.reg.PC
		c.reg.PC++
		c.ar = uint16(c.pins.DATA)
	case 2:
		c.pins.ADDR = uint16(c.pins.DATA)<<8 + c.ar
		c.addressingDone = true
	}
}

// addrAbsX and addrAbsY are the indexed absolute modes. Both speculatively
// compute the effective address without crossing a page first; if no page
// boundary was crossed they skip the extra read cycle, otherwise they take
// one more tick to redo the read with the corrected high byte.
func addrAbsX(c *Chip) { addrAbsIndexed(c, c.reg.X) }
func addrAbsY(c *Chip) { addrAbsIndexed(c, c.reg.Y) }

func addrAbsIndexed(c *Chip, index uint8) {
	switch c.ticks {
	case 0:
		c.pins.ADDR = c.reg.PC
		c.reg.PC++
	case 1:
		c.pins.ADDR = c.reg.PC
		c.reg.PC++
		c.ar = uint16(c.pins.DATA)
	case 2:
		c.ar |= uint16(c.pins.DATA) << 8
		c.pins.ADDR = (c.ar & 0xFF00) + ((c.ar + uint16(index)) & 0xFF)
		if (c.ar >> 8) >= ((c.ar + uint16(index)) >> 8) {
			c.ticks++
			c.addressingDone = true
		}
	case 3:
		c.pins.ADDR = c.ar + uint16(index)
		c.addressingDone = true
	}
}

func addrIndX(c *Chip) {
	switch c.ticks {
	case 0:
		c.pins.ADDR = c.reg.PC
		c.reg.PC++
	case 1:
		c.ar = uint16(c.pins.DATA)
		c.pins.ADDR = c.ar
	case 2:
		c.ar = (c.ar + uint16(c.reg.X)) & 0xFF
		c.pins.ADDR = c.ar
	case 3:
		c.pins.ADDR = (c.ar + 1) & 0xFF
		c.ar = uint16(c.pins.DATA)
	case 4:
		c.pins.ADDR = uint16(c.pins.DATA)<<8 + c.ar
		c.addressingDone = true
	}
}

func addrIndY(c *Chip) {
	switch c.ticks {
	case 0:
		c.pins.ADDR = c.reg.PC
		c.reg.PC++
	case 1:
		c.ar = uint16(c.pins.DATA)
		c.pins.ADDR = c.ar
	case 2:
		c.pins.ADDR = (c.ar + 1) & 0xFF
		c.ar = uint16(c.pins.DATA)
	case 3:
		c.ar |= uint16(c.pins.DATA) << 8
		c.pins.ADDR = (c.ar & 0xFF00) + ((c.ar + uint16(c.reg.Y)) & 0xFF)
		if (c.ar >> 8) >= ((c.ar + uint16(c.reg.Y)) >> 8) {
			c.ticks++
			c.addressingDone = true
		}
	case 4:
		c.pins.ADDR = c.ar + uint16(c.reg.Y)
		c.addressingDone = true
	}
}

// addrInd is absolute indirect, used only by JMP. It reproduces the classic
// 6502 page-wrap bug: if the pointer's low byte is 0xFF, the high byte of
// the target is fetched from the start of the same page rather than the
// next one.
func addrInd(c *Chip) {
	switch c.ticks {
	case 0:
		c.pins.ADDR = c.reg.PC
		c.reg.PC++
	case 1:
		c.pins.ADDR = c.reg.PC
		c.reg.PC++
		c.ar = uint16(c.pins.DATA)
	case 2:
		c.ar |= uint16(c.pins.DATA) << 8
		c.pins.ADDR = c.ar
	case 3:
		c.pins.ADDR = (c.ar & 0xFF00) + ((c.ar + 1) & 0xFF)
		c.ar = uint16(c.pins.DATA)
	case 4:
		c.pins.ADDR = uint16(c.pins.DATA)<<8 + c.ar
		c.addressingDone = true
	}
}
