package cpu

// opBRK implements the BRK instruction and doubles as the CPU's single
// interrupt-service routine: hardware NMI/IRQ are delivered by forcing
// opcode 0x00 at the next SYNC (see Tick in cpu.go), so this same 7-tick
// sequence handles BRK, IRQ and NMI. Its RES branches (suppressed stack
// writes, reset vector) are never taken: Tick hands every edge with RES
// high to tickReset, and the interrupt hijack clears RES.
func opBRK(c *Chip) {
	switch c.ticks {
	case 0:
		c.pins.ADDR = c.reg.PC
	case 1:
		if !c.irqLatched && !c.nmiLatched {
			c.reg.PC++
			c.s.SetBreak(true)
		}
		c.pins.ADDR = stackBase + uint16(c.reg.SP)
		c.reg.SP--
		c.pins.DATA = uint8(c.reg.PC >> 8)
		if !c.pins.RES {
			c.pins.RW = false
		}
	case 2:
		c.pins.ADDR = stackBase + uint16(c.reg.SP)
		c.reg.SP--
		c.pins.DATA = uint8(c.reg.PC & 0xFF)
		if !c.pins.RES {
			c.pins.RW = false
		}
	case 3:
		c.pins.ADDR = stackBase + uint16(c.reg.SP)
		c.reg.SP--
		c.pins.DATA = c.s.Byte()
		if c.pins.RES {
			c.ar = rstVectorLo
		} else {
			c.pins.RW = false
			if c.nmiLatched {
				c.ar = nmiVectorLo
			} else {
				c.ar = irqVectorLo
			}
		}
	case 4:
		c.pins.ADDR = c.ar
		c.ar++
		c.s.SetIRQDisable(true)
		c.s.SetBreak(true)
		c.nmiLatched = false
		c.irqLatched = false
	case 5:
		c.pins.ADDR = c.ar
		c.ar = uint16(c.pins.DATA)
	case 6:
		c.reg.PC = uint16(c.pins.DATA)<<8 + c.ar
	}
}

func opPHP(c *Chip) {
	switch c.ticks {
	case 0:
		c.pins.ADDR = c.reg.PC
	case 1:
		c.pins.ADDR = stackBase + uint16(c.reg.SP)
		c.reg.SP--
		c.pins.DATA = c.s.Byte()
		c.pins.RW = false
	}
}

func opPHA(c *Chip) {
	switch c.ticks {
	case 0:
		c.pins.ADDR = c.reg.PC
	case 1:
		c.pins.ADDR = stackBase + uint16(c.reg.SP)
		c.reg.SP--
		c.pins.DATA = c.reg.A
		c.pins.RW = false
	}
}

func opPLP(c *Chip) {
	switch c.ticks {
	case 0:
		c.pins.ADDR = c.reg.PC
	case 1:
		c.reg.SP++
		c.pins.ADDR = stackBase + uint16(c.reg.SP)
	case 2:
		c.pins.ADDR = stackBase + uint16(c.reg.SP)
	case 3:
		c.s.FromByte(c.pins.DATA)
	}
}

func opPLA(c *Chip) {
	switch c.ticks {
	case 0:
		c.pins.ADDR = c.reg.PC
	case 1:
		c.reg.SP++
		c.pins.ADDR = stackBase + uint16(c.reg.SP)
	case 2:
		c.pins.ADDR = stackBase + uint16(c.reg.SP)
	case 3:
		c.reg.A = c.pins.DATA
		c.s.updateNZ(c.reg.A)
	}
}

func opJSR(c *Chip) {
	switch c.ticks {
	case 0:
		c.pins.ADDR = c.reg.PC
		c.reg.PC++
	case 1:
		c.pins.ADDR = stackBase + uint16(c.reg.SP)
		c.ar = uint16(c.pins.DATA)
	case 2:
		c.pins.ADDR = stackBase + uint16(c.reg.SP)
		c.reg.SP--
		c.pins.DATA = uint8(c.reg.PC >> 8)
		c.pins.RW = false
	case 3:
		c.pins.ADDR = stackBase + uint16(c.reg.SP)
		c.reg.SP--
		c.pins.DATA = uint8(c.reg.PC & 0xFF)
		c.pins.RW = false
	case 4:
		c.pins.ADDR = c.reg.PC
	case 5:
		c.reg.PC = uint16(c.pins.DATA)<<8 + c.ar
	}
}

func opJMP(c *Chip) {
	if c.ticksFunc == 0 {
		c.reg.PC = uint16(c.pins.DATA)<<8 + c.ar
	}
}

func opRTI(c *Chip) {
	switch c.ticks {
	case 0:
		c.pins.ADDR = c.reg.PC
	case 1:
		c.reg.SP++
		c.pins.ADDR = stackBase + uint16(c.reg.SP)
	case 2:
		c.reg.SP++
		c.pins.ADDR = stackBase + uint16(c.reg.SP)
	case 3:
		c.reg.SP++
		c.pins.ADDR = stackBase + uint16(c.reg.SP)
		c.s.FromByte(c.pins.DATA)
	case 4:
		c.pins.ADDR = stackBase + uint16(c.reg.SP)
		c.ar = uint16(c.pins.DATA)
	case 5:
		c.reg.PC = uint16(c.pins.DATA)<<8 + c.ar
	}
}

func opRTS(c *Chip) {
	switch c.ticks {
	case 0:
		c.pins.ADDR = c.reg.PC
	case 1:
		c.reg.SP++
		c.pins.ADDR = stackBase + uint16(c.reg.SP)
	case 2:
		c.reg.SP++
		c.pins.ADDR = stackBase + uint16(c.reg.SP)
		c.ar = uint16(c.pins.DATA)
	case 3:
		c.pins.ADDR = stackBase + uint16(c.reg.SP)
	case 4:
		c.reg.PC = uint16(c.pins.DATA)<<8 + c.ar
		c.pins.ADDR = c.reg.PC
		c.reg.PC++
	}
}

// doBranch is the shared micro-sequence behind every conditional branch.
// skip is true when the branch is NOT taken. Ticks are force-advanced to
// the end of the sequence as soon as the outcome is known, so untaken
// branches cost 2 cycles, taken-same-page branches cost 3, and taken
// cross-page branches cost the full 4 the dispatch table budgets for.
func doBranch(c *Chip, skip bool) {
	switch c.ticks {
	case 0:
		c.pins.ADDR = c.reg.PC
		c.reg.PC++
	case 1:
		c.pins.ADDR = c.reg.PC
		c.ar = c.reg.PC + uint16(int8(c.pins.DATA))
		if skip {
			c.ticks = 4
			return
		}
	case 2:
		c.pins.ADDR = (c.reg.PC & 0xFF00) + (c.ar & 0xFF)
		if c.reg.PC&0xFF00 == c.ar&0xFF00 {
			c.reg.PC = c.ar
			c.ticks = 4
			return
		}
	case 3:
		c.reg.PC = c.ar
	}
}

func opBPL(c *Chip) { doBranch(c, c.s.Negative()) }
func opBMI(c *Chip) { doBranch(c, !c.s.Negative()) }
func opBVC(c *Chip) { doBranch(c, c.s.Overflow()) }
func opBVS(c *Chip) { doBranch(c, !c.s.Overflow()) }
func opBCC(c *Chip) { doBranch(c, c.s.Carry()) }
func opBCS(c *Chip) { doBranch(c, !c.s.Carry()) }
func opBNE(c *Chip) { doBranch(c, c.s.Zero()) }
func opBEQ(c *Chip) { doBranch(c, !c.s.Zero()) }
