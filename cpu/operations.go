package cpu

// badOp handles every undocumented opcode byte as a fixed, well-defined
// 2-cycle no-op. Real NMOS silicon does wildly different (and in a few
// cases destructive) things across this byte range; reproducing that is
// out of scope here, so every one of them collapses to the same harmless
// stall.
func badOp(c *Chip) {}

// Accumulator/memory compute ops: read a byte through addressing, combine
// it with A on the single tick that follows (ticksFunc==0 is the tick that
// overlapped the last addressing cycle and carries no DATA yet for these).

func opORA(c *Chip) {
	if c.ticksFunc == 1 {
		c.reg.A |= c.pins.DATA
		c.s.updateNZ(c.reg.A)
	}
}

func opAND(c *Chip) {
	if c.ticksFunc == 1 {
		c.reg.A &= c.pins.DATA
		c.s.updateNZ(c.reg.A)
	}
}

func opEOR(c *Chip) {
	if c.ticksFunc == 1 {
		c.reg.A ^= c.pins.DATA
		c.s.updateNZ(c.reg.A)
	}
}

func opADC(c *Chip) {
	if c.ticksFunc == 1 {
		c.adcFlags(c.pins.DATA)
	}
}

func opSBC(c *Chip) {
	if c.ticksFunc == 1 {
		c.sbcFlags(c.pins.DATA)
	}
}

func opCMP(c *Chip) {
	if c.ticksFunc == 1 {
		c.cmpFlags(c.reg.A, c.pins.DATA)
	}
}

func opCPX(c *Chip) {
	if c.ticksFunc == 1 {
		c.cmpFlags(c.reg.X, c.pins.DATA)
	}
}

func opCPY(c *Chip) {
	if c.ticksFunc == 1 {
		c.cmpFlags(c.reg.Y, c.pins.DATA)
	}
}

func opBIT(c *Chip) {
	if c.ticksFunc == 1 {
		c.andFlags(c.pins.DATA)
	}
}

func opLDA(c *Chip) {
	if c.ticksFunc == 1 {
		c.reg.A = c.pins.DATA
		c.s.updateNZ(c.reg.A)
	}
}

func opLDX(c *Chip) {
	if c.ticksFunc == 1 {
		c.reg.X = c.pins.DATA
		c.s.updateNZ(c.reg.X)
	}
}

func opLDY(c *Chip) {
	if c.ticksFunc == 1 {
		c.reg.Y = c.pins.DATA
		c.s.updateNZ(c.reg.Y)
	}
}

// Stores overlap their single write tick with the last addressing cycle:
// at ticksFunc==0 the effective address is already on ADDR (set by the
// addressing func this same edge), so the store just drives DATA and flips
// RW to write.

func opSTA(c *Chip) {
	if c.ticksFunc == 0 {
		c.pins.DATA = c.reg.A
		c.pins.RW = false
	}
}

func opSTX(c *Chip) {
	if c.ticksFunc == 0 {
		c.pins.DATA = c.reg.X
		c.pins.RW = false
	}
}

func opSTY(c *Chip) {
	if c.ticksFunc == 0 {
		c.pins.DATA = c.reg.Y
		c.pins.RW = false
	}
}

// Read-modify-write ops: latch the byte read and drive it back out
// unmodified (ticksFunc==1, the classic 6502 dummy write), drive the
// modified value (ticksFunc==2), then a final tick that does nothing beyond
// letting Tick's automatic nextOp bring in the next opcode.

func opASL(c *Chip) {
	switch c.ticksFunc {
	case 1:
		c.ad = c.pins.DATA
		c.pins.RW = false
	case 2:
		c.pins.DATA = c.aslFlags(c.ad)
		c.pins.RW = false
	}
}

func opASLA(c *Chip) {
	switch c.ticks {
	case 0:
		c.pins.ADDR = c.reg.PC
	case 1:
		c.reg.A = c.aslFlags(c.reg.A)
	}
}

func opLSR(c *Chip) {
	switch c.ticksFunc {
	case 1:
		c.ad = c.pins.DATA
		c.pins.RW = false
	case 2:
		c.pins.DATA = c.lsrFlags(c.ad)
		c.pins.RW = false
	}
}

func opLSRA(c *Chip) {
	switch c.ticks {
	case 0:
		c.pins.ADDR = c.reg.PC
	case 1:
		c.reg.A = c.lsrFlags(c.reg.A)
	}
}

func opROL(c *Chip) {
	switch c.ticksFunc {
	case 1:
		c.ad = c.pins.DATA
		c.pins.RW = false
	case 2:
		c.pins.DATA = c.rolFlags(c.ad)
		c.pins.RW = false
	}
}

func opROLA(c *Chip) {
	switch c.ticks {
	case 0:
		c.pins.ADDR = c.reg.PC
	case 1:
		c.reg.A = c.rolFlags(c.reg.A)
	}
}

func opROR(c *Chip) {
	switch c.ticksFunc {
	case 1:
		c.ad = c.pins.DATA
		c.pins.RW = false
	case 2:
		c.pins.DATA = c.rorFlags(c.ad)
		c.pins.RW = false
	}
}

func opRORA(c *Chip) {
	switch c.ticks {
	case 0:
		c.pins.ADDR = c.reg.PC
	case 1:
		c.reg.A = c.rorFlags(c.reg.A)
	}
}

func opINC(c *Chip) {
	switch c.ticksFunc {
	case 1:
		c.ad = c.pins.DATA
		c.pins.RW = false
	case 2:
		c.ad++
		c.s.updateNZ(c.ad)
		c.pins.DATA = c.ad
		c.pins.RW = false
	}
}

func opDEC(c *Chip) {
	switch c.ticksFunc {
	case 1:
		c.ad = c.pins.DATA
		c.pins.RW = false
	case 2:
		c.ad--
		c.s.updateNZ(c.ad)
		c.pins.DATA = c.ad
		c.pins.RW = false
	}
}

// Single-tick implicit register/flag operations. All of these drive ADDR
// to PC on tick 0 (a dummy fetch real hardware also performs) and do their
// work on tick 1.

func opCLC(c *Chip) { implicit1(c, func() { c.s.SetCarry(false) }) }
func opSEC(c *Chip) { implicit1(c, func() { c.s.SetCarry(true) }) }
func opCLI(c *Chip) { implicit1(c, func() { c.s.SetIRQDisable(false) }) }
func opSEI(c *Chip) { implicit1(c, func() { c.s.SetIRQDisable(true) }) }
func opCLV(c *Chip) { implicit1(c, func() { c.s.SetOverflow(false) }) }
func opCLD(c *Chip) { implicit1(c, func() { c.s.SetDecimal(false) }) }
func opSED(c *Chip) { implicit1(c, func() { c.s.SetDecimal(true) }) }

func opDEY(c *Chip) { implicit1(c, func() { c.reg.Y--; c.s.updateNZ(c.reg.Y) }) }
func opDEX(c *Chip) { implicit1(c, func() { c.reg.X--; c.s.updateNZ(c.reg.X) }) }
func opINY(c *Chip) { implicit1(c, func() { c.reg.Y++; c.s.updateNZ(c.reg.Y) }) }
func opINX(c *Chip) { implicit1(c, func() { c.reg.X++; c.s.updateNZ(c.reg.X) }) }

func opTYA(c *Chip) { implicit1(c, func() { c.reg.A = c.reg.Y; c.s.updateNZ(c.reg.A) }) }
func opTAY(c *Chip) { implicit1(c, func() { c.reg.Y = c.reg.A; c.s.updateNZ(c.reg.Y) }) }
func opTXA(c *Chip) { implicit1(c, func() { c.reg.A = c.reg.X; c.s.updateNZ(c.reg.A) }) }
func opTAX(c *Chip) { implicit1(c, func() { c.reg.X = c.reg.A; c.s.updateNZ(c.reg.X) }) }
func opTXS(c *Chip) { implicit1(c, func() { c.reg.SP = c.reg.X }) }
func opTSX(c *Chip) { implicit1(c, func() { c.reg.X = c.reg.SP; c.s.updateNZ(c.reg.X) }) }

func opNOP(c *Chip) {
	if c.ticks == 0 {
		c.pins.ADDR = c.reg.PC
	}
}

// implicit1 factors the common "dummy PC read on tick 0, do the one-shot
// register/flag mutation on tick 1" shape shared by most implicit-mode
// instructions.
func implicit1(c *Chip, do func()) {
	switch c.ticks {
	case 0:
		c.pins.ADDR = c.reg.PC
	case 1:
		do()
	}
}
