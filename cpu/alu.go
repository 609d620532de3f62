package cpu

// The helpers in this file are pure register/flag transforms with no pin
// side effects, called from the operation handlers in operations.go and
// control.go once the relevant operand byte is in hand.

// andFlags computes the BIT instruction's flag side effects: Z from A&v,
// and N/V copied directly from the memory operand's top two bits.
func (c *Chip) andFlags(v uint8) {
	t := c.reg.A & v
	c.s.SetZero(t == 0)
	c.s.SetNegative(v&0x80 != 0)
	c.s.SetOverflow(v&0x40 != 0)
}

func (c *Chip) aslFlags(v uint8) uint8 {
	c.s.SetCarry(v&0x80 != 0)
	t := v << 1
	c.s.updateNZ(t)
	return t
}

func (c *Chip) lsrFlags(v uint8) uint8 {
	t := v >> 1
	c.s.SetCarry(v&0x01 != 0)
	c.s.updateNZ(t)
	return t
}

func (c *Chip) rolFlags(v uint8) uint8 {
	carry := c.s.Carry()
	c.s.SetCarry(v&0x80 != 0)
	v <<= 1
	if carry {
		v |= 1
	}
	c.s.updateNZ(v)
	return v
}

func (c *Chip) rorFlags(v uint8) uint8 {
	carry := c.s.Carry()
	c.s.SetCarry(v&0x01 != 0)
	v >>= 1
	if carry {
		v |= 0x80
	}
	c.s.updateNZ(v)
	return v
}

// adcFlags implements ADC including the NMOS decimal-mode adjustment. The
// adjustment is deliberately the simple two-nibble fixup (not the more
// elaborate invalid-BCD tie-break some emulators add for undefined decimal
// inputs) since that is what this core's reference semantics use.
func (c *Chip) adcFlags(v uint8) {
	carry := uint16(0)
	if c.s.Carry() {
		carry = 1
	}
	sum := uint16(c.reg.A) + uint16(v) + carry
	c.s.SetZero(sum&0xFF == 0)

	signsAgree := (c.reg.A^v)&0x80 == 0

	if c.s.Decimal() {
		if (c.reg.A&0xF)+(v&0xF)+uint8(carry) > 9 {
			sum += 6
		}
		c.s.SetNegative(sum&0x80 != 0)
		c.s.SetOverflow(signsAgree && (uint16(c.reg.A)^sum)&0x80 != 0)
		if sum > 0x99 {
			sum += 96
		}
		c.s.SetCarry(sum > 0x99)
	} else {
		c.s.SetNegative(sum&0x80 != 0)
		c.s.SetOverflow(signsAgree && (uint16(c.reg.A)^sum)&0x80 != 0)
		c.s.SetCarry(sum > 0xFF)
	}
	c.reg.A = uint8(sum & 0xFF)
}

// sbcFlags implements SBC including the NMOS decimal-mode adjustment,
// mirroring adcFlags's subtraction counterpart exactly.
func (c *Chip) sbcFlags(v uint8) {
	borrow := uint16(1)
	if c.s.Carry() {
		borrow = 0
	}
	dif := uint16(c.reg.A) - uint16(v) - borrow
	c.s.SetNegative(dif&0x80 != 0)
	c.s.SetZero(dif&0xFF == 0)
	c.s.SetOverflow(((uint16(c.reg.A)^dif)&0x80) != 0 && ((uint16(c.reg.A)^uint16(v))&0x80) != 0)

	if c.s.Decimal() {
		if int16(c.reg.A&0x0F)-int16(borrow) < int16(v&0x0F) {
			dif -= 6
		}
		if dif > 0x99 {
			dif -= 0x60
		}
	}
	c.s.SetCarry(dif < 0x100)
	c.reg.A = uint8(dif & 0xFF)
}

// cmpFlags implements the shared compare-and-set-flags behavior of CMP,
// CPX and CPY: r is the register, v the memory operand.
func (c *Chip) cmpFlags(r, v uint8) {
	t := uint16(r) - uint16(v)
	c.s.SetCarry(r >= v)
	c.s.SetZero(t&0xFF == 0)
	c.s.SetNegative(t&0x80 != 0)
}
