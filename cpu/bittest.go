package cpu

// BIT/TSB/TRB (spec.md §4.G "Bit test and modify").
//
// BIT immediate is the one spot SPEC_FULL.md §8.2 pins down explicitly:
// the immediate form updates only Z; every other addressing mode
// updates N (from the operand's MSB) and V (from the operand's
// width-1 bit, i.e. bit 6 at 8-bit or bit 14 at 16-bit) as well.
func (c *CPU) opBIT(mode AddrMode) int {
	w8 := c.memory8Bit()
	operand := c.readOperand(mode, w8)
	a := c.getA(w8)
	c.setFlag(FlagZ, a&operand == 0)
	if mode == AddrImmediateM {
		return baseCycles(mode) + widthBonus(w8)
	}
	msb := c.signBit(w8)
	var vbit uint32
	if w8 {
		vbit = 0x40
	} else {
		vbit = 0x4000
	}
	c.setFlag(FlagN, operand&msb != 0)
	c.setFlag(FlagV, operand&vbit != 0)
	return baseCycles(mode) + widthBonus(w8)
}

// TSB: Z <- (A AND M) = 0, then M := M OR A.
func (c *CPU) opTSB(mode AddrMode) int {
	w8 := c.memory8Bit()
	addr := c.resolveAddress(mode, w8)
	a := c.getA(w8)
	m := c.readAt(addr, w8)
	c.setFlag(FlagZ, a&m == 0)
	c.writeAt(addr, w8, m|a)
	return baseCycles(mode) + widthBonus(w8)
}

// TRB: Z <- (A AND M) = 0, then M := M AND NOT A.
func (c *CPU) opTRB(mode AddrMode) int {
	w8 := c.memory8Bit()
	addr := c.resolveAddress(mode, w8)
	a := c.getA(w8)
	m := c.readAt(addr, w8)
	c.setFlag(FlagZ, a&m == 0)
	c.writeAt(addr, w8, m&^a)
	return baseCycles(mode) + widthBonus(w8)
}
