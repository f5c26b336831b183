package cpu

// ADC/SBC (spec.md §4.G "Arithmetic"). Decimal mode is selected (the D
// flag is read) but both fall through to the binary path — spec.md
// §4.G/§9 calls this out explicitly as a documented simplification,
// not a bug to silently fix.

func (c *CPU) opADC(mode AddrMode) int {
	w8 := c.memory8Bit()
	_ = c.flag(FlagD) // decimal mode selected, binary path taken regardless
	operand := c.readOperand(mode, w8)
	a := c.getA(w8)
	result, carry, overflow := addWithCarry(a, operand, c.flag(FlagC), w8)
	c.setA(result, w8)
	c.setFlag(FlagC, carry)
	c.setFlag(FlagV, overflow)
	c.setNZ(result, w8)
	return baseCycles(mode) + widthBonus(w8)
}

func (c *CPU) opSBC(mode AddrMode) int {
	w8 := c.memory8Bit()
	_ = c.flag(FlagD)
	operand := c.readOperand(mode, w8)
	a := c.getA(w8)
	result, carry, overflow := subtractWithBorrow(a, operand, c.flag(FlagC), w8)
	c.setA(result, w8)
	c.setFlag(FlagC, carry)
	c.setFlag(FlagV, overflow)
	c.setNZ(result, w8)
	return baseCycles(mode) + widthBonus(w8)
}
