package cpu

// AND/ORA/EOR on the accumulator, active-width, updating N,Z
// (spec.md §4.G "Logical").

func (c *CPU) opAND(mode AddrMode) int {
	w8 := c.memory8Bit()
	val := c.getA(w8) & c.readOperand(mode, w8)
	c.setA(val, w8)
	c.setNZ(val, w8)
	return baseCycles(mode) + widthBonus(w8)
}

func (c *CPU) opORA(mode AddrMode) int {
	w8 := c.memory8Bit()
	val := c.getA(w8) | c.readOperand(mode, w8)
	c.setA(val, w8)
	c.setNZ(val, w8)
	return baseCycles(mode) + widthBonus(w8)
}

func (c *CPU) opEOR(mode AddrMode) int {
	w8 := c.memory8Bit()
	val := c.getA(w8) ^ c.readOperand(mode, w8)
	c.setA(val, w8)
	c.setNZ(val, w8)
	return baseCycles(mode) + widthBonus(w8)
}
