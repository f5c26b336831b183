package cpu

// CMP/CPX/CPY (spec.md §4.G "Compare"): subtraction at the active
// width (index width for CPX/CPY) without storing the result.

func (c *CPU) opCMP(mode AddrMode) int {
	w8 := c.memory8Bit()
	operand := c.readOperand(mode, w8)
	c.compareWithOperand(c.getA(w8), operand, w8)
	return baseCycles(mode) + widthBonus(w8)
}

func (c *CPU) opCPX(mode AddrMode) int {
	w8 := c.index8Bit()
	operand := c.readOperand(mode, w8)
	c.compareWithOperand(c.getX(w8), operand, w8)
	return baseCycles(mode) + widthBonus(w8)
}

func (c *CPU) opCPY(mode AddrMode) int {
	w8 := c.index8Bit()
	operand := c.readOperand(mode, w8)
	c.compareWithOperand(c.getY(w8), operand, w8)
	return baseCycles(mode) + widthBonus(w8)
}
