package cpu

// Loads and stores (spec.md §4.G "Loads / stores").

func (c *CPU) opLDA(mode AddrMode) int {
	w8 := c.memory8Bit()
	val := c.readOperand(mode, w8)
	c.setA(val, w8)
	c.setNZ(val, w8)
	return baseCycles(mode) + widthBonus(w8)
}

func (c *CPU) opLDX(mode AddrMode) int {
	w8 := c.index8Bit()
	val := c.readOperand(mode, w8)
	c.setX(val, w8)
	c.setNZ(val, w8)
	return baseCycles(mode) + widthBonus(w8)
}

func (c *CPU) opLDY(mode AddrMode) int {
	w8 := c.index8Bit()
	val := c.readOperand(mode, w8)
	c.setY(val, w8)
	c.setNZ(val, w8)
	return baseCycles(mode) + widthBonus(w8)
}

// STA/STX/STY never touch flags, per spec.md §4.G.
func (c *CPU) opSTA(mode AddrMode) int {
	w8 := c.memory8Bit()
	c.writeOperand(mode, w8, c.getA(w8))
	return baseCycles(mode) + widthBonus(w8)
}

func (c *CPU) opSTX(mode AddrMode) int {
	w8 := c.index8Bit()
	c.writeOperand(mode, w8, c.getX(w8))
	return baseCycles(mode) + widthBonus(w8)
}

func (c *CPU) opSTY(mode AddrMode) int {
	w8 := c.index8Bit()
	c.writeOperand(mode, w8, c.getY(w8))
	return baseCycles(mode) + widthBonus(w8)
}
