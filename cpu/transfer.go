package cpu

// Register transfers (spec.md §4.G "Register transfers"). None of
// these consume an addressing-mode operand; the mode parameter is
// unused but kept so every executor shares one function signature for
// the opcode table (see decode.go).

func (c *CPU) opTAX(AddrMode) int {
	w8 := c.index8Bit()
	val := c.getA(w8)
	c.setX(val, w8)
	c.setNZ(val, w8)
	return 2
}

func (c *CPU) opTAY(AddrMode) int {
	w8 := c.index8Bit()
	val := c.getA(w8)
	c.setY(val, w8)
	c.setNZ(val, w8)
	return 2
}

func (c *CPU) opTXA(AddrMode) int {
	w8 := c.memory8Bit()
	val := c.getX(w8)
	c.setA(val, w8)
	c.setNZ(val, w8)
	return 2
}

func (c *CPU) opTYA(AddrMode) int {
	w8 := c.memory8Bit()
	val := c.getY(w8)
	c.setA(val, w8)
	c.setNZ(val, w8)
	return 2
}

// opTSX copies SP to X in full 16 bits, then truncates to the index
// width and updates flags at that width, per spec.md §4.G.
func (c *CPU) opTSX(AddrMode) int {
	w8 := c.index8Bit()
	c.setX(uint32(c.SP), w8)
	c.setNZ(c.getX(w8), w8)
	return 2
}

// opTXS copies X to SP in full 16 bits with no flag update.
func (c *CPU) opTXS(AddrMode) int {
	c.SP = c.X
	c.wrapStack()
	return 2
}

// opTCD/opTDC/opTCS/opTSC are always 16-bit accumulator<->direct-page
// or stack transfers, per spec.md §4.G.
func (c *CPU) opTCD(AddrMode) int {
	c.D = c.A
	c.setNZ(uint32(c.D), false)
	return 2
}

func (c *CPU) opTDC(AddrMode) int {
	c.A = c.D
	c.setNZ(uint32(c.A), false)
	return 2
}

// opTCS does not update flags.
func (c *CPU) opTCS(AddrMode) int {
	c.SP = c.A
	c.wrapStack()
	return 2
}

func (c *CPU) opTSC(AddrMode) int {
	c.A = c.SP
	c.setNZ(uint32(c.A), false)
	return 2
}
