package cpu

// Increment/decrement (spec.md §4.G "Increment / decrement"). Register
// and accumulator forms operate at the active width with modular
// wrap; the memory forms are read-modify-write at the active width.

func (c *CPU) opINX(AddrMode) int {
	w8 := c.index8Bit()
	val := wrapWidth(c.getX(w8)+1, w8)
	c.setX(val, w8)
	c.setNZ(val, w8)
	return 2
}

func (c *CPU) opINY(AddrMode) int {
	w8 := c.index8Bit()
	val := wrapWidth(c.getY(w8)+1, w8)
	c.setY(val, w8)
	c.setNZ(val, w8)
	return 2
}

func (c *CPU) opDEX(AddrMode) int {
	w8 := c.index8Bit()
	val := wrapWidth(c.getX(w8)-1, w8)
	c.setX(val, w8)
	c.setNZ(val, w8)
	return 2
}

func (c *CPU) opDEY(AddrMode) int {
	w8 := c.index8Bit()
	val := wrapWidth(c.getY(w8)-1, w8)
	c.setY(val, w8)
	c.setNZ(val, w8)
	return 2
}

func (c *CPU) opINCA(AddrMode) int {
	w8 := c.memory8Bit()
	val := wrapWidth(c.getA(w8)+1, w8)
	c.setA(val, w8)
	c.setNZ(val, w8)
	return 2
}

func (c *CPU) opDECA(AddrMode) int {
	w8 := c.memory8Bit()
	val := wrapWidth(c.getA(w8)-1, w8)
	c.setA(val, w8)
	c.setNZ(val, w8)
	return 2
}

func (c *CPU) opINC(mode AddrMode) int {
	w8 := c.memory8Bit()
	addr := c.resolveAddress(mode, w8)
	val := wrapWidth(c.readAt(addr, w8)+1, w8)
	c.writeAt(addr, w8, val)
	c.setNZ(val, w8)
	return baseCycles(mode) + widthBonus(w8)
}

func (c *CPU) opDEC(mode AddrMode) int {
	w8 := c.memory8Bit()
	addr := c.resolveAddress(mode, w8)
	val := wrapWidth(c.readAt(addr, w8)-1, w8)
	c.writeAt(addr, w8, val)
	c.setNZ(val, w8)
	return baseCycles(mode) + widthBonus(w8)
}

// wrapWidth masks an incremented/decremented value modulo the active
// width (2^8 or 2^16), per spec.md §4.G "modular wrap".
func wrapWidth(v uint32, width8 bool) uint32 {
	if width8 {
		return v & 0xFF
	}
	return v & 0xFFFF
}
