package cpu

// Stack push/pull instructions (spec.md §4.G "Stack push/pull").

func (c *CPU) pushAtWidth(val uint32, width8 bool) {
	if width8 {
		c.pushByte(byte(val))
	} else {
		c.pushByte(byte(val >> 8))
		c.pushByte(byte(val))
	}
}

func (c *CPU) pullAtWidth(width8 bool) uint32 {
	if width8 {
		return uint32(c.pullByte())
	}
	return uint32(c.pullWord())
}

// PHA/PHX/PHY push 1 or 2 bytes per active width; no flag update.
func (c *CPU) opPHA(AddrMode) int {
	w8 := c.memory8Bit()
	c.pushAtWidth(c.getA(w8), w8)
	return 3 + widthBonus(w8)
}

func (c *CPU) opPHX(AddrMode) int {
	w8 := c.index8Bit()
	c.pushAtWidth(c.getX(w8), w8)
	return 3 + widthBonus(w8)
}

func (c *CPU) opPHY(AddrMode) int {
	w8 := c.index8Bit()
	c.pushAtWidth(c.getY(w8), w8)
	return 3 + widthBonus(w8)
}

// PLA/PLX/PLY pull and update N,Z at the active width.
func (c *CPU) opPLA(AddrMode) int {
	w8 := c.memory8Bit()
	val := c.pullAtWidth(w8)
	c.setA(val, w8)
	c.setNZ(val, w8)
	return 4 + widthBonus(w8)
}

func (c *CPU) opPLX(AddrMode) int {
	w8 := c.index8Bit()
	val := c.pullAtWidth(w8)
	c.setX(val, w8)
	c.setNZ(val, w8)
	return 4 + widthBonus(w8)
}

func (c *CPU) opPLY(AddrMode) int {
	w8 := c.index8Bit()
	val := c.pullAtWidth(w8)
	c.setY(val, w8)
	c.setNZ(val, w8)
	return 4 + widthBonus(w8)
}

// PHP pushes P as-is.
func (c *CPU) opPHP(AddrMode) int {
	c.pushByte(c.P)
	return 3
}

// PLP restores P; emulation mode re-masks M/X immediately (setP
// already does this on every write).
func (c *CPU) opPLP(AddrMode) int {
	c.setP(c.pullByte())
	return 4
}

// PHD pushes D (always 16-bit); PLD pulls 16 bits and updates flags.
func (c *CPU) opPHD(AddrMode) int {
	c.pushWord(c.D)
	return 4
}

func (c *CPU) opPLD(AddrMode) int {
	c.D = c.pullWord()
	c.setNZ(uint32(c.D), false)
	return 5
}

// PHB/PHK push DBR/PBR (8-bit).
func (c *CPU) opPHB(AddrMode) int {
	c.pushByte(c.DBR)
	return 3
}

func (c *CPU) opPHK(AddrMode) int {
	c.pushByte(c.PBR)
	return 3
}

// PLB pulls 8 bits and updates N,Z from the pulled byte.
func (c *CPU) opPLB(AddrMode) int {
	c.DBR = c.pullByte()
	c.setNZ(uint32(c.DBR), true)
	return 4
}
