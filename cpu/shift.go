package cpu

// Shift/rotate (spec.md §4.G "Shift / rotate"). Each has an
// accumulator form (mode == AddrAccumulator) and an addressed memory
// form. The outgoing bit always enters carry; ASL/LSR shift in 0,
// ROL/ROR shift in the old carry.

func (c *CPU) signBit(width8 bool) uint32 {
	if width8 {
		return 0x80
	}
	return 0x8000
}

func (c *CPU) opASL(mode AddrMode) int {
	w8 := c.memory8Bit()
	msb := c.signBit(w8)
	if mode == AddrAccumulator {
		val := c.getA(w8)
		carryOut := val&msb != 0
		result := wrapWidth(val<<1, w8)
		c.setA(result, w8)
		c.setFlag(FlagC, carryOut)
		c.setNZ(result, w8)
		return 2
	}
	addr := c.resolveAddress(mode, w8)
	val := c.readAt(addr, w8)
	carryOut := val&msb != 0
	result := wrapWidth(val<<1, w8)
	c.writeAt(addr, w8, result)
	c.setFlag(FlagC, carryOut)
	c.setNZ(result, w8)
	return baseCycles(mode) + widthBonus(w8)
}

func (c *CPU) opLSR(mode AddrMode) int {
	w8 := c.memory8Bit()
	if mode == AddrAccumulator {
		val := c.getA(w8)
		carryOut := val&1 != 0
		result := val >> 1
		c.setA(result, w8)
		c.setFlag(FlagC, carryOut)
		c.setNZ(result, w8)
		return 2
	}
	addr := c.resolveAddress(mode, w8)
	val := c.readAt(addr, w8)
	carryOut := val&1 != 0
	result := val >> 1
	c.writeAt(addr, w8, result)
	c.setFlag(FlagC, carryOut)
	c.setNZ(result, w8)
	return baseCycles(mode) + widthBonus(w8)
}

func (c *CPU) opROL(mode AddrMode) int {
	w8 := c.memory8Bit()
	msb := c.signBit(w8)
	var cin uint32
	if c.flag(FlagC) {
		cin = 1
	}
	if mode == AddrAccumulator {
		val := c.getA(w8)
		carryOut := val&msb != 0
		result := wrapWidth((val<<1)|cin, w8)
		c.setA(result, w8)
		c.setFlag(FlagC, carryOut)
		c.setNZ(result, w8)
		return 2
	}
	addr := c.resolveAddress(mode, w8)
	val := c.readAt(addr, w8)
	carryOut := val&msb != 0
	result := wrapWidth((val<<1)|cin, w8)
	c.writeAt(addr, w8, result)
	c.setFlag(FlagC, carryOut)
	c.setNZ(result, w8)
	return baseCycles(mode) + widthBonus(w8)
}

func (c *CPU) opROR(mode AddrMode) int {
	w8 := c.memory8Bit()
	msb := c.signBit(w8)
	var cin uint32
	if c.flag(FlagC) {
		cin = msb
	}
	if mode == AddrAccumulator {
		val := c.getA(w8)
		carryOut := val&1 != 0
		result := (val >> 1) | cin
		c.setA(result, w8)
		c.setFlag(FlagC, carryOut)
		c.setNZ(result, w8)
		return 2
	}
	addr := c.resolveAddress(mode, w8)
	val := c.readAt(addr, w8)
	carryOut := val&1 != 0
	result := (val >> 1) | cin
	c.writeAt(addr, w8, result)
	c.setFlag(FlagC, carryOut)
	c.setNZ(result, w8)
	return baseCycles(mode) + widthBonus(w8)
}
