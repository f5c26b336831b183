package cpu

// Component E (fetch) + Component F (addressing resolver).

// fetchByte reads the byte at (PBR<<16)|PC and advances PC by one,
// wrapping modulo 2^16 (spec.md §4.E).
func (c *CPU) fetchByte() byte {
	addr := uint32(c.PBR)<<16 | uint32(c.PC)
	v := c.bus.Read(addr)
	c.PC++
	return v
}

// fetchWord assembles two fetchByte calls low-then-high.
func (c *CPU) fetchWord() uint16 {
	lo := c.fetchByte()
	hi := c.fetchByte()
	return uint16(lo) | uint16(hi)<<8
}

// readWordAt reads a little-endian 16-bit word directly from the bus
// at a computed 24-bit address, without touching PC.
func (c *CPU) readWordAt(addr uint32) uint16 {
	lo := c.bus.Read(addr)
	hi := c.bus.Read(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

// resolveAddress computes the effective 24-bit address for mode,
// consuming whatever operand bytes that mode carries (advancing PC
// accordingly) per the table in spec.md §4.F. width8 selects the
// immediate fetch width for AddrImmediateM/AddrImmediateX; it is
// ignored by every other mode.
//
// Absolute,X/Y and Direct,X/Y add the index through unsigned 32-bit
// arithmetic and an explicit 0xFFFF mask, per spec.md §9's note that a
// signed 16-bit intermediate "functions correctly... but is notable" —
// this reimplementation takes the recommended, more explicit route.
func (c *CPU) resolveAddress(mode AddrMode, width8 bool) uint32 {
	switch mode {
	case AddrImmediateM, AddrImmediateX:
		addr := uint32(c.PBR)<<16 | uint32(c.PC)
		if width8 {
			c.PC++
		} else {
			c.PC += 2
		}
		return addr

	case AddrAbsolute:
		abs := c.fetchWord()
		return uint32(c.DBR)<<16 | uint32(abs)

	case AddrAbsoluteX:
		abs := c.fetchWord()
		idx := truncIndex(c.X, c.index8Bit())
		return uint32(c.DBR)<<16 | ((uint32(abs) + uint32(idx)) & 0xFFFF)

	case AddrAbsoluteY:
		abs := c.fetchWord()
		idx := truncIndex(c.Y, c.index8Bit())
		return uint32(c.DBR)<<16 | ((uint32(abs) + uint32(idx)) & 0xFFFF)

	case AddrDirect:
		off := c.fetchByte()
		return (uint32(c.D) + uint32(off)) & 0xFFFF

	case AddrDirectX:
		off := c.fetchByte()
		idx := truncIndex(c.X, c.index8Bit()) & 0xFF
		return (uint32(c.D) + uint32(off) + uint32(idx)) & 0xFFFF

	case AddrDirectY:
		off := c.fetchByte()
		idx := truncIndex(c.Y, c.index8Bit()) & 0xFF
		return (uint32(c.D) + uint32(off) + uint32(idx)) & 0xFFFF

	case AddrAbsoluteIndirect: // pointer lives in DBR
		ptr := c.fetchWord()
		return uint32(c.DBR)<<16 | uint32(ptr) // caller (JMP) reads the word here

	case AddrDirectIndexedIndirect:
		off := c.fetchByte()
		idx := truncIndex(c.X, c.index8Bit()) & 0xFF
		base := (uint32(c.D) + uint32(off) + uint32(idx)) & 0xFFFF
		ptr := c.readWordAt(base)
		return uint32(c.DBR)<<16 | uint32(ptr)

	case AddrDirectIndirectIndexed:
		off := c.fetchByte()
		base := (uint32(c.D) + uint32(off)) & 0xFFFF
		ptr := c.readWordAt(base)
		idx := truncIndex(c.Y, c.index8Bit())
		return uint32(c.DBR)<<16 | ((uint32(ptr) + uint32(idx)) & 0xFFFF)

	case AddrAbsoluteIndexedIndirect:
		ptr := c.fetchWord()
		idx := truncIndex(c.X, c.index8Bit())
		return uint32(c.PBR)<<16 | ((uint32(ptr) + uint32(idx)) & 0xFFFF)
	}
	return 0
}

func (c *CPU) writeWordAt(addr uint32, v uint16) {
	c.bus.Write(addr, byte(v))
	c.bus.Write(addr+1, byte(v>>8))
}

// readAt and writeAt perform a single-width access at an
// already-resolved address — the shared primitive behind readOperand,
// writeOperand, and the read-modify-write executors (INC/DEC/ASL/LSR/
// ROL/ROR on memory), which must resolve the address exactly once so
// they don't re-fetch (and re-consume) the operand bytes.
func (c *CPU) readAt(addr uint32, width8 bool) uint32 {
	if width8 {
		return uint32(c.bus.Read(addr))
	}
	return uint32(c.readWordAt(addr))
}

func (c *CPU) writeAt(addr uint32, width8 bool, val uint32) {
	if width8 {
		c.bus.Write(addr, byte(val))
	} else {
		c.writeWordAt(addr, uint16(val))
	}
}

// readOperand resolves mode and reads an operand of the active width
// (8 or 16 bits, per width8) from the bus — the common path for every
// load/arithmetic/logic/compare executor.
func (c *CPU) readOperand(mode AddrMode, width8 bool) uint32 {
	addr := c.resolveAddress(mode, width8)
	return c.readAt(addr, width8)
}

// writeOperand resolves mode and stores val at the active width.
func (c *CPU) writeOperand(mode AddrMode, width8 bool, val uint32) {
	addr := c.resolveAddress(mode, width8)
	c.writeAt(addr, width8, val)
}
