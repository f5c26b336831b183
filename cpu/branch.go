package cpu

// Branches (spec.md §4.G "Branches"). Each reads one signed 8-bit
// offset and, if its condition holds, adds it to PC modulo 2^16.
// Cycle count is a flat 2 regardless of outcome — page-crossing
// penalties are omitted by design (spec.md §4.G, Non-goals).

func (c *CPU) branch(taken bool) int {
	offset := int8(c.fetchByte())
	if taken {
		c.PC = uint16(int32(c.PC) + int32(offset))
	}
	return 2
}

func (c *CPU) opBEQ(AddrMode) int { return c.branch(c.flag(FlagZ)) }
func (c *CPU) opBNE(AddrMode) int { return c.branch(!c.flag(FlagZ)) }
func (c *CPU) opBCS(AddrMode) int { return c.branch(c.flag(FlagC)) }
func (c *CPU) opBCC(AddrMode) int { return c.branch(!c.flag(FlagC)) }
func (c *CPU) opBMI(AddrMode) int { return c.branch(c.flag(FlagN)) }
func (c *CPU) opBPL(AddrMode) int { return c.branch(!c.flag(FlagN)) }
func (c *CPU) opBVS(AddrMode) int { return c.branch(c.flag(FlagV)) }
func (c *CPU) opBVC(AddrMode) int { return c.branch(!c.flag(FlagV)) }

// BRA is always taken.
func (c *CPU) opBRA(AddrMode) int { return c.branch(true) }
