package cpu

// Block moves (spec.md §4.G "Block moves", §9 "Block-move loop as
// re-execution"). One step copies one byte and either completes the
// instruction or rewinds PC by 3 so the same opcode is fetched again
// on the next Step — "one step = one instruction worth of cycles",
// cooperating with any host scheduler that time-slices by cycle count.

func (c *CPU) moveBlock(increment bool) int {
	dstBank := c.fetchByte()
	srcBank := c.fetchByte()

	srcAddr := uint32(srcBank)<<16 | uint32(c.X)
	dstAddr := uint32(dstBank)<<16 | uint32(c.Y)
	c.bus.Write(dstAddr, c.bus.Read(srcAddr))

	if increment {
		c.X++
		c.Y++
	} else {
		c.X--
		c.Y--
	}
	c.A--
	c.DBR = dstBank

	if c.A != 0xFFFF {
		c.PC -= 3
	}
	return 7
}

// MVN ("move next"): increments X and Y.
func (c *CPU) opMVN(AddrMode) int { return c.moveBlock(true) }

// MVP ("move previous"): decrements X and Y.
func (c *CPU) opMVP(AddrMode) int { return c.moveBlock(false) }
