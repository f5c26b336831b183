package cpu

// Component D — stack engine. The stack is not a separate container:
// every push/pull goes through the bus at 0x00SSSS, exactly as
// spec.md §4.D and §9 require ("Reimplementations MUST resist the
// temptation to add a side-channel array").

// wrapStack re-applies the page-1 constraint after a push/pull moves
// SP, when in emulation mode (spec.md §3: "When E=1, high byte is
// always 0x01").
func (c *CPU) wrapStack() {
	if c.E {
		c.SP = 0x0100 | (c.SP & 0x00FF)
	}
}

func (c *CPU) pushByte(v byte) {
	c.bus.Write(uint32(c.SP), v)
	c.SP--
	c.wrapStack()
}

func (c *CPU) pullByte() byte {
	c.SP++
	c.wrapStack()
	return c.bus.Read(uint32(c.SP))
}

// pushWord pushes the high byte first, then the low byte, so the low
// byte ends up at the lower (later-popped-first) stack address.
func (c *CPU) pushWord(v uint16) {
	c.pushByte(byte(v >> 8))
	c.pushByte(byte(v))
}

// pullWord mirrors pushWord: low byte first, then high.
func (c *CPU) pullWord() uint16 {
	lo := c.pullByte()
	hi := c.pullByte()
	return uint16(lo) | uint16(hi)<<8
}
