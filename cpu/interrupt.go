package cpu

// Interrupt entry/return and halt placeholders (spec.md §4.G
// "Interrupt and halt"). No hardware IRQ/NMI lines are modeled — BRK
// and COP are the only synchronous, vector-driven entries (Non-goal:
// no interrupt-pending queue).

func (c *CPU) brkLike(emuVector, nativeVector uint16, setBreakFlag bool) int {
	c.fetchByte() // signature byte, discarded
	if c.E {
		c.pushWord(c.PC)
		p := c.P
		if setBreakFlag {
			p |= 0x10
		}
		c.pushByte(p)
		c.setFlag(FlagI, true)
		c.setFlag(FlagD, false)
		c.PC = c.readWordAt(uint32(emuVector))
		c.PBR = 0
		return 7
	}
	c.pushByte(c.PBR)
	c.pushWord(c.PC)
	c.pushByte(c.P)
	c.setFlag(FlagI, true)
	c.setFlag(FlagD, false)
	c.PC = c.readWordAt(uint32(nativeVector))
	c.PBR = 0
	return 8
}

// BRK (0x00): emulation-mode push sets the B-flag bit (0x10) in the
// pushed copy of P.
func (c *CPU) opBRK(AddrMode) int {
	return c.brkLike(0x00FFFE, 0x00FFE6, true)
}

// COP (0x02) mirrors BRK with its own vector pair; in emulation mode
// it does not set the B-flag bit.
func (c *CPU) opCOP(AddrMode) int {
	return c.brkLike(0x00FFF4, 0x00FFE4, false)
}

// WDM (0x42): consume one reserved byte and advance; no effect.
func (c *CPU) opWDM(AddrMode) int {
	c.fetchByte()
	return 2
}

// STP rewinds PC by 1 so the same opcode re-executes indefinitely — a
// PC-stall placeholder, not true clock gating (spec.md §1, §4.G).
// Halted is exposed on the snapshot (SPEC_FULL.md §7) so a host can
// tell this apart from a program merely revisiting the same address.
func (c *CPU) opSTP(AddrMode) int {
	c.halted = true
	c.PC--
	return 3
}

// WAI is the same stall mechanism; a full implementation would gate
// on an interrupt-pending signal, which this core does not model.
func (c *CPU) opWAI(AddrMode) int {
	c.waiting = true
	c.PC--
	return 3
}

// RTI: pull P (setP re-applies the emulation mask), pull 16-bit PC,
// and in native mode also pull PBR.
func (c *CPU) opRTI(AddrMode) int {
	c.setP(c.pullByte())
	c.PC = c.pullWord()
	if !c.E {
		c.PBR = c.pullByte()
		return 7
	}
	return 6
}
