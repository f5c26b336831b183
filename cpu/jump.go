package cpu

// Jumps & subroutine calls (spec.md §4.G "Jumps & subroutine").

// JMP abs: PC <- abs (low 16 bits); PBR unchanged.
func (c *CPU) opJMPAbs(AddrMode) int {
	c.PC = c.fetchWord()
	return 3
}

// JMP (abs): PC <- 16-bit word read at abs, within DBR.
func (c *CPU) opJMPIndirect(AddrMode) int {
	addr := c.resolveAddress(AddrAbsoluteIndirect, false)
	c.PC = c.readWordAt(addr)
	return 5
}

// JMP (abs,X): PC <- 16-bit word read at (PBR<<16)|(abs+X).
func (c *CPU) opJMPIndexedIndirect(AddrMode) int {
	addr := c.resolveAddress(AddrAbsoluteIndexedIndirect, false)
	c.PC = c.readWordAt(addr)
	return 6
}

// JSR abs: push (PC-1) as 16 bits, then PC <- abs. PC at the time of
// the push already points past the 3-byte JSR encoding.
func (c *CPU) opJSR(AddrMode) int {
	abs := c.fetchWord()
	c.pushWord(c.PC - 1)
	c.PC = abs
	return 6
}

// RTS: pull 16 bits, PC <- popped + 1.
func (c *CPU) opRTS(AddrMode) int {
	c.PC = c.pullWord() + 1
	return 6
}
