package cpu

import "github.com/ninthbit/w65816/bus"

// Component I — reset path. Sets the canonical boot values of
// spec.md §4.B: A=X=Y=0, SP=0x01FF, P=0x34 (M=1, X=1, I=1), DBR=PBR=0,
// D=0, E=1, PC=0x8000.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0x01FF
	c.D = 0
	c.DBR = 0
	c.PBR = 0
	c.E = true
	c.setP(0x34)
	c.Cycles = 0
	c.halted = false
	c.waiting = false
	c.PC = 0x8000
}

// LoadResetVector overrides PC from the 16-bit word at 0x00FFFC,
// little-endian, and clears PBR — the "future extension" spec.md §6/§9
// anticipates ("a compliant host MAY override PC from the reset vector").
// It is not called automatically by Reset: spec.md's own conformance
// scenarios place code at the 0x8000 placeholder without ever writing
// a vector, so folding this into Reset itself would send those
// programs off into whatever garbage happens to sit at 0x00FFFC. A
// host that wants real-hardware vectoring calls this right after
// Reset.
func (c *CPU) LoadResetVector() {
	if c.bus == nil {
		return
	}
	c.PC = bus.ReadWord(c.bus, 0x00FFFC)
	c.PBR = 0
}
