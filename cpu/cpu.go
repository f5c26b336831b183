package cpu

// Component J — the CPU's public surface beyond Step (decode.go).
// Snapshot gives a host (disasm, script, cmd/w65run, tests) a
// read-only, copy-out view of register state without exposing the
// struct's private halted/waiting bits directly.

// Snapshot is a value copy of the architecturally visible register
// file at one instant, per SPEC_FULL.md §7.
type Snapshot struct {
	A, X, Y, SP, PC uint16
	P               byte
	DBR, PBR        byte
	D               uint16
	E               bool
	Cycles          uint64
	Halted          bool
	Waiting         bool
}

// Snapshot copies out the current register file. Safe to retain; it
// shares no memory with the CPU.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		A: c.A, X: c.X, Y: c.Y, SP: c.SP, PC: c.PC,
		P: c.P, DBR: c.DBR, PBR: c.PBR, D: c.D, E: c.E,
		Cycles:  c.Cycles,
		Halted:  c.halted,
		Waiting: c.waiting,
	}
}

// Halted reports whether the CPU last executed STP and has not since
// been Reset.
func (c *CPU) Halted() bool { return c.halted }

// Waiting reports whether the CPU last executed WAI and has not since
// been Reset.
func (c *CPU) Waiting() bool { return c.waiting }
