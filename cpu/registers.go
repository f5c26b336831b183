// Package cpu implements the interpreter core of a WDC 65C816-class
// processor: fetch/decode, addressing-mode resolution, the instruction
// executors, and the cycle accountant, all driven off a single
// register-file aggregate. See bus.Bus for the memory it operates
// against; everything above the CPU (ROM loading, rendering, audio,
// input) is the host's concern, not this package's.
package cpu

import "github.com/ninthbit/w65816/bus"

// Status register bit positions, per spec.md §3.
const (
	FlagC byte = 1 << 0 // carry
	FlagZ byte = 1 << 1 // zero
	FlagI byte = 1 << 2 // IRQ disable
	FlagD byte = 1 << 3 // decimal mode
	FlagX byte = 1 << 4 // index register width (1 = 8-bit); B (break) in emulation mode
	FlagM byte = 1 << 5 // accumulator/memory width (1 = 8-bit)
	FlagV byte = 1 << 6 // overflow
	FlagN byte = 1 << 7 // negative
)

// emulationMaskedFlags is the pair of bits that emulation mode forces
// permanently set (spec.md §3, §4.C): M=1 and X=1.
const emulationMaskedFlags = FlagM | FlagX

// CPU is the whole of the processor's mutable state: one aggregate
// struct, owned exclusively by this instance, exactly as spec.md §5
// requires ("Global mutable state: None. The CPU instance is the only
// state holder.").
type CPU struct {
	A   uint16
	X   uint16
	Y   uint16
	SP  uint16
	PC  uint16
	P   byte
	DBR byte
	PBR byte
	D   uint16
	E   bool

	Cycles uint64

	halted  bool
	waiting bool

	bus bus.Bus
}

// NewCPU builds a CPU with no attached bus and resets it to its
// power-on state. Call SetBus before Step.
func NewCPU() *CPU {
	c := &CPU{}
	c.Reset()
	return c
}

// SetBus attaches the memory this CPU will read and write. It does not
// itself trigger a reset.
func (c *CPU) SetBus(b bus.Bus) {
	c.bus = b
}
