package cpu

// Component E — dispatch. Each of the ~256 primary opcodes maps to an
// executor and the addressing mode it was encoded with. Because
// 65816 addressing-mode selection is fixed per opcode byte (unlike,
// say, m68k's bit-pattern-derived modes), a flat table indexed by the
// fetched opcode is the direct fit — no intermediate decoded-instruction
// value is needed between fetch and execute.
type opEntry struct {
	exec func(*CPU, AddrMode) int
	mode AddrMode
}

// opNOP: the only real 65816 no-op opcode (0xEA); an *unrecognized*
// byte is handled separately in Step, per spec.md §4.E.
func (c *CPU) opNOP(AddrMode) int { return 2 }

// opcodeTable is a sparse array literal: entries never assigned keep
// the zero opEntry{nil, AddrImplied}, which Step treats identically to
// an unmapped byte — a benign 2-cycle no-op (spec.md §4.E). Bytes left
// unmapped here include the 65C02/65816 opcodes whose addressing modes
// (long addressing, stack-relative, (dp) without index, and so on) fall
// outside the eleven-plus-accumulator-plus-relative mode set, and also
// opcodes that this core has no executor for even though their mode is
// in the set: STZ, TXY, TYX, XBA, RTL, BIT dp,X / abs,X and JSR (abs,X),
// among others. All of them run as 2-cycle no-ops that consume only the
// opcode byte.
var opcodeTable = [256]opEntry{
	0x00: {(*CPU).opBRK, AddrImplied},
	0x01: {(*CPU).opORA, AddrDirectIndexedIndirect},
	0x02: {(*CPU).opCOP, AddrImplied},
	0x04: {(*CPU).opTSB, AddrDirect},
	0x05: {(*CPU).opORA, AddrDirect},
	0x06: {(*CPU).opASL, AddrDirect},
	0x08: {(*CPU).opPHP, AddrImplied},
	0x09: {(*CPU).opORA, AddrImmediateM},
	0x0A: {(*CPU).opASL, AddrAccumulator},
	0x0B: {(*CPU).opPHD, AddrImplied},
	0x0C: {(*CPU).opTSB, AddrAbsolute},
	0x0D: {(*CPU).opORA, AddrAbsolute},
	0x0E: {(*CPU).opASL, AddrAbsolute},
	0x10: {(*CPU).opBPL, AddrRelative},
	0x11: {(*CPU).opORA, AddrDirectIndirectIndexed},
	0x14: {(*CPU).opTRB, AddrDirect},
	0x15: {(*CPU).opORA, AddrDirectX},
	0x16: {(*CPU).opASL, AddrDirectX},
	0x18: {(*CPU).opCLC, AddrImplied},
	0x19: {(*CPU).opORA, AddrAbsoluteY},
	0x1A: {(*CPU).opINCA, AddrAccumulator},
	0x1B: {(*CPU).opTCS, AddrImplied},
	0x1C: {(*CPU).opTRB, AddrAbsolute},
	0x1D: {(*CPU).opORA, AddrAbsoluteX},
	0x1E: {(*CPU).opASL, AddrAbsoluteX},
	0x20: {(*CPU).opJSR, AddrImplied},
	0x21: {(*CPU).opAND, AddrDirectIndexedIndirect},
	0x24: {(*CPU).opBIT, AddrDirect},
	0x25: {(*CPU).opAND, AddrDirect},
	0x26: {(*CPU).opROL, AddrDirect},
	0x28: {(*CPU).opPLP, AddrImplied},
	0x29: {(*CPU).opAND, AddrImmediateM},
	0x2A: {(*CPU).opROL, AddrAccumulator},
	0x2B: {(*CPU).opPLD, AddrImplied},
	0x2C: {(*CPU).opBIT, AddrAbsolute},
	0x2D: {(*CPU).opAND, AddrAbsolute},
	0x2E: {(*CPU).opROL, AddrAbsolute},
	0x30: {(*CPU).opBMI, AddrRelative},
	0x31: {(*CPU).opAND, AddrDirectIndirectIndexed},
	0x35: {(*CPU).opAND, AddrDirectX},
	0x36: {(*CPU).opROL, AddrDirectX},
	0x38: {(*CPU).opSEC, AddrImplied},
	0x39: {(*CPU).opAND, AddrAbsoluteY},
	0x3A: {(*CPU).opDECA, AddrAccumulator},
	0x3B: {(*CPU).opTSC, AddrImplied},
	0x3D: {(*CPU).opAND, AddrAbsoluteX},
	0x3E: {(*CPU).opROL, AddrAbsoluteX},
	0x40: {(*CPU).opRTI, AddrImplied},
	0x41: {(*CPU).opEOR, AddrDirectIndexedIndirect},
	0x42: {(*CPU).opWDM, AddrImplied},
	0x44: {(*CPU).opMVP, AddrImplied},
	0x45: {(*CPU).opEOR, AddrDirect},
	0x46: {(*CPU).opLSR, AddrDirect},
	0x48: {(*CPU).opPHA, AddrImplied},
	0x49: {(*CPU).opEOR, AddrImmediateM},
	0x4A: {(*CPU).opLSR, AddrAccumulator},
	0x4B: {(*CPU).opPHK, AddrImplied},
	0x4C: {(*CPU).opJMPAbs, AddrImplied},
	0x4D: {(*CPU).opEOR, AddrAbsolute},
	0x4E: {(*CPU).opLSR, AddrAbsolute},
	0x50: {(*CPU).opBVC, AddrRelative},
	0x51: {(*CPU).opEOR, AddrDirectIndirectIndexed},
	0x54: {(*CPU).opMVN, AddrImplied},
	0x55: {(*CPU).opEOR, AddrDirectX},
	0x56: {(*CPU).opLSR, AddrDirectX},
	0x58: {(*CPU).opCLI, AddrImplied},
	0x59: {(*CPU).opEOR, AddrAbsoluteY},
	0x5A: {(*CPU).opPHY, AddrImplied},
	0x5B: {(*CPU).opTCD, AddrImplied},
	0x5D: {(*CPU).opEOR, AddrAbsoluteX},
	0x5E: {(*CPU).opLSR, AddrAbsoluteX},
	0x60: {(*CPU).opRTS, AddrImplied},
	0x61: {(*CPU).opADC, AddrDirectIndexedIndirect},
	0x65: {(*CPU).opADC, AddrDirect},
	0x66: {(*CPU).opROR, AddrDirect},
	0x68: {(*CPU).opPLA, AddrImplied},
	0x69: {(*CPU).opADC, AddrImmediateM},
	0x6A: {(*CPU).opROR, AddrAccumulator},
	0x6C: {(*CPU).opJMPIndirect, AddrImplied},
	0x6D: {(*CPU).opADC, AddrAbsolute},
	0x6E: {(*CPU).opROR, AddrAbsolute},
	0x70: {(*CPU).opBVS, AddrRelative},
	0x71: {(*CPU).opADC, AddrDirectIndirectIndexed},
	0x75: {(*CPU).opADC, AddrDirectX},
	0x76: {(*CPU).opROR, AddrDirectX},
	0x78: {(*CPU).opSEI, AddrImplied},
	0x79: {(*CPU).opADC, AddrAbsoluteY},
	0x7A: {(*CPU).opPLY, AddrImplied},
	0x7B: {(*CPU).opTDC, AddrImplied},
	0x7C: {(*CPU).opJMPIndexedIndirect, AddrImplied},
	0x7D: {(*CPU).opADC, AddrAbsoluteX},
	0x7E: {(*CPU).opROR, AddrAbsoluteX},
	0x80: {(*CPU).opBRA, AddrRelative},
	0x81: {(*CPU).opSTA, AddrDirectIndexedIndirect},
	0x84: {(*CPU).opSTY, AddrDirect},
	0x85: {(*CPU).opSTA, AddrDirect},
	0x86: {(*CPU).opSTX, AddrDirect},
	0x88: {(*CPU).opDEY, AddrImplied},
	0x89: {(*CPU).opBIT, AddrImmediateM},
	0x8A: {(*CPU).opTXA, AddrImplied},
	0x8B: {(*CPU).opPHB, AddrImplied},
	0x8C: {(*CPU).opSTY, AddrAbsolute},
	0x8D: {(*CPU).opSTA, AddrAbsolute},
	0x8E: {(*CPU).opSTX, AddrAbsolute},
	0x90: {(*CPU).opBCC, AddrRelative},
	0x91: {(*CPU).opSTA, AddrDirectIndirectIndexed},
	0x94: {(*CPU).opSTY, AddrDirectX},
	0x95: {(*CPU).opSTA, AddrDirectX},
	0x96: {(*CPU).opSTX, AddrDirectY},
	0x98: {(*CPU).opTYA, AddrImplied},
	0x99: {(*CPU).opSTA, AddrAbsoluteY},
	0x9A: {(*CPU).opTXS, AddrImplied},
	0x9D: {(*CPU).opSTA, AddrAbsoluteX},
	0xA0: {(*CPU).opLDY, AddrImmediateX},
	0xA1: {(*CPU).opLDA, AddrDirectIndexedIndirect},
	0xA2: {(*CPU).opLDX, AddrImmediateX},
	0xA4: {(*CPU).opLDY, AddrDirect},
	0xA5: {(*CPU).opLDA, AddrDirect},
	0xA6: {(*CPU).opLDX, AddrDirect},
	0xA8: {(*CPU).opTAY, AddrImplied},
	0xA9: {(*CPU).opLDA, AddrImmediateM},
	0xAA: {(*CPU).opTAX, AddrImplied},
	0xAB: {(*CPU).opPLB, AddrImplied},
	0xAC: {(*CPU).opLDY, AddrAbsolute},
	0xAD: {(*CPU).opLDA, AddrAbsolute},
	0xAE: {(*CPU).opLDX, AddrAbsolute},
	0xB0: {(*CPU).opBCS, AddrRelative},
	0xB1: {(*CPU).opLDA, AddrDirectIndirectIndexed},
	0xB4: {(*CPU).opLDY, AddrDirectX},
	0xB5: {(*CPU).opLDA, AddrDirectX},
	0xB6: {(*CPU).opLDX, AddrDirectY},
	0xB8: {(*CPU).opCLV, AddrImplied},
	0xB9: {(*CPU).opLDA, AddrAbsoluteY},
	0xBA: {(*CPU).opTSX, AddrImplied},
	0xBC: {(*CPU).opLDY, AddrAbsoluteX},
	0xBD: {(*CPU).opLDA, AddrAbsoluteX},
	0xBE: {(*CPU).opLDX, AddrAbsoluteY},
	0xC0: {(*CPU).opCPY, AddrImmediateX},
	0xC1: {(*CPU).opCMP, AddrDirectIndexedIndirect},
	0xC2: {(*CPU).opREP, AddrImplied},
	0xC4: {(*CPU).opCPY, AddrDirect},
	0xC5: {(*CPU).opCMP, AddrDirect},
	0xC6: {(*CPU).opDEC, AddrDirect},
	0xC8: {(*CPU).opINY, AddrImplied},
	0xC9: {(*CPU).opCMP, AddrImmediateM},
	0xCA: {(*CPU).opDEX, AddrImplied},
	0xCB: {(*CPU).opWAI, AddrImplied},
	0xCC: {(*CPU).opCPY, AddrAbsolute},
	0xCD: {(*CPU).opCMP, AddrAbsolute},
	0xCE: {(*CPU).opDEC, AddrAbsolute},
	0xD0: {(*CPU).opBNE, AddrRelative},
	0xD1: {(*CPU).opCMP, AddrDirectIndirectIndexed},
	0xD5: {(*CPU).opCMP, AddrDirectX},
	0xD6: {(*CPU).opDEC, AddrDirectX},
	0xD8: {(*CPU).opCLD, AddrImplied},
	0xD9: {(*CPU).opCMP, AddrAbsoluteY},
	0xDA: {(*CPU).opPHX, AddrImplied},
	0xDB: {(*CPU).opSTP, AddrImplied},
	0xDD: {(*CPU).opCMP, AddrAbsoluteX},
	0xDE: {(*CPU).opDEC, AddrAbsoluteX},
	0xE0: {(*CPU).opCPX, AddrImmediateX},
	0xE1: {(*CPU).opSBC, AddrDirectIndexedIndirect},
	0xE2: {(*CPU).opSEP, AddrImplied},
	0xE4: {(*CPU).opCPX, AddrDirect},
	0xE5: {(*CPU).opSBC, AddrDirect},
	0xE6: {(*CPU).opINC, AddrDirect},
	0xE8: {(*CPU).opINX, AddrImplied},
	0xE9: {(*CPU).opSBC, AddrImmediateM},
	0xEA: {(*CPU).opNOP, AddrImplied},
	0xEC: {(*CPU).opCPX, AddrAbsolute},
	0xED: {(*CPU).opSBC, AddrAbsolute},
	0xEE: {(*CPU).opINC, AddrAbsolute},
	0xF0: {(*CPU).opBEQ, AddrRelative},
	0xF1: {(*CPU).opSBC, AddrDirectIndirectIndexed},
	0xF5: {(*CPU).opSBC, AddrDirectX},
	0xF6: {(*CPU).opINC, AddrDirectX},
	0xF8: {(*CPU).opSED, AddrImplied},
	0xF9: {(*CPU).opSBC, AddrAbsoluteY},
	0xFA: {(*CPU).opPLX, AddrImplied},
	0xFB: {(*CPU).opXCE, AddrImplied},
	0xFD: {(*CPU).opSBC, AddrAbsoluteX},
	0xFE: {(*CPU).opINC, AddrAbsoluteX},
}

// Step fetches one opcode, dispatches it, and returns the cycle count
// spent — exactly one instruction per call, per spec.md §5
// ("strictly single-threaded and synchronous... one step call
// executes exactly one instruction"). Component H folds the result
// into the running total.
func (c *CPU) Step() int {
	opcode := c.fetchByte()
	entry := opcodeTable[opcode]
	var cycles int
	if entry.exec == nil {
		cycles = 2 // unrecognized opcode: benign 2-cycle no-op, spec.md §4.E
	} else {
		cycles = entry.exec(c, entry.mode)
	}
	c.Cycles += uint64(cycles)
	return cycles
}
