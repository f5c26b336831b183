package cpu

// Component H — cycle accountant. Cycle-exact sub-instruction bus
// timing is out of scope (spec.md §1 Non-goals); each executor
// reports one total for the instruction it just ran, computed from a
// per-addressing-mode base plus a one-cycle widening for a 16-bit
// active width, and Step folds that into the running total.

// baseCycles is the simplified, mode-driven cycle cost before any
// width adjustment — page-crossing penalties are intentionally
// omitted, per spec.md §4.G ("Branches... omitted by design").
func baseCycles(mode AddrMode) int {
	switch mode {
	case AddrImplied, AddrAccumulator:
		return 2
	case AddrImmediateM, AddrImmediateX:
		return 2
	case AddrDirect:
		return 3
	case AddrDirectX, AddrDirectY:
		return 4
	case AddrAbsolute:
		return 4
	case AddrAbsoluteX, AddrAbsoluteY:
		return 4
	case AddrAbsoluteIndirect:
		return 5
	case AddrDirectIndexedIndirect:
		return 6
	case AddrDirectIndirectIndexed:
		return 5
	case AddrAbsoluteIndexedIndirect:
		return 6
	}
	return 2
}

// widthBonus is the extra cycle a 16-bit active width costs over
// 8-bit, for the operand-width doubling spec.md §4.H describes
// ("isMemory8Bit() ? c8 : c16").
func widthBonus(width8 bool) int {
	if width8 {
		return 0
	}
	return 1
}
