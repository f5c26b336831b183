package cpu

import (
	"testing"

	"github.com/ninthbit/w65816/bus"
)

// newTestCPU builds a CPU over a large flat RAM, with memory pre-filled
// to 0xEA (NOP) in bank 0 the way the end-to-end scenarios assume.
func newTestCPU(t *testing.T) (*CPU, *bus.RAM) {
	t.Helper()
	ram := bus.NewRAM(1 << 24)
	fill := make([]byte, 0x10000)
	for i := range fill {
		fill[i] = 0xEA
	}
	ram.Load(0, fill)
	c := NewCPU()
	c.SetBus(ram)
	return c, ram
}

func loadAt(ram *bus.RAM, bank byte, addr uint16, data ...byte) {
	ram.Load(uint32(bank)<<16|uint32(addr), data)
}

// Scenario 1 — 8-bit immediate load.
func TestScenario1_ImmediateLoad8(t *testing.T) {
	c, ram := newTestCPU(t)
	loadAt(ram, 0, 0x8000, 0xA9, 0x42)
	c.Step()
	if c.A&0xFF != 0x42 || c.PC != 0x8002 || c.flag(FlagZ) || c.flag(FlagN) {
		t.Fatalf("got A=%#x PC=%#x Z=%v N=%v", c.A, c.PC, c.flag(FlagZ), c.flag(FlagN))
	}

	c, ram = newTestCPU(t)
	loadAt(ram, 0, 0x8000, 0xA9, 0x80)
	c.Step()
	if !c.flag(FlagN) {
		t.Fatalf("expected N=1 for operand 0x80, got P=%#x", c.P)
	}

	c, ram = newTestCPU(t)
	loadAt(ram, 0, 0x8000, 0xA9, 0x00)
	c.Step()
	if !c.flag(FlagZ) {
		t.Fatalf("expected Z=1 for operand 0x00, got P=%#x", c.P)
	}
}

// Scenario 2 — 16-bit immediate load.
func TestScenario2_ImmediateLoad16(t *testing.T) {
	c, ram := newTestCPU(t)
	c.E = false
	c.setP(c.P &^ FlagM)
	loadAt(ram, 0, 0x8000, 0xA9, 0x34, 0x12)
	c.Step()
	if c.A != 0x1234 || c.PC != 0x8003 || c.flag(FlagZ) || c.flag(FlagN) {
		t.Fatalf("got A=%#x PC=%#x Z=%v N=%v", c.A, c.PC, c.flag(FlagZ), c.flag(FlagN))
	}
}

// Scenario 3 — counting loop.
func TestScenario3_CountingLoop(t *testing.T) {
	c, ram := newTestCPU(t)
	// A2 00 LDX #0; (0x8002) E8 INX; E0 0A CPX #10; D0 FB BNE -5 (back to
	// INX: the offset is added to the PC after the operand, 0x8007); then
	// (0x8007) 8E 00 10 STX $1000.
	loadAt(ram, 0, 0x8000, 0xA2, 0x00)
	loadAt(ram, 0, 0x8002, 0xE8, 0xE0, 0x0A, 0xD0, 0xFB)
	loadAt(ram, 0, 0x8007, 0x8E, 0x00, 0x10)
	for c.PC < 0x8009 {
		c.Step()
	}
	if c.X != 0x0A {
		t.Fatalf("expected X=0x0A, got %#x", c.X)
	}
	if got := ram.Read(0x1000); got != 0x0A {
		t.Fatalf("expected mem[0x1000]=0x0A, got %#x", got)
	}
}

// Scenario 4 — multiplication by repeated addition (A = X*Y via nested
// decrement loops): A=0, Y=3, each outer pass loads X=5 and adds 1 to A
// five times, so the final A = 3*5 = 15 (0x0F), stored to 0x1000.
func TestScenario4_MultiplyByRepeatedAddition(t *testing.T) {
	c, ram := newTestCPU(t)
	// A2 00          LDX #0
	// A9 00          LDA #0
	// A0 03          LDY #3
	// outer: (0x8006) A2 05        LDX #5
	// inner: (0x8008) 1A           INC A
	//        (0x8009) CA           DEX
	//        (0x800A) D0 FC        BNE inner (-4)
	//        (0x800C) 88           DEY
	//        (0x800D) D0 F7        BNE outer (-9)
	//        (0x800F) 8D 00 10     STA $1000
	loadAt(ram, 0, 0x8000, 0xA2, 0x00)
	loadAt(ram, 0, 0x8002, 0xA9, 0x00)
	loadAt(ram, 0, 0x8004, 0xA0, 0x03)
	loadAt(ram, 0, 0x8006, 0xA2, 0x05)
	loadAt(ram, 0, 0x8008, 0x1A)
	loadAt(ram, 0, 0x8009, 0xCA)
	loadAt(ram, 0, 0x800A, 0xD0, 0xFC)
	loadAt(ram, 0, 0x800C, 0x88)
	loadAt(ram, 0, 0x800D, 0xD0, 0xF7)
	loadAt(ram, 0, 0x800F, 0x8D, 0x00, 0x10)
	for c.PC < 0x8012 {
		c.Step()
	}
	if c.A&0xFF != 0x0F {
		t.Fatalf("expected A=0x0F, got %#x", c.A)
	}
	if got := ram.Read(0x1000); got != 0x0F {
		t.Fatalf("expected mem[0x1000]=0x0F, got %#x", got)
	}
}

// Scenario 5 — stack round-trip and JSR/RTS.
func TestScenario5_JSRRTS(t *testing.T) {
	c, ram := newTestCPU(t)
	c.E = true
	c.SP = 0x01FF
	loadAt(ram, 0, 0x8000, 0x20, 0x00, 0x90)
	loadAt(ram, 0, 0x9000, 0x60)

	c.Step() // JSR $9000
	if c.PC != 0x9000 {
		t.Fatalf("expected PC=0x9000 after JSR, got %#x", c.PC)
	}
	if ram.Read(0x01FF) != 0x80 || ram.Read(0x01FE) != 0x02 {
		t.Fatalf("expected return address 0x8002 on stack, got hi=%#x lo=%#x",
			ram.Read(0x01FF), ram.Read(0x01FE))
	}

	c.Step() // RTS
	if c.PC != 0x8003 {
		t.Fatalf("expected PC=0x8003 after RTS, got %#x", c.PC)
	}
	if c.SP != 0x01FF {
		t.Fatalf("expected SP restored to 0x01FF, got %#x", c.SP)
	}
}

// Scenario 6 — mode toggle via XCE.
func TestScenario6_XCEToggle(t *testing.T) {
	c, ram := newTestCPU(t)
	c.E = true
	c.setFlag(FlagC, false)
	c.X, c.Y = 0x1234, 0x5678
	c.SP = 0x01AB
	loadAt(ram, 0, 0x8000, 0xFB, 0xFB)

	c.Step()
	if c.E || !c.flag(FlagC) {
		t.Fatalf("after first XCE expected E=0 C=1, got E=%v C=%v", c.E, c.flag(FlagC))
	}

	c.Step()
	if !c.E || c.flag(FlagC) {
		t.Fatalf("after second XCE expected E=1 C=0, got E=%v C=%v", c.E, c.flag(FlagC))
	}
	if c.P&emulationMaskedFlags != emulationMaskedFlags {
		t.Fatalf("expected M and X forced set, got P=%#x", c.P)
	}
	if c.X&0xFF00 != 0 || c.Y&0xFF00 != 0 {
		t.Fatalf("expected X/Y high bytes cleared, got X=%#x Y=%#x", c.X, c.Y)
	}
	if c.SP != 0x01AB {
		t.Fatalf("expected SP=0x0100|(SP&0xFF)=0x01AB, got %#x", c.SP)
	}
}

// Scenario 7 — block move.
func TestScenario7_BlockMove(t *testing.T) {
	c, ram := newTestCPU(t)
	c.E = false
	c.setP(c.P &^ FlagM)
	loadAt(ram, 1, 0x1000, 0xAA, 0xBB, 0xCC, 0xDD)
	c.A = 0x0003
	c.X = 0x1000
	c.Y = 0x2000
	loadAt(ram, 0, 0x8000, 0x54, 0x02, 0x01)

	for c.A != 0xFFFF {
		c.Step()
	}
	want := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	for i, w := range want {
		if got := ram.Read(uint32(0x02)<<16 | uint32(0x2000+i)); got != w {
			t.Fatalf("byte %d: expected %#x, got %#x", i, w, got)
		}
	}
	if c.X != 0x1004 || c.Y != 0x2004 {
		t.Fatalf("expected X=0x1004 Y=0x2004, got X=%#x Y=%#x", c.X, c.Y)
	}
	if c.DBR != 0x02 {
		t.Fatalf("expected DBR=0x02, got %#x", c.DBR)
	}
}

// TCD/TDC round-trip: A -> D -> A, always at full 16-bit width
// regardless of the active M-flag width (spec.md §4.G).
func TestTCDTDCRoundTrip(t *testing.T) {
	c, ram := newTestCPU(t)
	c.A = 0x1234
	loadAt(ram, 0, 0x8000, 0x5B) // TCD
	c.Step()
	if c.D != 0x1234 {
		t.Fatalf("expected D=0x1234 after TCD, got %#x", c.D)
	}

	c.A = 0x0000
	loadAt(ram, 0, 0x8001, 0x7B) // TDC
	c.Step()
	if c.A != 0x1234 {
		t.Fatalf("expected A=0x1234 after TDC, got %#x", c.A)
	}
}

// WAI stalls PC in place and reports Waiting() until the next Reset.
func TestWAIStalls(t *testing.T) {
	c, ram := newTestCPU(t)
	loadAt(ram, 0, 0x8000, 0xCB) // WAI
	c.Step()
	if !c.Waiting() {
		t.Fatalf("expected Waiting()=true after WAI")
	}
	if c.PC != 0x8000 {
		t.Fatalf("expected PC to stay at 0x8000, got %#x", c.PC)
	}
	c.Step()
	if c.PC != 0x8000 || !c.Waiting() {
		t.Fatalf("expected WAI to keep re-executing at 0x8000, got PC=%#x waiting=%v", c.PC, c.Waiting())
	}
	c.Reset()
	if c.Waiting() {
		t.Fatalf("expected Waiting()=false after Reset")
	}
}

// Invariant 1: emulation mode forces M=1, X=1, and pins SP to page 1.
func TestInvariant_EmulationForcesFlagsAndStack(t *testing.T) {
	c, _ := newTestCPU(t)
	c.Reset()
	if !c.E {
		t.Fatalf("expected E=1 after reset")
	}
	if c.P&emulationMaskedFlags != emulationMaskedFlags {
		t.Fatalf("expected M and X set after reset, got P=%#x", c.P)
	}
	if c.SP&0xFF00 != 0x0100 {
		t.Fatalf("expected SP page-1 pinned, got %#x", c.SP)
	}
}

// Invariant 5: push/pull round-trips a byte and leaves SP unchanged.
func TestInvariant_StackRoundTrip(t *testing.T) {
	c, _ := newTestCPU(t)
	sp := c.SP
	c.pushByte(0x7E)
	got := c.pullByte()
	if got != 0x7E {
		t.Fatalf("expected round-trip value 0x7E, got %#x", got)
	}
	if c.SP != sp {
		t.Fatalf("expected SP restored to %#x, got %#x", sp, c.SP)
	}
}

// Invariant 8: compare sets Z/C per the spec's unsigned-comparison rule.
func TestInvariant_CompareZC(t *testing.T) {
	c, _ := newTestCPU(t)
	c.A = 0x10
	c.compareWithOperand(uint32(c.A), 0x10, true)
	if !c.flag(FlagZ) || !c.flag(FlagC) {
		t.Fatalf("equal operands: expected Z=1 C=1, got Z=%v C=%v", c.flag(FlagZ), c.flag(FlagC))
	}

	c.compareWithOperand(uint32(c.A), 0x05, true)
	if c.flag(FlagZ) || !c.flag(FlagC) {
		t.Fatalf("A>mem: expected Z=0 C=1, got Z=%v C=%v", c.flag(FlagZ), c.flag(FlagC))
	}

	c.compareWithOperand(uint32(c.A), 0x20, true)
	if c.flag(FlagC) {
		t.Fatalf("A<mem: expected C=0, got C=%v", c.flag(FlagC))
	}
}
