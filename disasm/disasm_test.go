package disasm

import "testing"

func TestLine(t *testing.T) {
	tests := []struct {
		name             string
		data             []byte
		width8M, width8X bool
		want             string
		wantSize         int
	}{
		{"LDA immediate 8-bit", []byte{0xA9, 0x42}, true, true, "LDA #$42", 2},
		{"LDA immediate 16-bit", []byte{0xA9, 0x34, 0x12}, false, true, "LDA #$1234", 3},
		{"LDA absolute", []byte{0xAD, 0x00, 0x10}, true, true, "LDA $1000", 3},
		{"STA direct,X", []byte{0x95, 0x10}, true, true, "STA $10,X", 2},
		{"BEQ relative forward", []byte{0xF0, 0x02}, true, true, "BEQ +2", 2},
		{"BEQ relative backward", []byte{0xF0, 0xFC}, true, true, "BEQ -4", 2},
		{"MVN block move", []byte{0x54, 0x02, 0x01}, true, true, "MVN $02,$01", 3},
		{"implied", []byte{0x18}, true, true, "CLC", 1},
		{"accumulator", []byte{0x0A}, true, true, "ASL A", 1},
		{"unknown opcode", []byte{0x03}, true, true, "DB  $03", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, size := Line(tc.data, tc.width8M, tc.width8X)
			if got != tc.want || size != tc.wantSize {
				t.Fatalf("Line(%v) = %q, %d; want %q, %d", tc.data, got, size, tc.want, tc.wantSize)
			}
		})
	}
}
