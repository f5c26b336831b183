package cpu

// getA returns the accumulator value at the active width.
func (c *CPU) getA(width8 bool) uint32 {
	if width8 {
		return uint32(c.A & 0xFF)
	}
	return uint32(c.A)
}

// setA stores val into the accumulator. At 8-bit width only the low
// byte is touched — the high byte is preserved, per spec.md §3.
func (c *CPU) setA(val uint32, width8 bool) {
	if width8 {
		c.A = (c.A & 0xFF00) | uint16(val&0xFF)
	} else {
		c.A = uint16(val)
	}
}

func (c *CPU) getX(width8 bool) uint32 { return uint32(truncIndex(c.X, width8)) }
func (c *CPU) getY(width8 bool) uint32 { return uint32(truncIndex(c.Y, width8)) }

// setX/setY store val into an index register. At 8-bit width the high
// byte is forced to zero, not merely left alone — spec.md §3: "When
// X-flag=1, high byte is always 0; transitions that set X-flag must
// clear the high byte."
func (c *CPU) setX(val uint32, width8 bool) {
	if width8 {
		c.X = uint16(val & 0xFF)
	} else {
		c.X = uint16(val)
	}
}

func (c *CPU) setY(val uint32, width8 bool) {
	if width8 {
		c.Y = uint16(val & 0xFF)
	} else {
		c.Y = uint16(val)
	}
}
