package main

import "testing"

func TestXipSsiAlwaysReportsFifoEmpty(t *testing.T) {
	x := NewXipSsi()
	if got := x.Read(SSI_SR_OFFSET, 4); got&SSI_SR_TFE_BITS == 0 {
		t.Fatalf("SR = %#x, want TFE bit set", got)
	}
}

func TestXipSsiStatusCommandStagesZero(t *testing.T) {
	x := NewXipSsi()
	x.Write(SSI_DR0_OFFSET, ssiCmdReadStatus, 4)
	if got := x.Read(SSI_DR0_OFFSET, 4); got != 0 {
		t.Fatalf("DR0 after status command = %#x, want 0", got)
	}
}

func TestResetsAlwaysDone(t *testing.T) {
	r := NewResets()
	if got := r.Read(RESETS_RESET_DONE, 4); got != RESETS_RESET_BITS {
		t.Fatalf("RESET_DONE = %#x, want %#x", got, RESETS_RESET_BITS)
	}
}

func TestXoscAlwaysStable(t *testing.T) {
	x := NewXosc()
	if got := x.Read(XOSC_STATUS_OFFSET, 4); got&XOSC_STATUS_STABLE_BITS == 0 {
		t.Fatalf("STATUS = %#x, want STABLE bit set", got)
	}
}

func TestPllAlwaysLocked(t *testing.T) {
	p := NewPll("PLL_SYS", PLL_SYS_BASE)
	if got := p.Read(PLL_CS_OFFSET, 4); got&PLL_CS_LOCK_BITS == 0 {
		t.Fatalf("CS = %#x, want LOCK bit set", got)
	}
}

func TestUartWriteGoesToAttachedSerial(t *testing.T) {
	u := NewUart()
	var buf []byte
	u.AttachSerial(&sliceWriter{&buf})
	u.Write(UARTDR, 'A', 4)
	if len(buf) != 1 || buf[0] != 'A' {
		t.Fatalf("serial output = %v, want ['A']", buf)
	}
}

type sliceWriter struct{ buf *[]byte }

func (w *sliceWriter) Write(p []byte) (int, error) {
	*w.buf = append(*w.buf, p...)
	return len(p), nil
}

func TestSioUnsignedDivider(t *testing.T) {
	s := NewSio()
	s.Write(SIO_DIV_UDIVIDEND, 17, 4)
	s.Write(SIO_DIV_UDIVISOR, 5, 4)
	if got := s.Read(SIO_DIV_QUOTIENT, 4); got != 3 {
		t.Fatalf("quotient = %d, want 3", got)
	}
	if got := s.Read(SIO_DIV_REMAINDER, 4); got != 2 {
		t.Fatalf("remainder = %d, want 2", got)
	}
	if got := s.Read(SIO_DIV_CSR, 4); got&1 == 0 {
		t.Fatalf("CSR ready bit = %#x, want set", got)
	}
}

func TestSioDivisionByZeroClearsReady(t *testing.T) {
	s := NewSio()
	s.Write(SIO_DIV_UDIVIDEND, 17, 4)
	s.Write(SIO_DIV_UDIVISOR, 0, 4)
	if got := s.Read(SIO_DIV_CSR, 4); got&1 != 0 {
		t.Fatalf("CSR ready bit = %#x, want clear after division by zero", got)
	}
}

func TestSioSpinlockOneShot(t *testing.T) {
	s := NewSio()
	off := uint32(SIO_SPINLOCK_BASE)
	if got := s.Read(off, 4); got != 1 {
		t.Fatalf("first spinlock read = %#x, want 1", got)
	}
	if got := s.Read(off, 4); got != 0 {
		t.Fatalf("second spinlock read = %#x, want 0 (held)", got)
	}
	s.Write(off, 0, 4) // release
	if got := s.Read(off, 4); got != 1 {
		t.Fatalf("spinlock read after release = %#x, want 1", got)
	}
}

func TestTimerLatchesHighOnLowRead(t *testing.T) {
	tm := NewTimer()
	if got := tm.Read(TIMEHR, 4); got != 0 {
		t.Fatalf("TIMEHR before any TIMELR read = %#x, want 0 (nothing latched yet)", got)
	}
	_ = tm.Read(TIMELR, 4)
	got := tm.Read(TIMEHR, 4)
	if got == 0xFFFFFFFF {
		t.Fatalf("latched high word unexpectedly all-ones")
	}
	if got == 0 {
		t.Fatalf("TIMEHR after TIMELR read = 0, want the latched high word of the microsecond clock")
	}
}

func TestCortexNvicEnableClear(t *testing.T) {
	c := NewCortexRegisters()
	c.Write(NVIC_ISER, 1<<3, 4)
	if got := c.Read(NVIC_ISER, 4); got&(1<<3) == 0 {
		t.Fatalf("ISER after enabling IRQ3 = %#x, want bit 3 set", got)
	}
	c.Write(NVIC_ICER, 1<<3, 4)
	if got := c.Read(NVIC_ISER, 4); got&(1<<3) != 0 {
		t.Fatalf("ISER after clearing IRQ3 = %#x, want bit 3 clear", got)
	}
}

// TestClocksAtomicClearAlias is the spec's scenario 6: a plain write of
// 0x000000FF to CLK_REF_CTRL followed by an atomic-clear-alias write of
// 0x0000000F leaves 0x000000F0 in the register.
func TestClocksAtomicClearAlias(t *testing.T) {
	c := NewClocks()
	c.Write(CLK_REF_CTRL, 0x000000FF, 4)
	c.Write(CLK_REF_CTRL+0x3000, 0x0000000F, 4)
	if got := c.Read(CLK_REF_CTRL, 4); got != 0x000000F0 {
		t.Fatalf("CLK_REF_CTRL after atomic clear = %#x, want 0xf0", got)
	}
}

func TestCortexIPRRoundTrip(t *testing.T) {
	c := NewCortexRegisters()
	// IRQ0 gets priority 2, IRQ1 gets priority 1, packed into IPR0.
	packed := uint32(2)<<6 | uint32(1)<<14
	c.Write(NVIC_IPR_BASE, packed, 4)
	if got := c.Read(NVIC_IPR_BASE, 4); got != packed {
		t.Fatalf("IPR0 round-trip = %#x, want %#x", got, packed)
	}
}
