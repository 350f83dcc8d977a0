// peripheral_xosc.go - crystal oscillator register model

package main

const XOSC_STATUS_OFFSET = 0x4

// XOSC_STATUS_STABLE_BITS is bit 31 of STATUS: the oscillator is stable.
const XOSC_STATUS_STABLE_BITS = 0x80000000

// Xosc always reports the crystal oscillator as stable; there is no real
// warm-up delay to model in an emulator with no cycle-accurate clock.
type Xosc struct {
	*RegisterMap
}

// NewXosc registers the STATUS read hook.
func NewXosc() *Xosc {
	x := &Xosc{RegisterMap: NewRegisterMap("XOSC", XOSC_BASE, XOSC_SIZE, false)}
	x.OnRead(XOSC_STATUS_OFFSET, x.readStatus)
	return x
}

func (x *Xosc) readStatus() uint32 { return XOSC_STATUS_STABLE_BITS }
