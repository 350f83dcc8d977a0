// peripheral_resets.go - RESETS block register model

package main

const RESETS_RESET_DONE = 0x8

// RESETS_RESET_BITS reports all 25 reset-controlled blocks as released.
const RESETS_RESET_BITS = 0x01FFFFFF

// Resets models the reset controller: firmware polls RESET_DONE during boot
// and this core always reports every block already out of reset.
type Resets struct {
	*RegisterMap
}

// NewResets registers the single read hook the boot sequence depends on.
func NewResets() *Resets {
	r := &Resets{RegisterMap: NewRegisterMap("RESETS", RESETS_BASE, RESETS_SIZE, false)}
	r.OnRead(RESETS_RESET_DONE, r.readResetDone)
	return r
}

func (r *Resets) readResetDone() uint32 { return RESETS_RESET_BITS }
