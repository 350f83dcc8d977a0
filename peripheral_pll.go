// peripheral_pll.go - PLL_SYS / PLL_USB register model

package main

const (
	PLL_CS_OFFSET        = 0x0
	PLL_FBDIV_INT_OFFSET = 0x8
	PLL_PRIM_OFFSET      = 0xC
)

// PLL_CS_LOCK_BITS is bit 31 of CS: the PLL has locked onto its target frequency.
const PLL_CS_LOCK_BITS = 0x80000000

// Pll reports a fixed, already-locked configuration matching the frequency
// the RP2040 bootrom programs by default (REFDIV=1, FBDIV=125, POSTDIV1=6,
// POSTDIV2=2), since this core does not model PLL lock timing.
type Pll struct {
	*RegisterMap
}

// NewPll registers CS/FBDIV_INT/PRIM read hooks for one PLL instance.
func NewPll(name string, base uint32) *Pll {
	p := &Pll{RegisterMap: NewRegisterMap(name, base, PLL_SIZE, false)}
	p.OnRead(PLL_CS_OFFSET, p.readCS)
	p.OnRead(PLL_FBDIV_INT_OFFSET, p.readFbdivInt)
	p.OnRead(PLL_PRIM_OFFSET, p.readPrim)
	return p
}

func (p *Pll) readCS() uint32 { return PLL_CS_LOCK_BITS | 1 }

func (p *Pll) readFbdivInt() uint32 { return 0x7D }

func (p *Pll) readPrim() uint32 { return (6 << 16) | (2 << 12) }
