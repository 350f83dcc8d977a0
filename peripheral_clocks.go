// peripheral_clocks.go - CLOCKS block register model

package main

// Clock generator register offsets, relative to CLOCKS_BASE. clk_ref and
// clk_sys are the two generators firmware boot code actually polls; the
// spacing (0xC per generator) matches the RP2040 register layout.
const (
	CLK_REF_CTRL     = 0x30
	CLK_REF_DIV      = 0x34
	CLK_REF_SELECTED = 0x38

	CLK_SYS_CTRL     = 0x3C
	CLK_SYS_DIV      = 0x40
	CLK_SYS_SELECTED = 0x44
)

// clkSrcMask isolates the selected-source field of a CTRL register; SELECTED
// reads back 1 << (CTRL & clkSrcMask), a one-hot encoding of that source value.
const clkSrcMask = 0x7

// clkDivIdentity is DIV's reset value: integer part 1, fraction 0 -> divide by 1.
const clkDivIdentity = 1 << 8

type clockGenerator struct {
	ctrl uint32
	div  uint32
}

// Clocks models the clock generator tree as far as firmware boot code
// depends on it: CTRL/DIV are stored verbatim, SELECTED reflects CTRL's
// low source-select bits as a one-hot mask. Atomic alias writes are
// enabled per the RP2040 convention used across this register block.
type Clocks struct {
	*RegisterMap
	ref clockGenerator
	sys clockGenerator
}

// NewClocks registers hooks for clk_ref and clk_sys.
func NewClocks() *Clocks {
	c := &Clocks{RegisterMap: NewRegisterMap("CLOCKS", CLOCKS_BASE, CLOCKS_SIZE, true)}
	c.ref.div = clkDivIdentity
	c.sys.div = clkDivIdentity

	c.OnWrite(CLK_REF_CTRL, func(v uint32) { c.ref.ctrl = v })
	c.OnRead(CLK_REF_CTRL, func() uint32 { return c.ref.ctrl })
	c.OnWrite(CLK_REF_DIV, func(v uint32) { c.ref.div = v })
	c.OnRead(CLK_REF_DIV, func() uint32 { return c.ref.div })
	c.OnRead(CLK_REF_SELECTED, func() uint32 { return selectedMask(c.ref.ctrl) })

	c.OnWrite(CLK_SYS_CTRL, func(v uint32) { c.sys.ctrl = v })
	c.OnRead(CLK_SYS_CTRL, func() uint32 { return c.sys.ctrl })
	c.OnWrite(CLK_SYS_DIV, func(v uint32) { c.sys.div = v })
	c.OnRead(CLK_SYS_DIV, func() uint32 { return c.sys.div })
	c.OnRead(CLK_SYS_SELECTED, func() uint32 { return selectedMask(c.sys.ctrl) })

	return c
}

func selectedMask(ctrl uint32) uint32 { return 1 << (ctrl & clkSrcMask) }
