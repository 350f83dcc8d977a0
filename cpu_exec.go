// cpu_exec.go - ARMv6-M instruction semantics

package main

// Shift kinds for execShiftImm.
const (
	shiftLSL = iota
	shiftLSR
	shiftASR
)

// shiftLSLReg implements LSL_C for an arbitrary (register-sourced) shift
// amount 0-255; carryIn is returned unchanged when shift==0.
func shiftLSLReg(x, shift uint32, carryIn bool) (uint32, bool) {
	switch {
	case shift == 0:
		return x, carryIn
	case shift < 32:
		return x << shift, (x>>(32-shift))&1 != 0
	case shift == 32:
		return 0, x&1 != 0
	default:
		return 0, false
	}
}

func shiftLSRReg(x, shift uint32, carryIn bool) (uint32, bool) {
	switch {
	case shift == 0:
		return x, carryIn
	case shift < 32:
		return x >> shift, (x>>(shift-1))&1 != 0
	case shift == 32:
		return 0, x&0x80000000 != 0
	default:
		return 0, false
	}
}

func shiftASRReg(x, shift uint32, carryIn bool) (uint32, bool) {
	switch {
	case shift == 0:
		return x, carryIn
	case shift < 32:
		return uint32(int32(x) >> shift), (x>>(shift-1))&1 != 0
	default:
		if x&0x80000000 != 0 {
			return 0xFFFFFFFF, true
		}
		return 0, false
	}
}

// --- executeALU group (two-register ALU ops, prefix 010000) ---

func (c *CPU) execANDS(rdn, rm int) {
	result := c.Register(rdn) & c.Register(rm)
	c.SetRegister(rdn, result)
	c.SetNZ(result)
}

func (c *CPU) execEORS(rdn, rm int) {
	result := c.Register(rdn) ^ c.Register(rm)
	c.SetRegister(rdn, result)
	c.SetNZ(result)
}

func (c *CPU) execLSLSReg(rdn, rm int) {
	result, carry := shiftLSLReg(c.Register(rdn), c.Register(rm)&0xFF, c.FlagC())
	c.SetRegister(rdn, result)
	c.SetNZ(result)
	c.SetFlagC(carry)
}

func (c *CPU) execLSRSReg(rdn, rm int) {
	result, carry := shiftLSRReg(c.Register(rdn), c.Register(rm)&0xFF, c.FlagC())
	c.SetRegister(rdn, result)
	c.SetNZ(result)
	c.SetFlagC(carry)
}

func (c *CPU) execASRSReg(rdn, rm int) {
	result, carry := shiftASRReg(c.Register(rdn), c.Register(rm)&0xFF, c.FlagC())
	c.SetRegister(rdn, result)
	c.SetNZ(result)
	c.SetFlagC(carry)
}

func (c *CPU) execADCS(rdn, rm int) {
	result, carry, overflow := addWithCarry(c.Register(rdn), c.Register(rm), c.FlagC())
	c.SetRegister(rdn, result)
	c.SetNZ(result)
	c.SetFlagC(carry)
	c.SetFlagV(overflow)
}

func (c *CPU) execSBCS(rdn, rm int) {
	result, carry, overflow := addWithCarry(c.Register(rdn), ^c.Register(rm), c.FlagC())
	c.SetRegister(rdn, result)
	c.SetNZ(result)
	c.SetFlagC(carry)
	c.SetFlagV(overflow)
}

func (c *CPU) execTST(rdn, rm int) {
	c.SetNZ(c.Register(rdn) & c.Register(rm))
}

func (c *CPU) execRSBS(rdn, rm int) {
	result, carry, overflow := addWithCarry(^c.Register(rm), 0, true)
	c.SetRegister(rdn, result)
	c.SetNZ(result)
	c.SetFlagC(carry)
	c.SetFlagV(overflow)
}

func (c *CPU) execCMPReg(rdn, rm int) {
	result, carry, overflow := addWithCarry(c.Register(rdn), ^c.Register(rm), true)
	c.SetNZ(result)
	c.SetFlagC(carry)
	c.SetFlagV(overflow)
}

func (c *CPU) execORRS(rdn, rm int) {
	result := c.Register(rdn) | c.Register(rm)
	c.SetRegister(rdn, result)
	c.SetNZ(result)
}

func (c *CPU) execMULS(rdn, rm int) {
	result := c.Register(rdn) * c.Register(rm)
	c.SetRegister(rdn, result)
	c.SetNZ(result)
}

func (c *CPU) execBICS(rdn, rm int) {
	result := c.Register(rdn) &^ c.Register(rm)
	c.SetRegister(rdn, result)
	c.SetNZ(result)
}

func (c *CPU) execMVNS(rdn, rm int) {
	result := ^c.Register(rm)
	c.SetRegister(rdn, result)
	c.SetNZ(result)
}

// --- executeHiReg group (prefix 010001) ---

func (c *CPU) execADDRegHi(rdn, rm int) {
	result := c.Register(rdn) + c.Register(rm)
	if rdn == 15 {
		c.SetPC(result)
		return
	}
	c.SetRegister(rdn, result)
}

func (c *CPU) execCMPRegHi(rdn, rm int) {
	result, carry, overflow := addWithCarry(c.Register(rdn), ^c.Register(rm), true)
	c.SetNZ(result)
	c.SetFlagC(carry)
	c.SetFlagV(overflow)
}

func (c *CPU) execMOVReg(rdn, rm int) {
	value := c.Register(rm)
	if rdn == 15 {
		c.SetPC(value)
		return
	}
	c.SetRegister(rdn, value)
}

func (c *CPU) execBX(rm int) {
	c.SetPC(c.Register(rm))
}

func (c *CPU) execBLX(rm int) {
	target := c.Register(rm)
	c.SetLR(c.PC() | 1)
	c.SetPC(target)
}

// --- load/store literal, register-offset, and immediate-offset forms ---

func (c *CPU) execLDRLiteral(hw uint32) {
	rt := int(bits(hw, 8, 3))
	imm8 := bits(hw, 0, 8)
	base := (c.PC() + 2) &^ 3
	addr := base + imm8*4
	c.SetRegister(rt, c.bus.Read32(addr))
}

func (c *CPU) execRegOffset(hw uint32, width int, isLoad, signed bool) {
	rm := int(bits(hw, 6, 3))
	rn := int(bits(hw, 3, 3))
	rt := int(bits(hw, 0, 3))
	addr := c.Register(rn) + c.Register(rm)
	if !isLoad {
		c.writeWidth(addr, width, c.Register(rt))
		return
	}
	value := c.readWidth(addr, width)
	if signed {
		value = signExtend(value, uint(width*8))
	}
	c.SetRegister(rt, value)
}

func (c *CPU) execAddSubReg(hw uint32, isSub bool) {
	rm := int(bits(hw, 6, 3))
	rn := int(bits(hw, 3, 3))
	rd := int(bits(hw, 0, 3))
	c.doAddSub(rd, c.Register(rn), c.Register(rm), isSub)
}

func (c *CPU) execAddSubImm3(hw uint32, isSub bool) {
	imm3 := bits(hw, 6, 3)
	rn := int(bits(hw, 3, 3))
	rd := int(bits(hw, 0, 3))
	c.doAddSub(rd, c.Register(rn), imm3, isSub)
}

func (c *CPU) doAddSub(rd int, a, b uint32, isSub bool) {
	var result uint32
	var carry, overflow bool
	if isSub {
		result, carry, overflow = addWithCarry(a, ^b, true)
	} else {
		result, carry, overflow = addWithCarry(a, b, false)
	}
	c.SetRegister(rd, result)
	c.SetNZ(result)
	c.SetFlagC(carry)
	c.SetFlagV(overflow)
}

func (c *CPU) execShiftImm(hw uint32, kind int) {
	imm5 := bits(hw, 6, 5)
	rm := int(bits(hw, 3, 3))
	rd := int(bits(hw, 0, 3))

	if kind == shiftLSL && imm5 == 0 {
		// MOV reg T2: no carry update.
		value := c.Register(rm)
		c.SetRegister(rd, value)
		c.SetNZ(value)
		return
	}

	shiftN := imm5
	if shiftN == 0 {
		shiftN = 32 // LSR/ASR imm5==0 means shift by 32
	}

	var result uint32
	var carry bool
	switch kind {
	case shiftLSL:
		result, carry = shiftLSLReg(c.Register(rm), shiftN, c.FlagC())
	case shiftLSR:
		result, carry = shiftLSRReg(c.Register(rm), shiftN, c.FlagC())
	case shiftASR:
		result, carry = shiftASRReg(c.Register(rm), shiftN, c.FlagC())
	}
	c.SetRegister(rd, result)
	c.SetNZ(result)
	c.SetFlagC(carry)
}

func (c *CPU) execMOVSImm(hw uint32) {
	rd := int(bits(hw, 8, 3))
	imm8 := bits(hw, 0, 8)
	c.SetRegister(rd, imm8)
	c.SetNZ(imm8)
}

func (c *CPU) execCMPImm(hw uint32) {
	rn := int(bits(hw, 8, 3))
	imm8 := bits(hw, 0, 8)
	result, carry, overflow := addWithCarry(c.Register(rn), ^imm8, true)
	c.SetNZ(result)
	c.SetFlagC(carry)
	c.SetFlagV(overflow)
}

func (c *CPU) execAddSubImm8(hw uint32, isSub bool) {
	rdn := int(bits(hw, 8, 3))
	imm8 := bits(hw, 0, 8)
	c.doAddSub(rdn, c.Register(rdn), imm8, isSub)
}

func (c *CPU) execImmOffset(hw uint32, width int, isLoad bool) {
	imm5 := bits(hw, 6, 5)
	rn := int(bits(hw, 3, 3))
	rt := int(bits(hw, 0, 3))
	addr := c.Register(rn) + imm5*uint32(width)
	if isLoad {
		c.SetRegister(rt, c.readWidth(addr, width))
		return
	}
	c.writeWidth(addr, width, c.Register(rt))
}

func (c *CPU) execSPRelative(hw uint32, isLoad bool) {
	rt := int(bits(hw, 8, 3))
	imm8 := bits(hw, 0, 8)
	addr := c.SP() + imm8*4
	if isLoad {
		c.SetRegister(rt, c.bus.Read32(addr))
		return
	}
	c.bus.Write32(addr, c.Register(rt))
}

func (c *CPU) execADR(hw uint32) {
	rd := int(bits(hw, 8, 3))
	imm8 := bits(hw, 0, 8)
	c.SetRegister(rd, (c.PC()&^3)+imm8*4)
}

func (c *CPU) execAddSPImm(hw uint32) {
	rd := int(bits(hw, 8, 3))
	imm8 := bits(hw, 0, 8)
	c.SetRegister(rd, c.SP()+imm8*4)
}

func (c *CPU) execSPAdjust(hw uint32, isSub bool) {
	imm7 := bits(hw, 0, 7)
	if isSub {
		c.SetSP(c.SP() - imm7*4)
	} else {
		c.SetSP(c.SP() + imm7*4)
	}
}

func (c *CPU) execSTM(hw uint32) {
	rn := int(bits(hw, 8, 3))
	regList := bits(hw, 0, 8)
	addr := c.Register(rn)
	for i := 0; i < 8; i++ {
		if regList&(1<<uint(i)) != 0 {
			c.bus.Write32(addr, c.Register(i))
			addr += 4
		}
	}
	c.SetRegister(rn, addr)
}

func (c *CPU) execLDM(hw uint32) {
	rn := int(bits(hw, 8, 3))
	regList := bits(hw, 0, 8)
	addr := c.Register(rn)
	for i := 0; i < 8; i++ {
		if regList&(1<<uint(i)) != 0 {
			c.SetRegister(i, c.bus.Read32(addr))
			addr += 4
		}
	}
	if regList&(1<<uint(rn)) == 0 {
		c.SetRegister(rn, addr)
	}
}

func (c *CPU) execPUSH(hw uint32) {
	m := bits(hw, 8, 1)
	regList := bits(hw, 0, 8)
	count := popcount8(regList) + int(m)
	addr := c.SP() - uint32(4*count)
	c.SetSP(addr)
	for i := 0; i < 8; i++ {
		if regList&(1<<uint(i)) != 0 {
			c.bus.Write32(addr, c.Register(i))
			addr += 4
		}
	}
	if m != 0 {
		c.bus.Write32(addr, c.LR())
	}
}

func (c *CPU) execPOP(hw uint32) {
	p := bits(hw, 8, 1)
	regList := bits(hw, 0, 8)
	addr := c.SP()
	for i := 0; i < 8; i++ {
		if regList&(1<<uint(i)) != 0 {
			c.SetRegister(i, c.bus.Read32(addr))
			addr += 4
		}
	}
	if p != 0 {
		c.SetPC(c.bus.Read32(addr))
		addr += 4
	}
	c.SetSP(addr)
}

func popcount8(v uint32) int {
	n := 0
	for i := 0; i < 8; i++ {
		if v&(1<<uint(i)) != 0 {
			n++
		}
	}
	return n
}

// Branch targets are PC-relative to the conventional Thumb "PC" value
// (instruction address + 4); at this point in execution PC has only been
// advanced by the 2 bytes of this halfword, so the base needs +2 more.

func (c *CPU) execBUncond(hw uint32) {
	imm11 := bits(hw, 0, 11)
	offset := signExtend(imm11<<1, 12)
	c.SetPC(c.PC() + 2 + offset)
}

func (c *CPU) execBCond(hw, cond uint32) {
	if !c.conditionPassed(cond) {
		return
	}
	imm8 := bits(hw, 0, 8)
	offset := signExtend(imm8<<1, 9)
	c.SetPC(c.PC() + 2 + offset)
}

func (c *CPU) execREV(hw uint32) {
	rm := int(bits(hw, 3, 3))
	rd := int(bits(hw, 0, 3))
	v := c.Register(rm)
	result := (v<<24)&0xFF000000 | (v<<8)&0x00FF0000 | (v>>8)&0x0000FF00 | (v>>24)&0x000000FF
	c.SetRegister(rd, result)
}

func (c *CPU) execExtend(hw uint32, width uint, signed bool) {
	rm := int(bits(hw, 3, 3))
	rd := int(bits(hw, 0, 3))
	v := c.Register(rm) & ((1 << width) - 1)
	if signed {
		v = signExtend(v, width)
	}
	c.SetRegister(rd, v)
}

func (c *CPU) execCPS(hw uint32) {
	im := bits(hw, 4, 1)
	c.primaskPM = im != 0
}

func (c *CPU) execBL(hw1, hw2 uint32) {
	s := bits(hw1, 10, 1)
	imm10 := bits(hw1, 0, 10)
	j1 := bits(hw2, 13, 1)
	j2 := bits(hw2, 11, 1)
	imm11 := bits(hw2, 0, 11)

	i1 := 1 - (j1 ^ s)
	i2 := 1 - (j2 ^ s)
	imm32 := (s << 24) | (i1 << 23) | (i2 << 22) | (imm10 << 12) | (imm11 << 1)
	offset := signExtend(imm32, 25)

	nextPC := c.PC()
	c.SetLR(nextPC | 1)
	c.SetPC(nextPC + offset)
}

func (c *CPU) execMRS(hw2 uint32) {
	rd := int(bits(hw2, 8, 4))
	c.SetRegister(rd, 0)
}

func (c *CPU) execMSR(hw1, hw2 uint32) {
	sysm := bits(hw2, 0, 8)
	rn := int(bits(hw1, 0, 4))
	if sysm == 8 { // MSP
		c.SetSP(c.Register(rn) &^ 3)
	}
}

// readWidth/writeWidth dispatch a load/store of 1, 2, or 4 bytes through the
// bus, zero-extending narrow loads.
func (c *CPU) readWidth(addr uint32, width int) uint32 {
	switch width {
	case 1:
		return c.bus.Read8(addr)
	case 2:
		return c.bus.Read16(addr)
	default:
		return c.bus.Read32(addr)
	}
}

func (c *CPU) writeWidth(addr uint32, width int, value uint32) {
	switch width {
	case 1:
		c.bus.Write8(addr, value)
	case 2:
		c.bus.Write16(addr, value)
	default:
		c.bus.Write32(addr, value)
	}
}
