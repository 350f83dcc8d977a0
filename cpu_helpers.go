// cpu_helpers.go - bit-exact arithmetic primitives shared by the executor

package main

// signExtend sign-extends the low n bits of v to a full 32-bit signed value,
// returned as uint32 (the two's-complement bit pattern).
func signExtend(v uint32, n uint) uint32 {
	shift := 32 - n
	return uint32(int32(v<<shift) >> shift)
}

// addWithCarry computes x + y + carryIn as ARMv6-M's AddWithCarry: the
// 32-bit wrapped result, carry_out (an unsigned bit escaped past bit 31),
// and overflow (the signed result cannot be represented in 32 bits).
// Subtraction is expressed as addWithCarry(a, ^b, true).
func addWithCarry(x, y uint32, carryIn bool) (result uint32, carryOut bool, overflow bool) {
	var cin uint64
	if carryIn {
		cin = 1
	}
	unsignedSum := uint64(x) + uint64(y) + cin

	var cinS int64
	if carryIn {
		cinS = 1
	}
	signedSum := int64(int32(x)) + int64(int32(y)) + cinS

	result = uint32(unsignedSum)
	carryOut = unsignedSum != uint64(result)
	overflow = signedSum != int64(int32(result))
	return
}

// conditionPassed evaluates a 4-bit ARMv6-M condition code against the
// current flags. Odd condition codes invert the base predicate's result,
// except cond == 0b1111 (AL), which is unconditionally true.
func (c *CPU) conditionPassed(cond uint32) bool {
	var result bool
	switch cond >> 1 {
	case 0b000: // EQ/NE
		result = c.FlagZ()
	case 0b001: // CS/CC
		result = c.FlagC()
	case 0b010: // MI/PL
		result = c.FlagN()
	case 0b011: // VS/VC
		result = c.FlagV()
	case 0b100: // HI/LS
		result = c.FlagC() && !c.FlagZ()
	case 0b101: // GE/LT
		result = c.FlagN() == c.FlagV()
	case 0b110: // GT/LE
		result = (c.FlagN() == c.FlagV()) && !c.FlagZ()
	case 0b111: // AL (and the inverted slot, which is still AL)
		result = true
	}
	if cond&1 != 0 && cond != 0b1111 {
		result = !result
	}
	return result
}
