// runloop.go - fetch/decode/execute step and the free-run loop

package main

// ExecuteInstruction performs one fetch/decode/execute step: fetch a 16-bit
// halfword at PC, extend to 32-bit if the top 4 bits mark a Thumb-2 wide
// encoding, advance PC past what was fetched, then decode and execute.
func (c *CPU) ExecuteInstruction() {
	pc := c.PC()
	c.pcPrevious = pc

	hw1 := uint16(c.bus.Read16(pc))
	pc += 2

	is32 := bits(uint32(hw1), 12, 4) == 0b1111
	var hw2 uint16
	if is32 {
		hw2 = uint16(c.bus.Read16(pc))
		pc += 2
	}

	c.SetRegister(15, pc)
	c.decodeAndExecute(hw1, is32, hw2)
}

// Execute runs instructions until Stop is called. Resets stopped on entry so
// a later call resumes after a prior halt (BKPT, unknown opcode, GDB stop).
func (c *CPU) Execute() {
	c.stopped.Store(false)
	for !c.stopped.Load() {
		c.ExecuteInstruction()
	}
}

// Stop requests the run loop to halt after the current instruction.
// Idempotent and safe to call from another goroutine.
func (c *CPU) Stop() {
	c.stopped.Store(true)
}

// onBreakDefault is the default on_break slot: halt and record the reason.
func (c *CPU) onBreakDefault(reason int) {
	c.stopped.Store(true)
	c.stopReason = int32(reason)
}
