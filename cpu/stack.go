package cpu

// Push decrements the stack pointer, then stores value at the new top.
// The stack grows down from STACK_TOP. On error the stack pointer is
// unchanged.
func (cpu *Cpu) Push(value uint8) (err error) {
	sp := cpu.Register[SP] - 1

	err = cpu.Memory.Write(int(sp), value)
	if err != nil {
		return
	}

	cpu.Register[SP] = sp
	return
}

// Pop reads the top of the stack, then increments the stack pointer.
func (cpu *Cpu) Pop() (value uint8, err error) {
	sp := cpu.Register[SP]

	value, err = cpu.Memory.Read(int(sp))
	if err != nil {
		return
	}

	cpu.Register[SP] = sp + 1
	return
}

// Peek returns the top of the stack without popping it.
func (cpu *Cpu) Peek() (value uint8, err error) {
	return cpu.Memory.Read(int(cpu.Register[SP]))
}
