// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ls8/io"
)

// Channel is the output channel interface.
type Channel io.Channel

// Memory is the byte addressed store the CPU executes from.
type Memory interface {
	Read(address int) (value byte, err error)
	Write(address int, value byte) (err error)
	Size() int
}

const (
	REGISTER_COUNT = 8    // General purpose registers.
	REGISTER_MASK  = 0x7  // Mask applied to register operands.
	SP             = 7    // Register used as the stack pointer.
	STACK_TOP      = 0xf4 // Initial stack pointer.
)

var _cpu_defines = map[string]string{
	"REGISTER_COUNT": fmt.Sprintf("%d", REGISTER_COUNT),
	"STACK_TOP":      fmt.Sprintf("%#x", STACK_TOP),
}

// Flag is the result of the most recent comparison.
type Flag uint8

//go:generate go tool stringer -linecomment -type=Flag
const (
	FLAG_CLEAR   = Flag(0)     // -
	FLAG_EQUAL   = Flag(0b001) // eq
	FLAG_GREATER = Flag(0b010) // gt
	FLAG_LESS    = Flag(0b100) // lt
)

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory Memory  // Memory the program executes from.
	Output Channel // Destination of PRN and PRA. May be nil.

	Pc       int                   // Address of the next instruction.
	Register [REGISTER_COUNT]uint8 // Register bank. R7 is the stack pointer.
	Flags    Flag                  // Comparison result.
	Halted   bool                  // Set by HLT or a fatal error.

	Ticks int // Completed instruction cycles.

	dispatch [256]*Instruction
}

// NewCpu creates a CPU attached to memory and an output channel.
func NewCpu(mem Memory, out Channel) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: mem,
		Output: out,
	}

	for n := range instructionSet {
		in := &instructionSet[n]
		cpu.dispatch[in.Opcode] = in
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears the registers and flags.
// - Sets the stack pointer to STACK_TOP.
// - Sets the PC to 0.
// - Rewinds the output channel.
// Memory is not modified.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Register[SP] = STACK_TOP
	cpu.Pc = 0
	cpu.Flags = FLAG_CLEAR
	cpu.Halted = false
	cpu.Ticks = 0

	if cpu.Output != nil {
		cpu.Output.Rewind()
	}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc",
		"fl",
		"r0", "r1", "r2", "r3", "r4", "r5", "r6", "sp",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02X", cpu.Pc)
			if cpu.Halted {
				strval += " (halted)"
			}
		case "fl":
			strval = cpu.Flags.String()
		case "r0", "r1", "r2", "r3", "r4", "r5", "r6":
			val := cpu.Register[byte(reg[1]-'0')]
			strval = fmt.Sprintf("%02X", val)
		case "sp":
			strval = fmt.Sprintf("%02X", cpu.Register[SP])
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Fetch decodes the instruction at the PC without executing it.
func (cpu *Cpu) Fetch() (in *Instruction, a, b uint8, err error) {
	var value byte
	value, err = cpu.Memory.Read(cpu.Pc)
	if err != nil {
		return
	}

	op := Opcode(value)
	in = cpu.dispatch[op]
	if in == nil {
		err = &ErrUnknownOpcode{Pc: cpu.Pc, Opcode: op}
		return
	}

	var operands [2]uint8
	for n := range len(in.Args) {
		operands[n], err = cpu.Memory.Read(cpu.Pc + 1 + n)
		if err != nil {
			return
		}
	}

	a, b = operands[0], operands[1]
	return
}

// Tick executes a single CPU instruction cycle.
//
// Fatal errors halt the CPU. A halted CPU returns ErrHalted and does nothing.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		return ErrHalted
	}

	pc := cpu.Pc

	in, a, b, err := cpu.Fetch()
	if err != nil {
		cpu.Halted = true
		var unknown *ErrUnknownOpcode
		if !errors.As(err, &unknown) {
			fault := &ErrFault{Pc: pc, Err: err}
			if in != nil {
				fault.Opcode = in.Opcode
				fault.Decoded = true
			}
			err = fault
		}
		return
	}

	if cpu.Verbose {
		log.Printf("%02x: %v", pc, in.Format(a, b))
	}

	jumped, err := in.exec(cpu, a, b)
	if err != nil {
		cpu.Halted = true
		err = &ErrFault{Pc: pc, Opcode: in.Opcode, Decoded: true, Err: err}
		return
	}

	if !jumped {
		cpu.Pc = pc + in.Opcode.Size()
	}

	cpu.Ticks++

	return
}

// reg returns a pointer to the register selected by an operand.
func (cpu *Cpu) reg(operand uint8) *uint8 {
	return &cpu.Register[operand&REGISTER_MASK]
}

// jumpIf sets the PC to the register value if cond holds.
func (cpu *Cpu) jumpIf(cond bool, a uint8) (jumped bool, err error) {
	if cond {
		cpu.Pc = int(*cpu.reg(a))
		jumped = true
	}
	return
}

func (cpu *Cpu) opNop(a, b uint8) (jumped bool, err error) {
	return
}

func (cpu *Cpu) opHlt(a, b uint8) (jumped bool, err error) {
	if cpu.Verbose {
		log.Printf("cpu: halt")
	}
	cpu.Halted = true
	return
}

func (cpu *Cpu) opLdi(a, b uint8) (jumped bool, err error) {
	*cpu.reg(a) = b
	return
}

func (cpu *Cpu) opLd(a, b uint8) (jumped bool, err error) {
	value, err := cpu.Memory.Read(int(*cpu.reg(b)))
	if err != nil {
		return
	}
	*cpu.reg(a) = value
	return
}

func (cpu *Cpu) opSt(a, b uint8) (jumped bool, err error) {
	err = cpu.Memory.Write(int(*cpu.reg(a)), *cpu.reg(b))
	return
}

func (cpu *Cpu) opPrn(a, b uint8) (jumped bool, err error) {
	if cpu.Output != nil {
		err = cpu.Output.Number(*cpu.reg(a))
	}
	return
}

func (cpu *Cpu) opPra(a, b uint8) (jumped bool, err error) {
	if cpu.Output != nil {
		err = cpu.Output.Char(*cpu.reg(a))
	}
	return
}

func (cpu *Cpu) opPush(a, b uint8) (jumped bool, err error) {
	err = cpu.Push(*cpu.reg(a))
	return
}

func (cpu *Cpu) opPop(a, b uint8) (jumped bool, err error) {
	value, err := cpu.Pop()
	if err != nil {
		return
	}
	*cpu.reg(a) = value
	return
}

func (cpu *Cpu) opCall(a, b uint8) (jumped bool, err error) {
	// Return to the instruction after CALL's operand.
	ret := cpu.Pc + 2
	if ret > 0xff {
		err = ErrReturnRange
		return
	}
	err = cpu.Push(uint8(ret))
	if err != nil {
		return
	}
	return cpu.jumpIf(true, a)
}

func (cpu *Cpu) opRet(a, b uint8) (jumped bool, err error) {
	value, err := cpu.Pop()
	if err != nil {
		return
	}
	cpu.Pc = int(value)
	jumped = true
	return
}

func (cpu *Cpu) opJmp(a, b uint8) (jumped bool, err error) {
	return cpu.jumpIf(true, a)
}

func (cpu *Cpu) opJeq(a, b uint8) (jumped bool, err error) {
	return cpu.jumpIf(cpu.Flags == FLAG_EQUAL, a)
}

func (cpu *Cpu) opJne(a, b uint8) (jumped bool, err error) {
	return cpu.jumpIf(cpu.Flags != FLAG_EQUAL, a)
}

func (cpu *Cpu) opJlt(a, b uint8) (jumped bool, err error) {
	return cpu.jumpIf(cpu.Flags == FLAG_LESS, a)
}

func (cpu *Cpu) opJgt(a, b uint8) (jumped bool, err error) {
	return cpu.jumpIf(cpu.Flags == FLAG_GREATER, a)
}
