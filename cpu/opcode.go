package cpu

import (
	"fmt"
	"strings"
)

// Opcode is an instruction byte.
//
// Layout is AABxxxxx: AA is the operand count, B is set for ALU operations.
// Decoding is by the exact byte value.
type Opcode uint8

const (
	OPERAND_SHIFT = 6          // Shift of the operand count bits.
	OPERAND_MASK  = 0b11       // Mask of the operand count, after shift.
	ALU_BIT       = 0b00100000 // Set for ALU operations.
)

// The LS-8 instruction set.
const (
	NOP  = Opcode(0b00000000)
	HLT  = Opcode(0b00000001)
	RET  = Opcode(0b00001001)
	PRA  = Opcode(0b01000010)
	PRN  = Opcode(0b01000011)
	CALL = Opcode(0b01001000)
	POP  = Opcode(0b01001100)
	PUSH = Opcode(0b01001101)
	JMP  = Opcode(0b01010000)
	JEQ  = Opcode(0b01010001)
	JNE  = Opcode(0b01010010)
	JLT  = Opcode(0b01010011)
	JGT  = Opcode(0b01010100)
	NOT  = Opcode(0b01110000)
	INC  = Opcode(0b01111000)
	DEC  = Opcode(0b01111001)
	LD   = Opcode(0b10011000)
	LDI  = Opcode(0b10011001)
	ST   = Opcode(0b10011010)
	CMP  = Opcode(0b10100000)
	ADD  = Opcode(0b10101000)
	SUB  = Opcode(0b10101001)
	MUL  = Opcode(0b10101010)
	OR   = Opcode(0b10110001)
	XOR  = Opcode(0b10110010)
	AND  = Opcode(0b10110011)
)

// Operands returns the number of operand bytes following the opcode.
func (op Opcode) Operands() int {
	return int(op>>OPERAND_SHIFT) & OPERAND_MASK
}

// Size returns the instruction length in bytes.
func (op Opcode) Size() int {
	return 1 + op.Operands()
}

// IsAlu returns true if the opcode is marked as an ALU operation.
func (op Opcode) IsAlu() bool {
	return (op & ALU_BIT) != 0
}

// String returns the mnemonic, or the hex value for unknown opcodes.
func (op Opcode) String() string {
	in, ok := Lookup(op)
	if !ok {
		return fmt.Sprintf("0x%02x", uint8(op))
	}
	return in.Name
}

// ArgKind is the interpretation of an operand byte, either a register
// index or an immediate value.
type ArgKind int

//go:generate go tool stringer -linecomment -type=ArgKind
const (
	ARG_REG = ArgKind(0) // reg
	ARG_IMM = ArgKind(1) // imm
)

// handler executes an instruction. If jumped is false, the CPU advances the
// PC past the instruction.
type handler func(cpu *Cpu, a, b uint8) (jumped bool, err error)

// Instruction describes one entry of the instruction set.
type Instruction struct {
	Opcode Opcode    // Opcode byte.
	Name   string    // Assembler mnemonic.
	Args   []ArgKind // Operand kinds, one per operand byte.

	exec handler
}

// Format returns the assembly text for the instruction and its operands.
func (in *Instruction) Format(a, b uint8) string {
	operands := [2]uint8{a, b}
	words := make([]string, 0, len(in.Args))
	for n, kind := range in.Args {
		switch kind {
		case ARG_REG:
			words = append(words, fmt.Sprintf("R%d", operands[n]&REGISTER_MASK))
		case ARG_IMM:
			words = append(words, fmt.Sprintf("%d", operands[n]))
		}
	}

	if len(words) == 0 {
		return in.Name
	}

	return in.Name + " " + strings.Join(words, ",")
}

var (
	argsNone   = []ArgKind{}
	argsReg    = []ArgKind{ARG_REG}
	argsRegReg = []ArgKind{ARG_REG, ARG_REG}
	argsRegImm = []ArgKind{ARG_REG, ARG_IMM}
)

// instructionSet is the canonical LS-8 instruction table.
var instructionSet = []Instruction{
	{NOP, "NOP", argsNone, (*Cpu).opNop},
	{HLT, "HLT", argsNone, (*Cpu).opHlt},
	{RET, "RET", argsNone, (*Cpu).opRet},
	{PRA, "PRA", argsReg, (*Cpu).opPra},
	{PRN, "PRN", argsReg, (*Cpu).opPrn},
	{CALL, "CALL", argsReg, (*Cpu).opCall},
	{POP, "POP", argsReg, (*Cpu).opPop},
	{PUSH, "PUSH", argsReg, (*Cpu).opPush},
	{JMP, "JMP", argsReg, (*Cpu).opJmp},
	{JEQ, "JEQ", argsReg, (*Cpu).opJeq},
	{JNE, "JNE", argsReg, (*Cpu).opJne},
	{JLT, "JLT", argsReg, (*Cpu).opJlt},
	{JGT, "JGT", argsReg, (*Cpu).opJgt},
	{NOT, "NOT", argsReg, aluHandler(ALU_NOT)},
	{INC, "INC", argsReg, aluHandler(ALU_INC)},
	{DEC, "DEC", argsReg, aluHandler(ALU_DEC)},
	{LD, "LD", argsRegReg, (*Cpu).opLd},
	{LDI, "LDI", argsRegImm, (*Cpu).opLdi},
	{ST, "ST", argsRegReg, (*Cpu).opSt},
	{CMP, "CMP", argsRegReg, aluHandler(ALU_CMP)},
	{ADD, "ADD", argsRegReg, aluHandler(ALU_ADD)},
	{SUB, "SUB", argsRegReg, aluHandler(ALU_SUB)},
	{MUL, "MUL", argsRegReg, aluHandler(ALU_MUL)},
	{OR, "OR", argsRegReg, aluHandler(ALU_OR)},
	{XOR, "XOR", argsRegReg, aluHandler(ALU_XOR)},
	{AND, "AND", argsRegReg, aluHandler(ALU_AND)},
}

var (
	byOpcode = map[Opcode]*Instruction{}
	byName   = map[string]*Instruction{}
)

func init() {
	for n := range instructionSet {
		in := &instructionSet[n]
		byOpcode[in.Opcode] = in
		byName[in.Name] = in
	}
}

// Lookup returns the instruction for an exact opcode byte.
func Lookup(op Opcode) (in *Instruction, ok bool) {
	in, ok = byOpcode[op]
	return
}

// LookupName returns the instruction for a mnemonic, case insensitive.
func LookupName(name string) (in *Instruction, ok bool) {
	in, ok = byName[strings.ToUpper(name)]
	return
}

// Instructions returns a copy of the instruction table.
func Instructions() []Instruction {
	return append([]Instruction(nil), instructionSet...)
}
