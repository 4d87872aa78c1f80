// Package cpu implements the processor, program loader and assembler for the
// LS-8 system.
//
// The CPU consists of a program counter (PC), eight 8-bit registers (R0-R7,
// with R7 reserved as the stack pointer), an ALU, and a comparison flags
// register. Instructions are one opcode byte followed by zero, one or two
// operand bytes; the upper two bits of the opcode give the operand count.
//
// The loader reads the textual `.ls8` image format (one 8-digit binary byte
// per line), and the assembler translates LS-8 mnemonics into the same
// program representation, supporting labels, equates, and compile-time
// expression evaluation.
package cpu
