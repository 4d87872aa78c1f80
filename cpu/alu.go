package cpu

// AluOp is an ALU operation.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_ADD = AluOp(0) // add
	ALU_SUB = AluOp(1) // sub
	ALU_MUL = AluOp(2) // mul
	ALU_AND = AluOp(3) // and
	ALU_OR  = AluOp(4) // or
	ALU_XOR = AluOp(5) // xor
	ALU_NOT = AluOp(6) // not
	ALU_INC = AluOp(7) // inc
	ALU_DEC = AluOp(8) // dec
	ALU_CMP = AluOp(9) // cmp
)

// aluHandler adapts an ALU operation to the instruction handler signature.
func aluHandler(op AluOp) handler {
	return func(cpu *Cpu, a, b uint8) (jumped bool, err error) {
		cpu.alu(op, a, b)
		return
	}
}

// alu performs op on the registers selected by a and b.
// Results wrap at 8 bits. Only CMP updates the flags; the ALU never
// touches memory or the PC.
func (cpu *Cpu) alu(op AluOp, a, b uint8) {
	dst := cpu.reg(a)
	val := *cpu.reg(b)

	switch op {
	case ALU_ADD:
		*dst += val
	case ALU_SUB:
		*dst -= val
	case ALU_MUL:
		*dst *= val
	case ALU_AND:
		*dst &= val
	case ALU_OR:
		*dst |= val
	case ALU_XOR:
		*dst ^= val
	case ALU_NOT:
		*dst = ^*dst
	case ALU_INC:
		*dst++
	case ALU_DEC:
		*dst--
	case ALU_CMP:
		switch {
		case *dst > val:
			cpu.Flags = FLAG_GREATER
		case *dst < val:
			cpu.Flags = FLAG_LESS
		default:
			cpu.Flags = FLAG_EQUAL
		}
	default:
		panic("unknown ALU op")
	}
}
