package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted      = errors.New(f("cpu halted"))
	ErrReturnRange = errors.New(f("return address out of range"))

	// Image errors
	ErrImageSyntax = errors.New(f("expected 8 binary digits"))
	ErrImageSize   = errors.New(f("image too large"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelInvalid       = errors.New(f("label invalid"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrOpcodeInvalid      = errors.New(f("opcode invalid"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrImmediateRange     = errors.New(f("immediate out of range"))
)

// ErrUnknownOpcode reports an opcode byte with no instruction table entry.
type ErrUnknownOpcode struct {
	Pc     int
	Opcode Opcode
}

func (err *ErrUnknownOpcode) Error() string {
	return f("unknown opcode 0b%08b at pc 0x%02x", uint8(err.Opcode), err.Pc)
}

func (err *ErrUnknownOpcode) Is(target error) (ok bool) {
	_, ok = target.(*ErrUnknownOpcode)
	return
}

// ErrFault attaches the faulting PC and opcode to a fatal cycle error.
// Opcode is only meaningful when Decoded is set; a fault on the opcode
// fetch itself has no instruction to report.
type ErrFault struct {
	Pc      int
	Opcode  Opcode
	Decoded bool
	Err     error
}

func (err *ErrFault) Error() string {
	if !err.Decoded {
		return f("pc 0x%02x opcode fetch: %v", err.Pc, err.Err)
	}
	return f("pc 0x%02x %v: %v", err.Pc, err.Opcode, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

// ErrLabelMissing reports a reference to a label that was never defined.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err *ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err *ErrMacro) Unwrap() error {
	return err.Err
}
