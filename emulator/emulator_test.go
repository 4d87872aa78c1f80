package emulator

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/cpu"
)

func loadImage(t *testing.T, emu *Emulator, path string) {
	inf, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer inf.Close()

	prog, err := cpu.ParseImage(inf)
	if err != nil {
		t.Fatal(err)
	}

	err = emu.Load(prog)
	if err != nil {
		t.Fatal(err)
	}
}

func loadSource(t *testing.T, emu *Emulator, path string) {
	inf, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer inf.Close()

	asm := &cpu.Assembler{}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	prog, err := asm.Parse(inf)
	if err != nil {
		t.Fatal(err)
	}

	err = emu.Load(prog)
	if err != nil {
		t.Fatal(err)
	}
}

func doRun(t *testing.T, emu *Emulator) (output string) {
	out := &bytes.Buffer{}
	emu.Tape.Output = out

	var done bool
	var err error
	for limit := 0; !done; limit++ {
		if limit == 1000 {
			t.Fatal("program did not halt")
		}
		done, err = emu.Tick()
		if err != nil {
			t.Log(emu.Cpu.String())
			t.Fatal(err)
		}
	}

	output = out.String()
	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.Equal(MEMORY_SIZE, emu.Memory.Size())
	assert.Equal(time.Millisecond, emu.Clock.Period)
	assert.Equal(uint8(cpu.STACK_TOP), emu.Cpu.Register[cpu.SP])
}

func TestEmulatorDefines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	defines := map[string]string{}
	for key, value := range emu.Defines() {
		defines[key] = value
	}

	assert.Equal("256", defines["MEMORY_SIZE"])
	assert.Equal("0xf4", defines["STACK_TOP"])
}

func TestEmulatorMult(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	loadImage(t, emu, "testdata/mult.ls8")

	output := doRun(t, emu)
	assert.Equal("72\n", output)
	assert.True(emu.Cpu.Halted)
	assert.Equal(5, emu.Ticks)

	// No further cycles execute after HLT.
	done, err := emu.Tick()
	assert.True(done)
	assert.NoError(err)
	assert.Equal(5, emu.Ticks)
	assert.Equal("72\n", output)
}

func TestEmulatorCall(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	loadSource(t, emu, "testdata/call.asm")

	output := doRun(t, emu)
	assert.Equal("20\n30\n36\n60\n", output)
	assert.Equal(uint8(cpu.STACK_TOP), emu.Cpu.Register[cpu.SP])
}

func TestEmulatorLoop(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	loadSource(t, emu, "testdata/loop.asm")

	output := doRun(t, emu)
	assert.Equal("5\n4\n3\n2\n1\nok\n", output)
	assert.Equal(uint8(cpu.STACK_TOP), emu.Cpu.Register[cpu.SP])
	assert.Equal(cpu.FLAG_EQUAL, emu.Cpu.Flags)
}

func TestEmulatorReset(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	loadImage(t, emu, "testdata/mult.ls8")

	assert.Equal("72\n", doRun(t, emu))

	// Self modifying state is discarded by Reset.
	assert.NoError(emu.Memory.Write(2, 7))
	assert.NoError(emu.Reset())
	assert.Equal("72\n", doRun(t, emu))
}

func TestEmulatorUnknownOpcode(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	prog := &cpu.Program{
		Statements: []cpu.Statement{
			{LineNo: 1, Address: 0, Bytes: []byte{byte(cpu.LDI), 0, 8}},
			{LineNo: 2, Address: 3, Bytes: []byte{0xff}},
		},
	}
	assert.NoError(emu.Load(prog))

	done, err := emu.Tick()
	assert.False(done)
	assert.NoError(err)

	done, err = emu.Tick()
	assert.True(done)

	var runtime *ErrRuntime
	assert.True(errors.As(err, &runtime))
	if runtime != nil {
		assert.Equal(3, runtime.Pc)
		assert.Equal(2, runtime.LineNo)
	}

	var unknown *cpu.ErrUnknownOpcode
	assert.True(errors.As(err, &unknown))
	if unknown != nil {
		assert.Equal(3, unknown.Pc)
		assert.Equal(cpu.Opcode(0xff), unknown.Opcode)
	}
}

func TestEmulatorLoadTooLarge(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	prog := &cpu.Program{
		Statements: []cpu.Statement{
			{LineNo: 1, Address: MEMORY_SIZE - 1, Bytes: []byte{byte(cpu.NOP), byte(cpu.NOP)}},
		},
	}

	err := emu.Load(prog)
	assert.True(errors.Is(err, cpu.ErrImageSize))
}

func TestEmulatorRun(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	loadImage(t, emu, "testdata/mult.ls8")

	out := &bytes.Buffer{}
	emu.Tape.Output = out

	err := emu.Run(context.Background())
	assert.NoError(err)
	assert.Equal("72\n", out.String())
	assert.True(emu.Cpu.Halted)
}

func TestEmulatorRunFault(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Clock.SetRate(0)

	prog := &cpu.Program{
		Statements: []cpu.Statement{
			{LineNo: 1, Address: 0, Bytes: []byte{byte(cpu.NOP), 0b11000000}},
		},
	}
	assert.NoError(emu.Load(prog))

	err := emu.Run(context.Background())
	assert.True(errors.Is(err, &cpu.ErrUnknownOpcode{}))
	assert.Equal(1, emu.Ticks)
}

func TestEmulatorStop(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Clock.SetRate(0)

	// LDI R0,0 ; JMP R0 spins forever.
	prog := &cpu.Program{
		Statements: []cpu.Statement{
			{LineNo: 1, Address: 0, Bytes: []byte{byte(cpu.LDI), 0, 0}},
			{LineNo: 2, Address: 3, Bytes: []byte{byte(cpu.JMP), 0}},
		},
	}
	assert.NoError(emu.Load(prog))

	timer := time.AfterFunc(10*time.Millisecond, emu.Stop)
	defer timer.Stop()

	err := emu.Run(context.Background())
	assert.NoError(err)
	assert.False(emu.Cpu.Halted)
	assert.Greater(emu.Ticks, 0)
}
