// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ls8/clock"
	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/io"
	"github.com/ezrec/ls8/memory"
)

const (
	MEMORY_SIZE = memory.DEFAULT_SIZE // Bytes of RAM.
	CLOCK_HZ    = 1000                // Default clock rate.
)

var _emulator_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%v", MEMORY_SIZE),
}

// Emulator state. CPU + memory + output channel + clock.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program.

	Memory *memory.Memory // RAM.
	Tape   io.Tape        // Output channel.
	Clock  *clock.Clock   // Periodic driver for Run.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	mem := memory.New(MEMORY_SIZE)

	emu = &Emulator{
		Program: &cpu.Program{},
		Memory:  mem,
		Clock:   clock.NewClock(CLOCK_HZ),
	}

	emu.Cpu = cpu.NewCpu(mem, &emu.Tape)

	return
}

// Defines returns an iterator over all of the assembler predefines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	defines := maps.Clone(_emulator_defines)
	maps.Copy(defines, maps.Collect(emu.Cpu.Defines()))
	return maps.All(defines)
}

// Load replaces the program, then resets.
func (emu *Emulator) Load(prog *cpu.Program) (err error) {
	emu.Program = prog
	return emu.Reset()
}

// Reset clears memory, loads the program image, and resets the CPU.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Memory.Reset()
	if emu.Program != nil {
		err = emu.Program.Load(emu.Memory)
		if err != nil {
			return
		}
	}

	emu.Cpu.Reset()
	emu.Clock.Reset()

	return
}

// LineNo returns the source line number for the instruction at the PC.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Statement == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single instruction cycle.
// done is set once the CPU has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	lineno := emu.LineNo()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
		done = true
		return
	}
	if err != nil {
		err = &ErrRuntime{Pc: pc, LineNo: lineno, Err: err}
		done = true
		return
	}

	done = emu.Cpu.Halted
	return
}

// Run ticks the CPU on the clock until it halts, faults, is stopped,
// or ctx is cancelled.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	if emu.Verbose {
		log.Printf("emulator: run at %v per cycle", emu.Clock.Period)
	}

	err = emu.Clock.Run(ctx, emu.Tick)

	if emu.Verbose {
		log.Printf("emulator: stopped after %d cycles", emu.Cpu.Ticks)
	}

	return
}

// Stop halts a running clock. It may be called from any goroutine.
func (emu *Emulator) Stop() {
	emu.Clock.Stop()
}
