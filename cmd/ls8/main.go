// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	slogmulti "github.com/samber/slog-multi"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
)

// setupLogging routes the log package through slog, to stderr and
// optionally to a JSON trace file. Verbose tracing is gated by the
// Verbose fields of the emulator, CPU and assembler, not by slog level.
func setupLogging(trace string) (closer io.Closer) {
	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, nil),
	}

	if len(trace) != 0 {
		ouf, err := os.Create(trace)
		if err != nil {
			log.Fatalf("%v: %v", trace, err)
		}
		closer = ouf
		handlers = append(handlers, slog.NewJSONHandler(ouf, nil))
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))

	return
}

func main() {
	var compile string
	var save bool
	var output string
	var hz int
	var trace string
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to assemble")
	flag.BoolVar(&save, "s", false, "Write the .ls8 image to output, do not execute")
	flag.StringVar(&output, "o", "-", "Output channel destination")
	flag.IntVar(&hz, "hz", emulator.CLOCK_HZ, "Clock rate in Hz, 0 to free-run")
	flag.StringVar(&trace, "trace", "", "JSON log file")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	closer := setupLogging(trace)
	if closer != nil {
		defer closer.Close()
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Clock.SetRate(hz)

	var prog *cpu.Program

	switch {
	case len(compile) != 0:
		if flag.NArg() != 0 {
			log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		}

		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}
		prog, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	case flag.NArg() == 1:
		image := flag.Arg(0)
		inf, err := os.Open(image)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		defer inf.Close()

		prog, err = cpu.ParseImage(inf)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
	default:
		log.Fatalf("usage: %v [flags] (-c file.asm | file.ls8)", os.Args[0])
	}

	var ouf io.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer file.Close()
		ouf = file
	}

	if save {
		err := prog.WriteImage(ouf)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		return
	}

	emu.Tape.Output = ouf
	err := emu.Load(prog)
	if err != nil {
		log.Fatalf("load: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err = emu.Run(ctx)
	if err != nil && ctx.Err() == nil {
		log.Print(emu.Cpu.String())
		log.Fatal(err)
	}
}
