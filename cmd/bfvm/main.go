// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ezrec/bfvm/config"
	"github.com/ezrec/bfvm/dump"
	"github.com/ezrec/bfvm/emulator"
	"github.com/ezrec/bfvm/source"
)

// setupLogger logs to stderr; debug records only when verbose.
func setupLogger(verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if dump.IsTerminal(os.Stderr) {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.Lock(os.Stderr),
		level,
	))
}

func main() {
	var code string
	var configPath string
	var dataLength int
	var extend int
	var tickLimit int
	var precompute bool
	var dumpTape bool
	var color string
	var input string
	var output string
	var verbose bool

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [flags] [filename]\n\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Tape machine interpreter. If no filename or code given, reads it from stdin.\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Files ending in %v are Starlark scripts that generate the program.\n\n", source.STARLARK_EXT)
		flag.PrintDefaults()
	}

	flag.StringVar(&code, "e", "", "Eval given program text")
	flag.StringVar(&configPath, "c", "", ".toml or .yaml config file to use")
	flag.IntVar(&dataLength, "n", config.DATA_LENGTH, "Data region length")
	flag.IntVar(&extend, "x", 0, "Extend level (0 = base language, 1 = extended operators)")
	flag.IntVar(&tickLimit, "limit", 0, "Abort after this many ticks (0 = no limit)")
	flag.BoolVar(&precompute, "j", false, "Precompute the bracket jump table")
	flag.BoolVar(&dumpTape, "d", false, "Print memory at the end")
	flag.StringVar(&color, "color", config.COLOR_AUTO, "Dump color mode: auto, always or never")
	flag.StringVar(&input, "i", "-", "Program input")
	flag.StringVar(&output, "o", "-", "Program output")
	flag.BoolVar(&verbose, "v", false, "Say everything you do")

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	cfg := config.Default()
	if len(configPath) != 0 {
		err := cfg.Load(configPath)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	}

	err := cfg.FromEnv()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	// Flags given on the command line win over the file and environment.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "n":
			cfg.DataLength = dataLength
		case "x":
			cfg.Extend = extend
		case "limit":
			cfg.TickLimit = tickLimit
		case "j":
			cfg.Precompute = precompute
		case "d":
			cfg.Dump = dumpTape
		case "color":
			cfg.Color = color
		case "v":
			cfg.Verbose = verbose
		}
	})

	err = cfg.Validate()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	logger := setupLogger(cfg.Verbose)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	err = run(&cfg, code, flag.Arg(0), input, output)
	if err != nil {
		logger.Sync()
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}

func run(cfg *config.Config, code string, filename string, input string, output string) (err error) {
	var prog *source.Program
	switch {
	case len(filename) != 0:
		prog, err = source.Load(filename)
	case len(code) != 0:
		prog = source.Inline(code)
	default:
		prog, err = source.Reader("stdin", os.Stdin)
	}
	if err != nil {
		return
	}

	emu := emulator.NewEmulator()
	emu.Logger = zap.L()
	emu.Verbose = cfg.Verbose
	emu.Program = prog.Text
	emu.DataLength = cfg.DataLength
	emu.Options = cfg.Options()

	if input == "-" {
		emu.Console.Input = bufio.NewReader(os.Stdin)
	} else {
		inf, err := os.Open(input)
		if err != nil {
			return err
		}
		defer inf.Close()
		emu.Console.Input = bufio.NewReader(inf)
	}

	out := os.Stdout
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			return err
		}
		defer ouf.Close()
		out = ouf
	}
	emu.Console.Output = bufio.NewWriter(out)

	err = emu.Reset()
	if err != nil {
		return
	}

	err = emu.Run()

	if cfg.Dump {
		d := &dump.Dump{Color: dump.ColorFor(cfg.Color, os.Stdout)}
		fmt.Println()
		err = errors.Join(err, d.Render(os.Stdout, emu.Snapshot()))
	}

	return
}
