// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs a single program on the tape machine, wiring the
// machine to its console channel and to a logger.
package emulator

import (
	"go.uber.org/zap"

	"github.com/ezrec/bfvm/config"
	"github.com/ezrec/bfvm/io"
	"github.com/ezrec/bfvm/translate"
	"github.com/ezrec/bfvm/vm"
)

// Emulator state. Machine + console channel.
type Emulator struct {
	Verbose bool        // If set, enables per-tick trace logging.
	Logger  *zap.Logger // Logger for trace and lifecycle records.
	*vm.VM              // Reference to the machine, valid after Reset.

	Program    []byte     // Program text to run.
	DataLength int        // Data region length.
	Options    vm.Options // Machine options.

	Console io.Console // Console IO channel.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Logger:     zap.NewNop(),
		DataLength: config.DATA_LENGTH,
	}

	return
}

func (emu *Emulator) logger() *zap.Logger {
	if emu.Logger == nil {
		return zap.NewNop()
	}
	return emu.Logger
}

// Reset builds a fresh machine for the current program.
func (emu *Emulator) Reset() (err error) {
	machine, err := vm.New(emu.Program, emu.DataLength, emu.Options)
	if err != nil {
		return
	}

	emu.Console.Rewind()
	machine.SetChannel(&emu.Console)
	emu.VM = machine

	emu.logger().Debug("created vm",
		zap.Int("extend", emu.Options.Extend),
		zap.Int("data_length", emu.DataLength),
		zap.Bool("precompute", emu.Options.Precompute),
		zap.ByteString("code", emu.VM.Tape.Code()),
	)

	return
}

// Tick performs a single tick of the machine.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.VM == nil {
		err = emu.Reset()
		if err != nil {
			return
		}
	}

	tick := emu.VM.Ticks
	ip := emu.VM.Ip
	defer func() {
		if err != nil {
			err = &ErrRuntime{Tick: tick, Ip: ip, Err: err}
		}
	}()

	if emu.Verbose && emu.VM.Running() {
		emu.logger().Debug("tick",
			zap.Int("ip", ip),
			zap.Stringer("region", emu.VM.Tape.Region(ip)),
			zap.Stringer("op", emu.VM.Opcode()),
			zap.Int("ptr", emu.VM.DataIndex()),
			zap.Uint8("cell", emu.VM.Cell()),
		)
	}

	return emu.VM.Tick()
}

// Run ticks until the machine stops, then flushes the console output.
func (emu *Emulator) Run() (err error) {
	defer func() {
		ferr := emu.Console.Flush()
		if err == nil {
			err = ferr
		}
	}()

	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			if vm.IsFault(err) {
				emu.logger().Error("fault", zap.Error(err))
			} else {
				emu.logger().Warn("aborted", zap.Error(err))
			}
			return err
		}
	}

	emu.logger().Debug("halted",
		zap.Bool("halt_op", emu.VM.Halted()),
		zap.String("ticks", translate.Number(emu.VM.Ticks)),
		zap.Int("sent", emu.Console.Sent),
		zap.Int("received", emu.Console.Received),
	)

	return
}
