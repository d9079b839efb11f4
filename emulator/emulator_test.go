package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ezrec/bfvm/config"
	"github.com/ezrec/bfvm/io"
	"github.com/ezrec/bfvm/vm"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.Nil(emu.VM)
	assert.Equal(config.DATA_LENGTH, emu.DataLength)
}

func doRun(emu *Emulator, program string, input string, t *testing.T) (output []byte, err error) {
	emu.Program = []byte(program)
	emu.Console.Input = strings.NewReader(input)
	out := &bytes.Buffer{}
	emu.Console.Output = out

	err = emu.Reset()
	if !assert.NoError(t, err) {
		return
	}

	err = emu.Run()
	output = out.Bytes()
	return
}

func TestEmulator_HelloWorld(t *testing.T) {
	assert := assert.New(t)

	program := "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

	emu := NewEmulator()
	output, err := doRun(emu, program, "", t)
	assert.NoError(err)
	assert.Equal("Hello World!\n", string(output))
	assert.Equal(len(output), emu.Console.Sent)
}

func TestEmulator_Echo(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	output, err := doRun(emu, ",[.,]", "AB\nCD", t)
	assert.NoError(err)
	assert.Equal("AB", string(output))
	assert.Equal(3, emu.Console.Received)
}

func TestEmulator_Extended(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Options.Extend = vm.EXTEND_BITWISE

	// 0x41 built by shifting: 1 -> 0x40, then | storage(1)
	output, err := doRun(emu, "+${{{{{{|.@.", "", t)
	assert.NoError(err)
	assert.Equal("A", string(output))
	assert.True(emu.Halted())
}

func TestEmulator_RuntimeError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	_, err := doRun(emu, "+++[", "", t)
	assert.NoError(err)

	_, err = doRun(emu, "+++,", "", t)
	assert.ErrorIs(err, io.ErrInputClosed)

	var rt *ErrRuntime
	if assert.True(errors.As(err, &rt)) {
		assert.Equal(3, rt.Tick)
		assert.Equal(4, rt.Ip)
	}

	_, err = doRun(emu, "+]", "", t)
	assert.ErrorIs(err, vm.ErrBracketUnmatched)
	assert.True(vm.IsFault(err))
}

func TestEmulator_ResetNoData(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.DataLength = 0
	emu.Program = []byte("+")

	assert.ErrorIs(emu.Reset(), vm.ErrNoData)

	_, err := emu.Tick()
	assert.ErrorIs(err, vm.ErrNoData)
}

func TestEmulator_TickResets(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = []byte("+")

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(byte(1), emu.Cell())
}

func TestEmulator_Verbose(t *testing.T) {
	assert := assert.New(t)

	core, logs := observer.New(zapcore.DebugLevel)

	emu := NewEmulator()
	emu.Logger = zap.New(core)
	emu.Verbose = true

	_, err := doRun(emu, "+>-", "", t)
	assert.NoError(err)

	assert.Equal(1, logs.FilterMessage("created vm").Len())
	assert.Equal(3, logs.FilterMessage("tick").Len())
	assert.Equal(1, logs.FilterMessage("halted").Len())

	first := logs.FilterMessage("tick").All()[0].ContextMap()
	assert.Equal(int64(1), first["ip"])
	assert.Equal("+ inc", first["op"])
	assert.Equal("code", first["region"])

	halted := logs.FilterMessage("halted").All()[0].ContextMap()
	assert.Equal(false, halted["halt_op"])
}

func TestEmulator_AbortLogged(t *testing.T) {
	assert := assert.New(t)

	core, logs := observer.New(zapcore.DebugLevel)

	emu := NewEmulator()
	emu.Logger = zap.New(core)

	_, err := doRun(emu, "+]", "", t)
	assert.ErrorIs(err, vm.ErrBracketUnmatched)
	assert.Equal(1, logs.FilterMessage("fault").Len())
	assert.Equal(0, logs.FilterMessage("aborted").Len())

	emu.Options.TickLimit = 5
	_, err = doRun(emu, "+[]", "", t)
	assert.ErrorIs(err, vm.ErrTickLimit)
	assert.False(vm.IsFault(err))
	assert.Equal(1, logs.FilterMessage("aborted").Len())
}

func TestEmulator_FlushOnRun(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = []byte("+++.")
	out := &bytes.Buffer{}
	buffered := &flushWriter{Buffer: out}
	emu.Console.Output = buffered

	assert.NoError(emu.Reset())
	assert.NoError(emu.Run())
	assert.True(buffered.flushed)
	assert.Equal([]byte{3}, out.Bytes())
}

type flushWriter struct {
	*bytes.Buffer
	flushed bool
}

func (fw *flushWriter) Flush() error {
	fw.flushed = true
	return nil
}
