package vm

import (
	"errors"

	"github.com/ezrec/bfvm/io"
)

// Channel is the byte stream used by the input and output operators.
type Channel io.Channel

// Options configures a machine.
type Options struct {
	Extend     int  // Extend level, EXTEND_NONE or EXTEND_BITWISE.
	Precompute bool // If set, pairs code region brackets once before running.
	TickLimit  int  // If positive, the maximum number of ticks before ErrTickLimit.
}

// VM is the machine state for a single run.
type VM struct {
	Tape    *Tape    // Memory image.
	Ip      int      // Code pointer.
	DataPtr DataAddr // Data pointer.
	Ticks   int      // Ticks executed since construction.

	Options

	running bool
	channel Channel
	jumps   JumpTable
}

// New builds the tape for a program and a data region of dataLength
// cells, and returns a machine ready to run it.
func New(program []byte, dataLength int, opts Options) (vm *VM, err error) {
	if opts.Extend < EXTEND_NONE {
		err = ErrExtendInvalid
		return
	}

	tape := NewTape(program, dataLength)
	if tape.DataLen() == 0 {
		err = ErrNoData
		return
	}

	vm = &VM{
		Tape:    tape,
		Ip:      tape.CodeStart(),
		DataPtr: tape.FirstData(),
		Options: opts,
		running: true,
	}

	if opts.Precompute {
		vm.jumps = NewJumpTable(tape)
	}

	return
}

// SetChannel sets the byte stream for the input and output operators.
func (vm *VM) SetChannel(channel Channel) {
	vm.channel = channel
}

// Running reports whether another tick will execute.
//
// At EXTEND_NONE the machine runs while the code pointer is inside the code
// region. At higher levels it runs until the halt operator, or until the
// code pointer leaves the tape.
func (vm *VM) Running() bool {
	if vm.Extend >= EXTEND_BITWISE {
		return vm.running && vm.Ip < vm.Tape.Len()
	}

	return vm.Ip < vm.Tape.DataStart()
}

// Cell returns the value of the cell under the data pointer.
func (vm *VM) Cell() byte {
	return vm.Tape.Cell(vm.DataPtr)
}

// DataIndex returns the tape index of the data pointer.
func (vm *VM) DataIndex() int {
	return vm.Tape.Index(vm.DataPtr)
}

// Snapshot returns a read-only copy of the tape and pointers.
func (vm *VM) Snapshot() Snapshot {
	return vm.Tape.Snapshot(vm.DataPtr)
}

// Opcode returns the decoded operator at the code pointer.
func (vm *VM) Opcode() Operator {
	b, _ := vm.Tape.Fetch(vm.Ip)
	return Decode(b, vm.Extend)
}

// Tick executes the operator at the code pointer, then advances the code
// pointer by one. It reports done once the machine has stopped.
func (vm *VM) Tick() (done bool, err error) {
	if !vm.Running() {
		done = true
		return
	}

	if vm.TickLimit > 0 && vm.Ticks >= vm.TickLimit {
		err = ErrTickLimit
		return
	}

	ip := vm.Ip
	op := vm.Opcode()

	err = vm.Execute(op)
	if err != nil {
		err = &ErrFault{Ip: ip, Op: op, Err: err}
		return
	}

	vm.Ip++
	vm.Ticks++

	done = !vm.Running()

	return
}

// Run ticks the machine until it stops or faults.
func (vm *VM) Run() (err error) {
	var done bool
	for !done {
		done, err = vm.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Execute performs a single decoded operator. A taken jump moves the code
// pointer onto the matching bracket; the caller advances past it.
func (vm *VM) Execute(op Operator) (err error) {
	switch op {
	case OP_NOP:
		// pass
	case OP_INC:
		vm.ChangeCell(Add[byte](1))
	case OP_DEC:
		vm.ChangeCell(Sub[byte](1))
	case OP_RIGHT:
		vm.ChangeDataPtr(Add(1))
	case OP_LEFT:
		vm.ChangeDataPtr(Sub(1))
	case OP_OUTPUT:
		err = vm.output()
	case OP_INPUT:
		err = vm.input()
	case OP_LOOP:
		if vm.Cell() == 0 {
			err = vm.jumpTo(true)
		}
	case OP_REPEAT:
		if vm.Cell() != 0 {
			err = vm.jumpTo(false)
		}
	case OP_HALT:
		vm.running = false
	case OP_STORE:
		vm.Tape.SetStorage(vm.Cell())
	case OP_LOAD:
		vm.ChangeCell(Set(vm.Tape.Storage()))
	case OP_SHL:
		vm.ChangeCell(Set(vm.Cell() << 1))
	case OP_SHR:
		vm.ChangeCell(Set(vm.Cell() >> 1))
	case OP_NOT:
		vm.ChangeCell(Set(^vm.Cell()))
	case OP_XOR:
		vm.ChangeCell(Set(vm.Cell() ^ vm.Tape.Storage()))
	case OP_AND:
		vm.ChangeCell(Set(vm.Cell() & vm.Tape.Storage()))
	case OP_OR:
		vm.ChangeCell(Set(vm.Cell() | vm.Tape.Storage()))
	}

	return
}

func (vm *VM) jumpTo(forward bool) (err error) {
	target, err := vm.jump(vm.Ip, forward)
	if err != nil {
		return
	}

	vm.Ip = target
	return
}

func (vm *VM) output() (err error) {
	if vm.channel == nil {
		return ErrChannelInvalid
	}

	return vm.channel.Send(vm.Cell())
}

// input stores the next input byte in the current cell. A newline is
// stored as 0.
func (vm *VM) input() (err error) {
	if vm.channel == nil {
		return ErrChannelInvalid
	}

	value, err := vm.channel.Receive()
	if err != nil {
		return
	}

	if value == '\n' {
		value = 0
	}
	vm.ChangeCell(Set(value))

	return
}

// Halted reports whether the halt operator has executed.
func (vm *VM) Halted() bool {
	return !vm.running
}

// IsFault reports whether err is a fatal machine fault.
func IsFault(err error) bool {
	var fault *ErrFault
	return errors.As(err, &fault)
}
