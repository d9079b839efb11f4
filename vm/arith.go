package vm

// ChangeMode selects how a Change applies its value.
type ChangeMode int

//go:generate go tool stringer -linecomment -type=ChangeMode
const (
	CHANGE_ADD = ChangeMode(0) // add
	CHANGE_SUB = ChangeMode(1) // sub
	CHANGE_SET = ChangeMode(2) // set
)

// Change is a cell value change (byte) or data pointer change (int).
type Change[T byte | int] struct {
	Mode  ChangeMode
	Value T
}

// Add returns a change adding n.
func Add[T byte | int](n T) Change[T] {
	return Change[T]{Mode: CHANGE_ADD, Value: n}
}

// Sub returns a change subtracting n.
func Sub[T byte | int](n T) Change[T] {
	return Change[T]{Mode: CHANGE_SUB, Value: n}
}

// Set returns a change assigning n.
func Set[T byte | int](n T) Change[T] {
	return Change[T]{Mode: CHANGE_SET, Value: n}
}

// ChangeCell applies a change to the cell under the data pointer.
// Add and Sub wrap modulo 256; Set always assigns.
func (vm *VM) ChangeCell(change Change[byte]) {
	value := vm.Tape.Cell(vm.DataPtr)

	switch change.Mode {
	case CHANGE_ADD:
		value += change.Value
	case CHANGE_SUB:
		value -= change.Value
	case CHANGE_SET:
		value = change.Value
	}

	vm.Tape.SetCell(vm.DataPtr, value)
}

// ChangeDataPtr applies a change to the data pointer.
//
// Moving past the last cell resets the pointer to the first data cell, and
// moving before the first data cell resets it to the last. Only the final
// position is tested. A Set to an index outside the data region is ignored,
// and the pointer does not move.
func (vm *VM) ChangeDataPtr(change Change[int]) {
	lower := vm.Tape.FirstData()
	upper := vm.Tape.LastData()
	ptr := vm.DataIndex()

	switch change.Mode {
	case CHANGE_ADD:
		if addr, ok := vm.Tape.DataAddr(ptr + change.Value); ok {
			vm.DataPtr = addr
		} else {
			vm.DataPtr = lower
		}
	case CHANGE_SUB:
		if addr, ok := vm.Tape.DataAddr(ptr - change.Value); ok {
			vm.DataPtr = addr
		} else {
			vm.DataPtr = upper
		}
	case CHANGE_SET:
		if addr, ok := vm.Tape.DataAddr(change.Value); ok {
			vm.DataPtr = addr
		}
	}
}
