package vm

import (
	"fmt"
)

// OperatorClass is the instruction table an operator belongs to.
type OperatorClass int

//go:generate go tool stringer -linecomment -type=OperatorClass
const (
	CLASS_NONE     = OperatorClass(0) // none
	CLASS_CORE     = OperatorClass(1) // core
	CLASS_EXTENDED = OperatorClass(2) // extended
)

// Operator is a decoded instruction byte.
type Operator byte

// Core operators.
const (
	OP_NOP    = Operator(0)   // nop
	OP_INC    = Operator('+') // inc
	OP_DEC    = Operator('-') // dec
	OP_RIGHT  = Operator('>') // right
	OP_LEFT   = Operator('<') // left
	OP_OUTPUT = Operator('.') // output
	OP_INPUT  = Operator(',') // input
	OP_LOOP   = Operator('[') // loop
	OP_REPEAT = Operator(']') // repeat
)

// Extended operators, active when the extend level is at least EXTEND_BITWISE.
const (
	OP_HALT  = Operator('@') // halt
	OP_STORE = Operator('$') // store
	OP_LOAD  = Operator('!') // load
	OP_SHL   = Operator('{') // shl
	OP_SHR   = Operator('}') // shr
	OP_NOT   = Operator('~') // not
	OP_XOR   = Operator('^') // xor
	OP_AND   = Operator('&') // and
	OP_OR    = Operator('|') // or
)

// Extend levels.
const (
	EXTEND_NONE    = 0 // Base language, halts at the end of the code region.
	EXTEND_BITWISE = 1 // Storage cell, bitwise operators, explicit halt.
)

var _operator_name = map[Operator]string{
	OP_NOP:    "nop",
	OP_INC:    "inc",
	OP_DEC:    "dec",
	OP_RIGHT:  "right",
	OP_LEFT:   "left",
	OP_OUTPUT: "output",
	OP_INPUT:  "input",
	OP_LOOP:   "loop",
	OP_REPEAT: "repeat",
	OP_HALT:   "halt",
	OP_STORE:  "store",
	OP_LOAD:   "load",
	OP_SHL:    "shl",
	OP_SHR:    "shr",
	OP_NOT:    "not",
	OP_XOR:    "xor",
	OP_AND:    "and",
	OP_OR:     "or",
}

// Class returns the instruction table of the operator.
func (op Operator) Class() OperatorClass {
	switch op {
	case OP_INC, OP_DEC, OP_RIGHT, OP_LEFT, OP_OUTPUT, OP_INPUT, OP_LOOP, OP_REPEAT:
		return CLASS_CORE
	case OP_HALT, OP_STORE, OP_LOAD, OP_SHL, OP_SHR, OP_NOT, OP_XOR, OP_AND, OP_OR:
		return CLASS_EXTENDED
	default:
		return CLASS_NONE
	}
}

func (op Operator) String() string {
	name, ok := _operator_name[op]
	if !ok {
		return fmt.Sprintf("0x%02x", byte(op))
	}
	if op == OP_NOP {
		return name
	}
	return fmt.Sprintf("%c %s", byte(op), name)
}

// Decode interprets an instruction byte at the given extend level.
// Bytes that are not operators at that level decode to OP_NOP.
func Decode(b byte, extend int) (op Operator) {
	op = Operator(b)
	switch op.Class() {
	case CLASS_CORE:
		return
	case CLASS_EXTENDED:
		if extend >= EXTEND_BITWISE {
			return
		}
	}

	return OP_NOP
}
