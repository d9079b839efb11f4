// Package vm implements the tape machine for a minimal eight operator
// esoteric language, plus its optional extended operator set.
//
// Code and data share a single tape. Index 0 is the storage cell, a scratch
// register reachable only through the extended operators. The program text
// follows it, and a zeroed data region of configurable length follows the
// program. The code pointer walks the tape one byte per tick; the data pointer
// is confined to the data region and wraps at both of its ends.
//
// Loops are resolved at run time by scanning for the matching bracket each
// time a jump is taken. An optional jump table, built once from the code
// region, short-cuts the scan for well formed loops.
package vm
