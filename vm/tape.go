package vm

import (
	"iter"
	"slices"

	"github.com/ezrec/bfvm/internal"
)

// Region is a logical partition of the tape.
type Region int

//go:generate go tool stringer -linecomment -type=Region
const (
	REGION_STORAGE = Region(0) // storage
	REGION_CODE    = Region(1) // code
	REGION_DATA    = Region(2) // data
)

const (
	STORAGE_INDEX = 0 // Tape index of the storage cell.
	CODE_START    = 1 // Tape index of the first program byte.
)

// Tape is the memory image shared by the storage cell, the program and
// the data region. The regions are fixed when the tape is built.
type Tape struct {
	mem       []byte
	dataStart int
}

// DataAddr is a cell of the data region, held as an offset from the start
// of the region. The zero value is the first data cell. Addresses past the
// first cell are made by Tape.DataAddr and Tape.LastData.
type DataAddr struct {
	offset int
}

// Offset returns the position of the address inside the data region.
func (da DataAddr) Offset() int {
	return da.offset
}

// NewTape builds a tape from the program text and a data region of
// dataLength zeroed cells. A zero length data region is accepted here,
// but no machine can run on it.
func NewTape(program []byte, dataLength int) (t *Tape) {
	dataLength = max(dataLength, 0)

	t = &Tape{
		mem:       make([]byte, CODE_START+len(program)+dataLength),
		dataStart: CODE_START + len(program),
	}
	copy(t.mem[CODE_START:], program)

	return
}

// Len returns the total tape length.
func (t *Tape) Len() int {
	return len(t.mem)
}

// CodeStart returns the tape index of the first program byte.
func (t *Tape) CodeStart() int {
	return CODE_START
}

// DataStart returns the tape index of the first data cell.
func (t *Tape) DataStart() int {
	return t.dataStart
}

// DataLen returns the number of cells in the data region.
func (t *Tape) DataLen() int {
	return len(t.mem) - t.dataStart
}

// Code returns a copy of the program text.
func (t *Tape) Code() []byte {
	return slices.Clone(t.mem[CODE_START:t.dataStart])
}

// Bytes returns a copy of the whole tape.
func (t *Tape) Bytes() []byte {
	return slices.Clone(t.mem)
}

// Region returns the region holding the tape index.
func (t *Tape) Region(index int) Region {
	switch {
	case index < CODE_START:
		return REGION_STORAGE
	case index < t.dataStart:
		return REGION_CODE
	default:
		return REGION_DATA
	}
}

// Fetch returns the instruction byte at ip, if ip is on the tape.
func (t *Tape) Fetch(ip int) (b byte, ok bool) {
	if ip < 0 || ip >= len(t.mem) {
		return
	}

	return t.mem[ip], true
}

// DataAddr converts a tape index into a data address. Indices outside
// [DataStart, Len-1] are refused.
func (t *Tape) DataAddr(index int) (addr DataAddr, ok bool) {
	if index < t.dataStart || index > len(t.mem)-1 {
		return
	}

	return DataAddr{offset: index - t.dataStart}, true
}

// Index returns the tape index of a data address.
func (t *Tape) Index(addr DataAddr) int {
	return t.dataStart + addr.offset
}

// FirstData returns the address of the first data cell.
func (t *Tape) FirstData() DataAddr {
	return DataAddr{}
}

// LastData returns the address of the last data cell.
func (t *Tape) LastData() DataAddr {
	return DataAddr{offset: t.DataLen() - 1}
}

// Cell returns the value of a data cell.
func (t *Tape) Cell(addr DataAddr) byte {
	return t.mem[t.Index(addr)]
}

// SetCell sets the value of a data cell.
func (t *Tape) SetCell(addr DataAddr, value byte) {
	t.mem[t.Index(addr)] = value
}

// Storage returns the storage cell.
func (t *Tape) Storage() byte {
	return t.mem[STORAGE_INDEX]
}

// SetStorage sets the storage cell.
func (t *Tape) SetStorage(value byte) {
	t.mem[STORAGE_INDEX] = value
}

// Cell is a single tape byte tagged with its region.
type Cell struct {
	Index  int
	Region Region
	Value  byte
}

// Snapshot is a read-only copy of the machine memory and pointers.
type Snapshot struct {
	Tape      []byte
	CodeStart int
	DataStart int
	DataPtr   int
}

// Snapshot copies the tape along with the data pointer.
func (t *Tape) Snapshot(ptr DataAddr) Snapshot {
	return Snapshot{
		Tape:      t.Bytes(),
		CodeStart: CODE_START,
		DataStart: t.dataStart,
		DataPtr:   t.Index(ptr),
	}
}

func (snap Snapshot) region(region Region, from, to int) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for index := from; index < to; index++ {
			if !yield(Cell{Index: index, Region: region, Value: snap.Tape[index]}) {
				return
			}
		}
	}
}

// Cells iterates over every byte of the snapshot in tape order.
func (snap Snapshot) Cells() iter.Seq[Cell] {
	return internal.IterSeqConcat(
		snap.region(REGION_STORAGE, 0, snap.CodeStart),
		snap.region(REGION_CODE, snap.CodeStart, snap.DataStart),
		snap.region(REGION_DATA, snap.DataStart, len(snap.Tape)),
	)
}
