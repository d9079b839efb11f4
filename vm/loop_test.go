package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScan_Nested(t *testing.T) {
	assert := assert.New(t)

	// 1:'[' 2:'[' 3:'-' 4:']' 5:'-' 6:']'
	tape := NewTape([]byte("[[-]-]"), 1)

	table := [](struct {
		ip      int
		forward bool
		target  int
	}){
		{1, true, 6},
		{2, true, 4},
		{6, false, 1},
		{4, false, 2},
	}

	for _, entry := range table {
		var target int
		var err error
		if entry.forward {
			target, err = tape.ScanForward(entry.ip)
		} else {
			target, err = tape.ScanBackward(entry.ip)
		}
		assert.NoError(err)
		assert.Equal(entry.target, target, "ip %d", entry.ip)
	}
}

func TestScan_Unmatched(t *testing.T) {
	assert := assert.New(t)

	tape := NewTape([]byte("["), 2)
	_, err := tape.ScanForward(1)
	assert.ErrorIs(err, ErrBracketUnmatched)

	tape = NewTape([]byte("]"), 2)
	_, err = tape.ScanBackward(1)
	assert.ErrorIs(err, ErrBracketUnmatched)
}

func TestScan_CrossesIntoData(t *testing.T) {
	assert := assert.New(t)

	// An unbalanced '[' is closed by a data cell holding ']'.
	tape := NewTape([]byte("["), 3)
	tape.SetCell(tape.LastData(), ']')

	target, err := tape.ScanForward(1)
	assert.NoError(err)
	assert.Equal(tape.Index(tape.LastData()), target)
}

func TestJumpTable(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program string
		jumps   JumpTable
	}){
		{"empty", "", JumpTable{}},
		{"nested", "[[-]-]", JumpTable{1: 6, 6: 1, 2: 4, 4: 2}},
		{"stray_close", "][]", JumpTable{2: 3, 3: 2}},
		{"stray_open", "[[]", JumpTable{2: 3, 3: 2}},
		{"siblings", "[][]", JumpTable{1: 2, 2: 1, 3: 4, 4: 3}},
	}

	for _, entry := range table {
		tape := NewTape([]byte(entry.program), 2)
		assert.Equal(entry.jumps, NewJumpTable(tape), entry.name)
	}
}

func TestJumpTable_AgreesWithScan(t *testing.T) {
	assert := assert.New(t)

	tape := NewTape([]byte("+[>[-]<[>+<-]]]["), 2)
	for ip, target := range NewJumpTable(tape) {
		var scanned int
		var err error
		if tape.mem[ip] == '[' {
			scanned, err = tape.ScanForward(ip)
		} else {
			scanned, err = tape.ScanBackward(ip)
		}
		assert.NoError(err)
		assert.Equal(scanned, target, "ip %d", ip)
	}
}

func TestStack(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())

	_, ok := s.Pop()
	assert.False(ok)

	s.Push(3)
	s.Push(9)
	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(9, val)

	val, ok = s.Pop()
	assert.True(ok)
	assert.Equal(9, val)
	assert.Equal(1, len(s.Data))

	_, ok = s.Pop()
	assert.True(ok)
	assert.True(s.Empty())

	_, ok = s.Pop()
	assert.False(ok)
}
