package vm

// ScanForward finds the ']' matching the '[' at ip by walking the tape
// forward and counting nesting. The scan does not stop at the end of the
// code region. Running off the tape is ErrBracketUnmatched.
func (t *Tape) ScanForward(ip int) (target int, err error) {
	count := 1
	target = ip
	for count > 0 {
		target++
		if target >= len(t.mem) {
			err = ErrBracketUnmatched
			return
		}
		switch t.mem[target] {
		case '[':
			count++
		case ']':
			count--
		}
	}

	return
}

// ScanBackward finds the '[' matching the ']' at ip by walking the tape
// backward. Running off the tape is ErrBracketUnmatched.
func (t *Tape) ScanBackward(ip int) (target int, err error) {
	count := 1
	target = ip
	for count > 0 {
		target--
		if target < 0 {
			err = ErrBracketUnmatched
			return
		}
		switch t.mem[target] {
		case '[':
			count--
		case ']':
			count++
		}
	}

	return
}

// JumpTable maps the index of each matched bracket in the code region to
// the index of its partner.
type JumpTable map[int]int

// NewJumpTable pairs the brackets of the code region. Unmatched brackets
// are left out, so jumps from them still fall back to the tape scan.
func NewJumpTable(t *Tape) (jt JumpTable) {
	jt = JumpTable{}

	var open Stack
	for ip := CODE_START; ip < t.dataStart; ip++ {
		switch t.mem[ip] {
		case '[':
			open.Push(ip)
		case ']':
			start, ok := open.Pop()
			if !ok {
				continue
			}
			jt[start] = ip
			jt[ip] = start
		}
	}

	return
}

// jump resolves the target of a taken jump at ip.
func (vm *VM) jump(ip int, forward bool) (target int, err error) {
	if target, ok := vm.jumps[ip]; ok {
		return target, nil
	}

	if forward {
		return vm.Tape.ScanForward(ip)
	}

	return vm.Tape.ScanBackward(ip)
}
