package source

import (
	"fmt"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// REPEAT_LIMIT is the largest count accepted by add() and move().
const REPEAT_LIMIT = 1 << 20

// Starlark runs a generator script, and returns the value of its global
// 'program', which must be a string or a list of strings.
//
// Scripts may use these predeclared helpers:
//
//	add(n)      '+' * n, or '-' * -n
//	move(n)     '>' * n, or '<' * -n
//	loop(body)  '[' + body + ']'
func Starlark(name string, script []byte) (prog *Program, err error) {
	defer func() {
		if err != nil {
			err = &ErrSource{Origin: ORIGIN_STARLARK, Name: name, Err: err}
		}
	}()

	thread := starlark.Thread{Name: name}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"add":  starlark.NewBuiltin("add", runBuiltin('+', '-')),
		"move": starlark.NewBuiltin("move", runBuiltin('>', '<')),
		"loop": starlark.NewBuiltin("loop", loopBuiltin),
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, name, script, pred)
	if err != nil {
		return
	}

	st_prog, ok := dict["program"]
	if !ok {
		err = ErrProgramMissing
		return
	}

	text, err := programText(st_prog)
	if err != nil {
		return
	}

	prog = loaded(&Program{Origin: ORIGIN_STARLARK, Name: name, Text: []byte(text)})
	return
}

// programText flattens a string or list of strings.
func programText(value starlark.Value) (text string, err error) {
	if str, ok := starlark.AsString(value); ok {
		return str, nil
	}

	list, ok := value.(*starlark.List)
	if !ok {
		err = ErrProgramType
		return
	}

	var sb strings.Builder
	for n := range list.Len() {
		str, ok := starlark.AsString(list.Index(n))
		if !ok {
			err = ErrProgramType
			return
		}
		sb.WriteString(str)
	}

	text = sb.String()
	return
}

// runBuiltin returns a builtin repeating up for positive counts, and down
// for negative counts.
func runBuiltin(up, down byte) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var n int
		err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &n)
		if err != nil {
			return nil, err
		}

		if n > REPEAT_LIMIT || n < -REPEAT_LIMIT {
			return nil, fmt.Errorf("%s: %w", fn.Name(), ErrRepeatLimit)
		}

		op := up
		if n < 0 {
			op = down
			n = -n
		}

		return starlark.String(strings.Repeat(string(op), n)), nil
	}
}

func loopBuiltin(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var body string
	err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &body)
	if err != nil {
		return nil, err
	}

	return starlark.String("[" + body + "]"), nil
}
