// Package source loads program text for the tape machine from a file, an
// inline string, a reader such as stdin, or a Starlark generator script.
//
// Program text is returned unchanged: bytes that are not operators are
// kept, and execute as no-ops.
package source

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Origin is where a program was read from.
type Origin string

const (
	ORIGIN_FILE     = Origin("file")
	ORIGIN_INLINE   = Origin("inline")
	ORIGIN_STDIN    = Origin("stdin")
	ORIGIN_STARLARK = Origin("starlark")
)

// STARLARK_EXT is the file extension of generator scripts.
const STARLARK_EXT = ".star"

// Program is a loaded program.
type Program struct {
	Origin Origin
	Name   string
	Text   []byte
}

// loaded logs the program to the global logger.
func loaded(prog *Program) *Program {
	zap.L().Debug("reading program",
		zap.String("origin", string(prog.Origin)),
		zap.String("name", prog.Name),
		zap.Int("bytes", len(prog.Text)),
	)
	return prog
}

// Inline wraps program text given on the command line.
func Inline(code string) (prog *Program) {
	return loaded(&Program{Origin: ORIGIN_INLINE, Name: "-e", Text: []byte(code)})
}

// Reader reads all program text from r.
func Reader(name string, r io.Reader) (prog *Program, err error) {
	text, err := io.ReadAll(r)
	if err != nil {
		err = &ErrSource{Origin: ORIGIN_STDIN, Name: name, Err: err}
		return
	}

	prog = loaded(&Program{Origin: ORIGIN_STDIN, Name: name, Text: text})
	return
}

// File reads program text from a file.
func File(path string) (prog *Program, err error) {
	text, err := os.ReadFile(path)
	if err != nil {
		err = &ErrSource{Origin: ORIGIN_FILE, Name: path, Err: err}
		return
	}

	prog = loaded(&Program{Origin: ORIGIN_FILE, Name: path, Text: text})
	return
}

// Load reads a program from path. Files ending in STARLARK_EXT are run as
// generator scripts; anything else is program text.
func Load(path string) (prog *Program, err error) {
	if !strings.EqualFold(filepath.Ext(path), STARLARK_EXT) {
		return File(path)
	}

	script, err := os.ReadFile(path)
	if err != nil {
		err = &ErrSource{Origin: ORIGIN_STARLARK, Name: path, Err: err}
		return
	}

	return Starlark(path, script)
}
