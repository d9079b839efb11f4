package source

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	// Program source errors
	ErrProgramMissing = errors.New(f("program global missing"))
	ErrProgramType    = errors.New(f("program global must be a string or a list of strings"))
	ErrRepeatLimit    = errors.New(f("repeat count out of range"))
)

// ErrSource indicates which source failed to load.
type ErrSource struct {
	Origin Origin
	Name   string
	Err    error
}

func (err *ErrSource) Error() string {
	return f("%v %v: %v", err.Origin, err.Name, err.Err)
}

func (err *ErrSource) Unwrap() error {
	return err.Err
}
