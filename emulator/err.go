package emulator

import (
	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

// ErrRuntime indicates the tick and code position of a runtime error.
type ErrRuntime struct {
	Tick int
	Ip   int
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("tick %d ip %d %v", err.Tick, err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
