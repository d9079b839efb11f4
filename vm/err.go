package vm

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrNoData           = errors.New(f("data region empty"))
	ErrChannelInvalid   = errors.New(f("channel invalid"))
	ErrBracketUnmatched = errors.New(f("bracket unmatched"))
	ErrTickLimit        = errors.New(f("tick limit reached"))
	ErrExtendInvalid    = errors.New(f("extend level invalid"))
)

// ErrFault is a fatal fault raised while executing the operator at Ip.
type ErrFault struct {
	Ip  int
	Op  Operator
	Err error
}

func (err *ErrFault) Error() string {
	return f("ip %d '%v' %v", err.Ip, err.Op, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}
