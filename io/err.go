package io

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrInputClosed  = errors.New(f("input closed"))
	ErrInputFailed  = errors.New(f("input failed"))
	ErrOutputFailed = errors.New(f("output failed"))
)
