package io

import (
	"errors"
	"io"
)

// Flusher is implemented by buffered outputs.
type Flusher interface {
	Flush() error
}

// Console provides sequential byte I/O over an io.Reader for input and an
// io.Writer for output.
type Console struct {
	Input  io.Reader
	Output io.Writer

	Received int // Bytes received since the last rewind.
	Sent     int // Bytes sent since the last rewind.
}

var _ Channel = (*Console)(nil)

// Rewind is not possible on a console; only the counters are cleared.
func (con *Console) Rewind() {
	con.Received = 0
	con.Sent = 0
}

// Receive reads one byte from the input. Pending output is flushed first,
// so that prompts are visible before the read blocks. End of input is
// ErrInputClosed.
func (con *Console) Receive() (value byte, err error) {
	err = con.Flush()
	if err != nil {
		return
	}

	if con.Input == nil {
		err = ErrInputClosed
		return
	}

	if br, ok := con.Input.(io.ByteReader); ok {
		value, err = br.ReadByte()
	} else {
		var one [1]byte
		_, err = io.ReadFull(con.Input, one[:])
		value = one[0]
	}

	switch {
	case err == nil:
		con.Received++
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		err = ErrInputClosed
	default:
		err = errors.Join(ErrInputFailed, err)
	}

	return
}

// Send writes one byte to the output.
func (con *Console) Send(value byte) (err error) {
	if con.Output == nil {
		return ErrOutputFailed
	}

	_, err = con.Output.Write([]byte{value})
	if err != nil {
		return errors.Join(ErrOutputFailed, err)
	}

	con.Sent++

	return
}

// Flush flushes buffered output, if the output is buffered.
func (con *Console) Flush() (err error) {
	flusher, ok := con.Output.(Flusher)
	if !ok {
		return
	}

	err = flusher.Flush()
	if err != nil {
		err = errors.Join(ErrOutputFailed, err)
	}

	return
}
