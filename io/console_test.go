package io

import (
	"bufio"
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestConsole_Receive(t *testing.T) {
	assert := assert.New(t)

	con := &Console{Input: bytes.NewReader([]byte("AB"))}

	value, err := con.Receive()
	assert.NoError(err)
	assert.Equal(byte('A'), value)

	value, err = con.Receive()
	assert.NoError(err)
	assert.Equal(byte('B'), value)
	assert.Equal(2, con.Received)

	_, err = con.Receive()
	assert.ErrorIs(err, ErrInputClosed)
	assert.Equal(2, con.Received)
}

func TestConsole_Receive_Reader(t *testing.T) {
	assert := assert.New(t)

	// OneByteReader hides the io.ByteReader of the underlying reader.
	con := &Console{Input: iotest.OneByteReader(bytes.NewReader([]byte{0x7f}))}

	value, err := con.Receive()
	assert.NoError(err)
	assert.Equal(byte(0x7f), value)

	_, err = con.Receive()
	assert.ErrorIs(err, ErrInputClosed)
}

func TestConsole_Receive_Error(t *testing.T) {
	assert := assert.New(t)

	con := &Console{Input: iotest.ErrReader(errors.New("unplugged"))}

	_, err := con.Receive()
	assert.ErrorIs(err, ErrInputFailed)
	assert.NotErrorIs(err, ErrInputClosed)
}

func TestConsole_Receive_Nil(t *testing.T) {
	assert := assert.New(t)

	con := &Console{}
	_, err := con.Receive()
	assert.ErrorIs(err, ErrInputClosed)
}

func TestConsole_Send(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	con := &Console{Output: out}

	assert.NoError(con.Send('h'))
	assert.NoError(con.Send('i'))
	assert.Equal("hi", out.String())
	assert.Equal(2, con.Sent)

	con.Rewind()
	assert.Equal(0, con.Sent)
	assert.Equal(0, con.Received)
}

func TestConsole_Send_Error(t *testing.T) {
	assert := assert.New(t)

	con := &Console{Output: failWriter{}}
	assert.ErrorIs(con.Send('x'), ErrOutputFailed)
	assert.Equal(0, con.Sent)

	con = &Console{}
	assert.ErrorIs(con.Send('x'), ErrOutputFailed)
}

func TestConsole_FlushBeforeReceive(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	buffered := bufio.NewWriter(out)
	con := &Console{
		Input:  bytes.NewReader([]byte("y")),
		Output: buffered,
	}

	assert.NoError(con.Send('?'))
	assert.Equal(0, out.Len())

	_, err := con.Receive()
	assert.NoError(err)
	assert.Equal("?", out.String())
}
