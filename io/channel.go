// Package io provides the byte stream channels read and written by the
// machine's input and output operators.
package io

// Channel defines the interface for the machine's byte streams.
// Both operations block until they complete, and any error is fatal to the
// run.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns the next input byte.
	Receive() (value byte, err error)
	// Send writes a single output byte.
	Send(value byte) error
}
