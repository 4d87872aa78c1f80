package io

import (
	"fmt"
	"io"
)

// Tape writes emitted values to an io.Writer, one decimal number per line.
// Characters are written as raw bytes.
type Tape struct {
	Output io.Writer
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Number writes value in decimal followed by a newline.
func (tc *Tape) Number(value uint8) (err error) {
	if tc.Output == nil {
		err = ErrChannelMissing
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	return
}

// Char writes value as a single byte.
func (tc *Tape) Char(value uint8) (err error) {
	if tc.Output == nil {
		err = ErrChannelMissing
		return
	}

	_, err = tc.Output.Write([]byte{value})
	return
}
