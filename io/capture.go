package io

import (
	"strconv"
)

// Capture records everything emitted to it.
type Capture struct {
	Numbers []uint8 // Values emitted with Number, in order.
	Text    []byte  // Rendered output, as a Tape would have written it.
}

var _ Channel = (*Capture)(nil)

// Rewind discards everything captured so far.
func (cc *Capture) Rewind() {
	cc.Numbers = nil
	cc.Text = nil
}

func (cc *Capture) Number(value uint8) (err error) {
	cc.Numbers = append(cc.Numbers, value)
	cc.Text = strconv.AppendUint(cc.Text, uint64(value), 10)
	cc.Text = append(cc.Text, '\n')
	return
}

func (cc *Capture) Char(value uint8) (err error) {
	cc.Text = append(cc.Text, value)
	return
}

// String returns the rendered output.
func (cc *Capture) String() string {
	return string(cc.Text)
}
