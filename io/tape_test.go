package io

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write(p []byte) (int, error) {
	return 0, errWrite
}

func TestTape(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	tape := &Tape{Output: out}

	assert.NoError(tape.Number(72))
	assert.NoError(tape.Number(0))
	assert.NoError(tape.Number(255))
	assert.NoError(tape.Char('H'))
	assert.NoError(tape.Char('i'))

	tape.Rewind()
	assert.Equal("72\n0\n255\nHi", out.String())
}

func TestTape_NoOutput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	assert.Equal(ErrChannelMissing, tape.Number(1))
	assert.Equal(ErrChannelMissing, tape.Char('a'))
}

func TestTape_WriteError(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Output: failWriter{}}
	assert.ErrorIs(tape.Number(1), errWrite)
	assert.ErrorIs(tape.Char('a'), errWrite)
}

func TestCapture(t *testing.T) {
	assert := assert.New(t)

	cc := &Capture{}
	assert.NoError(cc.Number(8))
	assert.NoError(cc.Char('!'))
	assert.NoError(cc.Number(128))

	assert.Equal([]uint8{8, 128}, cc.Numbers)
	assert.Equal("8\n!128\n", cc.String())

	cc.Rewind()
	assert.Nil(cc.Numbers)
	assert.Equal("", cc.String())
}
