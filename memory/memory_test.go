package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	mem := New(DEFAULT_SIZE)
	assert.Equal(256, mem.Size())

	for addr := range mem.Size() {
		value, err := mem.Read(addr)
		assert.NoError(err)
		assert.Equal(byte(0), value)
	}
}

func TestMemory_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	mem := New(16)

	assert.NoError(mem.Write(0, 0x12))
	assert.NoError(mem.Write(15, 0xfe))
	assert.NoError(mem.Write(15, 0xff))

	value, err := mem.Read(0)
	assert.NoError(err)
	assert.Equal(byte(0x12), value)

	value, err = mem.Read(15)
	assert.NoError(err)
	assert.Equal(byte(0xff), value)
}

func TestMemory_OutOfBounds(t *testing.T) {
	assert := assert.New(t)

	mem := New(16)

	table := []int{-1, 16, 17, 1 << 20}

	for _, addr := range table {
		_, err := mem.Read(addr)
		assert.Error(err, addr)

		var oob *ErrOutOfBounds
		assert.True(errors.As(err, &oob), addr)
		if oob != nil {
			assert.Equal(addr, oob.Address)
			assert.Equal(16, oob.Size)
		}

		err = mem.Write(addr, 0xaa)
		assert.True(errors.Is(err, &ErrOutOfBounds{}), addr)
	}

	assert.Equal(make([]byte, 16), mem.Bytes())
}

func TestMemory_Load(t *testing.T) {
	assert := assert.New(t)

	mem := New(8)

	assert.NoError(mem.Load(2, []byte{1, 2, 3}))
	assert.Equal([]byte{0, 0, 1, 2, 3, 0, 0, 0}, mem.Bytes())

	err := mem.Load(6, []byte{9, 9, 9})
	assert.True(errors.Is(err, &ErrOutOfBounds{}))
	assert.Equal([]byte{0, 0, 1, 2, 3, 0, 0, 0}, mem.Bytes())

	assert.NoError(mem.Load(0, nil))

	mem.Reset()
	assert.Equal(make([]byte, 8), mem.Bytes())
}

func TestMemory_Bytes(t *testing.T) {
	assert := assert.New(t)

	mem := New(4)
	data := mem.Bytes()
	data[0] = 0xff

	value, err := mem.Read(0)
	assert.NoError(err)
	assert.Equal(byte(0), value)
}

func TestMemory_BadSize(t *testing.T) {
	assert := assert.New(t)

	assert.Panics(func() { New(0) })
	assert.Panics(func() { New(-5) })
}
