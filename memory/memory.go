// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory implements the byte addressed RAM of the LS-8.
package memory

const (
	DEFAULT_SIZE = 256 // Bytes of RAM in a stock LS-8.
)

// Memory is a fixed size, zero initialized byte array.
type Memory struct {
	data []byte
}

// New creates a memory of size bytes.
func New(size int) (mem *Memory) {
	if size <= 0 {
		panic(ErrSize)
	}

	mem = &Memory{
		data: make([]byte, size),
	}

	return
}

// Size returns the number of addressable bytes.
func (mem *Memory) Size() int {
	return len(mem.data)
}

func (mem *Memory) check(address int) (err error) {
	if address < 0 || address >= len(mem.data) {
		err = &ErrOutOfBounds{Address: address, Size: len(mem.data)}
	}
	return
}

// Read returns the byte at address.
func (mem *Memory) Read(address int) (value byte, err error) {
	err = mem.check(address)
	if err != nil {
		return
	}

	value = mem.data[address]
	return
}

// Write overwrites the byte at address.
func (mem *Memory) Write(address int, value byte) (err error) {
	err = mem.check(address)
	if err != nil {
		return
	}

	mem.data[address] = value
	return
}

// Load copies data into memory starting at address.
// Nothing is written unless the whole range fits.
func (mem *Memory) Load(address int, data []byte) (err error) {
	if len(data) == 0 {
		return
	}

	err = mem.check(address)
	if err != nil {
		return
	}

	err = mem.check(address + len(data) - 1)
	if err != nil {
		return
	}

	copy(mem.data[address:], data)
	return
}

// Reset zeros all of memory.
func (mem *Memory) Reset() {
	clear(mem.data)
}

// Bytes returns a copy of the memory contents.
func (mem *Memory) Bytes() []byte {
	return append([]byte(nil), mem.data...)
}
