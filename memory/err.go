package memory

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	ErrSize = errors.New(f("memory size invalid"))
)

// ErrOutOfBounds reports an access outside of the memory array.
type ErrOutOfBounds struct {
	Address int
	Size    int
}

func (err *ErrOutOfBounds) Error() string {
	return f("address 0x%02x out of bounds [0, 0x%02x)", err.Address, err.Size)
}

func (err *ErrOutOfBounds) Is(target error) (ok bool) {
	_, ok = target.(*ErrOutOfBounds)
	return
}
