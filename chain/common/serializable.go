package common

import (
	"errors"
	"fmt"

	"github.com/MetalBlockchain/metalgo/utils/wrappers"
)

var ErrTruncatedInput = errors.New("truncated input")

type Serializable interface {
	Marshal(*wrappers.Packer) ([]byte, error)
	Unmarshal(*wrappers.Packer) error
}

// Require records ErrTruncatedInput on [p] unless at least [n] unread bytes
// remain. It reports whether unpacking may continue.
func Require(p *wrappers.Packer, n int) bool {
	if p.Errored() {
		return false
	}
	if have := len(p.Bytes) - p.Offset; have < n {
		p.Add(fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedInput, n, have))
		return false
	}
	return true
}

// Remaining consumes and returns every unread byte of [p].
func Remaining(p *wrappers.Packer) []byte {
	if p.Errored() || p.Offset >= len(p.Bytes) {
		return nil
	}
	return p.UnpackFixedBytes(len(p.Bytes) - p.Offset)
}
