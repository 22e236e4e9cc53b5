package param

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

var ErrUInt128Overflow = errors.New("value does not fit in 128 bits")

// NewUInt256 converts [v] to its little-endian wire form.
func NewUInt256(v *uint256.Int) UInt256 {
	be := v.Bytes32()
	var u UInt256
	for i := range be {
		u[i] = be[len(be)-1-i]
	}
	return u
}

// Uint256 returns the integer value of [u].
func (u UInt256) Uint256() *uint256.Int {
	var be [32]byte
	for i := range u {
		be[len(be)-1-i] = u[i]
	}
	return new(uint256.Int).SetBytes(be[:])
}

// NewUInt128 converts [v] to its little-endian wire form. Values wider than
// 128 bits are rejected.
func NewUInt128(v *uint256.Int) (UInt128, error) {
	if bits := v.BitLen(); bits > 128 {
		return UInt128{}, fmt.Errorf("%w: %d bits", ErrUInt128Overflow, bits)
	}
	wide := NewUInt256(v)
	var u UInt128
	copy(u[:], wide[:len(u)])
	return u, nil
}

// Uint256 returns the integer value of [u].
func (u UInt128) Uint256() *uint256.Int {
	var wide UInt256
	copy(wide[:], u[:])
	return wide.Uint256()
}
