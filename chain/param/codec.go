package param

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/MetalBlockchain/calldata/chain/common"
	"github.com/MetalBlockchain/metalgo/utils/units"
	"github.com/MetalBlockchain/metalgo/utils/wrappers"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

// MaxSize is the largest tagged parameter that can be encoded.
const MaxSize = 64 * units.KiB

var (
	ErrInvalidValueLength = errors.New("invalid value length")
	ErrNilParameter       = errors.New("parameter is nil")
)

// DecodeValue decodes the value bytes of a parameter of kind [tag]. Fixed-width
// kinds must be given exactly their canonical width.
func DecodeValue(tag Tag, b []byte) (Parameter, error) {
	if width, fixed := tag.Width(); fixed {
		switch {
		case len(b) < width:
			return nil, fmt.Errorf("%w: %s needs %d bytes, have %d", common.ErrTruncatedInput, tag, width, len(b))
		case len(b) > width:
			return nil, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrInvalidValueLength, tag, width, len(b))
		}
	}

	switch tag {
	case TagBool:
		return Bool(b[0] == 1), nil
	case TagByte:
		return Byte(b[0]), nil
	case TagChar:
		return Char(binary.LittleEndian.Uint16(b)), nil
	case TagString:
		return String(b), nil
	case TagUInt:
		return UInt(binary.LittleEndian.Uint32(b)), nil
	case TagInt:
		return Int(int32(binary.LittleEndian.Uint32(b))), nil
	case TagULong:
		return ULong(binary.LittleEndian.Uint64(b)), nil
	case TagLong:
		return Long(int64(binary.LittleEndian.Uint64(b))), nil
	case TagAddress:
		return Address(ethcommon.BytesToAddress(b)), nil
	case TagByteArray:
		return ByteArray(append([]byte{}, b...)), nil
	case TagUInt128:
		var v UInt128
		copy(v[:], b)
		return v, nil
	case TagUInt256:
		var v UInt256
		copy(v[:], b)
		return v, nil
	default:
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnsupportedTypeTag, byte(tag))
	}
}

// EncodeValue returns the value bytes of [param] without its tag.
func EncodeValue(param Parameter) ([]byte, error) {
	if param == nil {
		return nil, ErrNilParameter
	}
	p := wrappers.Packer{
		MaxSize: MaxSize,
		Bytes:   make([]byte, 0, 32),
	}
	param.packValue(&p)
	return p.Bytes, p.Err
}

// Marshal returns the tagged form of [param]: [tag][value bytes].
func Marshal(param Parameter) ([]byte, error) {
	if param == nil {
		return nil, ErrNilParameter
	}
	p := wrappers.Packer{
		MaxSize: MaxSize,
		Bytes:   make([]byte, 0, 33),
	}
	p.PackByte(byte(param.Tag()))
	param.packValue(&p)
	return p.Bytes, p.Err
}

// Unmarshal decodes a tagged parameter produced by Marshal.
func Unmarshal(b []byte) (Parameter, error) {
	p := wrappers.Packer{Bytes: b}
	if !common.Require(&p, 1) {
		return nil, fmt.Errorf("missing type tag: %w", p.Err)
	}
	tag := Tag(p.UnpackByte())
	return DecodeValue(tag, common.Remaining(&p))
}
