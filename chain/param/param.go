package param

import (
	"encoding/binary"

	"github.com/MetalBlockchain/metalgo/utils/wrappers"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

var (
	_ Parameter = Bool(false)
	_ Parameter = Byte(0)
	_ Parameter = Char(0)
	_ Parameter = String("")
	_ Parameter = UInt(0)
	_ Parameter = Int(0)
	_ Parameter = ULong(0)
	_ Parameter = Long(0)
	_ Parameter = Address{}
	_ Parameter = ByteArray(nil)
	_ Parameter = UInt128{}
	_ Parameter = UInt256{}
)

// Parameter is one positional argument of a contract call. The set of
// implementations is closed: one type per Tag.
type Parameter interface {
	Tag() Tag
	// Visit calls [visitor] with this parameter's concrete kind
	Visit(visitor Visitor) error

	// packValue writes the value bytes, without the tag, at canonical width.
	packValue(p *wrappers.Packer)
}

type (
	Bool bool
	Byte byte
	// Char is a single UTF-16 code unit.
	Char   uint16
	String string
	UInt   uint32
	Int    int32
	ULong  uint64
	Long   int64
	// Address is a 20-byte account or contract identifier.
	Address   ethcommon.Address
	ByteArray []byte
	// UInt128 holds an unsigned 128-bit integer as little-endian bytes.
	UInt128 [16]byte
	// UInt256 holds an unsigned 256-bit integer as little-endian bytes.
	UInt256 [32]byte
)

func (Bool) Tag() Tag      { return TagBool }
func (Byte) Tag() Tag      { return TagByte }
func (Char) Tag() Tag      { return TagChar }
func (String) Tag() Tag    { return TagString }
func (UInt) Tag() Tag      { return TagUInt }
func (Int) Tag() Tag       { return TagInt }
func (ULong) Tag() Tag     { return TagULong }
func (Long) Tag() Tag      { return TagLong }
func (Address) Tag() Tag   { return TagAddress }
func (ByteArray) Tag() Tag { return TagByteArray }
func (UInt128) Tag() Tag   { return TagUInt128 }
func (UInt256) Tag() Tag   { return TagUInt256 }

func (v Bool) Visit(visitor Visitor) error      { return visitor.BoolParam(v) }
func (v Byte) Visit(visitor Visitor) error      { return visitor.ByteParam(v) }
func (v Char) Visit(visitor Visitor) error      { return visitor.CharParam(v) }
func (v String) Visit(visitor Visitor) error    { return visitor.StringParam(v) }
func (v UInt) Visit(visitor Visitor) error      { return visitor.UIntParam(v) }
func (v Int) Visit(visitor Visitor) error       { return visitor.IntParam(v) }
func (v ULong) Visit(visitor Visitor) error     { return visitor.ULongParam(v) }
func (v Long) Visit(visitor Visitor) error      { return visitor.LongParam(v) }
func (v Address) Visit(visitor Visitor) error   { return visitor.AddressParam(v) }
func (v ByteArray) Visit(visitor Visitor) error { return visitor.ByteArrayParam(v) }
func (v UInt128) Visit(visitor Visitor) error   { return visitor.UInt128Param(v) }
func (v UInt256) Visit(visitor Visitor) error   { return visitor.UInt256Param(v) }

func (v Bool) packValue(p *wrappers.Packer) {
	if v {
		p.PackByte(1)
	} else {
		p.PackByte(0)
	}
}

func (v Byte) packValue(p *wrappers.Packer) { p.PackByte(byte(v)) }

func (v Char) packValue(p *wrappers.Packer) {
	p.PackFixedBytes(binary.LittleEndian.AppendUint16(nil, uint16(v)))
}

func (v String) packValue(p *wrappers.Packer) { p.PackFixedBytes([]byte(v)) }

func (v UInt) packValue(p *wrappers.Packer) {
	p.PackFixedBytes(binary.LittleEndian.AppendUint32(nil, uint32(v)))
}

func (v Int) packValue(p *wrappers.Packer) {
	p.PackFixedBytes(binary.LittleEndian.AppendUint32(nil, uint32(v)))
}

func (v ULong) packValue(p *wrappers.Packer) {
	p.PackFixedBytes(binary.LittleEndian.AppendUint64(nil, uint64(v)))
}

func (v Long) packValue(p *wrappers.Packer) {
	p.PackFixedBytes(binary.LittleEndian.AppendUint64(nil, uint64(v)))
}

func (v Address) packValue(p *wrappers.Packer)   { p.PackFixedBytes(v[:]) }
func (v ByteArray) packValue(p *wrappers.Packer) { p.PackFixedBytes(v) }
func (v UInt128) packValue(p *wrappers.Packer)   { p.PackFixedBytes(v[:]) }
func (v UInt256) packValue(p *wrappers.Packer)   { p.PackFixedBytes(v[:]) }
