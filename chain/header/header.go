package header

import (
	"encoding/binary"

	"github.com/MetalBlockchain/calldata/chain/common"
	"github.com/MetalBlockchain/calldata/chain/opcode"
	"github.com/MetalBlockchain/metalgo/utils/wrappers"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

// Field widths of the fixed call header, in wire order.
const (
	OpCodeLen          = 1
	VMVersionLen       = 4
	GasPriceLen        = 8
	GasLimitLen        = 8
	ContractAddressLen = ethcommon.AddressLength

	Len = OpCodeLen + VMVersionLen + GasPriceLen + GasLimitLen + ContractAddressLen
)

var _ common.Serializable = (*Header)(nil)

// Header is the fixed-width prefix of a contract transaction. Integers are
// little-endian on the wire.
type Header struct {
	OpCode          opcode.OpCode     `serialize:"true" json:"opCode"`
	VMVersion       uint32            `serialize:"true" json:"vmVersion"`
	GasPrice        uint64            `serialize:"true" json:"gasPrice,string"`
	GasLimit        uint64            `serialize:"true" json:"gasLimit,string"`
	ContractAddress ethcommon.Address `serialize:"true" json:"contractAddress"`
}

func (h *Header) Marshal(p *wrappers.Packer) ([]byte, error) {
	p.PackByte(byte(h.OpCode))
	p.PackFixedBytes(binary.LittleEndian.AppendUint32(nil, h.VMVersion))
	p.PackFixedBytes(binary.LittleEndian.AppendUint64(nil, h.GasPrice))
	p.PackFixedBytes(binary.LittleEndian.AppendUint64(nil, h.GasLimit))
	p.PackFixedBytes(h.ContractAddress[:])
	return p.Bytes, p.Err
}

// Unmarshal reads the header at the packer's offset. Fewer than [Len] unread
// bytes fail with common.ErrTruncatedInput and leave [h] untouched.
func (h *Header) Unmarshal(p *wrappers.Packer) error {
	if !common.Require(p, Len) {
		return p.Err
	}
	h.OpCode = opcode.OpCode(p.UnpackByte())
	h.VMVersion = binary.LittleEndian.Uint32(p.UnpackFixedBytes(VMVersionLen))
	h.GasPrice = binary.LittleEndian.Uint64(p.UnpackFixedBytes(GasPriceLen))
	h.GasLimit = binary.LittleEndian.Uint64(p.UnpackFixedBytes(GasLimitLen))
	h.ContractAddress = ethcommon.BytesToAddress(p.UnpackFixedBytes(ContractAddressLen))
	return p.Err
}

// Bytes returns the [Len]-byte wire form of the header.
func (h *Header) Bytes() ([]byte, error) {
	return h.Marshal(&wrappers.Packer{
		MaxSize: Len,
		Bytes:   make([]byte, 0, Len),
	})
}

// Parse reads a header from the start of [b]. Bytes after the header are
// ignored.
func Parse(b []byte) (*Header, error) {
	h := &Header{}
	if err := h.Unmarshal(&wrappers.Packer{Bytes: b}); err != nil {
		return nil, err
	}
	return h, nil
}
