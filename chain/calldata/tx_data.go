package calldata

import (
	"errors"
	"fmt"

	"github.com/MetalBlockchain/calldata/chain/common"
	"github.com/MetalBlockchain/calldata/chain/header"
	"github.com/MetalBlockchain/calldata/chain/opcode"
	"github.com/MetalBlockchain/calldata/chain/param"
	"github.com/MetalBlockchain/metalgo/utils/units"
	"github.com/MetalBlockchain/metalgo/utils/wrappers"
)

const (
	// DefaultVMVersion is written into every serialized call, whatever the
	// record carries.
	DefaultVMVersion uint32 = 1

	// MaxCallDataSize bounds both parsed input and serialized output.
	MaxCallDataSize = 64 * units.KiB

	// call data is the RLP list [methodName, paramListBytes]
	callDataElems = 2
)

var (
	_ common.Serializable = (*ContractTxData)(nil)

	ErrUnsupportedOpCode = errors.New("unsupported opcode")
	ErrMalformedCallData = errors.New("malformed call data")
	ErrCallDataTooLarge  = errors.New("call data too large")
	ErrNilCallData       = errors.New("call data is nil")
)

// ContractTxData is a decoded contract call record.
type ContractTxData struct {
	header.Header

	MethodName string `serialize:"true" json:"methodName"`
	// Positional arguments, in call order. Nil and empty are the same call;
	// parsing a call without arguments yields nil.
	MethodParameters param.Parameters `serialize:"true" json:"methodParameters"`
}

// Marshal appends the wire form of a CallContract record to [p]. Any other
// opcode fails with ErrUnsupportedOpCode.
func (d *ContractTxData) Marshal(p *wrappers.Packer) ([]byte, error) {
	if d == nil {
		return nil, ErrNilCallData
	}
	if d.OpCode != opcode.CallContract {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOpCode, d.OpCode)
	}

	h := d.Header
	h.VMVersion = DefaultVMVersion
	if _, err := h.Marshal(p); err != nil {
		return nil, fmt.Errorf("couldn't marshal header: %w", err)
	}

	// The parameter list is RLP-encoded on its own and then carried as an
	// opaque byte-string inside the call data list.
	paramListBytes, err := param.MarshalList(d.MethodParameters)
	if err != nil {
		return nil, err
	}
	callDataBytes, err := common.EncodeStrings([][]byte{
		[]byte(d.MethodName),
		paramListBytes,
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't encode call data: %w", err)
	}

	p.PackFixedBytes(callDataBytes)
	return p.Bytes, p.Err
}

// Unmarshal reads a record from [p], consuming all of its remaining bytes.
// The opcode is not inspected: every record is decoded as a call.
func (d *ContractTxData) Unmarshal(p *wrappers.Packer) error {
	var h header.Header
	if err := h.Unmarshal(p); err != nil {
		return fmt.Errorf("couldn't unmarshal header: %w", err)
	}

	callDataBytes := common.Remaining(p)
	elems, err := common.DecodeStrings(callDataBytes)
	if err != nil {
		return fmt.Errorf("couldn't decode call data: %w", err)
	}
	if len(elems) != callDataElems {
		return fmt.Errorf("%w: expected %d elements, got %d", ErrMalformedCallData, callDataElems, len(elems))
	}

	paramListBytes := elems[1]
	params, err := param.UnmarshalList(paramListBytes)
	if err != nil {
		return err
	}

	*d = ContractTxData{
		Header:           h,
		MethodName:       string(elems[0]),
		MethodParameters: params,
	}
	return p.Err
}

// Bytes returns the full wire form of the record. It shadows the header-only
// Header.Bytes.
func (d *ContractTxData) Bytes() ([]byte, error) {
	return Serialize(d)
}
