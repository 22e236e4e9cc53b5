package calldata

import (
	"encoding/json"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/MetalBlockchain/calldata/chain/common"
	"github.com/MetalBlockchain/calldata/chain/header"
	"github.com/MetalBlockchain/calldata/chain/opcode"
	"github.com/MetalBlockchain/calldata/chain/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

const (
	headerHex = "c1010000000100000000000000ffffffffffffffff6400000000000000000000000000000000000000"

	// "Execute" without parameters
	noParamsHex = headerHex + "c9874578656375746580"

	// "Execute" with one parameter of every kind, as produced by a full node
	allParamsHex = headerHex + "f88c8745786563757465b882f880820101820201850a74657374830373008504746573748506ffffff7f8505ffffffff8908ffffffffffffff7f8907ffffffffffffffff910bffffffffffffffffffffffffffffffffa10cffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff950995d34980095380851902ccd9a1fb4c813c2cb639"
)

var contractAddress = ethcommon.HexToAddress("0x6400000000000000000000000000000000000000")

func callHeader() header.Header {
	return header.Header{
		OpCode:          opcode.CallContract,
		VMVersion:       1,
		GasPrice:        1,
		GasLimit:        math.MaxUint64,
		ContractAddress: contractAddress,
	}
}

func allParams() param.Parameters {
	var (
		u128 param.UInt128
		u256 param.UInt256
	)
	for i := range u128 {
		u128[i] = 0xff
	}
	for i := range u256 {
		u256[i] = 0xff
	}
	return param.Parameters{
		param.Bool(true),
		param.Byte(1),
		param.ByteArray("test"),
		param.Char('s'),
		param.String("test"),
		param.Int(math.MaxInt32),
		param.UInt(math.MaxUint32),
		param.Long(math.MaxInt64),
		param.ULong(math.MaxUint64),
		u128,
		u256,
		param.Address(ethcommon.HexToAddress("0x95D34980095380851902ccd9A1Fb4C813C2cb639")),
	}
}

func TestParseNoParams(t *testing.T) {
	d, err := ParseHex(noParamsHex)
	require.NoError(t, err)

	assert.Equal(t, opcode.CallContract, d.OpCode)
	assert.Equal(t, uint32(1), d.VMVersion)
	assert.Equal(t, uint64(1), d.GasPrice)
	assert.Equal(t, uint64(math.MaxUint64), d.GasLimit)
	assert.Equal(t, contractAddress, d.ContractAddress)
	assert.Equal(t, "Execute", d.MethodName)
	assert.Empty(t, d.MethodParameters)
}

func TestParseAllParams(t *testing.T) {
	d, err := ParseHex(allParamsHex)
	require.NoError(t, err)

	assert.Equal(t, callHeader(), d.Header)
	assert.Equal(t, "Execute", d.MethodName)

	expected := allParams()
	require.Len(t, d.MethodParameters, len(expected))
	for i, p := range d.MethodParameters {
		assert.Equal(t, expected[i].Tag(), p.Tag(), "parameter %d", i)
		assert.Equal(t, expected[i], p, "parameter %d", i)
	}
}

func TestSerializeAllParams(t *testing.T) {
	d := &ContractTxData{
		Header:           callHeader(),
		MethodName:       "Execute",
		MethodParameters: allParams(),
	}
	s, err := SerializeHex(d)
	require.NoError(t, err)
	assert.Equal(t, allParamsHex, s)
}

func TestSerializeNoParams(t *testing.T) {
	d := &ContractTxData{
		Header:     callHeader(),
		MethodName: "Execute",
	}
	s, err := SerializeHex(d)
	require.NoError(t, err)
	assert.Equal(t, noParamsHex, s)

	parsed, err := ParseHex(s)
	require.NoError(t, err)
	assert.Empty(t, parsed.MethodParameters)
}

func TestRoundTrip(t *testing.T) {
	tests := []*ContractTxData{
		{Header: callHeader(), MethodName: "Execute", MethodParameters: allParams()},
		{Header: callHeader(), MethodName: ""},
		{Header: callHeader(), MethodName: "Transfer", MethodParameters: param.Parameters{
			param.Address(contractAddress),
			param.ULong(1000),
			param.String(strings.Repeat("long memo ", 20)),
		}},
		{
			Header: header.Header{
				OpCode:    opcode.CallContract,
				VMVersion: 1,
				GasPrice:  100,
				GasLimit:  100_000,
			},
			MethodName:       "Übertragung",
			MethodParameters: param.Parameters{param.Char(0x00e9), param.Int(-1)},
		},
	}
	for _, d := range tests {
		b, err := Serialize(d)
		require.NoError(t, err)

		parsed, err := Parse(b)
		require.NoError(t, err)
		assert.Equal(t, d, parsed)

		again, err := Serialize(parsed)
		require.NoError(t, err)
		assert.Equal(t, b, again)
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, s := range []string{noParamsHex, allParamsHex} {
		d, err := ParseHex(s)
		require.NoError(t, err)

		out, err := SerializeHex(d)
		require.NoError(t, err)
		assert.Equal(t, s, out)
	}
}

func TestParseHexCase(t *testing.T) {
	upper, err := ParseHex(strings.ToUpper(allParamsHex))
	require.NoError(t, err)
	prefixed, err := ParseHex("0x" + allParamsHex)
	require.NoError(t, err)
	lower, err := ParseHex(allParamsHex)
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
	assert.Equal(t, lower, prefixed)
}

func TestSerializeWritesDefaultVMVersion(t *testing.T) {
	d := &ContractTxData{
		Header:     callHeader(),
		MethodName: "Execute",
	}
	d.VMVersion = 7

	s, err := SerializeHex(d)
	require.NoError(t, err)
	assert.Equal(t, noParamsHex, s)
	assert.Equal(t, uint32(7), d.VMVersion)
}

func TestSerializeUnsupportedOpCode(t *testing.T) {
	for _, op := range []opcode.OpCode{opcode.CreateContract, 0x00, 0xc2} {
		h := callHeader()
		h.OpCode = op
		s, err := SerializeHex(&ContractTxData{Header: h, MethodName: "Execute"})
		assert.ErrorIs(t, err, ErrUnsupportedOpCode, "opcode %s", op)
		assert.Empty(t, s)
	}
}

func TestParseIgnoresOpCode(t *testing.T) {
	d, err := ParseHex("c2" + noParamsHex[2:])
	require.NoError(t, err)
	assert.Equal(t, opcode.OpCode(0xc2), d.OpCode)
	assert.Equal(t, "Execute", d.MethodName)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		err  error
	}{
		{name: "odd length", hex: noParamsHex + "0", err: ErrMalformedHex},
		{name: "non-hex digit", hex: "zz" + noParamsHex[2:], err: ErrMalformedHex},
		{name: "empty", hex: "", err: common.ErrTruncatedInput},
		{name: "short header", hex: headerHex[:80], err: common.ErrTruncatedInput},
		{name: "header only", hex: headerHex, err: common.ErrTruncatedInput},
		{name: "call data past end", hex: noParamsHex[:len(noParamsHex)-2], err: common.ErrTruncatedInput},
		{name: "one element", hex: headerHex + "c88745786563757465", err: ErrMalformedCallData},
		{name: "three elements", hex: headerHex + "ca874578656375746580" + "80", err: ErrMalformedCallData},
		{name: "not a list", hex: headerHex + "8745786563757465", err: common.ErrMalformedRLP},
		{name: "trailing bytes", hex: noParamsHex + "00", err: common.ErrMalformedRLP},
		{name: "unsupported tag", hex: headerHex + "cd874578656375746584c3820d01", err: param.ErrUnsupportedTypeTag},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := ParseHex(test.hex)
			assert.ErrorIs(t, err, test.err)
			assert.Nil(t, d)
		})
	}
}

func TestParserSizeLimit(t *testing.T) {
	// Sits between the two vectors.
	p := NewParser(len(noParamsHex) / 2)

	_, err := p.ParseHex(noParamsHex)
	require.NoError(t, err)

	_, err = p.ParseHex(allParamsHex)
	assert.ErrorIs(t, err, ErrCallDataTooLarge)

	b, err := DecodeHex(allParamsHex)
	require.NoError(t, err)
	_, err = p.Parse(b)
	assert.ErrorIs(t, err, ErrCallDataTooLarge)
}

func TestSerializeTooLarge(t *testing.T) {
	d := &ContractTxData{
		Header:     callHeader(),
		MethodName: "Execute",
		MethodParameters: param.Parameters{
			param.ByteArray(make([]byte, param.MaxSize/2)),
			param.ByteArray(make([]byte, param.MaxSize/2)),
			param.ByteArray(make([]byte, param.MaxSize/2)),
		},
	}
	_, err := Serialize(d)
	assert.Error(t, err)
}

func TestContractTxDataJSON(t *testing.T) {
	d, err := ParseHex(noParamsHex)
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"opCode": 193,
		"vmVersion": 1,
		"gasPrice": "1",
		"gasLimit": "18446744073709551615",
		"contractAddress": "0x6400000000000000000000000000000000000000",
		"methodName": "Execute",
		"methodParameters": []
	}`, string(b))

	full, err := ParseHex(allParamsHex)
	require.NoError(t, err)
	b, err = json.Marshal(full)
	require.NoError(t, err)

	var decoded ContractTxData
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, full, &decoded)
}

func TestConcurrentParse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				d, err := ParseHex(allParamsHex)
				if !assert.NoError(t, err) {
					return
				}
				s, err := SerializeHex(d)
				if !assert.NoError(t, err) {
					return
				}
				assert.Equal(t, allParamsHex, s)
			}
		}()
	}
	wg.Wait()
}

func TestBytesIsFullWireForm(t *testing.T) {
	d, err := ParseHex(allParamsHex)
	require.NoError(t, err)

	expected, err := Serialize(d)
	require.NoError(t, err)

	b, err := d.Bytes()
	require.NoError(t, err)
	assert.Equal(t, expected, b)
	assert.Len(t, b, len(allParamsHex)/2)
}

func TestSerializeNil(t *testing.T) {
	_, err := Serialize(nil)
	assert.ErrorIs(t, err, ErrNilCallData)

	_, err = SerializeHex(nil)
	assert.ErrorIs(t, err, ErrNilCallData)

	var d *ContractTxData
	_, err = d.Bytes()
	assert.ErrorIs(t, err, ErrNilCallData)
}

func TestEmptyParametersMatchNil(t *testing.T) {
	empty := &ContractTxData{
		Header:           callHeader(),
		MethodName:       "Execute",
		MethodParameters: param.Parameters{},
	}
	s, err := SerializeHex(empty)
	require.NoError(t, err)
	assert.Equal(t, noParamsHex, s)

	d, err := ParseHex(s)
	require.NoError(t, err)
	assert.Nil(t, d.MethodParameters)
	assert.Empty(t, empty.MethodParameters)
}
