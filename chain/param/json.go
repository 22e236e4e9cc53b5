package param

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

var (
	ErrInvalidValue = errors.New("invalid parameter value")

	_ json.Marshaler   = Parameters(nil)
	_ json.Unmarshaler = (*Parameters)(nil)
	_ Visitor          = (*jsonEncoder)(nil)
)

// Parameters is an ordered parameter list with a JSON form of
//
//	[{"type": "ULong", "value": "18446744073709551615"}, ...]
//
// 64-bit and wider integers are decimal strings, byte kinds are 0x hex. A Char
// is a one-rune string, or its code unit as a number when it is a surrogate.
type Parameters []Parameter

type jsonParameter struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

func (ps Parameters) MarshalJSON() ([]byte, error) {
	out := make([]jsonParameter, len(ps))
	for i, param := range ps {
		if param == nil {
			return nil, fmt.Errorf("parameter %d: %w", i, ErrNilParameter)
		}
		enc := &jsonEncoder{}
		if err := param.Visit(enc); err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i, err)
		}
		value, err := json.Marshal(enc.value)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i, err)
		}
		out[i] = jsonParameter{
			Type:  param.Tag().String(),
			Value: value,
		}
	}
	return json.Marshal(out)
}

func (ps *Parameters) UnmarshalJSON(b []byte) error {
	var in []jsonParameter
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	if len(in) == 0 {
		*ps = nil
		return nil
	}
	out := make(Parameters, len(in))
	for i, jp := range in {
		tag, err := TagFromString(jp.Type)
		if err != nil {
			return fmt.Errorf("parameter %d: %w", i, err)
		}
		param, err := decodeJSONValue(tag, jp.Value)
		if err != nil {
			return fmt.Errorf("parameter %d (%s): %w", i, tag, err)
		}
		out[i] = param
	}
	*ps = out
	return nil
}

type jsonEncoder struct {
	value any
}

func (e *jsonEncoder) BoolParam(v Bool) error { e.value = bool(v); return nil }
func (e *jsonEncoder) ByteParam(v Byte) error { e.value = uint8(v); return nil }

func (e *jsonEncoder) CharParam(v Char) error {
	// A lone surrogate has no UTF-8 form, so it is written as its code unit.
	if utf16.IsSurrogate(rune(v)) {
		e.value = uint16(v)
		return nil
	}
	e.value = string(rune(v))
	return nil
}

func (e *jsonEncoder) StringParam(v String) error { e.value = string(v); return nil }
func (e *jsonEncoder) UIntParam(v UInt) error     { e.value = uint32(v); return nil }
func (e *jsonEncoder) IntParam(v Int) error       { e.value = int32(v); return nil }

func (e *jsonEncoder) ULongParam(v ULong) error {
	e.value = strconv.FormatUint(uint64(v), 10)
	return nil
}

func (e *jsonEncoder) LongParam(v Long) error {
	e.value = strconv.FormatInt(int64(v), 10)
	return nil
}

func (e *jsonEncoder) AddressParam(v Address) error {
	e.value = hexutil.Bytes(v[:])
	return nil
}

func (e *jsonEncoder) ByteArrayParam(v ByteArray) error {
	e.value = hexutil.Bytes(v)
	return nil
}

func (e *jsonEncoder) UInt128Param(v UInt128) error {
	e.value = v.Uint256().ToBig().String()
	return nil
}

func (e *jsonEncoder) UInt256Param(v UInt256) error {
	e.value = v.Uint256().ToBig().String()
	return nil
}

func decodeJSONValue(tag Tag, raw json.RawMessage) (Parameter, error) {
	switch tag {
	case TagBool:
		var v bool
		err := json.Unmarshal(raw, &v)
		return Bool(v), err
	case TagByte:
		var v uint8
		err := json.Unmarshal(raw, &v)
		return Byte(v), err
	case TagChar:
		var unit uint16
		if err := json.Unmarshal(raw, &unit); err == nil {
			return Char(unit), nil
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || size != len(s) || r > 0xFFFF {
			return nil, fmt.Errorf("%w: %q is not a single UTF-16 code unit", ErrInvalidValue, s)
		}
		return Char(r), nil
	case TagString:
		var v string
		err := json.Unmarshal(raw, &v)
		return String(v), err
	case TagUInt:
		var v uint32
		err := json.Unmarshal(raw, &v)
		return UInt(v), err
	case TagInt:
		var v int32
		err := json.Unmarshal(raw, &v)
		return Int(v), err
	case TagULong:
		v, err := strconv.ParseUint(numberText(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return ULong(v), nil
	case TagLong:
		v, err := strconv.ParseInt(numberText(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return Long(v), nil
	case TagAddress:
		var v ethcommon.Address
		err := json.Unmarshal(raw, &v)
		return Address(v), err
	case TagByteArray:
		var v hexutil.Bytes
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return ByteArray(append([]byte{}, v...)), nil
	case TagUInt128:
		v, err := bigText(raw)
		if err != nil {
			return nil, err
		}
		return NewUInt128(v)
	case TagUInt256:
		v, err := bigText(raw)
		if err != nil {
			return nil, err
		}
		return NewUInt256(v), nil
	default:
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnsupportedTypeTag, byte(tag))
	}
}

// numberText accepts both a JSON number and a JSON string holding one.
func numberText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// bigText parses a decimal or 0x-prefixed hex unsigned integer of up to 256
// bits.
func bigText(raw json.RawMessage) (*uint256.Int, error) {
	s := numberText(raw)
	digits, base := s, 10
	if has0xPrefix(s) {
		digits, base = s[2:], 16
	}
	b, ok := new(big.Int).SetString(digits, base)
	if !ok || b.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q is not an unsigned integer", ErrInvalidValue, s)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return nil, fmt.Errorf("%w: %q does not fit in 256 bits", ErrInvalidValue, s)
	}
	return v, nil
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
