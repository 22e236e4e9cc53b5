package calldata

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/MetalBlockchain/metalgo/utils/wrappers"
)

var (
	_ Parser = (*parser)(nil)

	ErrMalformedHex = errors.New("malformed hex")

	defaultParser = NewParser(MaxCallDataSize)
)

type Parser interface {
	Parse(b []byte) (*ContractTxData, error)
	ParseHex(s string) (*ContractTxData, error)
}

type parser struct {
	maxSize int
}

// NewParser returns a Parser that rejects input longer than [maxSize] bytes.
func NewParser(maxSize int) Parser {
	return &parser{maxSize: maxSize}
}

func (p *parser) Parse(b []byte) (*ContractTxData, error) {
	if len(b) > p.maxSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrCallDataTooLarge, len(b), p.maxSize)
	}
	d := &ContractTxData{}
	if err := d.Unmarshal(&wrappers.Packer{Bytes: b}); err != nil {
		return nil, err
	}
	return d, nil
}

func (p *parser) ParseHex(s string) (*ContractTxData, error) {
	if n := len(trim0x(s)) / 2; n > p.maxSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrCallDataTooLarge, n, p.maxSize)
	}
	b, err := DecodeHex(s)
	if err != nil {
		return nil, err
	}
	return p.Parse(b)
}

// Parse decodes a call record from its wire bytes.
func Parse(b []byte) (*ContractTxData, error) {
	return defaultParser.Parse(b)
}

// ParseHex decodes a call record from hex. A 0x prefix and upper case digits
// are accepted.
func ParseHex(s string) (*ContractTxData, error) {
	return defaultParser.ParseHex(s)
}

// Serialize returns the wire bytes of a CallContract record.
func Serialize(d *ContractTxData) ([]byte, error) {
	return d.Marshal(&wrappers.Packer{
		MaxSize: MaxCallDataSize,
		Bytes:   make([]byte, 0, 128),
	})
}

// SerializeHex returns the lowercase, unprefixed hex of Serialize.
func SerializeHex(d *ContractTxData) (string, error) {
	b, err := Serialize(d)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// DecodeHex decodes [s] with an optional 0x prefix. Odd length and non-hex
// digits fail with ErrMalformedHex.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(trim0x(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}
	return b, nil
}

func trim0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
