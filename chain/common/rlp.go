package common

import (
	"errors"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/rlp"
)

var ErrMalformedRLP = errors.New("malformed rlp")

// EncodeStrings RLP-encodes [elems] as a list of byte-strings.
func EncodeStrings(elems [][]byte) ([]byte, error) {
	return rlp.EncodeToBytes(elems)
}

// DecodeStrings decodes [b] as one RLP list whose elements are all
// byte-strings. Input that ends early fails with ErrTruncatedInput, anything
// else that is not such a list fails with ErrMalformedRLP.
func DecodeStrings(b []byte) ([][]byte, error) {
	var elems [][]byte
	if err := rlp.DecodeBytes(b, &elems); err != nil {
		return nil, wrapRLPError(err)
	}
	return elems, nil
}

func wrapRLPError(err error) error {
	switch {
	case errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, rlp.ErrValueTooLarge),
		errors.Is(err, rlp.ErrElemTooLarge):
		return fmt.Errorf("%w: %v", ErrTruncatedInput, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformedRLP, err)
	}
}
