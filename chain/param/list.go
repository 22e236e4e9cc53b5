package param

import (
	"fmt"

	"github.com/MetalBlockchain/calldata/chain/common"
)

// MarshalList RLP-encodes the tagged form of every parameter, in order, as a
// list of byte-strings. A call without parameters carries no list at all, so
// an empty [params] yields an empty result.
func MarshalList(params []Parameter) ([]byte, error) {
	if len(params) == 0 {
		return nil, nil
	}
	elems := make([][]byte, len(params))
	for i, param := range params {
		b, err := Marshal(param)
		if err != nil {
			return nil, fmt.Errorf("couldn't marshal parameter %d: %w", i, err)
		}
		elems[i] = b
	}
	return common.EncodeStrings(elems)
}

// UnmarshalList is the inverse of MarshalList. Both an empty input and an
// empty RLP list decode to no parameters.
func UnmarshalList(b []byte) ([]Parameter, error) {
	if len(b) == 0 {
		return nil, nil
	}
	elems, err := common.DecodeStrings(b)
	if err != nil {
		return nil, fmt.Errorf("couldn't decode parameter list: %w", err)
	}
	if len(elems) == 0 {
		return nil, nil
	}
	params := make([]Parameter, len(elems))
	for i, elem := range elems {
		param, err := Unmarshal(elem)
		if err != nil {
			return nil, fmt.Errorf("couldn't unmarshal parameter %d: %w", i, err)
		}
		params[i] = param
	}
	return params, nil
}
