package api

import "github.com/MetalBlockchain/calldata/chain/calldata"

type ParseArgs struct {
	// Hex wire form of the call record, with or without a 0x prefix.
	CallData string `json:"callData"`
}

type SerializeArgs struct {
	Tx calldata.ContractTxData `json:"tx"`
}
