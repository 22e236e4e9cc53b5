package api

import "github.com/MetalBlockchain/calldata/chain/calldata"

type EmptyReply struct{}

type PingReply struct {
	Success bool `serialize:"true" json:"success"`
}

type ParseReply struct {
	Tx calldata.ContractTxData `json:"tx"`
}

type SerializeReply struct {
	CallData string `json:"callData"`
}
