package client

import (
	"context"
	"fmt"

	"github.com/MetalBlockchain/calldata/api"
	"github.com/MetalBlockchain/calldata/chain/calldata"
	"github.com/MetalBlockchain/calldata/chain/constants"
	"github.com/MetalBlockchain/calldata/service"
	"github.com/MetalBlockchain/metalgo/utils/rpc"
)

type Client interface {
	// Pings the service.
	Ping(ctx context.Context) (bool, error)
	// Decodes hex call data into a call record
	Parse(ctx context.Context, callData string) (*calldata.ContractTxData, error)
	// Encodes a call record into hex call data
	Serialize(ctx context.Context, tx *calldata.ContractTxData) (string, error)
}

// New creates a new client object.
func New(uri string) Client {
	req := rpc.NewEndpointRequester(
		fmt.Sprintf("%s%s", uri, service.Endpoint),
	)
	return &client{req: req}
}

type client struct {
	req rpc.EndpointRequester
}

func (cli *client) Ping(ctx context.Context) (bool, error) {
	resp := new(api.PingReply)
	err := cli.req.SendRequest(ctx,
		constants.AppName+".ping",
		struct{}{},
		resp,
	)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (cli *client) Parse(ctx context.Context, callData string) (*calldata.ContractTxData, error) {
	resp := new(api.ParseReply)
	err := cli.req.SendRequest(ctx,
		constants.AppName+".parse",
		&api.ParseArgs{CallData: callData},
		resp,
	)
	if err != nil {
		return nil, err
	}
	return &resp.Tx, nil
}

func (cli *client) Serialize(ctx context.Context, tx *calldata.ContractTxData) (string, error) {
	resp := new(api.SerializeReply)
	err := cli.req.SendRequest(ctx,
		constants.AppName+".serialize",
		&api.SerializeArgs{Tx: *tx},
		resp,
	)
	if err != nil {
		return "", err
	}
	return resp.CallData, nil
}
