package jsonrpc

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"

	"github.com/fleshka4/saucerswap-normaliser/internal/apperrors"
	"github.com/fleshka4/saucerswap-normaliser/internal/infra/mirrornode"
)

//go:generate mockgen -source=client.go -destination=mock/eth_caller.go -package=mock EthCaller

// EthCaller represents interface for calling contracts.
type EthCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Client runs read-only contract calls through a Hedera JSON-RPC relay
// (eth_call at the latest block).
type Client struct {
	caller      EthCaller
	callTimeout time.Duration
}

// NewClient dials the relay at rpcURL.
func NewClient(rpcURL string, callTimeout time.Duration) (*Client, error) {
	caller, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, errors.Wrap(err, "ethclient.Dial")
	}

	return newClientWithCaller(caller, callTimeout), nil
}

func newClientWithCaller(caller EthCaller, callTimeout time.Duration) *Client {
	return &Client{caller: caller, callTimeout: callTimeout}
}

// Call executes req via eth_call. A relay answering with a non-2xx status
// is reported as MIRROR_NODE_ERROR carrying that status.
func (c *Client) Call(ctx context.Context, req mirrornode.CallRequest) ([]byte, error) {
	if c.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.callTimeout)
		defer cancel()
	}

	to := req.To
	res, err := c.caller.CallContract(
		ctx,
		ethereum.CallMsg{
			From:     req.From,
			To:       &to,
			Gas:      req.Gas,
			GasPrice: new(big.Int).SetUint64(req.GasPrice),
			Data:     req.Data,
		},
		nil,
	)
	if err != nil {
		var httpErr rpc.HTTPError
		if errors.As(err, &httpErr) {
			return nil, apperrors.MirrorNode(httpErr.StatusCode, fmt.Sprintf("Call failed with status %d", httpErr.StatusCode))
		}
		return nil, errors.Wrap(err, "c.caller.CallContract")
	}

	return res, nil
}
