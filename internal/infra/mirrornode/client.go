package mirrornode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"github.com/fleshka4/saucerswap-normaliser/internal/apperrors"
	"github.com/fleshka4/saucerswap-normaliser/internal/hedera"
)

// CallRequest is a read-only contract invocation against latest state.
type CallRequest struct {
	To       common.Address
	Data     []byte
	From     common.Address
	Gas      uint64
	GasPrice uint64
}

type callBody struct {
	Data     string `json:"data"`
	From     string `json:"from"`
	To       string `json:"to"`
	Block    string `json:"block"`
	Estimate bool   `json:"estimate"`
	Gas      uint64 `json:"gas"`
	GasPrice uint64 `json:"gasPrice"`
	Value    uint64 `json:"value"`
}

type callResponse struct {
	Result string `json:"result"`
}

type accountResponse struct {
	Account    string `json:"account"`
	EvmAddress string `json:"evm_address"`
}

// Client talks to the mirror node REST API (base URL ends with /api/v1).
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a mirror node client. The timeout bounds every request.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Call simulates a contract call via POST /contracts/call and returns the
// raw ABI-encoded result. A non-2xx answer is MIRROR_NODE_ERROR with the
// upstream status code; nothing is retried.
func (c *Client) Call(ctx context.Context, req CallRequest) ([]byte, error) {
	body, err := json.Marshal(callBody{
		Data:     hexutil.Encode(req.Data),
		From:     strings.ToLower(req.From.Hex()),
		To:       strings.ToLower(req.To.Hex()),
		Block:    "latest",
		Estimate: false,
		Gas:      req.Gas,
		GasPrice: req.GasPrice,
		Value:    0,
	})
	if err != nil {
		return nil, errors.Wrap(err, "json.Marshal")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/contracts/call", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "http.NewRequestWithContext")
	}
	httpReq.Header.Set("content-type", "application/json")

	var out callResponse
	if err := c.do(httpReq, &out); err != nil {
		return nil, err
	}

	res, err := hexutil.Decode(out.Result)
	if err != nil {
		return nil, errors.Wrap(err, "hexutil.Decode")
	}
	return res, nil
}

// AccountEVMAddress returns the EVM address of an account via
// GET /accounts/{id}. Accounts without an alias fall back to their
// long-zero address.
func (c *Client) AccountEVMAddress(ctx context.Context, accountID string) (common.Address, error) {
	u := c.baseURL + "/accounts/" + url.PathEscape(accountID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return common.Address{}, errors.Wrap(err, "http.NewRequestWithContext")
	}
	httpReq.Header.Set("accept", "application/json")

	var out accountResponse
	if err := c.do(httpReq, &out); err != nil {
		return common.Address{}, err
	}

	if common.IsHexAddress(out.EvmAddress) {
		return common.HexToAddress(out.EvmAddress), nil
	}
	addr, err := hedera.AddressFromEntityID(accountID)
	if err != nil {
		return common.Address{}, errors.Wrap(err, "hedera.AddressFromEntityID")
	}
	return addr, nil
}

func (c *Client) do(req *http.Request, out any) error {
	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "c.http.Do")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "io.ReadAll")
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return apperrors.MirrorNode(res.StatusCode, fmt.Sprintf("Call failed with status %d", res.StatusCode))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "json.Unmarshal")
	}
	return nil
}
