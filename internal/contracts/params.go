package contracts

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// QuoteExactInputSingleParams mirrors IQuoterV2.QuoteExactInputSingleParams.
type QuoteExactInputSingleParams struct {
	TokenIn           common.Address
	TokenOut          common.Address
	AmountIn          *big.Int
	Fee               *big.Int // uint24
	SqrtPriceLimitX96 *big.Int // uint160, 0 for no limit
}

// ExactInputParams mirrors ISwapRouter.ExactInputParams.
type ExactInputParams struct {
	Path             []byte
	Recipient        common.Address
	Deadline         *big.Int
	AmountIn         *big.Int
	AmountOutMinimum *big.Int
}

// PackQuoteExactInputSingle encodes a quoteExactInputSingle call.
func PackQuoteExactInputSingle(params QuoteExactInputSingleParams) ([]byte, error) {
	a, err := QuoterV2ABI()
	if err != nil {
		return nil, errors.Wrap(err, "QuoterV2ABI")
	}
	data, err := a.Pack(MethodQuoteExactInputSingle, params)
	if err != nil {
		return nil, errors.Wrap(err, "a.Pack")
	}
	return data, nil
}

// UnpackQuoteAmountOut decodes amountOut from a quoteExactInputSingle result.
func UnpackQuoteAmountOut(res []byte) (*big.Int, error) {
	a, err := QuoterV2ABI()
	if err != nil {
		return nil, errors.Wrap(err, "QuoterV2ABI")
	}
	out, err := a.Unpack(MethodQuoteExactInputSingle, res)
	if err != nil {
		return nil, errors.Wrap(err, "a.Unpack")
	}
	if len(out) == 0 {
		return nil, errors.New("empty quoteExactInputSingle result")
	}
	amountOut, ok := out[0].(*big.Int)
	if !ok {
		return nil, errors.Errorf("failed to cast amountOut %T to *big.Int", out[0])
	}
	return amountOut, nil
}

// PackDecimals encodes an ERC20 decimals() call.
func PackDecimals() ([]byte, error) {
	a, err := ERC20ABI()
	if err != nil {
		return nil, errors.Wrap(err, "ERC20ABI")
	}
	data, err := a.Pack(MethodDecimals)
	if err != nil {
		return nil, errors.Wrap(err, "a.Pack")
	}
	return data, nil
}

// UnpackDecimals decodes the uint8 result of decimals().
func UnpackDecimals(res []byte) (uint8, error) {
	a, err := ERC20ABI()
	if err != nil {
		return 0, errors.Wrap(err, "ERC20ABI")
	}
	out, err := a.Unpack(MethodDecimals, res)
	if err != nil {
		return 0, errors.Wrap(err, "a.Unpack")
	}
	if len(out) == 0 {
		return 0, errors.New("empty decimals result")
	}
	decimals, ok := out[0].(uint8)
	if !ok {
		return 0, errors.Errorf("failed to cast decimals %T to uint8", out[0])
	}
	return decimals, nil
}

// PackSwapWithRefund encodes multicall([exactInput(params), refundETH()]).
// The swap runs first so that any native value left on the router is
// returned to the caller in the same transaction.
func PackSwapWithRefund(params ExactInputParams) ([]byte, error) {
	a, err := SwapRouterABI()
	if err != nil {
		return nil, errors.Wrap(err, "SwapRouterABI")
	}

	swap, err := a.Pack(MethodExactInput, params)
	if err != nil {
		return nil, errors.Wrap(err, "a.Pack exactInput")
	}
	refund, err := a.Pack(MethodRefundETH)
	if err != nil {
		return nil, errors.Wrap(err, "a.Pack refundETH")
	}

	data, err := a.Pack(MethodMulticall, [][]byte{swap, refund})
	if err != nil {
		return nil, errors.Wrap(err, "a.Pack multicall")
	}
	return data, nil
}
