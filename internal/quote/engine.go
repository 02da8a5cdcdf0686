package quote

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/fleshka4/saucerswap-normaliser/internal/apperrors"
	"github.com/fleshka4/saucerswap-normaliser/internal/contracts"
	"github.com/fleshka4/saucerswap-normaliser/internal/infra/mirrornode"
	"github.com/fleshka4/saucerswap-normaliser/internal/path"
)

//go:generate mockgen -source=engine.go -destination=mock/caller.go -package=mock Caller

// Caller executes read-only contract calls.
type Caller interface {
	Call(ctx context.Context, req mirrornode.CallRequest) ([]byte, error)
}

// Config holds the immutable call settings of an Engine.
type Config struct {
	Quoter      common.Address
	From        common.Address
	QuoteGas    uint64
	DecimalsGas uint64
	GasPrice    uint64
}

// Engine prices single-hop swaps by simulating QuoterV2 calls.
type Engine struct {
	caller Caller
	cfg    Config
}

// NewEngine creates an Engine.
func NewEngine(caller Caller, cfg Config) *Engine {
	return &Engine{caller: caller, cfg: cfg}
}

// GetSwapQuote returns the amount of tokenOut, in base units, that amountIn
// base units of tokenIn would buy in the pool with the given fee tier.
// No price limit is applied.
func (e *Engine) GetSwapQuote(
	ctx context.Context,
	tokenIn, tokenOut common.Address,
	amountIn *big.Int,
	feeHex string,
) (*big.Int, error) {
	if amountIn == nil || amountIn.Sign() <= 0 {
		return nil, apperrors.InvalidAmount(amountString(amountIn))
	}

	data, err := contracts.PackQuoteExactInputSingle(contracts.QuoteExactInputSingleParams{
		TokenIn:           tokenIn,
		TokenOut:          tokenOut,
		AmountIn:          amountIn,
		Fee:               new(big.Int).SetUint64(uint64(path.ParseFeeHex(feeHex))),
		SqrtPriceLimitX96: big.NewInt(0),
	})
	if err != nil {
		return nil, errors.Wrap(err, "contracts.PackQuoteExactInputSingle")
	}

	res, err := e.caller.Call(ctx, mirrornode.CallRequest{
		To:       e.cfg.Quoter,
		Data:     data,
		From:     e.cfg.From,
		Gas:      e.cfg.QuoteGas,
		GasPrice: e.cfg.GasPrice,
	})
	if err != nil {
		return nil, err
	}

	amountOut, err := contracts.UnpackQuoteAmountOut(res)
	if err != nil {
		return nil, errors.Wrap(err, "contracts.UnpackQuoteAmountOut")
	}
	return amountOut, nil
}

// GetDecimals reads decimals() of an ERC20-compatible token.
func (e *Engine) GetDecimals(ctx context.Context, token common.Address) (uint8, error) {
	data, err := contracts.PackDecimals()
	if err != nil {
		return 0, errors.Wrap(err, "contracts.PackDecimals")
	}

	res, err := e.caller.Call(ctx, mirrornode.CallRequest{
		To:       token,
		Data:     data,
		From:     e.cfg.From,
		Gas:      e.cfg.DecimalsGas,
		GasPrice: e.cfg.GasPrice,
	})
	if err != nil {
		return 0, err
	}

	decimals, err := contracts.UnpackDecimals(res)
	if err != nil {
		return 0, errors.Wrap(err, "contracts.UnpackDecimals")
	}
	return decimals, nil
}

func amountString(v *big.Int) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}
